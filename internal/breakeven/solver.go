package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the smallest change to one scenario parameter that reaches a goal
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// evaluation is one engine run at a candidate parameter value
type evaluation struct {
	scenario *domain.ScenarioInput
	outcome  *domain.CalculationOutcome
	gap      decimal.Decimal // non-negative once the goal is met
}

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if req.BaseScenario == nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "base scenario is required"}
	}
	if req.BaseScenario.Kind == domain.KindInsurance {
		return nil, &BreakEvenError{Operation: "optimize", Message: "insurance scenarios have no projection to solve for"}
	}
	if req.Goal == "" {
		req.Goal = DefaultGoal(req.BaseScenario.Kind)
	}
	if req.Goal == GoalCloseShortfall && req.BaseScenario.Kind != domain.KindRetirement {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("close_shortfall only applies to retirement scenarios, got %s", req.BaseScenario.Kind),
		}
	}
	if err := req.Constraints.Validate(req.Goal); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}

	base, err := s.evaluate(ctx, req, req.BaseScenario)
	if err != nil {
		return nil, &BreakEvenError{Operation: "optimize", Message: "failed to calculate base scenario", Cause: err}
	}

	// Route to appropriate solver based on target
	var result *OptimizationResult
	switch req.Target {
	case OptimizeReturnRate:
		result, err = s.optimizeReturnRate(ctx, req)
	case OptimizeContribution:
		result, err = s.optimizeContribution(ctx, req)
	case OptimizeHorizon:
		result, err = s.optimizeHorizon(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
	if err != nil {
		return nil, err
	}

	result.BaseMaturityValue = maturityOf(base.outcome)
	result.BaseShortfall = shortfallOf(base.outcome)
	result.MaturityDiffFromBase = result.MaturityValue.Sub(result.BaseMaturityValue)
	return result, nil
}

// DefaultGoal picks close_shortfall for retirement plans and reach_target otherwise
func DefaultGoal(kind domain.CalculatorKind) OptimizationGoal {
	if kind == domain.KindRetirement {
		return GoalCloseShortfall
	}
	return GoalReachTarget
}

// optimizeReturnRate finds the lowest expected return that meets the goal
func (s *Solver) optimizeReturnRate(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	current, err := currentRate(req.BaseScenario, s.CalcEngine.Policy.Schemes)
	if err != nil {
		return nil, err
	}

	minRate := decimal.Zero
	maxRate := decimal.NewFromInt(30)
	if req.Constraints.MinRatePercent != nil {
		minRate = *req.Constraints.MinRatePercent
	}
	if req.Constraints.MaxRatePercent != nil {
		maxRate = *req.Constraints.MaxRatePercent
	}
	tolerance := s.tolerance(req, s.Options.RateTolerance)

	schemes := s.CalcEngine.Policy.Schemes
	build := func(rate decimal.Decimal) (*domain.ScenarioInput, error) {
		return transform.ApplyTransforms(req.BaseScenario, []transform.ScenarioTransform{
			&transform.AdjustRate{DeltaPercent: rate.Sub(current), Schemes: &schemes},
		})
	}

	rate, eval, iterations, converged, err := s.bisect(ctx, req, "optimize_return_rate", minRate, maxRate, tolerance, build)
	if err != nil {
		return nil, err
	}

	result := s.newResult(req, eval, iterations)
	result.OptimalRatePercent = &rate
	result.Success = true
	result.ConvergenceInfo = convergenceInfo(converged, iterations,
		fmt.Sprintf("required return %s%% (currently %s%%)", rate.StringFixed(2), current.StringFixed(2)))
	return result, nil
}

// optimizeContribution finds the smallest contribution multiplier that meets the goal
func (s *Solver) optimizeContribution(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	minFactor := decimal.NewFromFloat(0.01)
	maxFactor := decimal.NewFromInt(100)
	if req.Constraints.MinContributionFactor != nil {
		minFactor = *req.Constraints.MinContributionFactor
	}
	if req.Constraints.MaxContributionFactor != nil {
		maxFactor = *req.Constraints.MaxContributionFactor
	}
	tolerance := s.tolerance(req, s.Options.FactorTolerance)

	build := func(factor decimal.Decimal) (*domain.ScenarioInput, error) {
		return transform.ApplyTransforms(req.BaseScenario, []transform.ScenarioTransform{
			&transform.ScaleContribution{Factor: factor},
		})
	}

	factor, eval, iterations, converged, err := s.bisect(ctx, req, "optimize_contribution", minFactor, maxFactor, tolerance, build)
	if err != nil {
		return nil, err
	}

	result := s.newResult(req, eval, iterations)
	result.OptimalContributionFactor = &factor
	required := primaryContribution(eval.scenario)
	result.RequiredContribution = &required
	result.Success = true
	result.ConvergenceInfo = convergenceInfo(converged, iterations,
		fmt.Sprintf("contributions x%s", factor.StringFixed(3)))
	return result, nil
}

// optimizeHorizon finds the fewest additional years that meet the goal.
// Retirement scenarios move the retirement age.
func (s *Solver) optimizeHorizon(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	maxExtra := 40
	if req.Constraints.MaxExtraYears != nil {
		maxExtra = *req.Constraints.MaxExtraYears
	}
	baseHorizon := req.BaseScenario.Horizon()
	if limit := s.CalcEngine.Policy.Limits.MaxHorizonYears; limit > 0 && baseHorizon+maxExtra > limit {
		maxExtra = limit - baseHorizon
	}

	iterations := 0
	for extra := 0; extra <= maxExtra; extra++ {
		iterations++

		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		scenario, err := transform.ApplyTransforms(req.BaseScenario, []transform.ScenarioTransform{
			&transform.ExtendHorizon{Years: extra},
		})
		if err != nil {
			return nil, &BreakEvenError{Operation: "optimize_horizon", Message: "failed to apply horizon transform", Cause: err}
		}

		eval, err := s.evaluate(ctx, req, scenario)
		if err != nil {
			return nil, &BreakEvenError{Operation: "optimize_horizon", Message: "failed to calculate scenario", Cause: err}
		}
		if eval.gap.IsNegative() {
			continue
		}

		years := baseHorizon + extra
		result := s.newResult(req, eval, iterations)
		result.OptimalYears = &years
		result.Success = true
		result.ConvergenceInfo = fmt.Sprintf("Goal met after %d years (%d more than base)", years, extra)
		return result, nil
	}

	return nil, &BreakEvenError{
		Operation: "optimize_horizon",
		Message:   fmt.Sprintf("goal not reachable within %d additional years", maxExtra),
	}
}

// bisect finds the smallest value in [lo, hi] whose scenario meets the goal, assuming the
// gap grows with the value. The returned value always meets the goal.
func (s *Solver) bisect(
	ctx context.Context,
	req OptimizationRequest,
	operation string,
	lo, hi, tolerance decimal.Decimal,
	build func(decimal.Decimal) (*domain.ScenarioInput, error),
) (decimal.Decimal, *evaluation, int, bool, error) {
	probe := func(v decimal.Decimal) (*evaluation, error) {
		scenario, err := build(v)
		if err != nil {
			return nil, &BreakEvenError{Operation: operation, Message: "failed to apply transform", Cause: err}
		}
		eval, err := s.evaluate(ctx, req, scenario)
		if err != nil {
			return nil, &BreakEvenError{Operation: operation, Message: "failed to calculate scenario", Cause: err}
		}
		return eval, nil
	}

	best, err := probe(hi)
	if err != nil {
		return decimal.Zero, nil, 0, false, err
	}
	iterations := 1
	if best.gap.IsNegative() {
		return decimal.Zero, nil, iterations, false, &BreakEvenError{
			Operation: operation,
			Message:   fmt.Sprintf("goal not reachable within bounds (upper bound %s)", hi.String()),
		}
	}

	low, err := probe(lo)
	if err != nil {
		return decimal.Zero, nil, iterations, false, err
	}
	iterations++
	if !low.gap.IsNegative() {
		return lo, low, iterations, true, nil
	}

	for hi.Sub(lo).GreaterThan(tolerance) && iterations < req.MaxIterations {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return decimal.Zero, nil, iterations, false, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		eval, err := probe(mid)
		if err != nil {
			return decimal.Zero, nil, iterations, false, err
		}
		iterations++

		if eval.gap.IsNegative() {
			lo = mid
		} else {
			hi = mid
			best = eval
		}
	}

	return hi, best, iterations, !hi.Sub(lo).GreaterThan(tolerance), nil
}

// evaluate runs scenario and measures how far it is from the goal
func (s *Solver) evaluate(ctx context.Context, req OptimizationRequest, scenario *domain.ScenarioInput) (*evaluation, error) {
	outcome, err := s.CalcEngine.Run(ctx, *scenario)
	if err != nil {
		return nil, err
	}

	eval := &evaluation{scenario: scenario, outcome: outcome}
	switch req.Goal {
	case GoalCloseShortfall:
		if outcome.Retirement == nil {
			return nil, errors.New("close_shortfall requires a retirement outcome")
		}
		sf := outcome.Retirement.Shortfall
		eval.gap = sf.ProjectedCorpus.Sub(sf.RequiredCorpus)
	default:
		eval.gap = maturityOf(outcome).Sub(*req.Constraints.TargetValue)
	}
	return eval, nil
}

func (s *Solver) newResult(req OptimizationRequest, eval *evaluation, iterations int) *OptimizationResult {
	return &OptimizationResult{
		Request:       req,
		Iterations:    iterations,
		Scenario:      eval.scenario,
		MaturityValue: maturityOf(eval.outcome),
		Shortfall:     shortfallOf(eval.outcome),
	}
}

func (s *Solver) tolerance(req OptimizationRequest, fallback decimal.Decimal) decimal.Decimal {
	if req.Tolerance.IsPositive() {
		return req.Tolerance
	}
	return fallback
}

func convergenceInfo(converged bool, iterations int, detail string) string {
	if converged {
		return fmt.Sprintf("Converged in %d iterations: %s", iterations, detail)
	}
	return fmt.Sprintf("Stopped after %d iterations without reaching tolerance: %s", iterations, detail)
}

func maturityOf(o *domain.CalculationOutcome) decimal.Decimal {
	if p, ok := o.PrimaryProjection(); ok {
		return p.MaturityValue
	}
	return decimal.Zero
}

func shortfallOf(o *domain.CalculationOutcome) decimal.Decimal {
	if o.Retirement != nil {
		return o.Retirement.Shortfall.Shortfall
	}
	return decimal.Zero
}

// currentRate reads the expected return the scenario assumes today
func currentRate(in *domain.ScenarioInput, schemes domain.SchemePolicy) (decimal.Decimal, error) {
	switch {
	case in.Kind == domain.KindCompoundInterest && in.CompoundInterest != nil:
		return in.CompoundInterest.AnnualRatePercent, nil
	case in.Kind == domain.KindSIP && in.SIP != nil:
		return in.SIP.AnnualRatePercent, nil
	case in.Kind == domain.KindRetirement && in.Retirement != nil:
		return in.Retirement.ExpectedReturnPercent, nil
	case in.Kind == domain.KindGovernmentScheme && in.GovernmentScheme != nil:
		if in.GovernmentScheme.RatePercent != nil {
			return *in.GovernmentScheme.RatePercent, nil
		}
		if defaults, ok := schemes.Defaults(in.GovernmentScheme.Scheme); ok {
			return defaults.RatePercent, nil
		}
	case in.Kind == domain.KindInternational && in.International != nil:
		return in.International.AnnualReturnPercent, nil
	case in.Kind == domain.KindESG && in.ESG != nil:
		return in.ESG.ESGReturnPercent, nil
	}
	return decimal.Zero, &BreakEvenError{
		Operation: "optimize_return_rate",
		Message:   fmt.Sprintf("%s scenarios have no adjustable return", in.Kind),
	}
}

// primaryContribution is the headline amount the investor puts in
func primaryContribution(in *domain.ScenarioInput) decimal.Decimal {
	switch {
	case in.CompoundInterest != nil:
		return in.CompoundInterest.Principal
	case in.SIP != nil:
		return in.SIP.MonthlyAmount
	case in.Retirement != nil:
		return in.Retirement.MonthlyContribution
	case in.GovernmentScheme != nil:
		return in.GovernmentScheme.AnnualContribution
	case in.International != nil:
		return in.International.AmountHome
	case in.ESG != nil:
		return in.ESG.MonthlyContribution
	case in.Crypto != nil:
		return in.Crypto.MonthlyInvestment
	}
	return decimal.Zero
}
