package breakeven

import (
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines which scenario parameter the solver moves
type OptimizationTarget string

const (
	OptimizeReturnRate   OptimizationTarget = "return_rate"
	OptimizeContribution OptimizationTarget = "contribution"
	OptimizeHorizon      OptimizationTarget = "horizon"
	OptimizeAll          OptimizationTarget = "all"
)

// OptimizationGoal defines the outcome the solver must reach
type OptimizationGoal string

const (
	GoalReachTarget    OptimizationGoal = "reach_target"    // Maturity value at least TargetValue
	GoalCloseShortfall OptimizationGoal = "close_shortfall" // Retirement corpus fully funded
)

// Constraints define bounds for optimization parameters
type Constraints struct {
	// Expected annual return bounds in percent
	MinRatePercent *decimal.Decimal `json:"min_rate_percent,omitempty"`
	MaxRatePercent *decimal.Decimal `json:"max_rate_percent,omitempty"`

	// Contribution multiplier bounds, applied to every amount the investor puts in
	MinContributionFactor *decimal.Decimal `json:"min_contribution_factor,omitempty"`
	MaxContributionFactor *decimal.Decimal `json:"max_contribution_factor,omitempty"`

	// Longest extension of the horizon (or retirement age) the solver may try
	MaxExtraYears *int `json:"max_extra_years,omitempty"`

	// Maturity target for the reach_target goal
	TargetValue *decimal.Decimal `json:"target_value,omitempty"`
}

// DefaultConstraints returns sensible default constraints
func DefaultConstraints() Constraints {
	minRate := decimal.Zero
	maxRate := decimal.NewFromInt(30)
	minFactor := decimal.NewFromFloat(0.01)
	maxFactor := decimal.NewFromInt(100)
	maxExtraYears := 40

	return Constraints{
		MinRatePercent:        &minRate,
		MaxRatePercent:        &maxRate,
		MinContributionFactor: &minFactor,
		MaxContributionFactor: &maxFactor,
		MaxExtraYears:         &maxExtraYears,
	}
}

// WithTarget returns a copy of c that aims for the given maturity value
func (c Constraints) WithTarget(target decimal.Decimal) Constraints {
	c.TargetValue = &target
	return c
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	BaseScenario  *domain.ScenarioInput `json:"base_scenario"`
	Target        OptimizationTarget    `json:"target"`
	Goal          OptimizationGoal      `json:"goal"`
	Constraints   Constraints           `json:"constraints"`
	MaxIterations int                   `json:"max_iterations,omitempty"` // Maximum solver iterations
	Tolerance     decimal.Decimal       `json:"tolerance,omitempty"`      // Convergence tolerance for bisection
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	// Optimization metadata
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	// Optimized parameters
	OptimalRatePercent        *decimal.Decimal `json:"optimal_rate_percent,omitempty"`
	OptimalContributionFactor *decimal.Decimal `json:"optimal_contribution_factor,omitempty"`
	RequiredContribution      *decimal.Decimal `json:"required_contribution,omitempty"`
	OptimalYears              *int             `json:"optimal_years,omitempty"`

	// Results at optimal parameters
	Scenario      *domain.ScenarioInput `json:"scenario"`
	MaturityValue decimal.Decimal       `json:"maturity_value"`
	Shortfall     decimal.Decimal       `json:"shortfall"`

	// Comparison to base
	BaseMaturityValue    decimal.Decimal `json:"base_maturity_value"`
	BaseShortfall        decimal.Decimal `json:"base_shortfall"`
	MaturityDiffFromBase decimal.Decimal `json:"maturity_diff_from_base"`
}

// MultiDimensionalResult contains results when optimizing several parameters independently
type MultiDimensionalResult struct {
	Results         []OptimizationResult `json:"results"`
	Failures        map[string]string    `json:"failures,omitempty"`
	SmallestChange  *OptimizationResult  `json:"smallest_change,omitempty"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	RateTolerance   decimal.Decimal // Percentage points
	FactorTolerance decimal.Decimal // Contribution multiplier
	MaxIterations   int             // Maximum bisection iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		RateTolerance:   decimal.NewFromFloat(0.01),
		FactorTolerance: decimal.NewFromFloat(0.001),
		MaxIterations:   60,
	}
}

// Validate checks if constraints are internally consistent for goal
func (c *Constraints) Validate(goal OptimizationGoal) error {
	if c.MinRatePercent != nil && c.MaxRatePercent != nil && c.MinRatePercent.GreaterThan(*c.MaxRatePercent) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_rate_percent cannot be greater than max_rate_percent",
		}
	}

	if c.MinContributionFactor != nil && !c.MinContributionFactor.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_contribution_factor must be positive",
		}
	}
	if c.MinContributionFactor != nil && c.MaxContributionFactor != nil &&
		c.MinContributionFactor.GreaterThan(*c.MaxContributionFactor) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_contribution_factor cannot be greater than max_contribution_factor",
		}
	}

	if c.MaxExtraYears != nil && *c.MaxExtraYears < 0 {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "max_extra_years cannot be negative",
		}
	}

	if goal == GoalReachTarget && (c.TargetValue == nil || !c.TargetValue.IsPositive()) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "reach_target requires a positive target_value",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
