package breakeven

import (
	"context"
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// singleTargets are the parameters OptimizeAll solves for, one at a time
var singleTargets = []OptimizationTarget{OptimizeReturnRate, OptimizeContribution, OptimizeHorizon}

// OptimizeMultiDimensional solves for every single-parameter target and ranks the answers.
// Targets that cannot reach the goal are reported in Failures rather than failing the run.
func (s *Solver) OptimizeMultiDimensional(
	ctx context.Context,
	baseScenario *domain.ScenarioInput,
	constraints Constraints,
	goal OptimizationGoal,
) (*MultiDimensionalResult, error) {
	var results []OptimizationResult
	failures := make(map[string]string)

	for _, target := range singleTargets {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req := OptimizationRequest{
			BaseScenario: baseScenario,
			Target:       target,
			Goal:         goal,
			Constraints:  constraints,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures[string(target)] = err.Error()
			continue
		}
		results = append(results, *result)
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_multi_dimensional",
			Message:   "no successful optimizations found",
		}
	}

	mdResult := &MultiDimensionalResult{Results: results}
	if len(failures) > 0 {
		mdResult.Failures = failures
	}

	// The smallest relative change to the base scenario is the easiest lever to pull
	bestChange := decimal.Zero
	for i := range results {
		change, ok := relativeChange(&results[i])
		if !ok {
			continue
		}
		if mdResult.SmallestChange == nil || change.LessThan(bestChange) {
			mdResult.SmallestChange = &results[i]
			bestChange = change
		}
	}

	mdResult.Recommendations = s.generateMultiDimensionalRecommendations(mdResult)
	return mdResult, nil
}

// relativeChange expresses each answer as a fraction of the base parameter it moves
func relativeChange(r *OptimizationResult) (decimal.Decimal, bool) {
	base := r.Request.BaseScenario
	switch {
	case r.OptimalRatePercent != nil:
		current, err := currentRate(base, domain.DefaultPolicy().Schemes)
		if err != nil || !current.IsPositive() {
			return decimal.Zero, false
		}
		return r.OptimalRatePercent.Sub(current).Abs().Div(current), true
	case r.OptimalContributionFactor != nil:
		return r.OptimalContributionFactor.Sub(decimal.NewFromInt(1)).Abs(), true
	case r.OptimalYears != nil:
		horizon := base.Horizon()
		if horizon <= 0 {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(int64(*r.OptimalYears - horizon)).Div(decimal.NewFromInt(int64(horizon))), true
	}
	return decimal.Zero, false
}

// generateMultiDimensionalRecommendations creates recommendations from multi-dimensional results
func (s *Solver) generateMultiDimensionalRecommendations(result *MultiDimensionalResult) []string {
	var recommendations []string

	for _, r := range result.Results {
		switch {
		case r.OptimalRatePercent != nil:
			recommendations = append(recommendations,
				fmt.Sprintf("Earn at least %s%% a year", r.OptimalRatePercent.StringFixed(2)))
		case r.OptimalContributionFactor != nil && r.RequiredContribution != nil:
			recommendations = append(recommendations,
				fmt.Sprintf("Invest %s per period (x%s of today)",
					r.RequiredContribution.StringFixed(0), r.OptimalContributionFactor.StringFixed(2)))
		case r.OptimalYears != nil:
			if r.Request.BaseScenario.Kind == domain.KindRetirement {
				recommendations = append(recommendations,
					fmt.Sprintf("Retire at %d", r.Request.BaseScenario.Retirement.CurrentAge+*r.OptimalYears))
			} else {
				recommendations = append(recommendations,
					fmt.Sprintf("Stay invested for %d years", *r.OptimalYears))
			}
		}
	}

	if result.SmallestChange != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("⭐ Smallest change from today: %s", result.SmallestChange.Request.Target))
	}

	return recommendations
}
