package compare

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Description  string                `json:"description"`
	Kind         domain.CalculatorKind `json:"kind"`
	Years        int                   `json:"years"`

	// Key Metrics
	TotalContributed decimal.Decimal `json:"totalContributed"`
	TotalGrowth      decimal.Decimal `json:"totalGrowth"`
	MaturityValue    decimal.Decimal `json:"maturityValue"`
	GrowthMultiple   decimal.Decimal `json:"growthMultiple"`
	Shortfall        decimal.Decimal `json:"shortfall"` // retirement only
	MonthlyPremium   decimal.Decimal `json:"monthlyPremium"` // insurance only

	// Comparison to Base
	MaturityDiffFromBase     decimal.Decimal `json:"maturityDiffFromBase"`
	MaturityPctFromBase      decimal.Decimal `json:"maturityPctFromBase"`
	ContributionDiffFromBase decimal.Decimal `json:"contributionDiffFromBase"`
	ShortfallDiffFromBase    decimal.Decimal `json:"shortfallDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from calculation outcomes
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for an outcome
func (mc *MetricsCalculator) CalculateMetrics(outcome *domain.CalculationOutcome) ComparisonResult {
	result := ComparisonResult{
		ScenarioName: outcome.ScenarioName,
		Kind:         outcome.Kind,
	}

	if p, ok := outcome.PrimaryProjection(); ok {
		result.TotalContributed = p.TotalContributed
		result.TotalGrowth = p.TotalGrowth
		result.MaturityValue = p.MaturityValue
		result.GrowthMultiple = p.GrowthMultiple()
		result.Years = len(p.Breakdown)
	}
	if outcome.Retirement != nil {
		result.Shortfall = outcome.Retirement.Shortfall.Shortfall
		result.Years = outcome.Retirement.YearsToRetirement
	}
	if outcome.Insurance != nil {
		result.MonthlyPremium = outcome.Insurance.TotalPremium()
	}

	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base.
// The percent change uses the performance gap formula and stays zero when the base has no maturity value.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.MaturityDiffFromBase = scenario.MaturityValue.Sub(base.MaturityValue)
	if gap, err := calculation.PerformanceGapPercent(scenario.MaturityValue, base.MaturityValue); err == nil {
		scenario.MaturityPctFromBase = gap
	}
	scenario.ContributionDiffFromBase = scenario.TotalContributed.Sub(base.TotalContributed)
	scenario.ShortfallDiffFromBase = scenario.Shortfall.Sub(base.Shortfall)
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	// Find best scenario by maturity value
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MaturityValue.GreaterThan(best.MaturityValue) {
			best = alt
		}
	}
	if best != base {
		recommendations = append(recommendations,
			"Highest Maturity: "+best.ScenarioName+" reaches "+output.FormatINR(best.MaturityValue)+
				", "+output.FormatINR(best.MaturityValue.Sub(base.MaturityValue))+" more than base scenario")
	}

	// Find best growth per rupee contributed
	efficient := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.GrowthMultiple.GreaterThan(efficient.GrowthMultiple) {
			efficient = alt
		}
	}
	if efficient != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Efficiency: %s grows each rupee contributed to %sx", efficient.ScenarioName, efficient.GrowthMultiple.StringFixed(2)))
	}

	// Find smallest retirement shortfall
	if base.Shortfall.IsPositive() {
		smallest := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if alt.Kind == domain.KindRetirement && alt.Shortfall.LessThan(smallest.Shortfall) {
				smallest = alt
			}
		}
		if smallest != base {
			if smallest.Shortfall.IsZero() {
				recommendations = append(recommendations,
					"Closes Shortfall: "+smallest.ScenarioName+" fully funds the retirement corpus")
			} else {
				recommendations = append(recommendations,
					"Smallest Shortfall: "+smallest.ScenarioName+" reduces the shortfall by "+
						output.FormatINR(base.Shortfall.Sub(smallest.Shortfall)))
			}
		}
	}

	return recommendations
}
