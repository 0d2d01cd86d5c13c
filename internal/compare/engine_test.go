package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *domain.Configuration {
	return &domain.Configuration{
		Policy: domain.DefaultPolicy(),
		Scenarios: []domain.ScenarioInput{
			{
				Name: "sip",
				Kind: domain.KindSIP,
				SIP: &domain.SIPInput{
					MonthlyAmount: decimal.NewFromInt(5000), AnnualRatePercent: decimal.NewFromInt(12), Years: 10,
				},
			},
			{
				Name: "sip-short",
				Kind: domain.KindSIP,
				SIP: &domain.SIPInput{
					MonthlyAmount: decimal.NewFromInt(5000), AnnualRatePercent: decimal.NewFromInt(12), Years: 5,
				},
			},
			{
				Name: "retirement",
				Kind: domain.KindRetirement,
				Retirement: &domain.RetirementInput{
					CurrentAge: 30, RetirementAge: 60, CurrentSavings: decimal.NewFromInt(500000),
					MonthlyContribution: decimal.NewFromInt(10000), ExpectedReturnPercent: decimal.NewFromInt(12),
					InflationPercent: decimal.NewFromInt(6), CurrentMonthlyExpenses: decimal.NewFromInt(50000),
				},
			},
		},
	}
}

func TestCompareEngine_Templates(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "sip",
		Templates:        []string{"double_contribution", "rate_plus_1", "rate_minus_1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "sip", set.BaseScenarioName)
	assert.True(t, set.BaseResult.MaturityValue.Equal(decimal.NewFromInt(1161695)))
	assert.True(t, set.BaseResult.TotalContributed.Equal(decimal.NewFromInt(600000)))
	assert.Equal(t, 10, set.BaseResult.Years)
	require.Len(t, set.AlternativeResults, 3)

	double := set.AlternativeResults[0]
	assert.Equal(t, "sip_double_contribution", double.ScenarioName)
	assert.Equal(t, "Invest twice as much", double.Description)
	assert.InDelta(t, 2323391, double.MaturityValue.InexactFloat64(), 1)
	assert.True(t, double.ContributionDiffFromBase.Equal(decimal.NewFromInt(600000)))
	assert.Equal(t, "100.00", double.MaturityPctFromBase.StringFixed(2))

	plus := set.AlternativeResults[1]
	assert.InDelta(t, 1233403, plus.MaturityValue.InexactFloat64(), 1)
	assert.Equal(t, "6.17", plus.MaturityPctFromBase.StringFixed(2))

	minus := set.AlternativeResults[2]
	assert.True(t, minus.MaturityDiffFromBase.IsNegative())

	require.NotEmpty(t, set.Recommendations)
	assert.Contains(t, set.Recommendations[0], "Highest Maturity: sip_double_contribution")
	assert.Contains(t, strings.Join(set.Recommendations, "\n"), "Best Efficiency: sip_rate_plus_1")
}

func TestCompareEngine_RetirementShortfall(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "retirement",
		Templates:        []string{"double_contribution"},
	})
	require.NoError(t, err)

	assert.True(t, set.BaseResult.Shortfall.IsPositive())
	assert.Equal(t, 30, set.BaseResult.Years)
	alt := set.AlternativeResults[0]
	assert.True(t, alt.Shortfall.IsZero())
	assert.True(t, alt.ShortfallDiffFromBase.Equal(set.BaseResult.Shortfall.Neg()))
	assert.Contains(t, set.Recommendations, "Closes Shortfall: retirement_double_contribution fully funds the retirement corpus")
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	ctx := context.Background()

	_, err := ce.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "missing"})
	assert.ErrorContains(t, err, "base scenario missing not found")

	_, err = ce.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "sip", Templates: []string{"nope"}})
	assert.ErrorContains(t, err, "template nope not found")

	_, err = ce.Compare(ctx, testConfig(), CompareOptions{BaseScenarioName: "sip", Templates: []string{"currency_risk_10"}})
	assert.ErrorContains(t, err, "failed to apply template currency_risk_10")

	_, err = ce.CompareScenarios(ctx, testConfig(), "sip", []string{"missing"})
	assert.ErrorContains(t, err, "failed to calculate scenario missing")
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := ce.CompareScenarios(context.Background(), testConfig(), "sip", []string{"sip-short"})
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 1)
	short := set.AlternativeResults[0]
	assert.InDelta(t, 412432, short.MaturityValue.InexactFloat64(), 1)
	assert.True(t, short.ContributionDiffFromBase.Equal(decimal.NewFromInt(-300000)))
	assert.Empty(t, set.Recommendations, "base is best on every metric")
}

func TestMetricsCalculator_ZeroBase(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{ScenarioName: "cover"}
	alt := mc.CalculateComparison(ComparisonResult{MaturityValue: decimal.NewFromInt(10)}, base)
	assert.True(t, alt.MaturityPctFromBase.IsZero(), "gap undefined against a zero base")
	assert.True(t, alt.MaturityDiffFromBase.Equal(decimal.NewFromInt(10)))
}

func sampleSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "sip",
		ConfigPath:       "scenarios.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName:     "sip",
			Kind:             domain.KindSIP,
			Years:            10,
			TotalContributed: decimal.NewFromInt(600000),
			TotalGrowth:      decimal.NewFromInt(561695),
			MaturityValue:    decimal.NewFromInt(1161695),
			GrowthMultiple:   decimal.RequireFromString("1.94"),
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:             "sip_double_contribution",
				Description:              "Invest twice as much",
				Kind:                     domain.KindSIP,
				Years:                    10,
				TotalContributed:         decimal.NewFromInt(1200000),
				TotalGrowth:              decimal.NewFromInt(1123391),
				MaturityValue:            decimal.NewFromInt(2323391),
				GrowthMultiple:           decimal.RequireFromString("1.94"),
				MaturityDiffFromBase:     decimal.NewFromInt(1161696),
				MaturityPctFromBase:      decimal.NewFromInt(100),
				ContributionDiffFromBase: decimal.NewFromInt(600000),
			},
		},
		Recommendations: []string{"Highest Maturity: sip_double_contribution reaches ₹23,23,391"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.Format(sampleSet())

	for _, want := range []string{
		"WHAT-IF SCENARIO COMPARISON",
		"Base Scenario: sip",
		"Configuration: scenarios.yaml",
		"sip (base)",
		"₹11.62L",
		"+₹11.62L (100.00%)",
		"Contributions:    +₹6.00L",
		"RECOMMENDATIONS",
		"• Highest Maturity",
	} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, "Base: sip | sip_double_contribution: +₹11.62L", tf.FormatCompact(sampleSet()))
	assert.Equal(t, "1.50Cr", tf.formatDecimal(decimal.NewFromInt(15000000)))
	assert.Equal(t, "999", tf.formatDecimal(decimal.NewFromInt(999)))
	assert.Equal(t, "abcdefg...", tf.truncate("abcdefghijklmnop", 10))
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleSet())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Type,Kind,Years"))
	assert.Equal(t, "sip,base,sip,10,600000,561695,1161695,1.94,0,0,0.00,0,0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "sip_double_contribution,alternative,sip,10,1200000"))
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(sampleSet())
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "sip", decoded["baseScenarioName"])
		assert.Equal(t, "sip_double_contribution", decoded["best"])
		assert.Len(t, decoded["alternativeResults"], 1)
	}
}
