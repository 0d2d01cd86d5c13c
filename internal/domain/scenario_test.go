package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyPeriodsPerYear(t *testing.T) {
	tests := []struct {
		freq Frequency
		want int
		ok   bool
	}{
		{FrequencyMonthly, 12, true},
		{FrequencyQuarterly, 4, true},
		{FrequencyAnnually, 1, true},
		{Frequency("weekly"), 0, false},
		{Frequency(""), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			n, ok := tt.freq.PeriodsPerYear()
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	validation := NewValidationError("principal", "must not be negative")
	horizon := NewInvalidHorizonError("years", "must be at least 1")
	outOfRange := NewOutOfRangeError("annual_rate_percent", "1200", "must be within [-100, 100]")

	assert.True(t, errors.Is(validation, ErrValidation))
	assert.False(t, errors.Is(validation, ErrOutOfRange))

	assert.True(t, errors.Is(horizon, ErrInvalidHorizon))
	assert.True(t, errors.Is(horizon, ErrValidation), "horizon errors are validation failures too")

	assert.True(t, errors.Is(outOfRange, ErrOutOfRange))
	assert.False(t, errors.Is(outOfRange, ErrValidation))

	wrapped := fmt.Errorf("scenario %q: %w", "lump", outOfRange)
	assert.True(t, errors.Is(wrapped, ErrOutOfRange))
	assert.Equal(t, "annual_rate_percent", ErrorField(wrapped))
	assert.Equal(t, "out_of_range", ErrorType(wrapped))
	assert.Equal(t, "invalid_horizon", ErrorType(horizon))
	assert.Equal(t, "validation", ErrorType(validation))
	assert.Equal(t, "internal", ErrorType(errors.New("boom")))
	assert.Contains(t, outOfRange.Error(), "1200")
}

func TestScenarioInputDeepCopy(t *testing.T) {
	rate := decimal.NewFromFloat(7.1)
	original := &ScenarioInput{
		Name: "ppf",
		Kind: KindGovernmentScheme,
		GovernmentScheme: &GovernmentSchemeInput{
			Scheme:             SchemePPF,
			AnnualContribution: decimal.NewFromInt(150000),
			Years:              15,
			RatePercent:        &rate,
		},
	}

	cp := original.DeepCopy()
	require.NotNil(t, cp)
	cp.GovernmentScheme.Years = 20
	*cp.GovernmentScheme.RatePercent = decimal.NewFromInt(9)

	assert.Equal(t, 15, original.GovernmentScheme.Years)
	assert.True(t, original.GovernmentScheme.RatePercent.Equal(decimal.NewFromFloat(7.1)))

	crypto := &ScenarioInput{
		Kind:   KindCrypto,
		Crypto: &CryptoInput{Years: 5, Prices: map[string]decimal.Decimal{"bitcoin": decimal.NewFromInt(100)}},
	}
	cc := crypto.DeepCopy()
	cc.Crypto.Prices["bitcoin"] = decimal.NewFromInt(1)
	assert.True(t, crypto.Crypto.Prices["bitcoin"].Equal(decimal.NewFromInt(100)))

	var nilInput *ScenarioInput
	assert.Nil(t, nilInput.DeepCopy())
}

func TestScenarioInputHorizon(t *testing.T) {
	retirement := ScenarioInput{Kind: KindRetirement, Retirement: &RetirementInput{CurrentAge: 30, RetirementAge: 60}}
	assert.Equal(t, 30, retirement.Horizon())

	sip := ScenarioInput{Kind: KindSIP, SIP: &SIPInput{Years: 10}}
	assert.Equal(t, 10, sip.Horizon())

	insurance := ScenarioInput{Kind: KindInsurance, Insurance: &InsuranceInput{Age: 35}}
	assert.Equal(t, 0, insurance.Horizon())
}

func TestConfigurationFindScenario(t *testing.T) {
	cfg := Configuration{Scenarios: []ScenarioInput{{Name: "a"}, {Name: "b"}}}

	s, ok := cfg.FindScenario("b")
	require.True(t, ok)
	assert.Equal(t, "b", s.Name)

	_, ok = cfg.FindScenario("missing")
	assert.False(t, ok)
}

func TestStreamSetKeepsInsertionOrder(t *testing.T) {
	set := NewStreamSet()
	set.Add("esg", ProjectionResult{MaturityValue: decimal.NewFromInt(2)})
	set.Add("conventional", ProjectionResult{MaturityValue: decimal.NewFromInt(1)})
	set.Add("esg", ProjectionResult{MaturityValue: decimal.NewFromInt(3)})

	assert.Equal(t, []string{"esg", "conventional"}, set.Order)
	p, ok := set.Get("esg")
	require.True(t, ok)
	assert.True(t, p.MaturityValue.Equal(decimal.NewFromInt(3)))

	outcome := &CalculationOutcome{Kind: KindESG, ESG: &ESGResult{Streams: set}}
	projections := outcome.Projections()
	require.Len(t, projections, 2)
	assert.Equal(t, "esg", projections[0].Name)

	primary, ok := outcome.PrimaryProjection()
	require.True(t, ok)
	assert.True(t, primary.MaturityValue.Equal(decimal.NewFromInt(3)))

	insurance := &CalculationOutcome{Kind: KindInsurance, Insurance: &InsuranceResult{}}
	_, ok = insurance.PrimaryProjection()
	assert.False(t, ok)
}

func TestProjectionResultHelpers(t *testing.T) {
	p := ProjectionResult{
		TotalContributed: decimal.NewFromInt(100000),
		MaturityValue:    decimal.NewFromInt(215892),
		Breakdown: []PeriodBreakdownRow{
			{Period: 1, TotalValue: decimal.NewFromInt(108000)},
			{Period: 2, TotalValue: decimal.NewFromInt(116640)},
		},
	}
	row, ok := p.FinalRow()
	require.True(t, ok)
	assert.Equal(t, 2, row.Period)
	assert.Equal(t, "2.16", p.GrowthMultiple().StringFixed(2))

	assert.True(t, ProjectionResult{}.GrowthMultiple().IsZero())
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.Retirement.RequiredCorpusMultiplier.Equal(decimal.NewFromInt(25)))
	assert.True(t, p.Insurance.Health.FloorAmount.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, 60, p.Insurance.IncomeReplacementAge)

	ppf, ok := p.Schemes.Defaults(SchemePPF)
	require.True(t, ok)
	require.NotNil(t, ppf.ContributionCap)
	assert.True(t, ppf.ContributionCap.Equal(decimal.NewFromInt(150000)))

	epf, ok := p.Schemes.Defaults(SchemeEPF)
	require.True(t, ok)
	assert.Nil(t, epf.ContributionCap)

	_, ok = p.Schemes.Defaults(SchemeKind("ULIP"))
	assert.False(t, ok)

	// Scheme horizons always come from the scenario
	data, err := json.Marshal(p.Schemes)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ratePercent"`)
	assert.NotContains(t, string(data), "defaultYears")

	weights := decimal.Zero
	for _, a := range p.Crypto.Assets {
		weights = weights.Add(a.AllocationWeight)
	}
	assert.True(t, weights.Equal(decimal.NewFromInt(1)))
}
