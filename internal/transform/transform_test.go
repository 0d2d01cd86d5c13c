package transform

import (
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sipScenario() *domain.ScenarioInput {
	return &domain.ScenarioInput{
		Name: "sip",
		Kind: domain.KindSIP,
		SIP: &domain.SIPInput{
			MonthlyAmount: decimal.NewFromInt(5000), AnnualRatePercent: decimal.NewFromInt(12), Years: 10,
		},
	}
}

func retirementScenario() *domain.ScenarioInput {
	return &domain.ScenarioInput{
		Name: "retirement",
		Kind: domain.KindRetirement,
		Retirement: &domain.RetirementInput{
			CurrentAge: 30, RetirementAge: 60, CurrentSavings: decimal.NewFromInt(500000),
			MonthlyContribution: decimal.NewFromInt(10000), ExpectedReturnPercent: decimal.NewFromInt(12),
			InflationPercent: decimal.NewFromInt(6), CurrentMonthlyExpenses: decimal.NewFromInt(50000),
		},
	}
}

func ppfScenario() *domain.ScenarioInput {
	return &domain.ScenarioInput{
		Name: "ppf",
		Kind: domain.KindGovernmentScheme,
		GovernmentScheme: &domain.GovernmentSchemeInput{
			Scheme: domain.SchemePPF, AnnualContribution: decimal.NewFromInt(150000), Years: 15,
		},
	}
}

func insuranceScenario() *domain.ScenarioInput {
	return &domain.ScenarioInput{
		Name:      "cover",
		Kind:      domain.KindInsurance,
		Insurance: &domain.InsuranceInput{Age: 35, AnnualIncome: decimal.NewFromInt(1200000)},
	}
}

func TestApplyTransforms(t *testing.T) {
	base := sipScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{
		&AdjustRate{DeltaPercent: decimal.NewFromInt(1)},
		&ExtendHorizon{Years: 5},
		&SetStepUp{Percent: decimal.NewFromInt(10)},
		&ScaleContribution{Factor: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)

	assert.True(t, result.SIP.AnnualRatePercent.Equal(decimal.NewFromInt(13)))
	assert.Equal(t, 15, result.SIP.Years)
	assert.True(t, result.SIP.StepUpPercent.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.SIP.MonthlyAmount.Equal(decimal.NewFromInt(10000)))

	// base untouched
	assert.True(t, base.SIP.AnnualRatePercent.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 10, base.SIP.Years)
	assert.True(t, base.SIP.MonthlyAmount.Equal(decimal.NewFromInt(5000)))
}

func TestApplyTransforms_Errors(t *testing.T) {
	_, err := ApplyTransforms(nil, nil)
	assert.Error(t, err)

	copied, err := ApplyTransforms(sipScenario(), nil)
	require.NoError(t, err)
	assert.Equal(t, sipScenario(), copied)

	_, err = ApplyTransforms(sipScenario(), []ScenarioTransform{nil})
	assert.Contains(t, err.Error(), "index 0 is nil")

	_, err = ApplyTransforms(sipScenario(), []ScenarioTransform{&ExtendHorizon{Years: -10}})
	require.Error(t, err)
	var te *TransformError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "extend_horizon", te.TransformName)
	assert.Contains(t, err.Error(), "below one year")
}

func TestAdjustRate(t *testing.T) {
	t.Run("scheme without explicit rate uses policy default", func(t *testing.T) {
		out, err := ApplyTransforms(ppfScenario(), []ScenarioTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(1)}})
		require.NoError(t, err)
		require.NotNil(t, out.GovernmentScheme.RatePercent)
		assert.True(t, out.GovernmentScheme.RatePercent.Equal(decimal.RequireFromString("8.1")))
	})

	t.Run("scheme with explicit rate", func(t *testing.T) {
		base := ppfScenario()
		rate := decimal.NewFromInt(7)
		base.GovernmentScheme.RatePercent = &rate
		policy := domain.DefaultPolicy().Schemes
		out, err := ApplyTransforms(base, []ScenarioTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(-1), Schemes: &policy}})
		require.NoError(t, err)
		assert.True(t, out.GovernmentScheme.RatePercent.Equal(decimal.NewFromInt(6)))
		assert.True(t, base.GovernmentScheme.RatePercent.Equal(decimal.NewFromInt(7)), "pointer not shared")
	})

	t.Run("esg shifts both funds", func(t *testing.T) {
		base := &domain.ScenarioInput{
			Name: "esg", Kind: domain.KindESG,
			ESG: &domain.ESGInput{InvestmentAmount: decimal.NewFromInt(1000), ESGReturnPercent: decimal.NewFromInt(12),
				ConventionalReturnPercent: decimal.NewFromInt(10), Years: 5},
		}
		out, err := ApplyTransforms(base, []ScenarioTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(1)}})
		require.NoError(t, err)
		assert.True(t, out.ESG.ESGReturnPercent.Equal(decimal.NewFromInt(13)))
		assert.True(t, out.ESG.ConventionalReturnPercent.Equal(decimal.NewFromInt(11)))
	})

	t.Run("not applicable", func(t *testing.T) {
		err := (&AdjustRate{DeltaPercent: decimal.NewFromInt(1)}).Validate(insuranceScenario())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not applicable to insurance")
	})

	assert.Equal(t, "Adjust expected return by +1 percentage points", (&AdjustRate{DeltaPercent: decimal.NewFromInt(1)}).Description())
}

func TestRetirementTransforms(t *testing.T) {
	out, err := ApplyTransforms(retirementScenario(), []ScenarioTransform{&PostponeRetirement{Years: 5}})
	require.NoError(t, err)
	assert.Equal(t, 65, out.Retirement.RetirementAge)

	out, err = ApplyTransforms(retirementScenario(), []ScenarioTransform{&ExtendHorizon{Years: -5}})
	require.NoError(t, err)
	assert.Equal(t, 55, out.Retirement.RetirementAge)

	assert.Error(t, (&PostponeRetirement{Years: -1}).Validate(retirementScenario()))
	assert.Error(t, (&PostponeRetirement{Years: 1}).Validate(sipScenario()))
}

func TestSingleKindTransforms(t *testing.T) {
	intl := &domain.ScenarioInput{
		Name: "intl", Kind: domain.KindInternational,
		International: &domain.InternationalInput{AmountHome: decimal.NewFromInt(1000), HomeToForeignRate: decimal.NewFromInt(1),
			AnnualReturnPercent: decimal.NewFromInt(8), Years: 3},
	}
	out, err := ApplyTransforms(intl, []ScenarioTransform{&SetCurrencyRisk{Percent: decimal.NewFromInt(10)}})
	require.NoError(t, err)
	assert.True(t, out.International.CurrencyRiskPercent.Equal(decimal.NewFromInt(10)))
	assert.Error(t, (&SetCurrencyRisk{Percent: decimal.NewFromInt(100)}).Validate(intl))
	assert.Error(t, (&SetCurrencyRisk{Percent: decimal.NewFromInt(5)}).Validate(sipScenario()))

	lump := &domain.ScenarioInput{
		Name: "lump", Kind: domain.KindCompoundInterest,
		CompoundInterest: &domain.CompoundInterestInput{Principal: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(8),
			Years: 3, Frequency: domain.FrequencyAnnually},
	}
	out, err = ApplyTransforms(lump, []ScenarioTransform{&SetFrequency{Frequency: domain.FrequencyMonthly}})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, out.CompoundInterest.Frequency)
	assert.Error(t, (&SetFrequency{Frequency: "daily"}).Validate(lump))

	assert.Error(t, (&SetStepUp{Percent: decimal.NewFromInt(-1)}).Validate(sipScenario()))
	assert.Error(t, (&ScaleContribution{Factor: decimal.Zero}).Validate(sipScenario()))
	assert.Error(t, (&ScaleContribution{Factor: decimal.NewFromInt(2)}).Validate(insuranceScenario()))
}

func TestRequireVariant(t *testing.T) {
	assert.Error(t, requireVariant("x", nil))
	assert.Error(t, requireVariant("x", &domain.ScenarioInput{Name: "s", Kind: domain.KindSIP}))
	assert.NoError(t, requireVariant("x", sipScenario()))
}
