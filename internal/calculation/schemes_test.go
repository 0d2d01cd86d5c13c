package calculation

import (
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchemes() *GovernmentSchemeProjector {
	policy := domain.DefaultPolicy()
	return NewGovernmentSchemeProjector(policy.Schemes, policy.Limits, newGrowth())
}

func TestSchemeProject_PPFCapsContribution(t *testing.T) {
	result, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemePPF,
		AnnualContribution: d(200000),
		Years:              15,
	})
	require.NoError(t, err)

	assert.True(t, result.EmployeeContribution.Equal(d(150000)), "PPF deposits are capped at 1.5 lakh")
	assert.True(t, result.TaxBenefit.Equal(d(150000)))
	assert.Equal(t, "7.1", result.RatePercent.String())

	p := result.Projection
	assert.True(t, p.TotalContributed.Equal(d(150000*15)))
	assert.InDelta(t, 4068209, p.MaturityValue.InexactFloat64(), 3)
	assert.True(t, p.MaturityValue.Equal(p.TotalContributed.Add(p.TotalGrowth)))
	require.Len(t, p.Breakdown, 15)
	// first deposit earns a full year before the first row
	assert.True(t, p.Breakdown[0].TotalValue.Equal(d(160650)))
}

func TestSchemeProject_ZeroRateSumsDeposits(t *testing.T) {
	zero := decimal.Zero
	result, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemeSSY,
		AnnualContribution: d(100000),
		Years:              3,
		RatePercent:        &zero,
	})
	require.NoError(t, err)
	assert.True(t, result.Projection.MaturityValue.Equal(d(300000)))
	assert.True(t, result.Projection.TotalGrowth.IsZero())
}

func TestSchemeProject_EPFAddsEmployerStream(t *testing.T) {
	result, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemeEPF,
		AnnualContribution: d(100000),
		Years:              20,
		MonthlyBasicSalary: d(50000),
	})
	require.NoError(t, err)

	assert.True(t, result.EmployeeContribution.Equal(d(72000)), "employee share is 12%% of basic")
	assert.True(t, result.EmployerContribution.Equal(d(22020)), "employer share is 3.67%% of basic")
	assert.True(t, result.Projection.Breakdown[0].PrincipalToDate.Equal(d(94020)))
	assert.True(t, result.TaxBenefit.Equal(d(72000)))

	high, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemeEPF,
		AnnualContribution: d(1000000),
		Years:              5,
		MonthlyBasicSalary: d(500000),
	})
	require.NoError(t, err)
	assert.True(t, high.EmployerContribution.Equal(d(55050)), "employer stream is capped at the statutory ceiling")
	assert.True(t, high.TaxBenefit.Equal(d(150000)), "tax benefit is capped at the section limit")

	_, err = newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemeEPF,
		AnnualContribution: d(100000),
		Years:              20,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "monthly_basic_salary", domain.ErrorField(err))
}

func TestSchemeProject_NPSAnnuity(t *testing.T) {
	result, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemeNPS,
		AnnualContribution: d(50000),
		Years:              25,
	})
	require.NoError(t, err)
	assert.True(t, result.AnnuityValue.Equal(result.Projection.MaturityValue.Mul(d(0.6)).Round(0)))
	assert.True(t, result.TaxBenefit.Equal(d(50000)))
}

func TestSchemeProject_ExplicitCapAndRate(t *testing.T) {
	limit := d(60000)
	rate := d(8)
	result, err := newSchemes().Project(domain.GovernmentSchemeInput{
		Scheme:             domain.SchemePPF,
		AnnualContribution: d(100000),
		Years:              1,
		RatePercent:        &rate,
		ContributionCap:    &limit,
	})
	require.NoError(t, err)
	assert.True(t, result.Projection.MaturityValue.Equal(d(64800)))
}

func TestSchemeProject_UnknownScheme(t *testing.T) {
	_, err := newSchemes().Project(domain.GovernmentSchemeInput{Scheme: "ULIP", AnnualContribution: d(1), Years: 1})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = newSchemes().Accumulate(d(1000), d(8), 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidHorizon))
}
