package calculation

import (
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func newGrowth() *CompoundGrowthCalculator {
	return NewCompoundGrowthCalculator(domain.DefaultPolicy().Limits)
}

func TestFutureValue_KnownScenario(t *testing.T) {
	fv, err := newGrowth().FutureValue(d(100000), d(8), 10, domain.FrequencyAnnually)
	require.NoError(t, err)
	assert.True(t, fv.Equal(d(215892)), "Expected 215892, got %s", fv)
}

func TestFutureValue_ZeroRateReturnsPrincipal(t *testing.T) {
	calc := newGrowth()
	for _, freq := range []domain.Frequency{domain.FrequencyMonthly, domain.FrequencyQuarterly, domain.FrequencyAnnually} {
		for _, years := range []int{0, 1, 7, 40} {
			fv, err := calc.FutureValue(d(123456), decimal.Zero, years, freq)
			require.NoError(t, err)
			assert.True(t, fv.Equal(d(123456)), "freq=%s years=%d got %s", freq, years, fv)
		}
	}
}

func TestFutureValue_NeverBelowPrincipalAndMonotonic(t *testing.T) {
	calc := newGrowth()
	principals := []float64{0, 1, 999, 100000, 2500000}
	rates := []float64{0, 0.5, 4, 8, 12.5, 30}
	freqs := []domain.Frequency{domain.FrequencyMonthly, domain.FrequencyQuarterly, domain.FrequencyAnnually}

	for _, p := range principals {
		for _, r := range rates {
			for _, freq := range freqs {
				prev := decimal.Zero
				for years := 0; years <= 30; years++ {
					fv, err := calc.FutureValue(d(p), d(r), years, freq)
					require.NoError(t, err)
					assert.True(t, fv.GreaterThanOrEqual(d(p)), "FV below principal for P=%v r=%v t=%d", p, r, years)
					assert.True(t, fv.GreaterThanOrEqual(prev), "FV decreased for P=%v r=%v t=%d", p, r, years)
					prev = fv
				}
			}
		}
	}
}

func TestFutureValue_FrequencyOrdering(t *testing.T) {
	calc := newGrowth()
	annual, err := calc.FutureValue(d(100000), d(8), 10, domain.FrequencyAnnually)
	require.NoError(t, err)
	quarterly, err := calc.FutureValue(d(100000), d(8), 10, domain.FrequencyQuarterly)
	require.NoError(t, err)
	monthly, err := calc.FutureValue(d(100000), d(8), 10, domain.FrequencyMonthly)
	require.NoError(t, err)

	assert.True(t, quarterly.GreaterThan(annual))
	assert.True(t, monthly.GreaterThan(quarterly))
}

func TestFutureValue_Errors(t *testing.T) {
	calc := newGrowth()

	_, err := calc.FutureValue(d(-1), d(8), 10, domain.FrequencyAnnually)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = calc.FutureValue(d(1000), d(8), 10, domain.Frequency("weekly"))
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = calc.FutureValue(d(1000), d(1200), 10, domain.FrequencyAnnually)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange), "1200%% is a unit mistake and must not be clamped")

	_, err = calc.FutureValue(d(1000), d(8), -1, domain.FrequencyAnnually)
	assert.True(t, errors.Is(err, domain.ErrInvalidHorizon))

	_, err = calc.FutureValue(d(1e12), d(100), 60, domain.FrequencyAnnually)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange), "overflowing projections fail instead of truncating")
}

func TestEffectiveAnnualRate(t *testing.T) {
	calc := newGrowth()

	ear, err := calc.EffectiveAnnualRate(d(8), domain.FrequencyQuarterly)
	require.NoError(t, err)
	assert.Equal(t, "8.24", ear.StringFixed(2))

	ear, err = calc.EffectiveAnnualRate(d(8), domain.FrequencyAnnually)
	require.NoError(t, err)
	assert.Equal(t, "8.00", ear.StringFixed(2))

	ear, err = calc.EffectiveAnnualRate(decimal.Zero, domain.FrequencyMonthly)
	require.NoError(t, err)
	assert.True(t, ear.IsZero())
}

func TestYearlyBreakdown(t *testing.T) {
	rows, err := newGrowth().YearlyBreakdown(d(100000), d(8), domain.FrequencyAnnually, 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	assert.Equal(t, 1, rows[0].Period)
	assert.True(t, rows[0].TotalValue.Equal(d(108000)))
	assert.True(t, rows[0].InterestToDate.Equal(d(8000)))
	assert.True(t, rows[0].PeriodGrowth.Equal(d(8000)), "first year growth is FV(1) - FV(0)")
	assert.True(t, rows[1].PeriodGrowth.Equal(d(8640)))

	for i, row := range rows {
		assert.True(t, row.PrincipalToDate.Equal(d(100000)))
		assert.True(t, row.TotalValue.Equal(row.PrincipalToDate.Add(row.InterestToDate)), "row %d", i)
		if i > 0 {
			assert.True(t, row.TotalValue.Equal(rows[i-1].TotalValue.Add(row.PeriodGrowth)), "row %d", i)
		}
	}
	assert.True(t, rows[9].TotalValue.Equal(d(215892)))
}

func TestCompoundProject(t *testing.T) {
	result, err := newGrowth().Project(domain.CompoundInterestInput{
		Principal:         d(100000),
		AnnualRatePercent: d(8),
		Years:             10,
		Frequency:         domain.FrequencyAnnually,
	})
	require.NoError(t, err)

	p := result.Projection
	assert.True(t, p.MaturityValue.Equal(d(215892)))
	assert.True(t, p.TotalContributed.Equal(d(100000)))
	assert.True(t, p.TotalGrowth.Equal(d(115892)))
	assert.Nil(t, p.RiskBand)
	assert.Equal(t, "8.00", result.EffectiveAnnualRate.StringFixed(2))
}

func TestRoundMoneyHalfAwayFromZero(t *testing.T) {
	v, err := roundMoney("x", 2.5, defaultMaxMoney)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	v, err = roundMoney("x", -2.5, defaultMaxMoney)
	require.NoError(t, err)
	assert.Equal(t, "-3", v.String())

	v, err = roundMoney("x", 2.49, defaultMaxMoney)
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}
