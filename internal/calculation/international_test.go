package calculation

import (
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInternational() *InternationalRiskProjector {
	policy := domain.DefaultPolicy()
	return NewInternationalRiskProjector(policy.International, policy.Limits, newGrowth())
}

func TestInternationalProject_RiskBandOrdering(t *testing.T) {
	result, err := newInternational().Project(domain.InternationalInput{
		AmountHome:          d(500000),
		HomeToForeignRate:   d(83),
		AnnualReturnPercent: d(12),
		Years:               10,
		CurrencyRiskPercent: d(5),
	})
	require.NoError(t, err)

	p := result.Projection
	require.NotNil(t, p.RiskBand)
	assert.True(t, p.RiskBand.Best.GreaterThan(p.MaturityValue), "weaker home currency improves the converted value")
	assert.True(t, p.MaturityValue.GreaterThan(p.RiskBand.Worst), "stronger home currency reduces it")

	assert.True(t, p.MaturityValue.Equal(d(1552924)), "got %s", p.MaturityValue)
	assert.True(t, p.RiskBand.Best.Equal(d(1634657)), "got %s", p.RiskBand.Best)
	assert.True(t, p.RiskBand.Worst.Equal(d(1478975)), "got %s", p.RiskBand.Worst)
	assert.InDelta(t, 128892701, result.ForeignMaturityValue.InexactFloat64(), 2)

	assert.True(t, p.TotalContributed.Equal(d(500000)))
	assert.True(t, p.MaturityValue.Equal(p.TotalContributed.Add(p.TotalGrowth)))

	assert.Equal(t, "210.58", result.BaseReturnPercent.StringFixed(2))
	assert.True(t, result.RiskAdjustedReturnPercent.Equal(result.BaseReturnPercent.Sub(d(2.5))))
	assert.True(t, result.BestReturnPercent.GreaterThan(result.WorstReturnPercent))

	assert.True(t, result.HomeMarket.MaturityValue.Equal(d(1296871)), "home market at 10%%, got %s", result.HomeMarket.MaturityValue)
	assert.True(t, result.Blended.MaturityValue.GreaterThan(result.HomeMarket.MaturityValue))
	assert.True(t, result.Blended.MaturityValue.LessThan(p.MaturityValue))
}

func TestInternationalProject_ZeroRiskCollapsesBand(t *testing.T) {
	result, err := newInternational().Project(domain.InternationalInput{
		AmountHome:          d(100000),
		HomeToForeignRate:   d(0.012),
		AnnualReturnPercent: d(8),
		Years:               10,
		CurrencyRiskPercent: decimal.Zero,
	})
	require.NoError(t, err)

	p := result.Projection
	assert.True(t, p.RiskBand.Best.Equal(p.MaturityValue))
	assert.True(t, p.RiskBand.Worst.Equal(p.MaturityValue))
	assert.True(t, p.MaturityValue.Equal(d(215892)), "the exchange rate cancels out when unchanged")
}

func TestInternationalProject_InvalidInputs(t *testing.T) {
	_, err := newInternational().Project(domain.InternationalInput{
		AmountHome: d(1000), HomeToForeignRate: decimal.Zero, Years: 1,
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = newInternational().Project(domain.InternationalInput{
		AmountHome: d(1000), HomeToForeignRate: d(83), Years: 1, CurrencyRiskPercent: d(100),
	})
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
}
