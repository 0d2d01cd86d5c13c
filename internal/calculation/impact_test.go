package calculation

import (
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImpact() *ImpactComparisonProjector {
	return NewImpactComparisonProjector(domain.DefaultPolicy().ESG, newGrowth(), newSIP())
}

func newSpeculative() *SpeculativeAssetProjector {
	return NewSpeculativeAssetProjector(domain.DefaultPolicy().Crypto, newGrowth(), newSIP())
}

func TestPerformanceGapPercent(t *testing.T) {
	gap, err := PerformanceGapPercent(d(110), d(100))
	require.NoError(t, err)
	assert.Equal(t, "10.00", gap.StringFixed(2))

	gap, err = PerformanceGapPercent(d(90), d(120))
	require.NoError(t, err)
	assert.Equal(t, "-25.00", gap.StringFixed(2))

	_, err = PerformanceGapPercent(d(1), decimal.Zero)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
}

func TestESGCompare(t *testing.T) {
	result, err := newImpact().Compare(domain.ESGInput{
		InvestmentAmount:          d(100000),
		ESGReturnPercent:          d(12),
		ConventionalReturnPercent: d(10),
		Years:                     10,
		CarbonFootprint:           d(10),
		ImpactScore:               d(80),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{StreamESG, StreamConventional}, result.Streams.Order)
	esg, _ := result.Streams.Get(StreamESG)
	conventional, _ := result.Streams.Get(StreamConventional)

	// both streams come straight from the lump-sum primitive
	direct, err := newGrowth().FutureValue(d(100000), d(12), 10, domain.FrequencyAnnually)
	require.NoError(t, err)
	assert.True(t, esg.MaturityValue.Equal(direct))
	assert.True(t, conventional.MaturityValue.Equal(d(259374)))

	expectedGap, err := PerformanceGapPercent(esg.MaturityValue, conventional.MaturityValue)
	require.NoError(t, err)
	assert.True(t, result.PerformanceGapPercent.Equal(expectedGap))
	assert.True(t, result.PerformanceGapPercent.IsPositive())
	assert.Equal(t, "20.00", result.SustainabilityPremiumPercent.StringFixed(2))

	impact := result.Impact
	assert.Equal(t, "3.00", impact.CarbonReductionTonnes.StringFixed(2))
	assert.Equal(t, "0.15", impact.TreesEquivalent.StringFixed(2))
	assert.Equal(t, "2.40", impact.RenewableEnergyMWh.StringFixed(2))
	assert.True(t, impact.WaterSavedLitres.Equal(d(3000)))
	assert.Equal(t, "0.50", impact.JobsCreated.StringFixed(2))
	assert.True(t, impact.CommunityInvestment.Equal(d(8000)))
	assert.True(t, impact.EducationSupport.Equal(d(80)))
	assert.True(t, impact.HealthcareAccess.Equal(d(40)))
	assert.Equal(t, "96.00", impact.BoardDiversity.StringFixed(2))
	assert.Equal(t, "72.00", impact.EthicsScore.StringFixed(2))
	assert.Equal(t, "88.00", impact.RiskManagement.StringFixed(2))
}

func TestESGCompare_WithMonthlyContribution(t *testing.T) {
	result, err := newImpact().Compare(domain.ESGInput{
		InvestmentAmount:          d(100000),
		MonthlyContribution:       d(5000),
		ESGReturnPercent:          d(12),
		ConventionalReturnPercent: d(12),
		Years:                     10,
	})
	require.NoError(t, err)

	esg, _ := result.Streams.Get(StreamESG)
	assert.True(t, esg.TotalContributed.Equal(d(700000)))
	assert.True(t, esg.MaturityValue.Equal(d(310585+1161695)), "got %s", esg.MaturityValue)
	assert.True(t, result.PerformanceGapPercent.IsZero())
}

func TestStreamGapPercent_UnknownStream(t *testing.T) {
	set := domain.NewStreamSet()
	set.Add("a", domain.ProjectionResult{MaturityValue: d(1)})
	_, err := StreamGapPercent(set, "a", "b")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCryptoProject(t *testing.T) {
	result, err := newSpeculative().Project(domain.CryptoInput{
		InvestmentAmount:  d(100000),
		MonthlyInvestment: d(5000),
		Years:             5,
		Prices: map[string]decimal.Decimal{
			"bitcoin":  d(5000000),
			"ethereum": d(250000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bitcoin", "ethereum", StreamPortfolio, StreamDCA}, result.Streams.Order)

	btc, _ := result.Streams.Get("bitcoin")
	eth, _ := result.Streams.Get("ethereum")
	portfolio, _ := result.Streams.Get(StreamPortfolio)
	dca, _ := result.Streams.Get(StreamDCA)

	assert.True(t, btc.MaturityValue.Equal(d(248832)), "100000 x 1.2^5, got %s", btc.MaturityValue)
	assert.True(t, eth.MaturityValue.Equal(d(305176)), "100000 x 1.25^5, got %s", eth.MaturityValue)

	// 60/40 slices compounded separately
	slice60, err := newGrowth().FutureValue(d(60000), d(20), 5, domain.FrequencyAnnually)
	require.NoError(t, err)
	slice40, err := newGrowth().FutureValue(d(40000), d(25), 5, domain.FrequencyAnnually)
	require.NoError(t, err)
	assert.True(t, portfolio.MaturityValue.Equal(slice60.Add(slice40)))
	assert.True(t, portfolio.TotalContributed.Equal(d(100000)))

	// DCA uses the SIP primitive at 24% a year
	sipValue, err := newSIP().FutureValueOfRecurringContribution(d(5000), d(24), 5)
	require.NoError(t, err)
	assert.True(t, dca.MaturityValue.Equal(sipValue))
	assert.True(t, dca.TotalContributed.Equal(d(300000)))

	require.Len(t, result.Holdings, 2)
	assert.Equal(t, "0.02", result.Holdings[0].Units.StringFixed(2))
	assert.Equal(t, 85, result.Holdings[0].RiskScore)
	assert.Equal(t, "0.4", result.Holdings[1].Units.String())
	assert.Equal(t, 75, result.PortfolioRiskScore)

	gap, err := StreamGapPercent(result.Streams, "ethereum", "bitcoin")
	require.NoError(t, err)
	assert.True(t, gap.IsPositive())
}

func TestCryptoProject_NoDCAWithoutMonthlyInvestment(t *testing.T) {
	result, err := newSpeculative().Project(domain.CryptoInput{InvestmentAmount: d(10000), Years: 3})
	require.NoError(t, err)

	_, ok := result.Streams.Get(StreamDCA)
	assert.False(t, ok)
	for _, h := range result.Holdings {
		assert.True(t, h.Units.IsZero(), "no price, no units")
	}
}
