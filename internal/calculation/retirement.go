package calculation

import (
	"math"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementPlanner sizes the corpus needed at retirement and the gap left by current savings
type RetirementPlanner struct {
	policy   domain.RetirementPolicy
	growth   *CompoundGrowthCalculator
	sip      *SIPProjector
	maxMoney float64
}

// NewRetirementPlanner creates a planner composed from the growth and SIP primitives
func NewRetirementPlanner(policy domain.RetirementPolicy, limits domain.LimitsPolicy, growth *CompoundGrowthCalculator, sip *SIPProjector) *RetirementPlanner {
	return &RetirementPlanner{policy: policy, growth: growth, sip: sip, maxMoney: maxMoneyFor(limits)}
}

// Plan projects savings and contributions to retirement and compares them with the
// inflated expense corpus
func (rp *RetirementPlanner) Plan(in domain.RetirementInput) (*domain.RetirementResult, error) {
	years := in.RetirementAge - in.CurrentAge
	if years < 1 {
		return nil, domain.NewInvalidHorizonError("retirement_age", "retirement age must be greater than current age")
	}

	projection, err := rp.corpusProjection(in, years)
	if err != nil {
		return nil, err
	}
	projected := projection.MaturityValue

	inflatedAnnual := toFloat(in.CurrentMonthlyExpenses) * 12 * math.Pow(1+fraction(in.InflationPercent), float64(years))
	required, err := roundMoney("required_corpus", inflatedAnnual*toFloat(rp.policy.RequiredCorpusMultiplier), rp.maxMoney)
	if err != nil {
		return nil, err
	}

	shortfall := maxDecimal(decimal.Zero, required.Sub(projected))
	periodic := decimal.Zero
	if shortfall.IsPositive() {
		periodic, err = rp.sip.RequiredMonthlyContribution(shortfall, in.ExpectedReturnPercent, years)
		if err != nil {
			return nil, err
		}
	}

	return &domain.RetirementResult{
		Shortfall: domain.ShortfallResult{
			RequiredCorpus:               required,
			ProjectedCorpus:              projected,
			Shortfall:                    shortfall,
			RequiredPeriodicContribution: periodic,
		},
		YearsToRetirement:  years,
		TotalContributions: projection.TotalContributed,
		Projection:         projection,
	}, nil
}

// corpusProjection sums the monthly-compounded savings and the SIP, year by year
func (rp *RetirementPlanner) corpusProjection(in domain.RetirementInput, years int) (domain.ProjectionResult, error) {
	savings, err := rp.growth.lumpSumProjection(in.CurrentSavings, in.ExpectedReturnPercent, years, domain.FrequencyMonthly)
	if err != nil {
		return domain.ProjectionResult{}, err
	}
	contributions, err := rp.sip.flatProjection(in.MonthlyContribution, in.ExpectedReturnPercent, years)
	if err != nil {
		return domain.ProjectionResult{}, err
	}
	return sumProjections(savings, contributions), nil
}
