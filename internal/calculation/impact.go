package calculation

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Stream names reported by the ESG comparison
const (
	StreamESG          = "esg"
	StreamConventional = "conventional"
)

var lakh = decimal.NewFromInt(100000)

// PerformanceGapPercent returns (a - b) / b * 100 rounded to two decimals
func PerformanceGapPercent(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, domain.NewOutOfRangeError("performance_gap", "", "reference value is zero")
	}
	return a.Sub(b).Div(b).Mul(decimal.NewFromInt(100)).Round(2), nil
}

// StreamGapPercent returns the performance gap between two named streams' maturity values
func StreamGapPercent(set domain.StreamSet, a, b string) (decimal.Decimal, error) {
	pa, ok := set.Get(a)
	if !ok {
		return decimal.Zero, domain.NewValidationError("stream", fmt.Sprintf("unknown stream %q", a))
	}
	pb, ok := set.Get(b)
	if !ok {
		return decimal.Zero, domain.NewValidationError("stream", fmt.Sprintf("unknown stream %q", b))
	}
	return PerformanceGapPercent(pa.MaturityValue, pb.MaturityValue)
}

// ImpactComparisonProjector compares an ESG fund with a conventional fund using only the
// lump-sum and SIP primitives
type ImpactComparisonProjector struct {
	policy domain.ESGPolicy
	growth *CompoundGrowthCalculator
	sip    *SIPProjector
}

// NewImpactComparisonProjector creates a projector for the given ESG policy
func NewImpactComparisonProjector(policy domain.ESGPolicy, growth *CompoundGrowthCalculator, sip *SIPProjector) *ImpactComparisonProjector {
	return &ImpactComparisonProjector{policy: policy, growth: growth, sip: sip}
}

// Compare projects both streams over the same horizon and estimates the impact metrics
func (ic *ImpactComparisonProjector) Compare(in domain.ESGInput) (*domain.ESGResult, error) {
	streams := domain.NewStreamSet()
	for _, s := range []struct {
		name string
		rate decimal.Decimal
	}{
		{StreamESG, in.ESGReturnPercent},
		{StreamConventional, in.ConventionalReturnPercent},
	} {
		p, err := contributionStream(ic.growth, ic.sip, in.InvestmentAmount, in.MonthlyContribution, s.rate, in.Years)
		if err != nil {
			return nil, err
		}
		streams.Add(s.name, p)
	}

	gap, err := StreamGapPercent(streams, StreamESG, StreamConventional)
	if err != nil {
		return nil, err
	}

	premium := decimal.Zero
	if !in.ConventionalReturnPercent.IsZero() {
		premium = in.ESGReturnPercent.Sub(in.ConventionalReturnPercent).
			Div(in.ConventionalReturnPercent).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &domain.ESGResult{
		Streams:                      streams,
		PerformanceGapPercent:        gap,
		SustainabilityPremiumPercent: premium,
		Impact:                       ic.impact(in),
	}, nil
}

// impact estimates the non-financial metrics from the invested lump sum
func (ic *ImpactComparisonProjector) impact(in domain.ESGInput) domain.ImpactMetrics {
	p := ic.policy
	lakhs := in.InvestmentAmount.Div(lakh)
	carbon := in.CarbonFootprint.Mul(lakhs).Mul(p.CarbonImprovementShare)
	score := in.ImpactScore
	hundred := decimal.NewFromInt(100)

	return domain.ImpactMetrics{
		CarbonReductionTonnes: carbon.Round(2),
		TreesEquivalent:       carbon.Mul(p.TreesPerTonne).Round(2),
		RenewableEnergyMWh:    carbon.Mul(p.RenewableMWhPerTonne).Round(2),
		WaterSavedLitres:      carbon.Mul(p.WaterLitresPerTonne).Round(0),
		JobsCreated:           lakhs.Mul(p.JobsPerLakh).Round(2),
		CommunityInvestment:   score.Mul(in.InvestmentAmount).Div(p.CommunityDivisor).Round(0),
		EducationSupport:      score.Mul(in.InvestmentAmount).Div(p.CommunityDivisor).Div(p.EducationDivisor).Round(0),
		HealthcareAccess:      score.Mul(in.InvestmentAmount).Div(p.CommunityDivisor).Div(p.HealthcareDivisor).Round(0),
		BoardDiversity:        minDecimal(score.Mul(p.BoardDiversityFactor), hundred).Round(2),
		EthicsScore:           minDecimal(score.Mul(p.EthicsFactor), hundred).Round(2),
		RiskManagement:        minDecimal(score.Mul(p.RiskManagementFactor), hundred).Round(2),
	}
}

// contributionStream is a lump sum compounded annually plus an optional monthly SIP at the same rate
func contributionStream(growth *CompoundGrowthCalculator, sip *SIPProjector, lumpSum, monthly, ratePercent decimal.Decimal, years int) (domain.ProjectionResult, error) {
	lump, err := growth.lumpSumProjection(lumpSum, ratePercent, years, domain.FrequencyAnnually)
	if err != nil {
		return domain.ProjectionResult{}, err
	}
	if monthly.IsZero() {
		return lump, nil
	}
	recurring, err := sip.flatProjection(monthly, ratePercent, years)
	if err != nil {
		return domain.ProjectionResult{}, err
	}
	return sumProjections(lump, recurring), nil
}
