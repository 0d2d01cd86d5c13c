package calculation

import (
	"fmt"
	"math"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// InsuranceCoverageSizer applies the named coverage heuristics of the insurance policy
type InsuranceCoverageSizer struct {
	policy   domain.InsurancePolicy
	maxMoney float64
}

// NewInsuranceCoverageSizer creates a sizer for the given policy
func NewInsuranceCoverageSizer(policy domain.InsurancePolicy, limits domain.LimitsPolicy) *InsuranceCoverageSizer {
	return &InsuranceCoverageSizer{policy: policy, maxMoney: maxMoneyFor(limits)}
}

// Size returns one recommendation per requested kind, all four when none are requested
func (s *InsuranceCoverageSizer) Size(in domain.InsuranceInput) (*domain.InsuranceResult, error) {
	kinds := in.Kinds
	if len(kinds) == 0 {
		kinds = domain.AllCoverageKinds()
	}

	result := &domain.InsuranceResult{Coverages: make([]domain.CoverageResult, 0, len(kinds))}
	for _, kind := range kinds {
		c, err := s.SizeKind(kind, in)
		if err != nil {
			return nil, err
		}
		result.Coverages = append(result.Coverages, c)
	}
	return result, nil
}

// SizeKind applies a single coverage rule
func (s *InsuranceCoverageSizer) SizeKind(kind domain.CoverageKind, in domain.InsuranceInput) (domain.CoverageResult, error) {
	income := toFloat(in.AnnualIncome)
	lifestyle := toFloat(in.MonthlyLifestyle)
	liabilities := toFloat(in.Liabilities)
	p := s.policy

	var (
		rule     domain.CoverageRule
		coverage float64
		premium  float64
		extra    domain.CoverageResult
	)

	switch kind {
	case domain.CoverageLife:
		rule = p.Life
		humanLifeValue := income * float64(p.IncomeReplacementAge-in.Age)
		dependents := float64(in.Dependents) * lifestyle * 12 * float64(p.DependentProtectionYears)
		coverage = math.Max(math.Max(humanLifeValue, dependents), liabilities*toFloat(p.LiabilityBuffer))
		coverage = math.Max(coverage, toFloat(rule.FloorAmount))
		extra.TermYears = max(0, min(p.IncomeReplacementAge-in.Age, p.MaxLifeTermYears))
	case domain.CoverageHealth:
		rule = p.Health
		base := math.Max(lifestyle*12*float64(p.HealthExpenseYears), toFloat(rule.FloorAmount))
		coverage = base * (1 + float64(in.Dependents)*toFloat(p.HealthDependentLoading))
		family, err := roundMoney("family_coverage", coverage, s.maxMoney)
		if err != nil {
			return domain.CoverageResult{}, err
		}
		deductible, err := roundMoney("deductible", math.Min(base*toFloat(p.HealthDeductibleShare), toFloat(p.HealthDeductibleCeiling)), s.maxMoney)
		if err != nil {
			return domain.CoverageResult{}, err
		}
		extra.FamilyCoverage = family
		extra.Deductible = deductible
	case domain.CoverageProperty:
		rule = p.Property
		coverage = math.Max(liabilities*toFloat(p.PropertyLiabilityShare), toFloat(rule.FloorAmount))
		contents := coverage * toFloat(p.ContentsShare)
		var err error
		if extra.ContentsCoverage, err = roundMoney("contents_coverage", contents, s.maxMoney); err != nil {
			return domain.CoverageResult{}, err
		}
		if extra.LiabilityCoverage, err = roundMoney("liability_coverage", coverage*toFloat(p.LiabilityRiderShare), s.maxMoney); err != nil {
			return domain.CoverageResult{}, err
		}
		premium = contents * toFloat(p.ContentsRate)
	case domain.CoverageCriticalIllness:
		rule = p.CriticalIllness
		coverage = math.Max(lifestyle*12*float64(p.CriticalIllnessExpenseYears), toFloat(rule.FloorAmount))
		extra.WaitingPeriodDays = p.WaitingPeriodDays
	default:
		return domain.CoverageResult{}, domain.NewValidationError("kinds", fmt.Sprintf("unknown coverage kind %q", kind))
	}

	ageFactor := 1 + float64(in.Age-rule.PivotAge)*toFloat(rule.AgeSlope)
	if ageFactor <= 0 {
		return domain.CoverageResult{}, domain.NewOutOfRangeError("age", fmt.Sprintf("%d", in.Age),
			fmt.Sprintf("outside the %s premium heuristic's age range; list the other kinds explicitly to size them", kind))
	}
	premium += coverage * toFloat(rule.BaseRate) * ageFactor

	recommended, err := roundMoney("recommended_coverage", coverage, s.maxMoney)
	if err != nil {
		return domain.CoverageResult{}, err
	}
	monthly, err := roundMoney("estimated_periodic_premium", premium/12, s.maxMoney)
	if err != nil {
		return domain.CoverageResult{}, err
	}
	ratio, err := roundPercent("supporting_ratio", s.supportingRatio(kind, coverage, income))
	if err != nil {
		return domain.CoverageResult{}, err
	}

	extra.Kind = kind
	extra.RecommendedCoverage = recommended
	extra.EstimatedPeriodicPremium = monthly
	extra.SupportingRatio = ratio
	return extra, nil
}

// supportingRatio is the income-replacement ratio for life cover and coverage/income otherwise
func (s *InsuranceCoverageSizer) supportingRatio(kind domain.CoverageKind, coverage, income float64) float64 {
	if income == 0 {
		return 0
	}
	if kind == domain.CoverageLife {
		return coverage / (income * float64(s.policy.ReplacementRatioYears)) * 100
	}
	return coverage / income * 100
}
