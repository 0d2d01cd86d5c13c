package calculation

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// GovernmentSchemeProjector projects PPF, EPF, NPS and SSY accounts with annual compounding
type GovernmentSchemeProjector struct {
	policy   domain.SchemePolicy
	growth   *CompoundGrowthCalculator
	maxMoney float64
}

// NewGovernmentSchemeProjector creates a projector for the given scheme policy
func NewGovernmentSchemeProjector(policy domain.SchemePolicy, limits domain.LimitsPolicy, growth *CompoundGrowthCalculator) *GovernmentSchemeProjector {
	return &GovernmentSchemeProjector{policy: policy, growth: growth, maxMoney: maxMoneyFor(limits)}
}

// Project resolves scheme defaults, applies the contribution cap and compounds each yearly deposit
func (gp *GovernmentSchemeProjector) Project(in domain.GovernmentSchemeInput) (*domain.SchemeResult, error) {
	defaults, ok := gp.policy.Defaults(in.Scheme)
	if !ok {
		return nil, domain.NewValidationError("scheme", fmt.Sprintf("unknown scheme %q", in.Scheme))
	}
	rate := defaults.RatePercent
	if in.RatePercent != nil {
		rate = *in.RatePercent
	}
	contributionCap := defaults.ContributionCap
	if in.ContributionCap != nil {
		contributionCap = in.ContributionCap
	}

	employee := in.AnnualContribution
	if contributionCap != nil {
		employee = minDecimal(employee, *contributionCap)
	}
	employer := decimal.Zero

	if in.Scheme == domain.SchemeEPF {
		if !in.MonthlyBasicSalary.IsPositive() {
			return nil, domain.NewValidationError("monthly_basic_salary", "is required for EPF, it sets the employer contribution")
		}
		annualBasic := in.MonthlyBasicSalary.Mul(decimal.NewFromInt(12))
		employee = minDecimal(employee, annualBasic.Mul(gp.policy.EPFEmployeeShare)).Round(0)
		employer = minDecimal(
			annualBasic.Mul(gp.policy.EPFEmployerShare),
			gp.policy.StatutoryWageCeiling.Mul(gp.policy.EPFEmployerShare),
		).Round(0)
	}

	projection, err := gp.Accumulate(employee.Add(employer), rate, in.Years)
	if err != nil {
		return nil, err
	}

	result := &domain.SchemeResult{
		Scheme:               in.Scheme,
		RatePercent:          rate,
		Projection:           projection,
		EmployeeContribution: employee,
		EmployerContribution: employer,
		TaxBenefit:           minDecimal(employee, gp.policy.SectionCap),
	}
	if in.Scheme == domain.SchemeNPS {
		result.AnnuityValue = projection.MaturityValue.Mul(gp.policy.NPSAnnuityShare).Round(0)
	}
	return result, nil
}

// Accumulate deposits annualContribution at the start of every year and compounds each
// deposit to the end of each year with FutureValue
func (gp *GovernmentSchemeProjector) Accumulate(annualContribution, ratePercent decimal.Decimal, years int) (domain.ProjectionResult, error) {
	if years < 1 {
		return domain.ProjectionResult{}, domain.NewInvalidHorizonError("years", fmt.Sprintf("must be at least 1 year, got %d", years))
	}
	deposit, err := roundMoney("annual_contribution", toFloat(annualContribution), gp.maxMoney)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	// value of one deposit after n years; every year-end total reuses the same table
	grown := make([]decimal.Decimal, years+1)
	for n := 1; n <= years; n++ {
		if grown[n], err = gp.growth.FutureValue(annualContribution, ratePercent, n, domain.FrequencyAnnually); err != nil {
			return domain.ProjectionResult{}, err
		}
	}

	contributed := make([]decimal.Decimal, years)
	totals := make([]decimal.Decimal, years)
	for y := 1; y <= years; y++ {
		total := decimal.Zero
		for k := 0; k < y; k++ {
			total = total.Add(grown[y-k])
		}
		contributed[y-1] = deposit.Mul(decimal.NewFromInt(int64(y)))
		totals[y-1] = total
	}
	return buildProjection(contributed, totals), nil
}
