package calculation

import (
	"fmt"
	"math"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	percentFloor   = decimal.NewFromInt(-100)
	percentCeiling = decimal.NewFromInt(100)
)

// ScenarioValidator checks and normalizes scenario inputs before any calculator runs.
// It never clamps: anything outside the accepted domain is reported as a typed error.
type ScenarioValidator struct {
	policy domain.Policy
}

// NewScenarioValidator creates a validator bound to the given policy
func NewScenarioValidator(policy domain.Policy) *ScenarioValidator {
	return &ScenarioValidator{policy: policy}
}

// Validate returns a normalized copy of input or the first typed error found
func (v *ScenarioValidator) Validate(input domain.ScenarioInput) (domain.ScenarioInput, error) {
	out := input.DeepCopy()
	out.Name = strings.TrimSpace(out.Name)
	out.Kind = domain.CalculatorKind(strings.ToLower(strings.TrimSpace(string(out.Kind))))

	if err := v.checkVariant(out); err != nil {
		return domain.ScenarioInput{}, err
	}

	var err error
	switch out.Kind {
	case domain.KindCompoundInterest:
		err = v.validateCompound(out.CompoundInterest)
	case domain.KindSIP:
		err = v.validateSIP(out.SIP)
	case domain.KindRetirement:
		err = v.validateRetirement(out.Retirement)
	case domain.KindInsurance:
		err = v.validateInsurance(out.Insurance)
	case domain.KindGovernmentScheme:
		err = v.validateScheme(out.GovernmentScheme)
	case domain.KindInternational:
		err = v.validateInternational(out.International)
	case domain.KindESG:
		err = v.validateESG(out.ESG)
	case domain.KindCrypto:
		err = v.validateCrypto(out.Crypto)
	}
	if err != nil {
		return domain.ScenarioInput{}, err
	}
	return *out, nil
}

// checkVariant enforces that exactly the variant named by Kind is populated
func (v *ScenarioValidator) checkVariant(in *domain.ScenarioInput) error {
	set := map[domain.CalculatorKind]bool{
		domain.KindCompoundInterest: in.CompoundInterest != nil,
		domain.KindSIP:              in.SIP != nil,
		domain.KindRetirement:       in.Retirement != nil,
		domain.KindInsurance:        in.Insurance != nil,
		domain.KindGovernmentScheme: in.GovernmentScheme != nil,
		domain.KindInternational:    in.International != nil,
		domain.KindESG:              in.ESG != nil,
		domain.KindCrypto:           in.Crypto != nil,
	}

	present, known := set[in.Kind]
	if in.Kind == "" {
		return domain.NewValidationError("kind", "must be set")
	}
	if !known {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown calculator kind %q", in.Kind))
	}
	if !present {
		return domain.NewValidationError("kind", fmt.Sprintf("%s scenario is missing its %s parameters", in.Kind, in.Kind))
	}
	for _, kind := range domain.AllKinds() {
		if set[kind] && kind != in.Kind {
			return domain.NewValidationError("kind", fmt.Sprintf("%s scenario must not carry %s parameters", in.Kind, kind))
		}
	}
	return nil
}

func (v *ScenarioValidator) validateCompound(in *domain.CompoundInterestInput) error {
	if err := checkMoney("principal", in.Principal); err != nil {
		return err
	}
	if err := checkPercent("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return err
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	in.Frequency = domain.Frequency(strings.ToLower(strings.TrimSpace(string(in.Frequency))))
	n, ok := in.Frequency.PeriodsPerYear()
	if !ok {
		if in.Frequency == "" {
			return domain.NewValidationError("frequency", "must be one of monthly, quarterly, annually")
		}
		return domain.NewValidationError("frequency", fmt.Sprintf("unknown frequency %q", in.Frequency))
	}
	return v.checkGrowth("annual_rate_percent", in.AnnualRatePercent, n, in.Years)
}

func (v *ScenarioValidator) validateSIP(in *domain.SIPInput) error {
	if err := checkMoney("monthly_amount", in.MonthlyAmount); err != nil {
		return err
	}
	if err := checkPercent("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return err
	}
	if err := checkPercent("step_up_percent", in.StepUpPercent); err != nil {
		return err
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	if err := v.checkGrowth("annual_rate_percent", in.AnnualRatePercent, 12, in.Years); err != nil {
		return err
	}
	return v.checkGrowth("step_up_percent", in.StepUpPercent, 1, in.Years)
}

func (v *ScenarioValidator) validateRetirement(in *domain.RetirementInput) error {
	if in.CurrentAge < 0 {
		return domain.NewValidationError("current_age", "must not be negative")
	}
	if in.RetirementAge <= in.CurrentAge {
		return domain.NewInvalidHorizonError("retirement_age",
			fmt.Sprintf("retirement age %d must be greater than current age %d", in.RetirementAge, in.CurrentAge))
	}
	if err := v.checkHorizon("retirement_age", in.RetirementAge-in.CurrentAge); err != nil {
		return err
	}
	for _, f := range []namedValue{
		{"current_savings", in.CurrentSavings},
		{"monthly_contribution", in.MonthlyContribution},
		{"current_monthly_expenses", in.CurrentMonthlyExpenses},
	} {
		if err := checkMoney(f.field, f.value); err != nil {
			return err
		}
	}
	if err := checkPercent("expected_return_percent", in.ExpectedReturnPercent); err != nil {
		return err
	}
	if err := checkPercent("inflation_percent", in.InflationPercent); err != nil {
		return err
	}
	years := in.RetirementAge - in.CurrentAge
	if err := v.checkGrowth("expected_return_percent", in.ExpectedReturnPercent, 12, years); err != nil {
		return err
	}
	return v.checkGrowth("inflation_percent", in.InflationPercent, 1, years)
}

func (v *ScenarioValidator) validateInsurance(in *domain.InsuranceInput) error {
	if in.Age < 0 || in.Age > 120 {
		return domain.NewValidationError("age", fmt.Sprintf("age %d is not a plausible age", in.Age))
	}
	if in.Dependents < 0 {
		return domain.NewValidationError("dependents", "must not be negative")
	}
	if err := checkMoney("annual_income", in.AnnualIncome); err != nil {
		return err
	}
	if err := checkMoney("liabilities", in.Liabilities); err != nil {
		return err
	}
	if err := checkMoney("monthly_lifestyle", in.MonthlyLifestyle); err != nil {
		return err
	}
	for i, k := range in.Kinds {
		k = domain.CoverageKind(strings.ToLower(strings.TrimSpace(string(k))))
		in.Kinds[i] = k
		switch k {
		case domain.CoverageLife, domain.CoverageHealth, domain.CoverageProperty, domain.CoverageCriticalIllness:
		default:
			return domain.NewValidationError("kinds", fmt.Sprintf("unknown coverage kind %q", k))
		}
	}
	return nil
}

func (v *ScenarioValidator) validateScheme(in *domain.GovernmentSchemeInput) error {
	in.Scheme = domain.SchemeKind(strings.ToUpper(strings.TrimSpace(string(in.Scheme))))
	defaults, ok := v.policy.Schemes.Defaults(in.Scheme)
	if !ok {
		return domain.NewValidationError("scheme", fmt.Sprintf("unknown scheme %q", in.Scheme))
	}
	if err := checkMoney("annual_contribution", in.AnnualContribution); err != nil {
		return err
	}
	if err := checkMoney("monthly_basic_salary", in.MonthlyBasicSalary); err != nil {
		return err
	}
	if in.Scheme == domain.SchemeEPF && !in.MonthlyBasicSalary.IsPositive() {
		return domain.NewValidationError("monthly_basic_salary", "is required for EPF, it sets the employer contribution")
	}
	if in.ContributionCap != nil {
		if err := checkMoney("contribution_cap", *in.ContributionCap); err != nil {
			return err
		}
	}
	rate := defaults.RatePercent
	if in.RatePercent != nil {
		rate = *in.RatePercent
	}
	if err := checkPercent("rate_percent", rate); err != nil {
		return err
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	return v.checkGrowth("rate_percent", rate, 1, in.Years)
}

func (v *ScenarioValidator) validateInternational(in *domain.InternationalInput) error {
	if err := checkMoney("amount_home", in.AmountHome); err != nil {
		return err
	}
	if !in.HomeToForeignRate.IsPositive() {
		return domain.NewValidationError("home_to_foreign_rate", "must be greater than zero")
	}
	if err := checkPercent("annual_return_percent", in.AnnualReturnPercent); err != nil {
		return err
	}
	if in.CurrencyRiskPercent.IsNegative() {
		return domain.NewValidationError("currency_risk_percent", "must not be negative")
	}
	if in.CurrencyRiskPercent.GreaterThanOrEqual(percentCeiling) {
		return domain.NewOutOfRangeError("currency_risk_percent", in.CurrencyRiskPercent.String(), "must be below 100")
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	return v.checkGrowth("annual_return_percent", in.AnnualReturnPercent, 1, in.Years)
}

func (v *ScenarioValidator) validateESG(in *domain.ESGInput) error {
	if err := checkMoney("investment_amount", in.InvestmentAmount); err != nil {
		return err
	}
	if err := checkMoney("monthly_contribution", in.MonthlyContribution); err != nil {
		return err
	}
	if in.InvestmentAmount.IsZero() && in.MonthlyContribution.IsZero() {
		return domain.NewValidationError("investment_amount", "either a lump sum or a monthly contribution is required")
	}
	if err := checkMoney("carbon_footprint", in.CarbonFootprint); err != nil {
		return err
	}
	if in.ImpactScore.IsNegative() || in.ImpactScore.GreaterThan(percentCeiling) {
		return domain.NewValidationError("impact_score", "must be between 0 and 100")
	}
	rates := []namedValue{
		{"esg_return_percent", in.ESGReturnPercent},
		{"conventional_return_percent", in.ConventionalReturnPercent},
	}
	for _, r := range rates {
		if err := checkPercent(r.field, r.value); err != nil {
			return err
		}
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	for _, r := range rates {
		if err := v.checkGrowth(r.field, r.value, 12, in.Years); err != nil {
			return err
		}
	}
	return nil
}

func (v *ScenarioValidator) validateCrypto(in *domain.CryptoInput) error {
	if err := checkMoney("investment_amount", in.InvestmentAmount); err != nil {
		return err
	}
	if err := checkMoney("monthly_investment", in.MonthlyInvestment); err != nil {
		return err
	}
	if in.InvestmentAmount.IsZero() && in.MonthlyInvestment.IsZero() {
		return domain.NewValidationError("investment_amount", "either a lump sum or a monthly investment is required")
	}
	if len(in.Prices) > 0 {
		normalized := make(map[string]decimal.Decimal, len(in.Prices))
		for asset, price := range in.Prices {
			if err := checkMoney("prices."+asset, price); err != nil {
				return err
			}
			normalized[strings.ToLower(strings.TrimSpace(asset))] = price
		}
		in.Prices = normalized
	}
	if err := v.checkHorizon("years", in.Years); err != nil {
		return err
	}
	for _, a := range v.policy.Crypto.Assets {
		if err := v.checkGrowth("policy.crypto."+a.Name, a.ExpectedReturnPercent, 1, in.Years); err != nil {
			return err
		}
	}
	return v.checkGrowth("policy.crypto.dca_annual_rate_percent", v.policy.Crypto.DCAAnnualRatePercent, 12, in.Years)
}

type namedValue struct {
	field string
	value decimal.Decimal
}

func checkMoney(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return domain.NewValidationError(field, fmt.Sprintf("must not be negative, got %s", d.String()))
	}
	return nil
}

func checkPercent(field string, d decimal.Decimal) error {
	if d.LessThan(percentFloor) || d.GreaterThan(percentCeiling) {
		return domain.NewOutOfRangeError(field, d.String(), "percent must be within [-100, 100]")
	}
	return nil
}

func (v *ScenarioValidator) checkHorizon(field string, years int) error {
	if years < 1 {
		return domain.NewInvalidHorizonError(field, fmt.Sprintf("must be at least 1 year, got %d", years))
	}
	if limit := v.policy.Limits.MaxHorizonYears; limit > 0 && years > limit {
		return domain.NewOutOfRangeError(field, fmt.Sprintf("%d", years), fmt.Sprintf("horizon exceeds %d years", limit))
	}
	return nil
}

// checkGrowth rejects rates whose growth factor over the horizon is not representable
func (v *ScenarioValidator) checkGrowth(field string, ratePct decimal.Decimal, periodsPerYear, years int) error {
	factor := compoundFactor(toFloat(ratePct), periodsPerYear, years)
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor > v.maxMoney() {
		return domain.NewOutOfRangeError(field, ratePct.String(),
			fmt.Sprintf("growth over %d years is not representable", years))
	}
	return nil
}

func (v *ScenarioValidator) maxMoney() float64 {
	return maxMoneyFor(v.policy.Limits)
}

func maxMoneyFor(limits domain.LimitsPolicy) float64 {
	if limits.MaxMoney.IsPositive() {
		return limits.MaxMoney.InexactFloat64()
	}
	return defaultMaxMoney
}
