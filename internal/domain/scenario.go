package domain

import (
	"github.com/shopspring/decimal"
)

// CalculatorKind tags which calculator a ScenarioInput is meant for
type CalculatorKind string

const (
	KindCompoundInterest CalculatorKind = "compound-interest"
	KindSIP              CalculatorKind = "sip"
	KindRetirement       CalculatorKind = "retirement"
	KindInsurance        CalculatorKind = "insurance"
	KindGovernmentScheme CalculatorKind = "government-scheme"
	KindInternational    CalculatorKind = "international"
	KindESG              CalculatorKind = "esg"
	KindCrypto           CalculatorKind = "crypto"
)

// AllKinds returns every supported calculator kind in display order
func AllKinds() []CalculatorKind {
	return []CalculatorKind{
		KindCompoundInterest,
		KindSIP,
		KindRetirement,
		KindInsurance,
		KindGovernmentScheme,
		KindInternational,
		KindESG,
		KindCrypto,
	}
}

// Frequency is the compounding frequency of a lump-sum projection
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// PeriodsPerYear returns n for the compounding formula, and false for an unknown frequency
func (f Frequency) PeriodsPerYear() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 12, true
	case FrequencyQuarterly:
		return 4, true
	case FrequencyAnnually:
		return 1, true
	default:
		return 0, false
	}
}

// ScenarioInput is a tagged variant: Kind selects which one of the variant pointers is set.
type ScenarioInput struct {
	Name string         `yaml:"name" json:"name" toml:"name"`
	Kind CalculatorKind `yaml:"kind" json:"kind" toml:"kind"`

	CompoundInterest *CompoundInterestInput `yaml:"compound_interest,omitempty" json:"compoundInterest,omitempty" toml:"compound_interest,omitempty"`
	SIP              *SIPInput              `yaml:"sip,omitempty" json:"sip,omitempty" toml:"sip,omitempty"`
	Retirement       *RetirementInput       `yaml:"retirement,omitempty" json:"retirement,omitempty" toml:"retirement,omitempty"`
	Insurance        *InsuranceInput        `yaml:"insurance,omitempty" json:"insurance,omitempty" toml:"insurance,omitempty"`
	GovernmentScheme *GovernmentSchemeInput `yaml:"government_scheme,omitempty" json:"governmentScheme,omitempty" toml:"government_scheme,omitempty"`
	International    *InternationalInput    `yaml:"international,omitempty" json:"international,omitempty" toml:"international,omitempty"`
	ESG              *ESGInput              `yaml:"esg,omitempty" json:"esg,omitempty" toml:"esg,omitempty"`
	Crypto           *CryptoInput           `yaml:"crypto,omitempty" json:"crypto,omitempty" toml:"crypto,omitempty"`
}

// CompoundInterestInput holds a lump-sum compounding scenario
type CompoundInterestInput struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent" toml:"annual_rate_percent"`
	Years             int             `yaml:"years" json:"years" toml:"years"`
	Frequency         Frequency       `yaml:"frequency" json:"frequency" toml:"frequency"`
}

// SIPInput holds a recurring monthly contribution scenario. A zero StepUpPercent is a flat SIP.
type SIPInput struct {
	MonthlyAmount     decimal.Decimal `yaml:"monthly_amount" json:"monthlyAmount" toml:"monthly_amount"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent" toml:"annual_rate_percent"`
	Years             int             `yaml:"years" json:"years" toml:"years"`
	StepUpPercent     decimal.Decimal `yaml:"step_up_percent,omitempty" json:"stepUpPercent,omitempty" toml:"step_up_percent,omitempty"`
}

// RetirementInput holds the inputs of the retirement corpus planner
type RetirementInput struct {
	CurrentAge             int             `yaml:"current_age" json:"currentAge" toml:"current_age"`
	RetirementAge          int             `yaml:"retirement_age" json:"retirementAge" toml:"retirement_age"`
	CurrentSavings         decimal.Decimal `yaml:"current_savings" json:"currentSavings" toml:"current_savings"`
	MonthlyContribution    decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution" toml:"monthly_contribution"`
	ExpectedReturnPercent  decimal.Decimal `yaml:"expected_return_percent" json:"expectedReturnPercent" toml:"expected_return_percent"`
	InflationPercent       decimal.Decimal `yaml:"inflation_percent" json:"inflationPercent" toml:"inflation_percent"`
	CurrentMonthlyExpenses decimal.Decimal `yaml:"current_monthly_expenses" json:"currentMonthlyExpenses" toml:"current_monthly_expenses"`
}

// CoverageKind identifies one insurance sizing rule
type CoverageKind string

const (
	CoverageLife            CoverageKind = "life"
	CoverageHealth          CoverageKind = "health"
	CoverageProperty        CoverageKind = "property"
	CoverageCriticalIllness CoverageKind = "critical-illness"
)

// AllCoverageKinds returns the four sizing rules in display order
func AllCoverageKinds() []CoverageKind {
	return []CoverageKind{CoverageLife, CoverageHealth, CoverageProperty, CoverageCriticalIllness}
}

// InsuranceInput holds the household profile used to size coverage.
// An empty Kinds list sizes all four coverage kinds. The default life rule's age
// factor reaches zero at 55, so older profiles must list Kinds without life.
type InsuranceInput struct {
	Age              int             `yaml:"age" json:"age" toml:"age"`
	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annualIncome" toml:"annual_income"`
	Dependents       int             `yaml:"dependents" json:"dependents" toml:"dependents"`
	Liabilities      decimal.Decimal `yaml:"liabilities" json:"liabilities" toml:"liabilities"`
	MonthlyLifestyle decimal.Decimal `yaml:"monthly_lifestyle" json:"monthlyLifestyle" toml:"monthly_lifestyle"`
	Kinds            []CoverageKind  `yaml:"kinds,omitempty" json:"kinds,omitempty" toml:"kinds,omitempty"`
}

// SchemeKind identifies a government tax-advantaged scheme
type SchemeKind string

const (
	SchemePPF SchemeKind = "PPF"
	SchemeEPF SchemeKind = "EPF"
	SchemeNPS SchemeKind = "NPS"
	SchemeSSY SchemeKind = "SSY"
)

// GovernmentSchemeInput holds one scheme projection. Nil RatePercent and
// ContributionCap fall back to the scheme's policy defaults.
type GovernmentSchemeInput struct {
	Scheme             SchemeKind       `yaml:"scheme" json:"scheme" toml:"scheme"`
	AnnualContribution decimal.Decimal  `yaml:"annual_contribution" json:"annualContribution" toml:"annual_contribution"`
	Years              int              `yaml:"years" json:"years" toml:"years"`
	RatePercent        *decimal.Decimal `yaml:"rate_percent,omitempty" json:"ratePercent,omitempty" toml:"rate_percent,omitempty"`
	ContributionCap    *decimal.Decimal `yaml:"contribution_cap,omitempty" json:"contributionCap,omitempty" toml:"contribution_cap,omitempty"`

	// EPF only, and required there: monthly basic salary driving the statutory employee/employer shares
	MonthlyBasicSalary decimal.Decimal `yaml:"monthly_basic_salary,omitempty" json:"monthlyBasicSalary,omitempty" toml:"monthly_basic_salary,omitempty"`
}

// InternationalInput holds a cross-currency lump-sum scenario.
// HomeToForeignRate is the number of foreign units one home unit buys.
type InternationalInput struct {
	AmountHome          decimal.Decimal `yaml:"amount_home" json:"amountHome" toml:"amount_home"`
	HomeToForeignRate   decimal.Decimal `yaml:"home_to_foreign_rate" json:"homeToForeignRate" toml:"home_to_foreign_rate"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annualReturnPercent" toml:"annual_return_percent"`
	Years               int             `yaml:"years" json:"years" toml:"years"`
	CurrencyRiskPercent decimal.Decimal `yaml:"currency_risk_percent" json:"currencyRiskPercent" toml:"currency_risk_percent"`
}

// ESGInput compares an ESG fund with a conventional fund over the same horizon
type ESGInput struct {
	InvestmentAmount          decimal.Decimal `yaml:"investment_amount" json:"investmentAmount" toml:"investment_amount"`
	MonthlyContribution       decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthlyContribution,omitempty" toml:"monthly_contribution,omitempty"`
	ESGReturnPercent          decimal.Decimal `yaml:"esg_return_percent" json:"esgReturnPercent" toml:"esg_return_percent"`
	ConventionalReturnPercent decimal.Decimal `yaml:"conventional_return_percent" json:"conventionalReturnPercent" toml:"conventional_return_percent"`
	Years                     int             `yaml:"years" json:"years" toml:"years"`
	CarbonFootprint           decimal.Decimal `yaml:"carbon_footprint,omitempty" json:"carbonFootprint,omitempty" toml:"carbon_footprint,omitempty"`
	ImpactScore               decimal.Decimal `yaml:"impact_score,omitempty" json:"impactScore,omitempty" toml:"impact_score,omitempty"`
}

// CryptoInput holds a lump-sum plus DCA crypto scenario. Prices are keyed by asset
// name and are only used to report units bought.
type CryptoInput struct {
	InvestmentAmount  decimal.Decimal            `yaml:"investment_amount" json:"investmentAmount" toml:"investment_amount"`
	MonthlyInvestment decimal.Decimal            `yaml:"monthly_investment,omitempty" json:"monthlyInvestment,omitempty" toml:"monthly_investment,omitempty"`
	Years             int                        `yaml:"years" json:"years" toml:"years"`
	Prices            map[string]decimal.Decimal `yaml:"prices,omitempty" json:"prices,omitempty" toml:"prices,omitempty"`
}

// Configuration is the top-level scenario file
type Configuration struct {
	Policy    Policy          `yaml:"policy" json:"policy" toml:"policy"`
	Scenarios []ScenarioInput `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (*ScenarioInput, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// Horizon returns the projection horizon in years for kinds that have one
func (s *ScenarioInput) Horizon() int {
	switch s.Kind {
	case KindCompoundInterest:
		if s.CompoundInterest != nil {
			return s.CompoundInterest.Years
		}
	case KindSIP:
		if s.SIP != nil {
			return s.SIP.Years
		}
	case KindRetirement:
		if s.Retirement != nil {
			return s.Retirement.RetirementAge - s.Retirement.CurrentAge
		}
	case KindGovernmentScheme:
		if s.GovernmentScheme != nil {
			return s.GovernmentScheme.Years
		}
	case KindInternational:
		if s.International != nil {
			return s.International.Years
		}
	case KindESG:
		if s.ESG != nil {
			return s.ESG.Years
		}
	case KindCrypto:
		if s.Crypto != nil {
			return s.Crypto.Years
		}
	}
	return 0
}

// DeepCopy returns a copy that shares no pointers, maps or slices with s
func (s *ScenarioInput) DeepCopy() *ScenarioInput {
	if s == nil {
		return nil
	}
	out := &ScenarioInput{Name: s.Name, Kind: s.Kind}
	if s.CompoundInterest != nil {
		v := *s.CompoundInterest
		out.CompoundInterest = &v
	}
	if s.SIP != nil {
		v := *s.SIP
		out.SIP = &v
	}
	if s.Retirement != nil {
		v := *s.Retirement
		out.Retirement = &v
	}
	if s.Insurance != nil {
		v := *s.Insurance
		v.Kinds = append([]CoverageKind(nil), s.Insurance.Kinds...)
		out.Insurance = &v
	}
	if s.GovernmentScheme != nil {
		v := *s.GovernmentScheme
		if s.GovernmentScheme.RatePercent != nil {
			r := *s.GovernmentScheme.RatePercent
			v.RatePercent = &r
		}
		if s.GovernmentScheme.ContributionCap != nil {
			c := *s.GovernmentScheme.ContributionCap
			v.ContributionCap = &c
		}
		out.GovernmentScheme = &v
	}
	if s.International != nil {
		v := *s.International
		out.International = &v
	}
	if s.ESG != nil {
		v := *s.ESG
		out.ESG = &v
	}
	if s.Crypto != nil {
		v := *s.Crypto
		if s.Crypto.Prices != nil {
			v.Prices = make(map[string]decimal.Decimal, len(s.Crypto.Prices))
			for k, p := range s.Crypto.Prices {
				v.Prices[k] = p
			}
		}
		out.Crypto = &v
	}
	return out
}
