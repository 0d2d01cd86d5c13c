package domain

import (
	"github.com/shopspring/decimal"
)

// Policy holds every heuristic constant the calculators use. The defaults are
// domain policy choices rather than derived values; scenario files may override them.
type Policy struct {
	Retirement    RetirementPolicy    `yaml:"retirement" json:"retirement" toml:"retirement"`
	Insurance     InsurancePolicy     `yaml:"insurance" json:"insurance" toml:"insurance"`
	Schemes       SchemePolicy        `yaml:"schemes" json:"schemes" toml:"schemes"`
	International InternationalPolicy `yaml:"international" json:"international" toml:"international"`
	ESG           ESGPolicy           `yaml:"esg" json:"esg" toml:"esg"`
	Crypto        CryptoPolicy        `yaml:"crypto" json:"crypto" toml:"crypto"`
	Limits        LimitsPolicy        `yaml:"limits" json:"limits" toml:"limits"`
}

// RetirementPolicy configures the retirement planner
type RetirementPolicy struct {
	// RequiredCorpusMultiplier is the sustainable-withdrawal multiple of inflated annual expenses
	RequiredCorpusMultiplier decimal.Decimal `yaml:"required_corpus_multiplier" json:"requiredCorpusMultiplier" toml:"required_corpus_multiplier"`
}

// CoverageRule configures one insurance sizing heuristic.
// Premium = coverage x BaseRate x (1 + (age - PivotAge) x AgeSlope) / 12.
type CoverageRule struct {
	FloorAmount decimal.Decimal `yaml:"floor_amount" json:"floorAmount" toml:"floor_amount"`
	BaseRate    decimal.Decimal `yaml:"base_rate" json:"baseRate" toml:"base_rate"`
	PivotAge    int             `yaml:"pivot_age" json:"pivotAge" toml:"pivot_age"`
	AgeSlope    decimal.Decimal `yaml:"age_slope" json:"ageSlope" toml:"age_slope"`
}

// InsurancePolicy configures the four coverage sizing rules
type InsurancePolicy struct {
	Life            CoverageRule `yaml:"life" json:"life" toml:"life"`
	Health          CoverageRule `yaml:"health" json:"health" toml:"health"`
	Property        CoverageRule `yaml:"property" json:"property" toml:"property"`
	CriticalIllness CoverageRule `yaml:"critical_illness" json:"criticalIllness" toml:"critical_illness"`

	IncomeReplacementAge     int             `yaml:"income_replacement_age" json:"incomeReplacementAge" toml:"income_replacement_age"`
	DependentProtectionYears int             `yaml:"dependent_protection_years" json:"dependentProtectionYears" toml:"dependent_protection_years"`
	LiabilityBuffer          decimal.Decimal `yaml:"liability_buffer" json:"liabilityBuffer" toml:"liability_buffer"`
	MaxLifeTermYears         int             `yaml:"max_life_term_years" json:"maxLifeTermYears" toml:"max_life_term_years"`
	ReplacementRatioYears    int             `yaml:"replacement_ratio_years" json:"replacementRatioYears" toml:"replacement_ratio_years"`

	HealthExpenseYears      int             `yaml:"health_expense_years" json:"healthExpenseYears" toml:"health_expense_years"`
	HealthDependentLoading  decimal.Decimal `yaml:"health_dependent_loading" json:"healthDependentLoading" toml:"health_dependent_loading"`
	HealthDeductibleShare   decimal.Decimal `yaml:"health_deductible_share" json:"healthDeductibleShare" toml:"health_deductible_share"`
	HealthDeductibleCeiling decimal.Decimal `yaml:"health_deductible_ceiling" json:"healthDeductibleCeiling" toml:"health_deductible_ceiling"`

	PropertyLiabilityShare decimal.Decimal `yaml:"property_liability_share" json:"propertyLiabilityShare" toml:"property_liability_share"`
	ContentsShare          decimal.Decimal `yaml:"contents_share" json:"contentsShare" toml:"contents_share"`
	LiabilityRiderShare    decimal.Decimal `yaml:"liability_rider_share" json:"liabilityRiderShare" toml:"liability_rider_share"`
	ContentsRate           decimal.Decimal `yaml:"contents_rate" json:"contentsRate" toml:"contents_rate"`

	CriticalIllnessExpenseYears int `yaml:"critical_illness_expense_years" json:"criticalIllnessExpenseYears" toml:"critical_illness_expense_years"`
	WaitingPeriodDays           int `yaml:"waiting_period_days" json:"waitingPeriodDays" toml:"waiting_period_days"`
}

// SchemeDefaults configures one government scheme. A nil ContributionCap means uncapped.
type SchemeDefaults struct {
	RatePercent     decimal.Decimal  `yaml:"rate_percent" json:"ratePercent" toml:"rate_percent"`
	ContributionCap *decimal.Decimal `yaml:"contribution_cap,omitempty" json:"contributionCap,omitempty" toml:"contribution_cap,omitempty"`
}

// SchemePolicy configures the government scheme projector
type SchemePolicy struct {
	PPF SchemeDefaults `yaml:"ppf" json:"ppf" toml:"ppf"`
	EPF SchemeDefaults `yaml:"epf" json:"epf" toml:"epf"`
	NPS SchemeDefaults `yaml:"nps" json:"nps" toml:"nps"`
	SSY SchemeDefaults `yaml:"ssy" json:"ssy" toml:"ssy"`

	SectionCap           decimal.Decimal `yaml:"section_cap" json:"sectionCap" toml:"section_cap"`
	EPFEmployeeShare     decimal.Decimal `yaml:"epf_employee_share" json:"epfEmployeeShare" toml:"epf_employee_share"`
	EPFEmployerShare     decimal.Decimal `yaml:"epf_employer_share" json:"epfEmployerShare" toml:"epf_employer_share"`
	StatutoryWageCeiling decimal.Decimal `yaml:"statutory_wage_ceiling" json:"statutoryWageCeiling" toml:"statutory_wage_ceiling"`
	NPSAnnuityShare      decimal.Decimal `yaml:"nps_annuity_share" json:"npsAnnuityShare" toml:"nps_annuity_share"`
}

// Defaults returns the configured defaults for a scheme
func (p SchemePolicy) Defaults(kind SchemeKind) (SchemeDefaults, bool) {
	switch kind {
	case SchemePPF:
		return p.PPF, true
	case SchemeEPF:
		return p.EPF, true
	case SchemeNPS:
		return p.NPS, true
	case SchemeSSY:
		return p.SSY, true
	default:
		return SchemeDefaults{}, false
	}
}

// InternationalPolicy configures the comparison streams of the international projector
type InternationalPolicy struct {
	HomeMarketReturnPercent decimal.Decimal `yaml:"home_market_return_percent" json:"homeMarketReturnPercent" toml:"home_market_return_percent"`
	BlendedHomeWeight       decimal.Decimal `yaml:"blended_home_weight" json:"blendedHomeWeight" toml:"blended_home_weight"`
}

// ESGPolicy holds the per-lakh impact coefficients used for the ESG impact estimate
type ESGPolicy struct {
	CarbonImprovementShare decimal.Decimal `yaml:"carbon_improvement_share" json:"carbonImprovementShare" toml:"carbon_improvement_share"`
	TreesPerTonne          decimal.Decimal `yaml:"trees_per_tonne" json:"treesPerTonne" toml:"trees_per_tonne"`
	RenewableMWhPerTonne   decimal.Decimal `yaml:"renewable_mwh_per_tonne" json:"renewableMwhPerTonne" toml:"renewable_mwh_per_tonne"`
	WaterLitresPerTonne    decimal.Decimal `yaml:"water_litres_per_tonne" json:"waterLitresPerTonne" toml:"water_litres_per_tonne"`
	JobsPerLakh            decimal.Decimal `yaml:"jobs_per_lakh" json:"jobsPerLakh" toml:"jobs_per_lakh"`
	CommunityDivisor       decimal.Decimal `yaml:"community_divisor" json:"communityDivisor" toml:"community_divisor"`
	EducationDivisor       decimal.Decimal `yaml:"education_divisor" json:"educationDivisor" toml:"education_divisor"`
	HealthcareDivisor      decimal.Decimal `yaml:"healthcare_divisor" json:"healthcareDivisor" toml:"healthcare_divisor"`
	BoardDiversityFactor   decimal.Decimal `yaml:"board_diversity_factor" json:"boardDiversityFactor" toml:"board_diversity_factor"`
	EthicsFactor           decimal.Decimal `yaml:"ethics_factor" json:"ethicsFactor" toml:"ethics_factor"`
	RiskManagementFactor   decimal.Decimal `yaml:"risk_management_factor" json:"riskManagementFactor" toml:"risk_management_factor"`
}

// CryptoAssetPolicy configures one speculative asset
type CryptoAssetPolicy struct {
	Name                  string          `yaml:"name" json:"name" toml:"name"`
	ExpectedReturnPercent decimal.Decimal `yaml:"expected_return_percent" json:"expectedReturnPercent" toml:"expected_return_percent"`
	AllocationWeight      decimal.Decimal `yaml:"allocation_weight" json:"allocationWeight" toml:"allocation_weight"`
	RiskScore             int             `yaml:"risk_score" json:"riskScore" toml:"risk_score"`
}

// CryptoPolicy configures the speculative asset projector
type CryptoPolicy struct {
	Assets               []CryptoAssetPolicy `yaml:"assets" json:"assets" toml:"assets"`
	DCAAnnualRatePercent decimal.Decimal     `yaml:"dca_annual_rate_percent" json:"dcaAnnualRatePercent" toml:"dca_annual_rate_percent"`
	PortfolioRiskScore   int                 `yaml:"portfolio_risk_score" json:"portfolioRiskScore" toml:"portfolio_risk_score"`
}

// LimitsPolicy bounds inputs so unit mistakes fail instead of producing absurd numbers
type LimitsPolicy struct {
	MaxHorizonYears int             `yaml:"max_horizon_years" json:"maxHorizonYears" toml:"max_horizon_years"`
	MaxMoney        decimal.Decimal `yaml:"max_money" json:"maxMoney" toml:"max_money"`
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// DefaultPolicy returns the documented default heuristics
func DefaultPolicy() Policy {
	return Policy{
		Retirement: RetirementPolicy{
			RequiredCorpusMultiplier: dec("25"),
		},
		Insurance: InsurancePolicy{
			Life:            CoverageRule{FloorAmount: decimal.Zero, BaseRate: dec("0.004"), PivotAge: 35, AgeSlope: dec("-0.05")},
			Health:          CoverageRule{FloorAmount: dec("500000"), BaseRate: dec("0.06"), PivotAge: 30, AgeSlope: dec("0.02")},
			Property:        CoverageRule{FloorAmount: dec("2500000"), BaseRate: dec("0.001"), PivotAge: 0, AgeSlope: decimal.Zero},
			CriticalIllness: CoverageRule{FloorAmount: dec("1000000"), BaseRate: dec("0.02"), PivotAge: 60, AgeSlope: dec("-0.01")},

			IncomeReplacementAge:     60,
			DependentProtectionYears: 20,
			LiabilityBuffer:          dec("1.1"),
			MaxLifeTermYears:         30,
			ReplacementRatioYears:    20,

			HealthExpenseYears:      5,
			HealthDependentLoading:  dec("0.3"),
			HealthDeductibleShare:   dec("0.1"),
			HealthDeductibleCeiling: dec("50000"),

			PropertyLiabilityShare: dec("0.5"),
			ContentsShare:          dec("0.2"),
			LiabilityRiderShare:    dec("0.5"),
			ContentsRate:           dec("0.002"),

			CriticalIllnessExpenseYears: 2,
			WaitingPeriodDays:           90,
		},
		Schemes: SchemePolicy{
			PPF: SchemeDefaults{RatePercent: dec("7.1"), ContributionCap: decPtr("150000")},
			EPF: SchemeDefaults{RatePercent: dec("8.15")},
			NPS: SchemeDefaults{RatePercent: dec("10.5")},
			SSY: SchemeDefaults{RatePercent: dec("8.0"), ContributionCap: decPtr("150000")},

			SectionCap:           dec("150000"),
			EPFEmployeeShare:     dec("0.12"),
			EPFEmployerShare:     dec("0.0367"),
			StatutoryWageCeiling: dec("1500000"),
			NPSAnnuityShare:      dec("0.6"),
		},
		International: InternationalPolicy{
			HomeMarketReturnPercent: dec("10"),
			BlendedHomeWeight:       dec("0.5"),
		},
		ESG: ESGPolicy{
			CarbonImprovementShare: dec("0.3"),
			TreesPerTonne:          dec("0.05"),
			RenewableMWhPerTonne:   dec("0.8"),
			WaterLitresPerTonne:    dec("1000"),
			JobsPerLakh:            dec("0.5"),
			CommunityDivisor:       dec("1000"),
			EducationDivisor:       dec("100"),
			HealthcareDivisor:      dec("200"),
			BoardDiversityFactor:   dec("1.2"),
			EthicsFactor:           dec("0.9"),
			RiskManagementFactor:   dec("1.1"),
		},
		Crypto: CryptoPolicy{
			Assets: []CryptoAssetPolicy{
				{Name: "bitcoin", ExpectedReturnPercent: dec("20"), AllocationWeight: dec("0.6"), RiskScore: 85},
				{Name: "ethereum", ExpectedReturnPercent: dec("25"), AllocationWeight: dec("0.4"), RiskScore: 90},
			},
			DCAAnnualRatePercent: dec("24"),
			PortfolioRiskScore:   75,
		},
		Limits: LimitsPolicy{
			MaxHorizonYears: 100,
			MaxMoney:        dec("1000000000000000"),
		},
	}
}
