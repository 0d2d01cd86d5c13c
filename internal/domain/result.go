package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodBreakdownRow is one year of a projection. TotalValue == PrincipalToDate + InterestToDate.
type PeriodBreakdownRow struct {
	Period          int             `json:"period"`
	PrincipalToDate decimal.Decimal `json:"principalToDate"`
	InterestToDate  decimal.Decimal `json:"interestToDate"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	PeriodGrowth    decimal.Decimal `json:"periodGrowth"`
}

// RiskBand is the best/worst case range of a maturity value under an adverse parameter
type RiskBand struct {
	Best  decimal.Decimal `json:"best"`
	Worst decimal.Decimal `json:"worst"`
}

// ProjectionResult is the common output of every growth calculator.
// MaturityValue == TotalContributed + TotalGrowth and equals the last row's TotalValue.
type ProjectionResult struct {
	TotalContributed decimal.Decimal      `json:"totalContributed"`
	TotalGrowth      decimal.Decimal      `json:"totalGrowth"`
	MaturityValue    decimal.Decimal      `json:"maturityValue"`
	Breakdown        []PeriodBreakdownRow `json:"breakdown"`
	RiskBand         *RiskBand            `json:"riskBand,omitempty"`
}

// FinalRow returns the last breakdown row, if any
func (p ProjectionResult) FinalRow() (PeriodBreakdownRow, bool) {
	if len(p.Breakdown) == 0 {
		return PeriodBreakdownRow{}, false
	}
	return p.Breakdown[len(p.Breakdown)-1], true
}

// GrowthMultiple returns MaturityValue / TotalContributed, or zero when nothing was contributed
func (p ProjectionResult) GrowthMultiple() decimal.Decimal {
	if p.TotalContributed.IsZero() {
		return decimal.Zero
	}
	return p.MaturityValue.Div(p.TotalContributed).Round(2)
}

// ShortfallResult sizes the gap between a required and a projected corpus.
// Shortfall == max(0, RequiredCorpus - ProjectedCorpus).
type ShortfallResult struct {
	RequiredCorpus               decimal.Decimal `json:"requiredCorpus"`
	ProjectedCorpus              decimal.Decimal `json:"projectedCorpus"`
	Shortfall                    decimal.Decimal `json:"shortfall"`
	RequiredPeriodicContribution decimal.Decimal `json:"requiredPeriodicContribution"`
}

// CoverageResult is the recommendation for one insurance coverage kind.
// Kind-specific fields are zero for the kinds they do not apply to.
type CoverageResult struct {
	Kind                     CoverageKind    `json:"kind"`
	RecommendedCoverage      decimal.Decimal `json:"recommendedCoverage"`
	EstimatedPeriodicPremium decimal.Decimal `json:"estimatedPeriodicPremium"`
	SupportingRatio          decimal.Decimal `json:"supportingRatio"`

	TermYears         int             `json:"termYears,omitempty"`
	FamilyCoverage    decimal.Decimal `json:"familyCoverage"`
	Deductible        decimal.Decimal `json:"deductible"`
	ContentsCoverage  decimal.Decimal `json:"contentsCoverage"`
	LiabilityCoverage decimal.Decimal `json:"liabilityCoverage"`
	WaitingPeriodDays int             `json:"waitingPeriodDays,omitempty"`
}

// CompoundInterestResult is the outcome of a lump-sum projection
type CompoundInterestResult struct {
	Projection          ProjectionResult `json:"projection"`
	EffectiveAnnualRate decimal.Decimal  `json:"effectiveAnnualRate"`
}

// SIPResult is the outcome of a flat or step-up SIP projection
type SIPResult struct {
	Projection    ProjectionResult `json:"projection"`
	StepUpPercent decimal.Decimal  `json:"stepUpPercent"`
}

// RetirementResult is the outcome of the retirement planner
type RetirementResult struct {
	Shortfall          ShortfallResult  `json:"shortfall"`
	YearsToRetirement  int              `json:"yearsToRetirement"`
	TotalContributions decimal.Decimal  `json:"totalContributions"`
	Projection         ProjectionResult `json:"projection"`
}

// InsuranceResult carries one recommendation per requested coverage kind
type InsuranceResult struct {
	Coverages []CoverageResult `json:"coverages"`
}

// TotalPremium sums the monthly premium estimates across all coverages
func (r InsuranceResult) TotalPremium() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Coverages {
		total = total.Add(c.EstimatedPeriodicPremium)
	}
	return total
}

// SchemeResult is the outcome of a government scheme projection
type SchemeResult struct {
	Scheme               SchemeKind       `json:"scheme"`
	RatePercent          decimal.Decimal  `json:"ratePercent"`
	Projection           ProjectionResult `json:"projection"`
	EmployeeContribution decimal.Decimal  `json:"employeeContribution"`
	EmployerContribution decimal.Decimal  `json:"employerContribution"`
	TaxBenefit           decimal.Decimal  `json:"taxBenefit"`
	AnnuityValue         decimal.Decimal  `json:"annuityValue"`
}

// InternationalResult is the outcome of a currency-risk adjusted projection.
// Projection carries the RiskBand.
type InternationalResult struct {
	Projection                ProjectionResult `json:"projection"`
	ForeignMaturityValue      decimal.Decimal  `json:"foreignMaturityValue"`
	BaseReturnPercent         decimal.Decimal  `json:"baseReturnPercent"`
	BestReturnPercent         decimal.Decimal  `json:"bestReturnPercent"`
	WorstReturnPercent        decimal.Decimal  `json:"worstReturnPercent"`
	RiskAdjustedReturnPercent decimal.Decimal  `json:"riskAdjustedReturnPercent"`
	HomeMarket                ProjectionResult `json:"homeMarket"`
	Blended                   ProjectionResult `json:"blended"`
}

// StreamSet maps a stream name to its projection; Order keeps display order stable
type StreamSet struct {
	Order   []string                    `json:"order"`
	Streams map[string]ProjectionResult `json:"streams"`
}

// NewStreamSet creates an empty StreamSet
func NewStreamSet() StreamSet {
	return StreamSet{Streams: make(map[string]ProjectionResult)}
}

// Add appends a named stream
func (s *StreamSet) Add(name string, p ProjectionResult) {
	if _, exists := s.Streams[name]; !exists {
		s.Order = append(s.Order, name)
	}
	s.Streams[name] = p
}

// Get returns a named stream
func (s StreamSet) Get(name string) (ProjectionResult, bool) {
	p, ok := s.Streams[name]
	return p, ok
}

// ImpactMetrics are the non-financial estimates reported alongside an ESG comparison
type ImpactMetrics struct {
	CarbonReductionTonnes decimal.Decimal `json:"carbonReductionTonnes"`
	TreesEquivalent       decimal.Decimal `json:"treesEquivalent"`
	RenewableEnergyMWh    decimal.Decimal `json:"renewableEnergyMwh"`
	WaterSavedLitres      decimal.Decimal `json:"waterSavedLitres"`
	JobsCreated           decimal.Decimal `json:"jobsCreated"`
	CommunityInvestment   decimal.Decimal `json:"communityInvestment"`
	EducationSupport      decimal.Decimal `json:"educationSupport"`
	HealthcareAccess      decimal.Decimal `json:"healthcareAccess"`
	BoardDiversity        decimal.Decimal `json:"boardDiversity"`
	EthicsScore           decimal.Decimal `json:"ethicsScore"`
	RiskManagement        decimal.Decimal `json:"riskManagement"`
}

// ESGResult compares ESG and conventional streams
type ESGResult struct {
	Streams                      StreamSet       `json:"streams"`
	PerformanceGapPercent        decimal.Decimal `json:"performanceGapPercent"`
	SustainabilityPremiumPercent decimal.Decimal `json:"sustainabilityPremiumPercent"`
	Impact                       ImpactMetrics   `json:"impact"`
}

// CryptoHolding describes one asset of the speculative allocation
type CryptoHolding struct {
	Asset                 string          `json:"asset"`
	AllocationWeight      decimal.Decimal `json:"allocationWeight"`
	ExpectedReturnPercent decimal.Decimal `json:"expectedReturnPercent"`
	Units                 decimal.Decimal `json:"units"`
	RiskScore             int             `json:"riskScore"`
}

// CryptoResult compares per-asset lump sums, a weighted allocation and a DCA stream
type CryptoResult struct {
	Streams            StreamSet       `json:"streams"`
	Holdings           []CryptoHolding `json:"holdings"`
	PortfolioRiskScore int             `json:"portfolioRiskScore"`
}

// CalculationOutcome is the engine's tagged result: exactly the pointer matching Kind is set.
type CalculationOutcome struct {
	ScenarioName string         `json:"scenarioName"`
	Kind         CalculatorKind `json:"kind"`

	CompoundInterest *CompoundInterestResult `json:"compoundInterest,omitempty"`
	SIP              *SIPResult              `json:"sip,omitempty"`
	Retirement       *RetirementResult       `json:"retirement,omitempty"`
	Insurance        *InsuranceResult        `json:"insurance,omitempty"`
	GovernmentScheme *SchemeResult           `json:"governmentScheme,omitempty"`
	International    *InternationalResult    `json:"international,omitempty"`
	ESG              *ESGResult              `json:"esg,omitempty"`
	Crypto           *CryptoResult           `json:"crypto,omitempty"`
}

// NamedProjection pairs a projection with the stream it came from
type NamedProjection struct {
	Name       string
	Projection ProjectionResult
}

// Projections lists every projection in the outcome, the primary one first.
// Insurance outcomes have none.
func (o *CalculationOutcome) Projections() []NamedProjection {
	if o == nil {
		return nil
	}
	switch {
	case o.CompoundInterest != nil:
		return []NamedProjection{{Name: "projection", Projection: o.CompoundInterest.Projection}}
	case o.SIP != nil:
		return []NamedProjection{{Name: "projection", Projection: o.SIP.Projection}}
	case o.Retirement != nil:
		return []NamedProjection{{Name: "corpus", Projection: o.Retirement.Projection}}
	case o.GovernmentScheme != nil:
		return []NamedProjection{{Name: string(o.GovernmentScheme.Scheme), Projection: o.GovernmentScheme.Projection}}
	case o.International != nil:
		return []NamedProjection{
			{Name: "international", Projection: o.International.Projection},
			{Name: "home-market", Projection: o.International.HomeMarket},
			{Name: "blended", Projection: o.International.Blended},
		}
	case o.ESG != nil:
		return streamProjections(o.ESG.Streams)
	case o.Crypto != nil:
		return streamProjections(o.Crypto.Streams)
	}
	return nil
}

// PrimaryProjection returns the headline projection of the outcome
func (o *CalculationOutcome) PrimaryProjection() (ProjectionResult, bool) {
	p := o.Projections()
	if len(p) == 0 {
		return ProjectionResult{}, false
	}
	return p[0].Projection, true
}

func streamProjections(s StreamSet) []NamedProjection {
	out := make([]NamedProjection, 0, len(s.Order))
	for _, name := range s.Order {
		out = append(out, NamedProjection{Name: name, Projection: s.Streams[name]})
	}
	return out
}

// ScenarioReport is what the report formatters render
type ScenarioReport struct {
	Outcomes    []*CalculationOutcome `json:"outcomes"`
	Assumptions []string              `json:"assumptions"`
}
