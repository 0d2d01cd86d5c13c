package calculation

import (
	"context"
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// CalculationEngine validates scenarios and dispatches them to the matching calculator
type CalculationEngine struct {
	Policy    domain.Policy
	Validator *ScenarioValidator

	Growth        *CompoundGrowthCalculator
	SIP           *SIPProjector
	Retirement    *RetirementPlanner
	Insurance     *InsuranceCoverageSizer
	Schemes       *GovernmentSchemeProjector
	International *InternationalRiskProjector
	Impact        *ImpactComparisonProjector
	Speculative   *SpeculativeAssetProjector

	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine with the default policy
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithPolicy(domain.DefaultPolicy())
}

// NewCalculationEngineWithPolicy creates a new calculation engine with configurable heuristics
func NewCalculationEngineWithPolicy(policy domain.Policy) *CalculationEngine {
	growth := NewCompoundGrowthCalculator(policy.Limits)
	sip := NewSIPProjector(policy.Limits)
	return &CalculationEngine{
		Policy:        policy,
		Validator:     NewScenarioValidator(policy),
		Growth:        growth,
		SIP:           sip,
		Retirement:    NewRetirementPlanner(policy.Retirement, policy.Limits, growth, sip),
		Insurance:     NewInsuranceCoverageSizer(policy.Insurance, policy.Limits),
		Schemes:       NewGovernmentSchemeProjector(policy.Schemes, policy.Limits, growth),
		International: NewInternationalRiskProjector(policy.International, policy.Limits, growth),
		Impact:        NewImpactComparisonProjector(policy.ESG, growth, sip),
		Speculative:   NewSpeculativeAssetProjector(policy.Crypto, growth, sip),
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run validates input and runs the calculator its Kind selects.
// It either returns a complete outcome or a typed error, never a partial result.
func (ce *CalculationEngine) Run(ctx context.Context, input domain.ScenarioInput) (*domain.CalculationOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scenario, err := ce.Validator.Validate(input)
	if err != nil {
		ce.Logger.Warnf("scenario %q rejected: %v", input.Name, err)
		return nil, err
	}
	if ce.Debug {
		ce.Logger.Debugf("running %s scenario %q (horizon %d years)", scenario.Kind, scenario.Name, scenario.Horizon())
	}

	outcome := &domain.CalculationOutcome{ScenarioName: scenario.Name, Kind: scenario.Kind}
	switch scenario.Kind {
	case domain.KindCompoundInterest:
		outcome.CompoundInterest, err = ce.Growth.Project(*scenario.CompoundInterest)
	case domain.KindSIP:
		outcome.SIP, err = ce.SIP.Project(*scenario.SIP)
	case domain.KindRetirement:
		outcome.Retirement, err = ce.Retirement.Plan(*scenario.Retirement)
	case domain.KindInsurance:
		outcome.Insurance, err = ce.Insurance.Size(*scenario.Insurance)
	case domain.KindGovernmentScheme:
		outcome.GovernmentScheme, err = ce.Schemes.Project(*scenario.GovernmentScheme)
	case domain.KindInternational:
		outcome.International, err = ce.International.Project(*scenario.International)
	case domain.KindESG:
		outcome.ESG, err = ce.Impact.Compare(*scenario.ESG)
	case domain.KindCrypto:
		outcome.Crypto, err = ce.Speculative.Project(*scenario.Crypto)
	default:
		err = domain.NewValidationError("kind", fmt.Sprintf("unknown calculator kind %q", scenario.Kind))
	}
	if err != nil {
		ce.Logger.Errorf("scenario %q failed: %v", scenario.Name, err)
		return nil, err
	}

	if ce.Debug {
		if p, ok := outcome.PrimaryProjection(); ok {
			ce.Logger.Debugf("scenario %q: contributed=%s growth=%s maturity=%s",
				scenario.Name, p.TotalContributed, p.TotalGrowth, p.MaturityValue)
		}
	}
	return outcome, nil
}

// RunScenarios runs every scenario of cfg in order and stops at the first failure
func (ce *CalculationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) ([]*domain.CalculationOutcome, error) {
	outcomes := make([]*domain.CalculationOutcome, 0, len(cfg.Scenarios))
	for i, s := range cfg.Scenarios {
		outcome, err := ce.Run(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, s.Name, err)
		}
		outcomes = append(outcomes, outcome)
	}
	ce.Logger.Infof("calculated %d scenarios", len(outcomes))
	return outcomes, nil
}

// RunScenarioByName runs the named scenario of cfg
func (ce *CalculationEngine) RunScenarioByName(ctx context.Context, cfg *domain.Configuration, name string) (*domain.CalculationOutcome, error) {
	s, ok := cfg.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("scenario %q not found", name)
	}
	return ce.Run(ctx, *s)
}
