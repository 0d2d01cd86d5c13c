package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

// sampleScenarios returns one valid scenario per calculator kind
func sampleScenarios() []domain.ScenarioInput {
	return []domain.ScenarioInput{
		{
			Name: "lump-sum",
			Kind: domain.KindCompoundInterest,
			CompoundInterest: &domain.CompoundInterestInput{
				Principal: d(100000), AnnualRatePercent: d(8), Years: 10, Frequency: domain.FrequencyAnnually,
			},
		},
		{
			Name: "sip",
			Kind: domain.KindSIP,
			SIP:  &domain.SIPInput{MonthlyAmount: d(5000), AnnualRatePercent: d(12), Years: 10, StepUpPercent: d(10)},
		},
		{
			Name: "retirement",
			Kind: domain.KindRetirement,
			Retirement: &domain.RetirementInput{
				CurrentAge: 30, RetirementAge: 60, CurrentSavings: d(500000), MonthlyContribution: d(10000),
				ExpectedReturnPercent: d(12), InflationPercent: d(6), CurrentMonthlyExpenses: d(50000),
			},
		},
		{
			Name: "insurance",
			Kind: domain.KindInsurance,
			Insurance: &domain.InsuranceInput{
				Age: 35, AnnualIncome: d(1200000), Dependents: 2, Liabilities: d(5000000), MonthlyLifestyle: d(75000),
			},
		},
		{
			Name: "epf",
			Kind: domain.KindGovernmentScheme,
			GovernmentScheme: &domain.GovernmentSchemeInput{
				Scheme: domain.SchemeEPF, AnnualContribution: d(100000), Years: 20, MonthlyBasicSalary: d(50000),
				RatePercent: decimalPtr(d(8.25)),
			},
		},
		{
			Name: "international",
			Kind: domain.KindInternational,
			International: &domain.InternationalInput{
				AmountHome: d(500000), HomeToForeignRate: d(83), AnnualReturnPercent: d(12), Years: 10, CurrencyRiskPercent: d(5),
			},
		},
		{
			Name: "esg",
			Kind: domain.KindESG,
			ESG: &domain.ESGInput{
				InvestmentAmount: d(100000), MonthlyContribution: d(2000), ESGReturnPercent: d(12),
				ConventionalReturnPercent: d(10), Years: 10, CarbonFootprint: d(10), ImpactScore: d(80),
			},
		},
		{
			Name: "crypto",
			Kind: domain.KindCrypto,
			Crypto: &domain.CryptoInput{
				InvestmentAmount: d(100000), MonthlyInvestment: d(5000), Years: 5,
				Prices: map[string]decimal.Decimal{"bitcoin": d(5000000), "ethereum": d(250000)},
			},
		},
	}
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Validator, "Should initialize validator")
	assert.NotNil(t, engine.Growth, "Should initialize growth calculator")
	assert.NotNil(t, engine.SIP, "Should initialize SIP projector")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	// Test setting a custom logger
	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// Test setting nil logger (should use no-op logger)
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_RunEveryKind(t *testing.T) {
	engine := NewCalculationEngine()

	for _, s := range sampleScenarios() {
		t.Run(s.Name, func(t *testing.T) {
			outcome, err := engine.Run(context.Background(), s)
			require.NoError(t, err)
			assert.Equal(t, s.Name, outcome.ScenarioName)
			assert.Equal(t, s.Kind, outcome.Kind)

			for _, np := range outcome.Projections() {
				assertProjectionInvariants(t, np.Name, np.Projection)
			}
		})
	}
}

func TestCalculationEngine_Idempotent(t *testing.T) {
	engine := NewCalculationEngine()

	for _, s := range sampleScenarios() {
		first, err := engine.Run(context.Background(), s)
		require.NoError(t, err)
		second, err := engine.Run(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, first, second, "scenario %s should be deterministic", s.Name)
	}
}

func TestCalculationEngine_RunReturnsTypedErrors(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	input := compoundScenario(func(in *domain.CompoundInterestInput) { in.AnnualRatePercent = d(1200) })
	outcome, err := engine.Run(context.Background(), input)

	assert.Nil(t, outcome, "no partial results")
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	assert.NotEmpty(t, logger.messages, "rejections are logged")
}

func TestCalculationEngine_RunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := &domain.Configuration{Policy: domain.DefaultPolicy(), Scenarios: sampleScenarios()}

	outcomes, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, outcomes, len(cfg.Scenarios))

	cfg.Scenarios = append(cfg.Scenarios, compoundScenario(func(in *domain.CompoundInterestInput) { in.Years = 0 }))
	outcomes, err = engine.RunScenarios(context.Background(), cfg)
	assert.Nil(t, outcomes)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidHorizon))
	assert.Contains(t, err.Error(), "scenario 8")
}

func TestCalculationEngine_RunScenarioByName(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := &domain.Configuration{Scenarios: sampleScenarios()}

	outcome, err := engine.RunScenarioByName(context.Background(), cfg, "sip")
	require.NoError(t, err)
	require.NotNil(t, outcome.SIP)

	_, err = engine.RunScenarioByName(context.Background(), cfg, "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCalculationEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCalculationEngine().Run(ctx, sampleScenarios()[0])
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_PolicyOverride(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Retirement.RequiredCorpusMultiplier = decimal.NewFromInt(30)
	engine := NewCalculationEngineWithPolicy(policy)

	base, err := NewCalculationEngine().Run(context.Background(), sampleScenarios()[2])
	require.NoError(t, err)
	custom, err := engine.Run(context.Background(), sampleScenarios()[2])
	require.NoError(t, err)

	assert.True(t, custom.Retirement.Shortfall.RequiredCorpus.GreaterThan(base.Retirement.Shortfall.RequiredCorpus))
}

func assertProjectionInvariants(t *testing.T, name string, p domain.ProjectionResult) {
	t.Helper()
	assert.True(t, p.MaturityValue.Equal(p.TotalContributed.Add(p.TotalGrowth)),
		"%s: maturity %s != contributed %s + growth %s", name, p.MaturityValue, p.TotalContributed, p.TotalGrowth)

	require.NotEmpty(t, p.Breakdown, name)
	last := p.Breakdown[len(p.Breakdown)-1]
	assert.True(t, p.MaturityValue.Equal(last.TotalValue), "%s: maturity must equal final row", name)

	for i, row := range p.Breakdown {
		assert.Equal(t, i+1, row.Period)
		assert.True(t, row.TotalValue.Equal(row.PrincipalToDate.Add(row.InterestToDate)), "%s row %d", name, i)
		if i > 0 {
			assert.True(t, row.TotalValue.GreaterThanOrEqual(p.Breakdown[i-1].TotalValue), "%s row %d decreased", name, i)
		}
	}
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
