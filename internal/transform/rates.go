package transform

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustRate shifts the expected return of a scenario by DeltaPercent percentage points.
// ESG scenarios shift both funds so the comparison stays like for like.
type AdjustRate struct {
	DeltaPercent decimal.Decimal
	// Schemes supplies the default rate of government schemes without an explicit one.
	// Nil uses the default policy.
	Schemes *domain.SchemePolicy
}

func (ar *AdjustRate) Name() string {
	return "adjust_rate"
}

func (ar *AdjustRate) Description() string {
	sign := ""
	if ar.DeltaPercent.IsPositive() {
		sign = "+"
	}
	return fmt.Sprintf("Adjust expected return by %s%s percentage points", sign, ar.DeltaPercent.String())
}

func (ar *AdjustRate) Validate(base *domain.ScenarioInput) error {
	if err := requireVariant(ar.Name(), base); err != nil {
		return err
	}
	switch base.Kind {
	case domain.KindInsurance, domain.KindCrypto:
		return notApplicable(ar.Name(), base.Kind)
	case domain.KindGovernmentScheme:
		if _, ok := ar.schemes().Defaults(base.GovernmentScheme.Scheme); !ok && base.GovernmentScheme.RatePercent == nil {
			return NewTransformError(ar.Name(), "validate", fmt.Sprintf("unknown scheme %q", base.GovernmentScheme.Scheme), nil)
		}
	}
	return nil
}

func (ar *AdjustRate) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	d := ar.DeltaPercent

	switch modified.Kind {
	case domain.KindCompoundInterest:
		modified.CompoundInterest.AnnualRatePercent = modified.CompoundInterest.AnnualRatePercent.Add(d)
	case domain.KindSIP:
		modified.SIP.AnnualRatePercent = modified.SIP.AnnualRatePercent.Add(d)
	case domain.KindRetirement:
		modified.Retirement.ExpectedReturnPercent = modified.Retirement.ExpectedReturnPercent.Add(d)
	case domain.KindGovernmentScheme:
		in := modified.GovernmentScheme
		rate := decimal.Zero
		if in.RatePercent != nil {
			rate = *in.RatePercent
		} else if defaults, ok := ar.schemes().Defaults(in.Scheme); ok {
			rate = defaults.RatePercent
		}
		rate = rate.Add(d)
		in.RatePercent = &rate
	case domain.KindInternational:
		modified.International.AnnualReturnPercent = modified.International.AnnualReturnPercent.Add(d)
	case domain.KindESG:
		modified.ESG.ESGReturnPercent = modified.ESG.ESGReturnPercent.Add(d)
		modified.ESG.ConventionalReturnPercent = modified.ESG.ConventionalReturnPercent.Add(d)
	default:
		return nil, notApplicable(ar.Name(), modified.Kind)
	}
	return modified, nil
}

func (ar *AdjustRate) schemes() domain.SchemePolicy {
	if ar.Schemes != nil {
		return *ar.Schemes
	}
	return domain.DefaultPolicy().Schemes
}

// SetStepUp sets the annual step-up of a SIP scenario
type SetStepUp struct {
	Percent decimal.Decimal
}

func (ss *SetStepUp) Name() string {
	return "set_step_up"
}

func (ss *SetStepUp) Description() string {
	return fmt.Sprintf("Increase SIP contributions by %s%% every year", ss.Percent.String())
}

func (ss *SetStepUp) Validate(base *domain.ScenarioInput) error {
	if ss.Percent.IsNegative() {
		return NewTransformError(ss.Name(), "validate", fmt.Sprintf("step-up must be non-negative, got %s", ss.Percent), nil)
	}
	if err := requireVariant(ss.Name(), base); err != nil {
		return err
	}
	if base.Kind != domain.KindSIP {
		return notApplicable(ss.Name(), base.Kind)
	}
	return nil
}

func (ss *SetStepUp) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	modified.SIP.StepUpPercent = ss.Percent
	return modified, nil
}

// SetCurrencyRisk replaces the currency risk of an international scenario
type SetCurrencyRisk struct {
	Percent decimal.Decimal
}

func (sc *SetCurrencyRisk) Name() string {
	return "set_currency_risk"
}

func (sc *SetCurrencyRisk) Description() string {
	return fmt.Sprintf("Assume %s%% currency risk", sc.Percent.String())
}

func (sc *SetCurrencyRisk) Validate(base *domain.ScenarioInput) error {
	if sc.Percent.IsNegative() || sc.Percent.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("currency risk must be in [0, 100), got %s", sc.Percent), nil)
	}
	if err := requireVariant(sc.Name(), base); err != nil {
		return err
	}
	if base.Kind != domain.KindInternational {
		return notApplicable(sc.Name(), base.Kind)
	}
	return nil
}

func (sc *SetCurrencyRisk) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	modified.International.CurrencyRiskPercent = sc.Percent
	return modified, nil
}

// SetFrequency changes the compounding frequency of a lump-sum scenario
type SetFrequency struct {
	Frequency domain.Frequency
}

func (sf *SetFrequency) Name() string {
	return "set_frequency"
}

func (sf *SetFrequency) Description() string {
	return fmt.Sprintf("Compound %s", sf.Frequency)
}

func (sf *SetFrequency) Validate(base *domain.ScenarioInput) error {
	if _, ok := sf.Frequency.PeriodsPerYear(); !ok {
		return NewTransformError(sf.Name(), "validate", fmt.Sprintf("unknown frequency %q", sf.Frequency), nil)
	}
	if err := requireVariant(sf.Name(), base); err != nil {
		return err
	}
	if base.Kind != domain.KindCompoundInterest {
		return notApplicable(sf.Name(), base.Kind)
	}
	return nil
}

func (sf *SetFrequency) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	modified.CompoundInterest.Frequency = sf.Frequency
	return modified, nil
}
