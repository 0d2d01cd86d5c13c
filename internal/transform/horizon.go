package transform

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// ExtendHorizon lengthens (or, with negative Years, shortens) the projection horizon.
// Retirement scenarios move the retirement age.
type ExtendHorizon struct {
	Years int
}

func (eh *ExtendHorizon) Name() string {
	return "extend_horizon"
}

func (eh *ExtendHorizon) Description() string {
	if eh.Years < 0 {
		return fmt.Sprintf("Shorten the horizon by %d years", -eh.Years)
	}
	return fmt.Sprintf("Extend the horizon by %d years", eh.Years)
}

func (eh *ExtendHorizon) Validate(base *domain.ScenarioInput) error {
	if err := requireVariant(eh.Name(), base); err != nil {
		return err
	}
	if base.Kind == domain.KindInsurance {
		return notApplicable(eh.Name(), base.Kind)
	}
	if h := base.Horizon() + eh.Years; h < 1 {
		return NewTransformError(eh.Name(), "validate", fmt.Sprintf("resulting horizon %d is below one year", h), nil)
	}
	return nil
}

func (eh *ExtendHorizon) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	switch modified.Kind {
	case domain.KindCompoundInterest:
		modified.CompoundInterest.Years += eh.Years
	case domain.KindSIP:
		modified.SIP.Years += eh.Years
	case domain.KindRetirement:
		modified.Retirement.RetirementAge += eh.Years
	case domain.KindGovernmentScheme:
		modified.GovernmentScheme.Years += eh.Years
	case domain.KindInternational:
		modified.International.Years += eh.Years
	case domain.KindESG:
		modified.ESG.Years += eh.Years
	case domain.KindCrypto:
		modified.Crypto.Years += eh.Years
	default:
		return nil, notApplicable(eh.Name(), modified.Kind)
	}
	return modified, nil
}

// PostponeRetirement delays the retirement age by a number of years.
// This is useful for exploring "work a few more years" scenarios.
type PostponeRetirement struct {
	Years int
}

func (pr *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pr *PostponeRetirement) Description() string {
	return fmt.Sprintf("Postpone retirement by %d years", pr.Years)
}

func (pr *PostponeRetirement) Validate(base *domain.ScenarioInput) error {
	if pr.Years < 0 {
		return NewTransformError(pr.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", pr.Years), nil)
	}
	if err := requireVariant(pr.Name(), base); err != nil {
		return err
	}
	if base.Kind != domain.KindRetirement {
		return notApplicable(pr.Name(), base.Kind)
	}
	return nil
}

func (pr *PostponeRetirement) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	modified.Retirement.RetirementAge += pr.Years
	return modified, nil
}
