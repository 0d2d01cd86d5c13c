package transform

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ScaleContribution multiplies every amount the investor puts in by Factor.
// Insurance scenarios have no contribution and are rejected.
type ScaleContribution struct {
	Factor decimal.Decimal
}

func (sc *ScaleContribution) Name() string {
	return "scale_contribution"
}

func (sc *ScaleContribution) Description() string {
	return fmt.Sprintf("Scale contributions by %sx", sc.Factor.String())
}

func (sc *ScaleContribution) Validate(base *domain.ScenarioInput) error {
	if !sc.Factor.IsPositive() {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("factor must be positive, got %s", sc.Factor), nil)
	}
	if err := requireVariant(sc.Name(), base); err != nil {
		return err
	}
	if base.Kind == domain.KindInsurance {
		return notApplicable(sc.Name(), base.Kind)
	}
	return nil
}

func (sc *ScaleContribution) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := base.DeepCopy()
	f := sc.Factor
	switch modified.Kind {
	case domain.KindCompoundInterest:
		modified.CompoundInterest.Principal = modified.CompoundInterest.Principal.Mul(f)
	case domain.KindSIP:
		modified.SIP.MonthlyAmount = modified.SIP.MonthlyAmount.Mul(f)
	case domain.KindRetirement:
		modified.Retirement.MonthlyContribution = modified.Retirement.MonthlyContribution.Mul(f)
	case domain.KindGovernmentScheme:
		modified.GovernmentScheme.AnnualContribution = modified.GovernmentScheme.AnnualContribution.Mul(f)
	case domain.KindInternational:
		modified.International.AmountHome = modified.International.AmountHome.Mul(f)
	case domain.KindESG:
		modified.ESG.InvestmentAmount = modified.ESG.InvestmentAmount.Mul(f)
		modified.ESG.MonthlyContribution = modified.ESG.MonthlyContribution.Mul(f)
	case domain.KindCrypto:
		modified.Crypto.InvestmentAmount = modified.Crypto.InvestmentAmount.Mul(f)
		modified.Crypto.MonthlyInvestment = modified.Crypto.MonthlyInvestment.Mul(f)
	default:
		return nil, notApplicable(sc.Name(), modified.Kind)
	}
	return modified, nil
}
