package calculation

import (
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// InternationalRiskProjector grows a foreign-currency investment and converts it back at
// unchanged, weaker-home and stronger-home exchange rates.
//
// HomeToForeignRate is foreign units per home unit, so converting back divides by it.
// The best case assumes the home currency weakens (fewer foreign units per home unit).
type InternationalRiskProjector struct {
	policy   domain.InternationalPolicy
	growth   *CompoundGrowthCalculator
	maxMoney float64
}

// NewInternationalRiskProjector creates a projector for the given policy
func NewInternationalRiskProjector(policy domain.InternationalPolicy, limits domain.LimitsPolicy, growth *CompoundGrowthCalculator) *InternationalRiskProjector {
	return &InternationalRiskProjector{policy: policy, growth: growth, maxMoney: maxMoneyFor(limits)}
}

// Project returns the home-currency projection with its currency risk band and the
// home-market and blended comparison streams
func (ip *InternationalRiskProjector) Project(in domain.InternationalInput) (*domain.InternationalResult, error) {
	if !in.HomeToForeignRate.IsPositive() {
		return nil, domain.NewValidationError("home_to_foreign_rate", "must be greater than zero")
	}
	if in.CurrencyRiskPercent.IsNegative() || in.CurrencyRiskPercent.GreaterThanOrEqual(percentCeiling) {
		return nil, domain.NewOutOfRangeError("currency_risk_percent", in.CurrencyRiskPercent.String(), "must be within [0, 100)")
	}

	fx := toFloat(in.HomeToForeignRate)
	risk := fraction(in.CurrencyRiskPercent)
	rate := toFloat(in.AnnualReturnPercent)
	foreign := toFloat(in.AmountHome) * fx

	amount, err := roundMoney("amount_home", toFloat(in.AmountHome), ip.maxMoney)
	if err != nil {
		return nil, err
	}
	contributed := make([]decimal.Decimal, in.Years)
	totals := make([]decimal.Decimal, in.Years)
	for y := 1; y <= in.Years; y++ {
		contributed[y-1] = amount
		if totals[y-1], err = roundMoney("maturity_value", ip.growth.futureValueRaw(foreign, rate, y, 1)/fx, ip.maxMoney); err != nil {
			return nil, err
		}
	}
	projection := buildProjection(contributed, totals)

	foreignFV := ip.growth.futureValueRaw(foreign, rate, in.Years, 1)
	best, err := roundMoney("risk_band.best", foreignFV/(fx*(1-risk)), ip.maxMoney)
	if err != nil {
		return nil, err
	}
	worst, err := roundMoney("risk_band.worst", foreignFV/(fx*(1+risk)), ip.maxMoney)
	if err != nil {
		return nil, err
	}
	projection.RiskBand = &domain.RiskBand{Best: best, Worst: worst}

	foreignMaturity, err := roundMoney("foreign_maturity_value", foreignFV, ip.maxMoney)
	if err != nil {
		return nil, err
	}

	result := &domain.InternationalResult{
		Projection:           projection,
		ForeignMaturityValue: foreignMaturity,
	}
	if result.BaseReturnPercent, err = returnPercent(projection.MaturityValue, amount); err != nil {
		return nil, err
	}
	if result.BestReturnPercent, err = returnPercent(best, amount); err != nil {
		return nil, err
	}
	if result.WorstReturnPercent, err = returnPercent(worst, amount); err != nil {
		return nil, err
	}
	result.RiskAdjustedReturnPercent = result.BaseReturnPercent.Sub(in.CurrencyRiskPercent.Div(decimal.NewFromInt(2))).Round(2)

	home := ip.policy.HomeMarketReturnPercent
	if result.HomeMarket, err = ip.growth.lumpSumProjection(in.AmountHome, home, in.Years, domain.FrequencyAnnually); err != nil {
		return nil, err
	}
	w := ip.policy.BlendedHomeWeight
	blendedRate := home.Mul(w).Add(in.AnnualReturnPercent.Mul(decimal.NewFromInt(1).Sub(w)))
	if result.Blended, err = ip.growth.lumpSumProjection(in.AmountHome, blendedRate, in.Years, domain.FrequencyAnnually); err != nil {
		return nil, err
	}
	return result, nil
}

// returnPercent is the total return of value over amount, zero when nothing was invested
func returnPercent(value, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Zero, nil
	}
	return roundPercent("return_percent", (toFloat(value)-toFloat(amount))/toFloat(amount)*100)
}
