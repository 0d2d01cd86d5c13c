package calculation

import (
	"fmt"
	"math"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// SIPProjector projects monthly contributions made at the start of each month (annuity-due)
type SIPProjector struct {
	maxMoney float64
}

// NewSIPProjector creates a projector bounded by the given limits
func NewSIPProjector(limits domain.LimitsPolicy) *SIPProjector {
	return &SIPProjector{maxMoney: maxMoneyFor(limits)}
}

// futureValueRaw returns M * [((1+i)^m - 1)/i] * (1+i), or M*m for a zero rate
func (s *SIPProjector) futureValueRaw(monthlyAmount, annualRatePct float64, years int) float64 {
	return monthlyAmount * annuityDueFactor(annualRatePct/100/12, years*12)
}

// FutureValueOfRecurringContribution returns the rounded maturity value of a flat SIP
func (s *SIPProjector) FutureValueOfRecurringContribution(monthlyAmount, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if err := checkSIPInputs(monthlyAmount, annualRatePercent, years); err != nil {
		return decimal.Zero, err
	}
	if annualRatePercent.IsZero() {
		return monthlyAmount.Mul(decimal.NewFromInt(int64(years * 12))).Round(0), nil
	}
	return roundMoney("future_value", s.futureValueRaw(toFloat(monthlyAmount), toFloat(annualRatePercent), years), s.maxMoney)
}

// YearlyBreakdown returns the flat SIP value at the end of each year
func (s *SIPProjector) YearlyBreakdown(monthlyAmount, annualRatePercent decimal.Decimal, years int) ([]domain.PeriodBreakdownRow, error) {
	p, err := s.flatProjection(monthlyAmount, annualRatePercent, years)
	if err != nil {
		return nil, err
	}
	return p.Breakdown, nil
}

// FutureValueWithAnnualStepUp raises the monthly amount by stepUpPercent at the start of every
// year after the first. Each year's 12-month block is compounded forward to the horizon.
func (s *SIPProjector) FutureValueWithAnnualStepUp(monthlyAmount, stepUpPercent, annualRatePercent decimal.Decimal, years int) (domain.ProjectionResult, error) {
	if err := checkSIPInputs(monthlyAmount, annualRatePercent, years); err != nil {
		return domain.ProjectionResult{}, err
	}
	if err := checkPercent("step_up_percent", stepUpPercent); err != nil {
		return domain.ProjectionResult{}, err
	}

	i := toFloat(annualRatePercent) / 100 / 12
	blockFactor := annuityDueFactor(i, 12)
	yearGrowth := math.Pow(1+i, 12)
	stepUp := 1 + fraction(stepUpPercent)

	contributed := make([]decimal.Decimal, years)
	totals := make([]decimal.Decimal, years)
	monthly := toFloat(monthlyAmount)
	var value, paid float64
	for k := 0; k < years; k++ {
		// value carried into year k grows for 12 months, then the new block lands on top
		value = value*yearGrowth + monthly*blockFactor
		paid += monthly * 12

		var err error
		if contributed[k], err = roundMoney("total_contributed", paid, s.maxMoney); err != nil {
			return domain.ProjectionResult{}, err
		}
		if totals[k], err = roundMoney("maturity_value", value, s.maxMoney); err != nil {
			return domain.ProjectionResult{}, err
		}
		monthly *= stepUp
	}
	return buildProjection(contributed, totals), nil
}

// Project runs a validated SIP scenario, using the step-up variant when StepUpPercent is non-zero
func (s *SIPProjector) Project(in domain.SIPInput) (*domain.SIPResult, error) {
	var (
		projection domain.ProjectionResult
		err        error
	)
	if in.StepUpPercent.IsZero() {
		projection, err = s.flatProjection(in.MonthlyAmount, in.AnnualRatePercent, in.Years)
	} else {
		projection, err = s.FutureValueWithAnnualStepUp(in.MonthlyAmount, in.StepUpPercent, in.AnnualRatePercent, in.Years)
	}
	if err != nil {
		return nil, err
	}
	return &domain.SIPResult{Projection: projection, StepUpPercent: in.StepUpPercent}, nil
}

// flatProjection builds a yearly projection of a flat SIP via FutureValueOfRecurringContribution
func (s *SIPProjector) flatProjection(monthlyAmount, annualRatePercent decimal.Decimal, years int) (domain.ProjectionResult, error) {
	if err := checkSIPInputs(monthlyAmount, annualRatePercent, years); err != nil {
		return domain.ProjectionResult{}, err
	}
	contributed := make([]decimal.Decimal, years)
	totals := make([]decimal.Decimal, years)
	for y := 1; y <= years; y++ {
		fv, err := s.FutureValueOfRecurringContribution(monthlyAmount, annualRatePercent, y)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		contributed[y-1] = monthlyAmount.Mul(decimal.NewFromInt(int64(y * 12))).Round(0)
		totals[y-1] = fv
	}
	return buildProjection(contributed, totals), nil
}

// RequiredMonthlyContribution inverts the annuity-due formula: the flat SIP that grows to target
func (s *SIPProjector) RequiredMonthlyContribution(target, annualRatePercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if err := checkSIPInputs(target, annualRatePercent, years); err != nil {
		return decimal.Zero, err
	}
	if years == 0 {
		return decimal.Zero, domain.NewInvalidHorizonError("years", "must be at least 1 year to spread contributions")
	}
	if target.IsZero() {
		return decimal.Zero, nil
	}
	factor := annuityDueFactor(toFloat(annualRatePercent)/100/12, years*12)
	if factor <= 0 {
		return decimal.Zero, domain.NewOutOfRangeError("annual_rate_percent", annualRatePercent.String(),
			"no monthly contribution can reach the target at this rate")
	}
	return roundMoney("required_periodic_contribution", toFloat(target)/factor, s.maxMoney)
}

func checkSIPInputs(monthlyAmount, annualRatePercent decimal.Decimal, years int) error {
	if err := checkMoney("monthly_amount", monthlyAmount); err != nil {
		return err
	}
	if err := checkPercent("annual_rate_percent", annualRatePercent); err != nil {
		return err
	}
	if years < 0 {
		return domain.NewInvalidHorizonError("years", fmt.Sprintf("must not be negative, got %d", years))
	}
	return nil
}
