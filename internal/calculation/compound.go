package calculation

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// CompoundGrowthCalculator implements lump-sum compounding, FV = P(1 + r/n)^(n*t)
type CompoundGrowthCalculator struct {
	maxMoney float64
}

// NewCompoundGrowthCalculator creates a calculator bounded by the given limits
func NewCompoundGrowthCalculator(limits domain.LimitsPolicy) *CompoundGrowthCalculator {
	return &CompoundGrowthCalculator{maxMoney: maxMoneyFor(limits)}
}

// futureValueRaw is the unrounded primitive shared by every lump-sum projection
func (c *CompoundGrowthCalculator) futureValueRaw(principal, ratePct float64, years, periodsPerYear int) float64 {
	return principal * compoundFactor(ratePct, periodsPerYear, years)
}

// FutureValue returns the rounded maturity value of principal after years.
// A zero horizon returns the principal.
func (c *CompoundGrowthCalculator) FutureValue(principal, annualRatePercent decimal.Decimal, years int, freq domain.Frequency) (decimal.Decimal, error) {
	n, err := checkPrimitiveInputs(principal, annualRatePercent, years, freq)
	if err != nil {
		return decimal.Zero, err
	}
	return roundMoney("future_value", c.futureValueRaw(toFloat(principal), toFloat(annualRatePercent), years, n), c.maxMoney)
}

// EffectiveAnnualRate returns ((1 + r/n)^n - 1) * 100, rounded to two decimals
func (c *CompoundGrowthCalculator) EffectiveAnnualRate(annualRatePercent decimal.Decimal, freq domain.Frequency) (decimal.Decimal, error) {
	n, ok := freq.PeriodsPerYear()
	if !ok {
		return decimal.Zero, domain.NewValidationError("frequency", fmt.Sprintf("unknown frequency %q", freq))
	}
	if err := checkPercent("annual_rate_percent", annualRatePercent); err != nil {
		return decimal.Zero, err
	}
	return roundPercent("effective_annual_rate", (compoundFactor(toFloat(annualRatePercent), n, 1)-1)*100)
}

// YearlyBreakdown returns one row per year 1..years
func (c *CompoundGrowthCalculator) YearlyBreakdown(principal, annualRatePercent decimal.Decimal, freq domain.Frequency, years int) ([]domain.PeriodBreakdownRow, error) {
	p, err := c.lumpSumProjection(principal, annualRatePercent, years, freq)
	if err != nil {
		return nil, err
	}
	return p.Breakdown, nil
}

// Project runs a validated compound interest scenario
func (c *CompoundGrowthCalculator) Project(in domain.CompoundInterestInput) (*domain.CompoundInterestResult, error) {
	projection, err := c.lumpSumProjection(in.Principal, in.AnnualRatePercent, in.Years, in.Frequency)
	if err != nil {
		return nil, err
	}
	effective, err := c.EffectiveAnnualRate(in.AnnualRatePercent, in.Frequency)
	if err != nil {
		return nil, err
	}
	return &domain.CompoundInterestResult{
		Projection:          projection,
		EffectiveAnnualRate: effective,
	}, nil
}

// lumpSumProjection builds a yearly projection of a single deposit via FutureValue
func (c *CompoundGrowthCalculator) lumpSumProjection(principal, annualRatePercent decimal.Decimal, years int, freq domain.Frequency) (domain.ProjectionResult, error) {
	if _, err := checkPrimitiveInputs(principal, annualRatePercent, years, freq); err != nil {
		return domain.ProjectionResult{}, err
	}
	base, err := roundMoney("principal", toFloat(principal), c.maxMoney)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	contributed := make([]decimal.Decimal, years)
	totals := make([]decimal.Decimal, years)
	for y := 1; y <= years; y++ {
		fv, err := c.FutureValue(principal, annualRatePercent, y, freq)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		contributed[y-1] = base
		totals[y-1] = fv
	}
	return buildProjection(contributed, totals), nil
}

func checkPrimitiveInputs(principal, annualRatePercent decimal.Decimal, years int, freq domain.Frequency) (int, error) {
	n, ok := freq.PeriodsPerYear()
	if !ok {
		return 0, domain.NewValidationError("frequency", fmt.Sprintf("unknown frequency %q", freq))
	}
	if err := checkMoney("principal", principal); err != nil {
		return 0, err
	}
	if err := checkPercent("annual_rate_percent", annualRatePercent); err != nil {
		return 0, err
	}
	if years < 0 {
		return 0, domain.NewInvalidHorizonError("years", fmt.Sprintf("must not be negative, got %d", years))
	}
	return n, nil
}
