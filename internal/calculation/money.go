package calculation

import (
	"math"
	"strconv"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultMaxMoney bounds every rounded output; projections beyond it fail with OutOfRangeError.
var defaultMaxMoney = 1e15

// roundMoney rounds a raw float to whole currency units, half away from zero.
// Non-finite values and magnitudes above maxMoney are rejected rather than clamped.
func roundMoney(field string, v, maxMoney float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, domain.NewOutOfRangeError(field, "", "projection is not a finite number")
	}
	if math.Abs(v) > maxMoney {
		return decimal.Zero, domain.NewOutOfRangeError(field, strconv.FormatFloat(v, 'e', 3, 64),
			"projection exceeds the representable money ceiling")
	}
	return decimal.NewFromFloat(v).Round(0), nil
}

// roundPercent rounds a raw percent to two decimals for display fields
func roundPercent(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, domain.NewOutOfRangeError(field, "", "percent is not a finite number")
	}
	return decimal.NewFromFloat(v).Round(2), nil
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// fraction converts a percent field to a rate, e.g. 8 -> 0.08
func fraction(pct decimal.Decimal) float64 {
	return pct.InexactFloat64() / 100
}

// compoundFactor returns (1 + r/n)^(n*t) for a percent rate
func compoundFactor(ratePct float64, periodsPerYear, years int) float64 {
	if ratePct == 0 {
		return 1
	}
	return math.Pow(1+ratePct/100/float64(periodsPerYear), float64(periodsPerYear*years))
}

// annuityDueFactor returns ((1+i)^m - 1)/i * (1+i), using the i -> 0 limit m for a zero rate
func annuityDueFactor(i float64, months int) float64 {
	if i == 0 {
		return float64(months)
	}
	return (math.Pow(1+i, float64(months)) - 1) / i * (1 + i)
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// buildProjection assembles a ProjectionResult from per-year rounded contributions and totals.
// Interest is derived by subtraction so TotalValue == PrincipalToDate + InterestToDate exactly.
// PeriodGrowth is the interest earned within the year; for a lump sum it equals FV(y) - FV(y-1).
func buildProjection(contributed, totals []decimal.Decimal) domain.ProjectionResult {
	rows := make([]domain.PeriodBreakdownRow, 0, len(totals))
	prevInterest := decimal.Zero
	for y := range totals {
		interest := totals[y].Sub(contributed[y])
		rows = append(rows, domain.PeriodBreakdownRow{
			Period:          y + 1,
			PrincipalToDate: contributed[y],
			InterestToDate:  interest,
			TotalValue:      totals[y],
			PeriodGrowth:    interest.Sub(prevInterest),
		})
		prevInterest = interest
	}

	result := domain.ProjectionResult{Breakdown: rows}
	if len(rows) == 0 {
		return result
	}
	last := rows[len(rows)-1]
	result.TotalContributed = last.PrincipalToDate
	result.MaturityValue = last.TotalValue
	result.TotalGrowth = last.InterestToDate
	return result
}

// sumProjections adds streams that share a horizon row by row
func sumProjections(parts ...domain.ProjectionResult) domain.ProjectionResult {
	if len(parts) == 0 {
		return domain.ProjectionResult{}
	}
	years := len(parts[0].Breakdown)
	contributed := make([]decimal.Decimal, years)
	totals := make([]decimal.Decimal, years)
	for y := 0; y < years; y++ {
		contributed[y] = decimal.Zero
		totals[y] = decimal.Zero
		for _, p := range parts {
			if y < len(p.Breakdown) {
				contributed[y] = contributed[y].Add(p.Breakdown[y].PrincipalToDate)
				totals[y] = totals[y].Add(p.Breakdown[y].TotalValue)
			}
		}
	}
	return buildProjection(contributed, totals)
}
