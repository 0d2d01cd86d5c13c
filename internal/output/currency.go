package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// FormatINR renders a money value for display with en-IN lakh/crore grouping and no
// fraction digits, e.g. ₹1,23,45,678. It never feeds back into computation.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + rupee + groupIndian(rounded.String())
}

// groupIndian groups the last three digits, then every two digits before them
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatPercentage formats a percent value with two decimals
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// FormatLakhs renders large amounts in words for headline cards, e.g. 11.62 L or 1.25 Cr
func FormatLakhs(amount decimal.Decimal) string {
	crore := decimal.NewFromInt(10000000)
	lakh := decimal.NewFromInt(100000)
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return rupee + amount.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return rupee + amount.Div(lakh).StringFixed(2) + " L"
	default:
		return FormatINR(amount)
	}
}
