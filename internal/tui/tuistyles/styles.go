package tuistyles

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#2E86DE")
	ColorSecondary = lipgloss.Color("#54A0FF")
	ColorAccent    = lipgloss.Color("#FF9F43")
	ColorSuccess   = lipgloss.Color("#10AC84")
	ColorDanger    = lipgloss.Color("#EE5253")
	ColorInfo      = lipgloss.Color("#48DBFB")

	ColorBackground = lipgloss.Color("#1E272E")
	ColorForeground = lipgloss.Color("#F5F6FA")
	ColorMuted      = lipgloss.Color("#8395A7")
	ColorBorder     = lipgloss.Color("#576574")

	ColorChartLine1 = lipgloss.Color("#2E86DE")
	ColorChartLine2 = lipgloss.Color("#10AC84")
	ColorChartLine3 = lipgloss.Color("#FF9F43")
	ColorChartLine4 = lipgloss.Color("#EE5253")
)

// ChartColors cycles through the line colors in series order
var ChartColors = []lipgloss.Color{ColorChartLine1, ColorChartLine2, ColorChartLine3, ColorChartLine4}

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Bold(true)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// MetricTrendStyle colours a trend green when it moves the right way
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns the arrow for a trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders a money value with lakh/crore grouping
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatINR(amount)
}

// FormatCompact renders an axis value in crore, lakh or thousand units, e.g. ₹1.2Cr
func FormatCompact(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("₹%.1fCr", value/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("₹%.1fL", value/1e5)
	case abs >= 1e3:
		return fmt.Sprintf("₹%.0fK", value/1e3)
	}
	return fmt.Sprintf("₹%.0f", value)
}
