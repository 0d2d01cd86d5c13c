package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// ProgressBar shows how far an amount has come towards a goal, e.g. the share of
// the required retirement corpus already funded
type ProgressBar struct {
	Current decimal.Decimal
	Goal    decimal.Decimal
	Width   int
	Label   string
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, goal decimal.Decimal) *ProgressBar {
	return &ProgressBar{
		Current: current,
		Goal:    goal,
		Width:   40,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the funded share in percent, capped at 100
func (p *ProgressBar) Percentage() float64 {
	if !p.Goal.IsPositive() {
		return 100
	}
	pct := p.Current.Div(p.Goal).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// IsComplete returns true once the goal is met
func (p *ProgressBar) IsComplete() bool {
	return p.Current.GreaterThanOrEqual(p.Goal)
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	percentage := p.Percentage()
	filled := int(float64(p.Width) * percentage / 100)
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	barColor := tuistyles.ColorDanger
	if p.IsComplete() {
		barColor = tuistyles.ColorSuccess
	}
	barStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	content.WriteString("] ")

	percentStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	content.WriteString(percentStyle.Render(fmt.Sprintf("%.1f%%", percentage)))
	content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf(" %s of %s",
		tuistyles.FormatCurrency(p.Current), tuistyles.FormatCurrency(p.Goal))))

	return content.String()
}

// Spinner represents an animated spinner for loading states
type Spinner struct {
	Frame   int
	Message string
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{}
}

// WithMessage sets the spinner message
func (s *Spinner) WithMessage(message string) *Spinner {
	s.Message = message
	return s
}

// Next advances the spinner to the next frame
func (s *Spinner) Next() {
	s.Frame++
}

// Render returns the current spinner frame
func (s *Spinner) Render() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := frames[s.Frame%len(frames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)

	rendered := spinnerStyle.Render(frame)
	if s.Message != "" {
		rendered += " " + s.Message
	}
	return rendered
}
