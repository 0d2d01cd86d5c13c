package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// ScenarioCard displays a compact scenario overview
type ScenarioCard struct {
	Name       string
	Kind       domain.CalculatorKind
	Highlights []string // Key inputs
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a new scenario card
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:  name,
		Width: 50,
	}
}

// ScenarioCardFor builds a card summarising the key inputs of a scenario
func ScenarioCardFor(s domain.ScenarioInput) *ScenarioCard {
	card := NewScenarioCard(s.Name)
	card.Kind = s.Kind
	for _, h := range InputHighlights(s) {
		card.AddHighlight(h)
	}
	return card
}

// InputHighlights lists the headline inputs of a scenario for display
func InputHighlights(s domain.ScenarioInput) []string {
	var lines []string
	if h := s.Horizon(); h > 0 {
		lines = append(lines, fmt.Sprintf("%d years", h))
	}
	switch {
	case s.CompoundInterest != nil:
		in := s.CompoundInterest
		lines = append(lines,
			"Principal "+output.FormatINR(in.Principal),
			fmt.Sprintf("%s compounded %s", output.FormatPercentage(in.AnnualRatePercent), in.Frequency))
	case s.SIP != nil:
		in := s.SIP
		lines = append(lines,
			output.FormatINR(in.MonthlyAmount)+" a month",
			output.FormatPercentage(in.AnnualRatePercent)+" expected return")
		if !in.StepUpPercent.IsZero() {
			lines = append(lines, output.FormatPercentage(in.StepUpPercent)+" annual step-up")
		}
	case s.Retirement != nil:
		in := s.Retirement
		lines = append(lines,
			fmt.Sprintf("Age %d, retiring at %d", in.CurrentAge, in.RetirementAge),
			output.FormatINR(in.MonthlyContribution)+" a month at "+output.FormatPercentage(in.ExpectedReturnPercent))
	case s.Insurance != nil:
		kinds := make([]string, len(s.Insurance.Kinds))
		for i, k := range s.Insurance.Kinds {
			kinds[i] = string(k)
		}
		lines = append(lines, "Cover: "+strings.Join(kinds, ", "))
	case s.GovernmentScheme != nil:
		in := s.GovernmentScheme
		lines = append(lines, fmt.Sprintf("%s, %s a year", in.Scheme, output.FormatINR(in.AnnualContribution)))
	case s.International != nil:
		in := s.International
		lines = append(lines,
			output.FormatINR(in.AmountHome)+" at "+output.FormatPercentage(in.AnnualReturnPercent),
			output.FormatPercentage(in.CurrencyRiskPercent)+" currency risk")
	case s.ESG != nil:
		lines = append(lines, "Lump sum "+output.FormatINR(s.ESG.InvestmentAmount))
	case s.Crypto != nil:
		lines = append(lines, "Lump sum "+output.FormatINR(s.Crypto.InvestmentAmount))
	}
	return lines
}

// AddHighlight adds a key metric or parameter
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the styled scenario card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(s.Name))
	if s.Kind != "" {
		content.WriteString(" ")
		content.WriteString(tuistyles.SubtitleStyle.Render("(" + string(s.Kind) + ")"))
	}
	content.WriteString("\n")

	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for _, h := range s.Highlights {
		content.WriteString(highlightStyle.Render("• " + h))
		content.WriteString("\n")
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a compact single-line version
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{s.Name}
	if s.Kind != "" {
		parts = append(parts, "("+string(s.Kind)+")")
	}
	return strings.Join(parts, " ")
}

// ScenarioListCompact renders a compact list for selection menus
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(prefix + card.RenderCompact())
	}

	return strings.Join(rendered, "\n")
}
