package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// breakdownRows is how many yearly rows the results table shows at once
const breakdownRows = 8

// ResultsModel shows the full outcome of the current calculation
type ResultsModel struct {
	outcome *domain.CalculationOutcome
	offset  int
	width   int
	height  int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResults updates the outcome to display
func (m *ResultsModel) SetResults(outcome *domain.CalculationOutcome) {
	m.outcome = outcome
	m.offset = 0
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update scrolls the yearly table
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	rows := m.rowCount()
	switch {
	case key.Matches(keyMsg, listKeys.Up):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(keyMsg, listKeys.Down):
		if m.offset+breakdownRows < rows {
			m.offset++
		}
	case key.Matches(keyMsg, listKeys.Top):
		m.offset = 0
	case key.Matches(keyMsg, listKeys.Bottom):
		m.offset = max(0, rows-breakdownRows)
	}
	return m, nil
}

func (m *ResultsModel) rowCount() int {
	p, ok := m.outcome.PrimaryProjection()
	if !ok {
		return 0
	}
	return len(p.Breakdown)
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.outcome == nil {
		return tuistyles.BorderStyle.Render("No results to display.\n\nCalculate a scenario first from the Scenarios screen (s).")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Calculation Results"),
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("Scenario: %s (%s)", m.outcome.ScenarioName, m.outcome.Kind)),
	)

	sections := []string{header, "", components.MetricGrid(metricCards(m.outcome, nil), 4)}

	if lines := output.Highlights(m.outcome); len(lines) > 0 {
		var b strings.Builder
		for _, l := range lines {
			b.WriteString("• " + l + "\n")
		}
		sections = append(sections, "", strings.TrimRight(b.String(), "\n"))
	}
	if bar := fundedBar(m.outcome); bar != nil {
		sections = append(sections, "", bar.Render())
	}
	if chart := growthChart(m.outcome, m.width); chart != nil {
		sections = append(sections, "", chart.Render())
	}
	if table := m.renderBreakdown(); table != "" {
		sections = append(sections, "", table)
	}
	sections = append(sections, "", helpLine([]key.Binding{listKeys.Up, listKeys.Down, listKeys.Top, listKeys.Bottom}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBreakdown renders a scrolling window of the yearly breakdown
func (m *ResultsModel) renderBreakdown() string {
	p, ok := m.outcome.PrimaryProjection()
	if !ok || len(p.Breakdown) == 0 {
		return ""
	}

	const colWidth = 16
	cell := func(s string) string { return fmt.Sprintf("%*s", colWidth, s) }

	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%6s", "Year") + cell("Contributed") + cell("Growth") + cell("Value") + cell("This Year")))
	b.WriteString("\n")

	end := min(len(p.Breakdown), m.offset+breakdownRows)
	for _, row := range p.Breakdown[m.offset:end] {
		line := fmt.Sprintf("%6d", row.Period) +
			cell(output.FormatINR(row.PrincipalToDate)) +
			cell(output.FormatINR(row.InterestToDate)) +
			cell(output.FormatINR(row.TotalValue)) +
			cell(output.FormatINR(row.PeriodGrowth))
		b.WriteString(tuistyles.TableCellStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("Years %d-%d of %d", m.offset+1, end, len(p.Breakdown))))

	return b.String()
}
