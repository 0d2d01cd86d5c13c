package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// CompareModel shows the selected scenario next to its what-if template variants
type CompareModel struct {
	set     *compare.ComparisonSet
	running bool
	err     error
	width   int
	height  int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{}
}

// SetRunning marks a comparison as in flight
func (m *CompareModel) SetRunning() {
	m.running = true
	m.err = nil
}

// SetComparison records a finished comparison
func (m *CompareModel) SetComparison(set *compare.ComparisonSet, err error) {
	m.running = false
	m.set = set
	m.err = err
}

// Comparison returns the last comparison
func (m *CompareModel) Comparison() *compare.ComparisonSet {
	return m.set
}

// SetSize updates the scene dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, compareKeys.Run) && !m.running {
		return m, func() tea.Msg { return tuimsg.CompareRequestMsg{} }
	}
	return m, nil
}

// View renders the compare scene
func (m *CompareModel) View() string {
	switch {
	case m.running:
		return tuistyles.BorderStyle.Render(components.NewSpinner().WithMessage("Comparing what-if variants...").Render())
	case m.err != nil:
		return tuistyles.ErrorStyle.Render("Comparison failed: " + m.err.Error())
	case m.set == nil || m.set.BaseResult == nil:
		return tuistyles.BorderStyle.Render("No comparison yet.\n\nSelect a scenario (s), then press enter here to compare it against the what-if templates.")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	sections := []string{
		titleStyle.Render("What-if Comparison"),
		tuistyles.SubtitleStyle.Render("Base scenario: " + m.set.BaseScenarioName),
		"",
		m.renderTable(),
	}

	if len(m.set.Recommendations) > 0 {
		var b strings.Builder
		b.WriteString(tuistyles.TableHeaderStyle.Render("Recommendations"))
		for _, r := range m.set.Recommendations {
			b.WriteString("\n• " + r)
		}
		sections = append(sections, "", b.String())
	}
	sections = append(sections, "", helpLine(compareKeys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTable lists the base and every variant with its change in maturity value
func (m *CompareModel) renderTable() string {
	nameWidth := len("Scenario")
	for _, r := range m.set.AlternativeResults {
		nameWidth = max(nameWidth, len(r.ScenarioName))
	}
	nameWidth = max(nameWidth, len(m.set.BaseResult.ScenarioName)) + 2

	row := func(name, maturity, diff, shortfall string) string {
		return fmt.Sprintf("%-*s%16s%16s%16s", nameWidth, name, maturity, diff, shortfall)
	}

	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(row("Scenario", "Maturity", "vs Base", "Shortfall")))
	b.WriteString("\n")

	base := m.set.BaseResult
	b.WriteString(tuistyles.TableCellStyle.Render(row(base.ScenarioName, output.FormatINR(base.MaturityValue), "-", output.FormatINR(base.Shortfall))))

	best := bestVariant(m.set)
	for _, r := range m.set.AlternativeResults {
		b.WriteString("\n")
		line := row(r.ScenarioName, output.FormatINR(r.MaturityValue), signedINR(r.MaturityDiffFromBase), output.FormatINR(r.Shortfall))
		if r.ScenarioName == best {
			b.WriteString(tuistyles.TableHighlightStyle.Render(line + " ★"))
			continue
		}
		b.WriteString(tuistyles.TableCellStyle.Render(line))
	}
	return b.String()
}

// bestVariant names the variant with the largest maturity gain over base
func bestVariant(set *compare.ComparisonSet) string {
	best := ""
	bestDiff := decimal.Zero
	for _, r := range set.AlternativeResults {
		if r.MaturityDiffFromBase.GreaterThan(bestDiff) {
			best, bestDiff = r.ScenarioName, r.MaturityDiffFromBase
		}
	}
	return best
}

func signedINR(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + output.FormatINR(d)
	}
	return output.FormatINR(d)
}
