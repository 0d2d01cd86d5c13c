package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading && m.currentScene != SceneParameters {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneOptimize:
		content = m.optimizeModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := max(0, m.height-4)

	contentContainer := AppStyle.
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("finproj - Financial Projection Planner")

	crumb := m.currentScene.String()
	if m.selectedScenario != "" {
		crumb = fmt.Sprintf("%s / %s", crumb, m.selectedScenario)
		if !m.adjustments.IsZero() {
			crumb += " (adjusted)"
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	statusText := m.help.ShortHelpView(m.keys.ShortHelp())

	if m.config != nil {
		loaded := SubtitleStyle.Render(fmt.Sprintf("%d scenarios", len(m.config.Scenarios)))
		gap := m.width - lipgloss.Width(statusText) - lipgloss.Width(loaded) - 4
		statusText += strings.Repeat(" ", max(1, gap)) + loaded
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return m.renderApp(BorderStyle.Render(components.NewSpinner().WithMessage(message).Render()))
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderHome renders the dashboard: the loaded file and the selected scenario at a glance
func (m Model) renderHome() string {
	if m.config == nil {
		return BorderStyle.Render("Welcome to finproj!\n\nNo scenario file loaded.")
	}

	var b strings.Builder
	b.WriteString("Welcome to finproj!\n\n")
	b.WriteString(fmt.Sprintf("Loaded %s with %d scenarios:\n", m.configPath, len(m.config.Scenarios)))
	for _, kind := range domain.AllKinds() {
		if n := countKind(m.config.Scenarios, kind); n > 0 {
			b.WriteString(fmt.Sprintf("  • %d %s\n", n, kind))
		}
	}

	if p, ok := m.outcome.PrimaryProjection(); ok {
		b.WriteString(fmt.Sprintf("\nSelected: %s, maturity %s (%s)\n",
			m.selectedScenario, output.FormatINR(p.MaturityValue), output.FormatLakhs(p.MaturityValue)))
	}

	b.WriteString("\nPress s to pick a scenario, then adjust it on the what-if screen (p).")
	return BorderStyle.Render(b.String())
}

func countKind(scenarios []domain.ScenarioInput, kind domain.CalculatorKind) int {
	n := 0
	for _, s := range scenarios {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `finproj - Financial Projection Planner

SCREENS:
  Scenarios   pick a scenario from the loaded file
  What-if     move the return, contribution and horizon sliders;
              every change re-runs the projection
  Compare     the scenario against every applicable what-if template
  Break-even  solve for the return, contribution or horizon that
              reaches a target value or closes a retirement shortfall
  Results     headline figures, yearly chart and breakdown

`
	m.help.ShowAll = true
	return BorderStyle.Render(helpText + m.help.View(m.keys))
}
