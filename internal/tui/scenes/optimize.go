package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/breakeven"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// optimizeTargets lists the solver targets in menu order
var optimizeTargets = []struct {
	target breakeven.OptimizationTarget
	label  string
}{
	{breakeven.OptimizeAll, "All levers (pick the smallest change)"},
	{breakeven.OptimizeReturnRate, "Required return rate"},
	{breakeven.OptimizeContribution, "Required contribution"},
	{breakeven.OptimizeHorizon, "Required horizon"},
}

// OptimizeModel is the goal planner: it solves for the change that reaches a goal
type OptimizeModel struct {
	kind        domain.CalculatorKind
	selected    int
	targetInput textinput.Model
	inputFocus  bool

	running bool
	single  *breakeven.OptimizationResult
	multi   *breakeven.MultiDimensionalResult
	err     error

	width  int
	height int
}

// NewOptimizeModel creates a new optimize scene model
func NewOptimizeModel() *OptimizeModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 2500000"
	ti.CharLimit = 16
	ti.Width = 20

	return &OptimizeModel{targetInput: ti}
}

// SetScenarioKind resets the planner for a newly selected scenario
func (m *OptimizeModel) SetScenarioKind(kind domain.CalculatorKind) {
	m.kind = kind
	m.single, m.multi, m.err = nil, nil, nil
	m.targetInput.SetValue("")
}

// SetRunning marks a solve as in flight
func (m *OptimizeModel) SetRunning() {
	m.running = true
	m.err = nil
}

// SetResult records a finished solve. Exactly one of single and multi is set on success.
func (m *OptimizeModel) SetResult(single *breakeven.OptimizationResult, multi *breakeven.MultiDimensionalResult, err error) {
	m.running = false
	m.single, m.multi, m.err = single, multi, err
}

// SetSize updates the scene dimensions
func (m *OptimizeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether the target value input has focus, so global keys stay off
func (m *OptimizeModel) Editing() bool {
	return m.inputFocus
}

// Update handles messages for the optimize scene
func (m *OptimizeModel) Update(msg tea.Msg) (*OptimizeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.inputFocus {
			var cmd tea.Cmd
			m.targetInput, cmd = m.targetInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, optimizeKeys.Focus):
		m.inputFocus = !m.inputFocus
		if m.inputFocus {
			return m, m.targetInput.Focus()
		}
		m.targetInput.Blur()
		return m, nil

	case key.Matches(keyMsg, optimizeKeys.Run):
		if m.running {
			return m, nil
		}
		m.inputFocus = false
		m.targetInput.Blur()
		return m, m.request()

	case m.inputFocus:
		var cmd tea.Cmd
		m.targetInput, cmd = m.targetInput.Update(msg)
		return m, cmd

	case key.Matches(keyMsg, optimizeKeys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, optimizeKeys.Down):
		if m.selected < len(optimizeTargets)-1 {
			m.selected++
		}
	}
	return m, nil
}

// request builds the solve request from the menu and the target value field
func (m *OptimizeModel) request() tea.Cmd {
	req := tuimsg.OptimizeRequestMsg{Target: optimizeTargets[m.selected].target}

	if raw := strings.TrimSpace(strings.ReplaceAll(m.targetInput.Value(), ",", "")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil || !v.IsPositive() {
			m.err = fmt.Errorf("target value %q is not a positive amount", m.targetInput.Value())
			return nil
		}
		req.TargetValue = &v
	}
	return func() tea.Msg { return req }
}

// View renders the optimize scene
func (m *OptimizeModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)

	goal := "Reach the target maturity value"
	if breakeven.DefaultGoal(m.kind) == breakeven.GoalCloseShortfall {
		goal = "Close the retirement shortfall (or reach the target value, if set)"
	}

	var menu strings.Builder
	for i, t := range optimizeTargets {
		if i > 0 {
			menu.WriteString("\n")
		}
		if i == m.selected {
			menu.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + t.label))
			continue
		}
		menu.WriteString(tuistyles.UnselectedItemStyle.Render("  " + t.label))
	}

	input := tuistyles.ParameterLabelStyle.Render("Target maturity value: ") + m.targetInput.View()

	sections := []string{
		titleStyle.Render("Break-even Planner"),
		tuistyles.SubtitleStyle.Render("Goal: " + goal),
		"",
		tuistyles.BorderStyle.Render(menu.String() + "\n\n" + input),
	}

	switch {
	case m.running:
		sections = append(sections, "", components.NewSpinner().WithMessage("Solving...").Render())
	case m.err != nil:
		sections = append(sections, "", tuistyles.MetricNegativeStyle.Render("✗ "+m.err.Error()))
	case m.multi != nil:
		sections = append(sections, "", (&breakeven.TableFormatter{}).FormatMultiDimensional(m.multi))
	case m.single != nil:
		sections = append(sections, "", (&breakeven.TableFormatter{}).Format(m.single))
	}
	sections = append(sections, "", helpLine(optimizeKeys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
