package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// Slider positions
const (
	sliderRate = iota
	sliderContribution
	sliderHorizon
)

// maxExtraYears bounds how far the horizon slider can extend a scenario
const maxExtraYears = 30

// ParametersModel is the what-if editor: three sliders over the selected scenario
// and live metric cards for the recalculated outcome
type ParametersModel struct {
	scenario      *domain.ScenarioInput
	sliders       []*components.ParameterSlider
	focusedSlider int
	maxHorizon    int

	outcome     *domain.CalculationOutcome
	baseOutcome *domain.CalculationOutcome
	calculating bool
	lastErr     error

	width  int
	height int
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	return &ParametersModel{maxHorizon: 100}
}

// SetMaxHorizon sets the longest horizon, in years, the horizon slider may reach
func (m *ParametersModel) SetMaxHorizon(years int) {
	if years > 0 {
		m.maxHorizon = years
	}
}

// SetScenario starts editing a scenario and resets all sliders
func (m *ParametersModel) SetScenario(scenario *domain.ScenarioInput) {
	if scenario == nil {
		return
	}
	m.scenario = scenario
	m.outcome = nil
	m.baseOutcome = nil
	m.lastErr = nil
	m.buildSliders()
}

// Scenario returns the scenario being edited
func (m *ParametersModel) Scenario() *domain.ScenarioInput {
	return m.scenario
}

// buildSliders creates the sliders at their neutral positions
func (m *ParametersModel) buildSliders() {
	kind := m.scenario.Kind
	horizon := m.scenario.Horizon()

	rate := components.NewParameterSlider("Expected return change", 0, -5, 5, 0.5).
		WithUnit(" pp").
		WithFormat("%+.1f").
		WithWidth(40).
		WithDescription("Percentage points added to every expected return").
		WithDisabled(kind == domain.KindInsurance || kind == domain.KindCrypto)

	contribution := components.NewParameterSlider("Contribution scale", 1, 0.5, 3, 0.1).
		WithUnit("x").
		WithFormat("%.1f").
		WithWidth(40).
		WithDescription("Multiplier on every amount you put in").
		WithDisabled(kind == domain.KindInsurance)

	maxExtra := min(maxExtraYears, m.maxHorizon-horizon)
	horizonSlider := components.NewParameterSlider("Horizon change", 0, float64(min(0, 1-horizon)), float64(max(0, maxExtra)), 1).
		WithUnit(" years").
		WithFormat("%+.0f").
		WithWidth(40).
		WithDescription("Years added to the horizon (retirement age for retirement plans)").
		WithDisabled(kind == domain.KindInsurance)

	m.sliders = []*components.ParameterSlider{rate, contribution, horizonSlider}
	m.focusedSlider = 0
	for i, s := range m.sliders {
		if !s.Disabled {
			m.focusedSlider = i
			break
		}
	}
	for i, s := range m.sliders {
		s.SetFocused(i == m.focusedSlider)
	}
}

// Adjustments returns the slider positions as scenario adjustments
func (m *ParametersModel) Adjustments() tuimsg.Adjustments {
	if len(m.sliders) == 0 {
		return tuimsg.NoAdjustments()
	}
	return tuimsg.Adjustments{
		RateDeltaPercent:   decimal.NewFromFloat(m.sliders[sliderRate].Value).Round(2),
		ContributionFactor: decimal.NewFromFloat(m.sliders[sliderContribution].Value).Round(2),
		ExtraYears:         int(m.sliders[sliderHorizon].Value),
	}
}

// SetCalculating marks a recalculation as in flight
func (m *ParametersModel) SetCalculating(calculating bool) {
	m.calculating = calculating
}

// SetOutcome records the latest recalculation; base is the unadjusted outcome
func (m *ParametersModel) SetOutcome(outcome, base *domain.CalculationOutcome) {
	m.calculating = false
	m.lastErr = nil
	m.outcome = outcome
	m.baseOutcome = base
}

// SetError records a recalculation failure; the previous outcome stays on screen
func (m *ParametersModel) SetError(err error) {
	m.calculating = false
	m.lastErr = err
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, sliderKeys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, sliderKeys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, sliderKeys.Increase):
		if m.sliders[m.focusedSlider].Increment() {
			return m, m.changed()
		}
	case key.Matches(keyMsg, sliderKeys.Decrease):
		if m.sliders[m.focusedSlider].Decrement() {
			return m, m.changed()
		}
	case key.Matches(keyMsg, sliderKeys.Reset):
		focused := m.focusedSlider
		m.buildSliders()
		m.moveFocusTo(focused)
		return m, m.changed()
	}

	return m, nil
}

// moveFocus moves to the next enabled slider in direction dir
func (m *ParametersModel) moveFocus(dir int) {
	for i := m.focusedSlider + dir; i >= 0 && i < len(m.sliders); i += dir {
		if !m.sliders[i].Disabled {
			m.moveFocusTo(i)
			return
		}
	}
}

func (m *ParametersModel) moveFocusTo(i int) {
	if i < 0 || i >= len(m.sliders) || m.sliders[i].Disabled {
		return
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = i
	m.sliders[i].SetFocused(true)
}

// changed emits the new adjustments so the root model recalculates
func (m *ParametersModel) changed() tea.Cmd {
	adj := m.Adjustments()
	m.calculating = true
	return func() tea.Msg {
		return tuimsg.ParametersChangedMsg{Adjustments: adj}
	}
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	if m.scenario == nil {
		return tuistyles.BorderStyle.Render("No scenario selected.\n\nPick one on the Scenarios screen (s).")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	header := titleStyle.Render("What-if: "+m.scenario.Name) + " " +
		tuistyles.SubtitleStyle.Render("("+string(m.scenario.Kind)+")")

	var sliders strings.Builder
	for i, s := range m.sliders {
		if i > 0 {
			sliders.WriteString("\n\n")
		}
		sliders.WriteString(s.Render())
	}
	sliderPane := tuistyles.BorderStyle.Render(sliders.String())

	var status string
	switch {
	case m.lastErr != nil:
		status = tuistyles.MetricNegativeStyle.Render("✗ " + m.lastErr.Error())
	case m.calculating:
		status = components.NewSpinner().WithMessage("Recalculating...").Render()
	}

	sections := []string{header, "", sliderPane}
	if cards := metricCards(m.outcome, m.baseOutcome); len(cards) > 0 {
		sections = append(sections, "", components.MetricGrid(cards, 4))
	}
	if bar := fundedBar(m.outcome); bar != nil {
		sections = append(sections, "", bar.Render())
	}
	if status != "" {
		sections = append(sections, "", status)
	}
	sections = append(sections, "", helpLine(sliderKeys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
