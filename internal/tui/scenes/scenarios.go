package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/components"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuistyles"
)

// ScenariosModel represents the scenarios browsing scene
type ScenariosModel struct {
	scenarios     []domain.ScenarioInput
	selectedIndex int
	cards         []*components.ScenarioCard
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenarios list
func (m *ScenariosModel) SetScenarios(scenarios []domain.ScenarioInput) {
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, 0, len(scenarios))
	for _, s := range scenarios {
		m.cards = append(m.cards, components.ScenarioCardFor(s).WithWidth(50))
	}

	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently highlighted scenario name
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, listKeys.Down):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, listKeys.Top):
		m.selectedIndex = 0
	case key.Matches(keyMsg, listKeys.Bottom):
		m.selectedIndex = max(0, len(m.scenarios)-1)
	case key.Matches(keyMsg, listKeys.Select):
		return m, m.selectScenario()
	}

	return m, nil
}

// selectScenario returns a command to select the current scenario
func (m *ScenariosModel) selectScenario() tea.Cmd {
	name := m.SelectedScenario()
	if name == "" {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
	}
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return tuistyles.BorderStyle.Render("No scenarios available.\n\nLoad a configuration file with at least one scenario.")
	}

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
	}

	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(40)
	title := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("Scenarios")
	leftPane := listStyle.Render(title + "\n\n" + components.ScenarioListCompact(m.cards, m.selectedIndex))

	hint := tuistyles.InfoStyle.Render("Press Enter to calculate this scenario")
	rightPane := lipgloss.JoinVertical(lipgloss.Left, m.cards[m.selectedIndex].Render(), hint)

	content := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, "  ", rightPane)
	return content + "\n\n" + helpLine(listKeys.ShortHelp())
}
