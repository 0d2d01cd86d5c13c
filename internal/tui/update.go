package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.parametersModel.SetSize(msg.Width, msg.Height)
		m.compareModel.SetSize(msg.Width, msg.Height)
		m.optimizeModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Scene)

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		m.config = msg.Config
		m.calcEngine = calculation.NewCalculationEngineWithPolicy(msg.Config.Policy)
		m.scenariosModel.SetScenarios(msg.Config.Scenarios)
		m.parametersModel.SetMaxHorizon(msg.Config.Policy.Limits.MaxHorizonYears)
		m.previousScene, m.currentScene = m.currentScene, SceneScenarios
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		return m.selectScenario(msg.ScenarioName)

	case tuimsg.ParametersChangedMsg:
		m.adjustments = msg.Adjustments
		cmd := m.recalculate()
		return m, cmd

	case CalculationCompleteMsg:
		if msg.Seq != m.calcSeq {
			// superseded by a newer slider position
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.parametersModel.SetError(msg.Err)
			if m.baseOutcome == nil {
				m.err = msg.Err
			}
			return m, nil
		}
		m.outcome = msg.Outcome
		base := m.baseOutcome
		if msg.Adjustments.IsZero() {
			m.baseOutcome, base = msg.Outcome, nil
		}
		m.parametersModel.SetOutcome(msg.Outcome, base)
		m.resultsModel.SetResults(msg.Outcome)
		m.compareModel.SetComparison(nil, nil)
		return m, nil

	case tuimsg.CompareRequestMsg:
		return m.startComparison()

	case ComparisonCompleteMsg:
		m.compareModel.SetComparison(msg.Set, msg.Err)
		return m, nil

	case tuimsg.OptimizeRequestMsg:
		scenario, err := m.currentScenario()
		if err != nil {
			m.optimizeModel.SetResult(nil, nil, err)
			return m, nil
		}
		m.optimizeModel.SetRunning()
		return m, optimizeCmd(m.calcEngine, *scenario, msg)

	case OptimizationCompleteMsg:
		m.optimizeModel.SetResult(msg.Single, msg.Multi, msg.Err)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// An error screen is dismissed by any key
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// Typing into the target value field must not trigger global shortcuts
	if m.currentScene == SceneOptimize && m.optimizeModel.Editing() {
		return m.updateCurrentScene(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.currentScene == SceneHome {
			return m, nil
		}
		target := SceneHome
		if m.previousScene != m.currentScene {
			target = m.previousScene
		}
		return m.navigate(target)
	}

	if scene, ok := m.keys.sceneFor(msg); ok {
		return m.navigate(scene)
	}

	return m.updateCurrentScene(msg)
}

// navigate switches scenes. Opening Compare for a fresh selection starts a comparison.
func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	if scene == m.currentScene {
		return m, nil
	}
	m.previousScene, m.currentScene = m.currentScene, scene

	if scene == SceneCompare && m.selectedScenario != "" && m.compareModel.Comparison() == nil {
		return m.startComparison()
	}
	return m, nil
}

// selectScenario resets the what-if state and calculates the scenario as loaded
func (m Model) selectScenario(name string) (tea.Model, tea.Cmd) {
	if m.config == nil {
		return m, nil
	}
	scenario, ok := m.config.FindScenario(name)
	if !ok {
		m.err = fmt.Errorf("scenario %q not found", name)
		return m, nil
	}

	m.selectedScenario = name
	m.adjustments = tuimsg.NoAdjustments()
	m.outcome, m.baseOutcome = nil, nil
	m.parametersModel.SetScenario(scenario)
	m.optimizeModel.SetScenarioKind(scenario.Kind)
	m.compareModel.SetComparison(nil, nil)
	m.resultsModel.SetResults(nil)

	m.loading = true
	m.loadingMessage = "Calculating " + name + "..."
	m.previousScene, m.currentScene = m.currentScene, SceneParameters
	cmd := m.recalculate()
	return m, cmd
}

// recalculate starts an engine run for the current adjustments
func (m *Model) recalculate() tea.Cmd {
	if m.config == nil {
		return nil
	}
	base, ok := m.config.FindScenario(m.selectedScenario)
	if !ok {
		return nil
	}
	m.calcSeq++
	m.parametersModel.SetCalculating(true)
	return calculateScenarioCmd(m.calcEngine, *base, m.adjustments, m.calcSeq)
}

// startComparison compares the current what-if scenario against the templates
func (m Model) startComparison() (tea.Model, tea.Cmd) {
	scenario, err := m.currentScenario()
	if err != nil {
		m.compareModel.SetComparison(nil, err)
		return m, nil
	}
	m.compareModel.SetRunning()
	return m, compareCmd(m.calcEngine, *scenario)
}

// updateCurrentScene delegates a message to the active scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneOptimize:
		m.optimizeModel, cmd = m.optimizeModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
