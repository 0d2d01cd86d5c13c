package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/breakeven"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/config"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/transform"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/scenes"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// Calculation engine, rebuilt from the file's policy once it loads
	calcEngine *calculation.CalculationEngine

	// Current selection and its what-if state
	selectedScenario string
	adjustments      tuimsg.Adjustments
	baseOutcome      *domain.CalculationOutcome
	outcome          *domain.CalculationOutcome
	calcSeq          int

	// Scene models
	scenariosModel  *scenes.ScenariosModel
	parametersModel *scenes.ParametersModel
	compareModel    *scenes.CompareModel
	optimizeModel   *scenes.OptimizeModel
	resultsModel    *scenes.ResultsModel

	keys keyMap
	help help.Model

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model for the scenario file at configPath
func NewModel(configPath string) Model {
	return Model{
		currentScene:    SceneHome,
		configPath:      configPath,
		calcEngine:      calculation.NewCalculationEngine(),
		adjustments:     tuimsg.NoAdjustments(),
		scenariosModel:  scenes.NewScenariosModel(),
		parametersModel: scenes.NewParametersModel(),
		compareModel:    scenes.NewCompareModel(),
		optimizeModel:   scenes.NewOptimizeModel(),
		resultsModel:    scenes.NewResultsModel(),
		keys:            defaultKeyMap(),
		help:            help.New(),
		width:           80,
		height:          24,
		loading:         true,
		loadingMessage:  "Loading " + configPath + "...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the scenario file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// ApplyAdjustments returns a copy of base with the what-if adjustments applied.
// Neutral adjustments are skipped so they never fail on kinds they do not apply to.
func ApplyAdjustments(base *domain.ScenarioInput, adj tuimsg.Adjustments, schemes domain.SchemePolicy) (*domain.ScenarioInput, error) {
	var transforms []transform.ScenarioTransform
	if !adj.RateDeltaPercent.IsZero() {
		transforms = append(transforms, &transform.AdjustRate{DeltaPercent: adj.RateDeltaPercent, Schemes: &schemes})
	}
	if !adj.ContributionFactor.IsZero() && !adj.ContributionFactor.Equal(tuimsg.NoAdjustments().ContributionFactor) {
		transforms = append(transforms, &transform.ScaleContribution{Factor: adj.ContributionFactor})
	}
	if adj.ExtraYears != 0 {
		transforms = append(transforms, &transform.ExtendHorizon{Years: adj.ExtraYears})
	}
	return transform.ApplyTransforms(base, transforms)
}

// currentScenario returns the selected scenario with the active adjustments
func (m Model) currentScenario() (*domain.ScenarioInput, error) {
	if m.config == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	base, ok := m.config.FindScenario(m.selectedScenario)
	if !ok {
		return nil, fmt.Errorf("no scenario selected")
	}
	return ApplyAdjustments(base, m.adjustments, m.calcEngine.Policy.Schemes)
}

// calculateScenarioCmd runs the engine on the selected scenario with adjustments applied
func calculateScenarioCmd(engine *calculation.CalculationEngine, base domain.ScenarioInput, adj tuimsg.Adjustments, seq int) tea.Cmd {
	return func() tea.Msg {
		msg := CalculationCompleteMsg{ScenarioName: base.Name, Adjustments: adj, Seq: seq}

		scenario, err := ApplyAdjustments(&base, adj, engine.Policy.Schemes)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Outcome, msg.Err = engine.Run(context.Background(), *scenario)
		return msg
	}
}

// compareCmd compares a scenario against every template that applies to it
func compareCmd(engine *calculation.CalculationEngine, scenario domain.ScenarioInput) tea.Cmd {
	return func() tea.Msg {
		templates := transform.CreateBuiltInTemplates(engine.Policy).ApplicableTo(&scenario)
		if len(templates) == 0 {
			return ComparisonCompleteMsg{Err: fmt.Errorf("no what-if templates apply to %s scenarios", scenario.Kind)}
		}

		cfg := &domain.Configuration{Policy: engine.Policy, Scenarios: []domain.ScenarioInput{scenario}}
		set, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
			BaseScenarioName: scenario.Name,
			Templates:        templates,
		})
		return ComparisonCompleteMsg{Set: set, Err: err}
	}
}

// optimizeCmd runs the break-even solver for one lever or for all of them
func optimizeCmd(engine *calculation.CalculationEngine, scenario domain.ScenarioInput, req tuimsg.OptimizeRequestMsg) tea.Cmd {
	return func() tea.Msg {
		solver := breakeven.NewDefaultSolver(engine)
		constraints := breakeven.DefaultConstraints()
		goal := breakeven.DefaultGoal(scenario.Kind)
		if req.TargetValue != nil {
			constraints = constraints.WithTarget(*req.TargetValue)
			goal = breakeven.GoalReachTarget
		}

		if req.Target == breakeven.OptimizeAll {
			multi, err := solver.OptimizeMultiDimensional(context.Background(), &scenario, constraints, goal)
			return OptimizationCompleteMsg{Multi: multi, Err: err}
		}
		single, err := solver.Optimize(context.Background(), breakeven.OptimizationRequest{
			BaseScenario: &scenario,
			Target:       req.Target,
			Goal:         goal,
			Constraints:  constraints,
		})
		return OptimizationCompleteMsg{Single: single, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneParameters:
		return "What-if"
	case SceneCompare:
		return "Compare"
	case SceneOptimize:
		return "Break-even"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
