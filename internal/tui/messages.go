package tui

import (
	"github.com/jitenkr2030/INR100-APP-sub000/internal/breakeven"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneParameters
	SceneCompare
	SceneOptimize
	SceneResults
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg = tuimsg.ErrorMsg

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg carries the outcome of one engine run. Seq identifies the
// request so results of superseded slider positions can be dropped.
type CalculationCompleteMsg struct {
	ScenarioName string
	Adjustments  tuimsg.Adjustments
	Seq          int
	Outcome      *domain.CalculationOutcome
	Err          error
}

// ComparisonCompleteMsg signals a template comparison has finished
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// OptimizationCompleteMsg signals a break-even solve has finished. Multi is set
// when every lever was solved.
type OptimizationCompleteMsg struct {
	Single *breakeven.OptimizationResult
	Multi  *breakeven.MultiDimensionalResult
	Err    error
}
