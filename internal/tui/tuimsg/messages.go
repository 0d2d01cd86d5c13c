package tuimsg

import (
	"github.com/shopspring/decimal"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/breakeven"
)

// ScenarioSelectedMsg signals a scenario has been selected
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// Adjustments are the what-if changes applied on top of the selected scenario
type Adjustments struct {
	RateDeltaPercent   decimal.Decimal // percentage points added to the expected return
	ContributionFactor decimal.Decimal // multiplier on every amount put in
	ExtraYears         int             // years added to (or removed from) the horizon
}

// NoAdjustments leaves the scenario as loaded
func NoAdjustments() Adjustments {
	return Adjustments{ContributionFactor: decimal.NewFromInt(1)}
}

// IsZero reports whether the adjustments leave the scenario unchanged
func (a Adjustments) IsZero() bool {
	return a.RateDeltaPercent.IsZero() && a.ContributionFactor.Equal(decimal.NewFromInt(1)) && a.ExtraYears == 0
}

// ParametersChangedMsg signals a slider moved and the scenario should be recalculated
type ParametersChangedMsg struct {
	Adjustments Adjustments
}

// OptimizeRequestMsg asks for a break-even solve on the selected scenario.
// A nil TargetValue uses the scenario's default goal.
type OptimizeRequestMsg struct {
	Target      breakeven.OptimizationTarget
	TargetValue *decimal.Decimal
}

// CompareRequestMsg asks for the selected scenario to be compared against templates.
// Empty Templates uses every template that applies.
type CompareRequestMsg struct {
	Templates []string
}
