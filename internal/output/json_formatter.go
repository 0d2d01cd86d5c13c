package output

import (
	"encoding/json"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// JSONFormatter emits the full report as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	out := *report
	out.Assumptions = reportAssumptions(report)
	return json.MarshalIndent(out, "", "  ")
}
