package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatINR,
	"pct":   FormatPercentage,
	"lakhs": FormatLakhs,
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	Summary     outcomeSummary
	Projections []domain.NamedProjection
}

func (h HTMLFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer
	scenarios := make([]htmlScenario, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		if o == nil {
			continue
		}
		scenarios = append(scenarios, htmlScenario{Summary: summarize(o), Projections: o.Projections()})
	}
	best, hasBest := bestByMaturity(summarizeAll(report))
	data := struct {
		Scenarios   []htmlScenario
		Best        outcomeSummary
		HasBest     bool
		Assumptions []string
	}{scenarios, best, hasBest, reportAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
