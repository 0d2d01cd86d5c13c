package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// AppliesTo reports whether every transform of the template accepts base
func (t Template) AppliesTo(base *domain.ScenarioInput) bool {
	current := base
	for _, tr := range t.Transforms {
		if tr.Validate(current) != nil {
			return false
		}
		next, err := tr.Apply(current)
		if err != nil {
			return false
		}
		current = next
	}
	return true
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplicableTo lists the sorted names of the templates that can be applied to base
func (tr *TemplateRegistry) ApplicableTo(base *domain.ScenarioInput) []string {
	var names []string
	for _, name := range tr.List() {
		if tr.templates[name].AppliesTo(base) {
			names = append(names, name)
		}
	}
	return names
}

// CreateBuiltInTemplates creates a template registry with the common what-if scenarios.
// Scheme defaults come from policy so rate templates work on schemes without an explicit rate.
func CreateBuiltInTemplates(policy domain.Policy) *TemplateRegistry {
	registry := NewTemplateRegistry()
	schemes := policy.Schemes

	registry.Register(Template{
		Name:        "rate_plus_1",
		Description: "Expected return one percentage point higher",
		Transforms:  []ScenarioTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(1), Schemes: &schemes}},
	})

	registry.Register(Template{
		Name:        "rate_minus_1",
		Description: "Expected return one percentage point lower",
		Transforms:  []ScenarioTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(-1), Schemes: &schemes}},
	})

	registry.Register(Template{
		Name:        "extend_5yr",
		Description: "Stay invested five more years",
		Transforms:  []ScenarioTransform{&ExtendHorizon{Years: 5}},
	})

	registry.Register(Template{
		Name:        "shorten_5yr",
		Description: "Withdraw five years earlier",
		Transforms:  []ScenarioTransform{&ExtendHorizon{Years: -5}},
	})

	registry.Register(Template{
		Name:        "step_up_10",
		Description: "Increase SIP contributions by 10% every year",
		Transforms:  []ScenarioTransform{&SetStepUp{Percent: decimal.NewFromInt(10)}},
	})

	registry.Register(Template{
		Name:        "double_contribution",
		Description: "Invest twice as much",
		Transforms:  []ScenarioTransform{&ScaleContribution{Factor: decimal.NewFromInt(2)}},
	})

	registry.Register(Template{
		Name:        "retire_later_5yr",
		Description: "Postpone retirement by 5 years",
		Transforms:  []ScenarioTransform{&PostponeRetirement{Years: 5}},
	})

	registry.Register(Template{
		Name:        "currency_risk_10",
		Description: "Assume 10% currency risk",
		Transforms:  []ScenarioTransform{&SetCurrencyRisk{Percent: decimal.NewFromInt(10)}},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.ScenarioInput, template Template) (*domain.ScenarioInput, error) {
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	order := []string{"Returns", "Horizon", "Contributions", "Risk"}
	for _, name := range registry.List() {
		t := registry.templates[name]
		switch {
		case strings.HasPrefix(name, "rate_"):
			categories["Returns"] = append(categories["Returns"], t)
		case strings.Contains(name, "5yr"):
			categories["Horizon"] = append(categories["Horizon"], t)
		case strings.Contains(name, "risk"):
			categories["Risk"] = append(categories["Risk"], t)
		default:
			categories["Contributions"] = append(categories["Contributions"], t)
		}
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  finproj compare scenarios.yaml --base sip --with rate_plus_1,step_up_10\n")
	sb.WriteString("  finproj compare scenarios.yaml --base retirement --with retire_later_5yr,double_contribution\n")

	return sb.String()
}
