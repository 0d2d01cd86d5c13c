package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/output"
)

// calculationID tags every /v1 response with a fresh id for log correlation
func calculationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(CalculationIDHeader, uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// run calls the engine and records metrics for the attempt
func (s *Server) run(ctx context.Context, input domain.ScenarioInput) (*domain.CalculationOutcome, error) {
	start := time.Now()
	outcome, err := s.engine.Run(ctx, input)
	if err != nil {
		CalculationsTotal.WithLabelValues(kindLabel(input.Kind), domain.ErrorType(err)).Inc()
		return nil, err
	}
	kind := string(outcome.Kind)
	CalculationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	CalculationsTotal.WithLabelValues(kind, "ok").Inc()
	return outcome, nil
}

// kindLabel keeps the kind label bounded to the known calculators
func kindLabel(kind domain.CalculatorKind) string {
	k := domain.CalculatorKind(strings.ToLower(strings.TrimSpace(string(kind))))
	for _, known := range domain.AllKinds() {
		if k == known {
			return string(k)
		}
	}
	return "unknown"
}

// cached serves key from the cache when present, otherwise stores what compute returns
func (s *Server) cached(ctx context.Context, w http.ResponseWriter, key string, compute func() ([]byte, error)) ([]byte, error) {
	if s.cache != nil {
		if val, ok := s.cache.Get(ctx, key); ok {
			CacheRequests.WithLabelValues("hit").Inc()
			w.Header().Set("X-Cache", "HIT")
			return []byte(val), nil
		}
		CacheRequests.WithLabelValues("miss").Inc()
		w.Header().Set("X-Cache", "MISS")
	}

	body, err := compute()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, string(body)); err != nil {
			s.logger.Warnf("failed to cache response %s: %v", key, err)
		}
	}
	return body, nil
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kinds": domain.AllKinds(),
	})
}

// templateInfo describes one what-if template
type templateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	names := s.templates.List()
	list := make([]templateInfo, 0, len(names))
	for _, name := range names {
		t, _ := s.templates.Get(name)
		list = append(list, templateInfo{Name: t.Name, Description: t.Description})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": list,
	})
}

// handleCalculate runs one scenario and returns the outcome
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var input domain.ScenarioInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	payload, err := json.Marshal(input)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := s.cached(r.Context(), w, CacheKey("calculate", s.policyDigest, payload), func() ([]byte, error) {
		outcome, err := s.run(r.Context(), input)
		if err != nil {
			return nil, err
		}
		return json.Marshal(outcome)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// reportRequest is a batch of scenarios rendered through one report formatter
type reportRequest struct {
	Scenarios []domain.ScenarioInput `json:"scenarios"`
}

var reportContentTypes = map[string]string{
	"json":         "application/json",
	"csv":          "text/csv; charset=utf-8",
	"detailed-csv": "text/csv; charset=utf-8",
	"html":         "text/html; charset=utf-8",
}

// handleReport runs every scenario and renders the report in ?format= (json by default)
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(w, badRequest("unknown format %q", format))
		return
	}

	var req reportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(w, badRequest("no scenarios provided"))
		return
	}

	report := &domain.ScenarioReport{Assumptions: output.AssumptionsFor(s.engine.Policy)}
	for i, scenario := range req.Scenarios {
		outcome, err := s.run(r.Context(), scenario)
		if err != nil {
			writeError(w, fmt.Errorf("scenario %d (%s): %w", i+1, scenario.Name, err))
			return
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	body, err := formatter.Format(report)
	if err != nil {
		writeError(w, fmt.Errorf("failed to format report: %w", err))
		return
	}

	contentType, ok := reportContentTypes[formatter.Name()]
	if !ok {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleExport returns the period breakdown of one projection as CSV. ?stream= picks a
// secondary projection (for example blended or home-market); the primary is the default.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var input domain.ScenarioInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	outcome, err := s.run(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	projections := outcome.Projections()
	if len(projections) == 0 {
		writeError(w, domain.NewValidationError("kind", fmt.Sprintf("%s scenarios have no projection to export", outcome.Kind)))
		return
	}

	selected := projections[0]
	if stream := r.URL.Query().Get("stream"); stream != "" {
		found := false
		for _, p := range projections {
			if p.Name == stream {
				selected, found = p, true
				break
			}
		}
		if !found {
			writeError(w, badRequest("scenario %q has no %q projection", outcome.ScenarioName, stream))
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outcome.ScenarioName+"-"+selected.Name+".csv"))
	w.WriteHeader(http.StatusOK)
	if err := output.WriteBreakdownCSV(w, selected.Projection); err != nil {
		s.logger.Errorf("export %s: %v", outcome.ScenarioName, err)
	}
}

// compareRequest applies what-if templates to one scenario
type compareRequest struct {
	Scenario  domain.ScenarioInput `json:"scenario"`
	Templates []string             `json:"templates,omitempty"`
}

// handleCompare runs the scenario and one variant per template. Without templates,
// every template that applies to the scenario is used.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	base, err := s.engine.Validator.Validate(req.Scenario)
	if err != nil {
		writeError(w, err)
		return
	}
	if base.Name == "" {
		base.Name = "base"
	}

	templates := req.Templates
	if len(templates) == 0 {
		templates = s.templates.ApplicableTo(&base)
	}
	for _, name := range templates {
		t, ok := s.templates.Get(name)
		if !ok {
			writeError(w, badRequest("unknown template %q", name))
			return
		}
		if !t.AppliesTo(&base) {
			writeError(w, badRequest("template %q does not apply to %s scenarios", name, base.Kind))
			return
		}
	}

	cfg := &domain.Configuration{Policy: s.engine.Policy, Scenarios: []domain.ScenarioInput{base}}
	set, err := s.compare.Compare(r.Context(), cfg, compare.CompareOptions{
		BaseScenarioName: base.Name,
		Templates:        templates,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := (&compare.JSONFormatter{}).Format(set)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
