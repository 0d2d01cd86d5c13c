// Package api exposes the projection engine over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/compare"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/transform"
)

// CalculationIDHeader carries the per-request calculation id on every response
const CalculationIDHeader = "X-Calculation-ID"

// maxBodyBytes bounds request payloads; scenarios are small
const maxBodyBytes = 1 << 20

// Server is the projection HTTP API server.
type Server struct {
	engine         *calculation.CalculationEngine
	compare        *compare.CompareEngine
	templates      *transform.TemplateRegistry
	cache          Cache
	policyDigest   string
	logger         calculation.Logger
	version        string
	metricsEnabled bool
	requestLogging bool
	timeout        time.Duration
}

// NewServer creates a new API server around engine. Responses are not cached until
// SetCache is called.
func NewServer(engine *calculation.CalculationEngine) *Server {
	return &Server{
		engine:       engine,
		compare:      compare.NewCompareEngine(engine),
		templates:    transform.CreateBuiltInTemplates(engine.Policy),
		policyDigest: PolicyDigest(engine.Policy),
		logger:       engine.Logger,
		version:      "dev",
		timeout:      30 * time.Second,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// EnableRequestLogging logs every request with chi's logger.
func (s *Server) EnableRequestLogging() { s.requestLogging = true }

// SetCache memoises calculation responses in c.
func (s *Server) SetCache(c Cache) { s.cache = c }

// SetVersion sets the version reported by /health.
func (s *Server) SetVersion(v string) { s.version = v }

// SetLogger replaces the server logger; nil restores the no-op logger.
func (s *Server) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.logger = l
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.requestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{CalculationIDHeader},
		MaxAge:         300,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": s.version,
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(calculationID)
		r.Get("/kinds", s.handleKinds)
		r.Get("/templates", s.handleTemplates)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/report", s.handleReport)
		r.Post("/export", s.handleExport)
		r.Post("/compare", s.handleCompare)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
