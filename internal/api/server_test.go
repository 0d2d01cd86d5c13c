package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	sipBody      = `{"name":"sip","kind":"sip","sip":{"monthlyAmount":5000,"annualRatePercent":12,"years":10}}`
	lumpSumBody  = `{"name":"lump-sum","kind":"compound-interest","compoundInterest":{"principal":100000,"annualRatePercent":8,"years":10,"frequency":"annually"}}`
	overseasBody = `{"name":"overseas","kind":"international","international":{"amountHome":500000,"homeToForeignRate":83,"annualReturnPercent":12,"years":10,"currencyRiskPercent":5}}`
	coverBody    = `{"name":"cover","kind":"insurance","insurance":{"age":35,"annualIncome":1200000,"dependents":2,"liabilities":5000000,"monthlyLifestyle":75000}}`
)

func newTestServer(t *testing.T, configure ...func(*Server)) *httptest.Server {
	t.Helper()
	s := NewServer(calculation.NewCalculationEngine())
	for _, c := range configure {
		c(s)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) ErrorDetail {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(data, &body), string(data))
	return body.Error
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, func(s *Server) { s.SetVersion("1.2.3") })

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
}

func TestCalculate(t *testing.T) {
	ts := newTestServer(t)

	resp, data := post(t, ts.URL+"/v1/calculate", sipBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	_, err := uuid.Parse(resp.Header.Get(CalculationIDHeader))
	assert.NoError(t, err, "calculation id should be a uuid")

	var outcome domain.CalculationOutcome
	require.NoError(t, json.Unmarshal(data, &outcome))
	require.NotNil(t, outcome.SIP)
	assert.True(t, outcome.SIP.Projection.MaturityValue.Equal(decimal.NewFromInt(1161695)),
		"got %s", outcome.SIP.Projection.MaturityValue)
	assert.Len(t, outcome.SIP.Projection.Breakdown, 10)
}

func TestCalculate_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantType   string
		wantField  string
	}{
		{
			name:       "zero horizon",
			body:       `{"name":"sip","kind":"sip","sip":{"monthlyAmount":5000,"annualRatePercent":12,"years":0}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "invalid_horizon",
			wantField:  "years",
		},
		{
			name:       "rate typed as basis points",
			body:       `{"name":"sip","kind":"sip","sip":{"monthlyAmount":5000,"annualRatePercent":1200,"years":10}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "out_of_range",
			wantField:  "annual_rate_percent",
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "unknown field",
			body:       `{"name":"sip","kind":"sip","monthly":5000}`,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := post(t, ts.URL+"/v1/calculate", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(data))
			detail := decodeError(t, data)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.wantField, detail.Field)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestCalculate_Cache(t *testing.T) {
	cache := NewMemoryCache()
	ts := newTestServer(t, func(s *Server) { s.SetCache(cache) })

	first, firstBody := post(t, ts.URL+"/v1/calculate", sipBody)
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	// Same scenario, different whitespace
	second, secondBody := post(t, ts.URL+"/v1/calculate", strings.ReplaceAll(sipBody, ",", ", "))
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, firstBody, secondBody)
	assert.NotEqual(t, first.Header.Get(CalculationIDHeader), second.Header.Get(CalculationIDHeader))
	assert.Equal(t, 1, cache.Len())

	// Failures are never cached
	resp, _ := post(t, ts.URL+"/v1/calculate", `{"name":"sip","kind":"sip","sip":{"monthlyAmount":5000,"annualRatePercent":12,"years":0}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, 1, cache.Len())
}

func TestCalculate_CacheIsolatedByPolicy(t *testing.T) {
	const retireBody = `{"name":"retire","kind":"retirement","retirement":{"currentAge":30,"retirementAge":60,"currentSavings":500000,"monthlyContribution":10000,"expectedReturnPercent":12,"inflationPercent":6,"currentMonthlyExpenses":50000}}`
	cache := NewMemoryCache()

	serve := func(policy domain.Policy) *httptest.Server {
		s := NewServer(calculation.NewCalculationEngineWithPolicy(policy))
		s.SetCache(cache)
		ts := httptest.NewServer(s.Handler())
		t.Cleanup(ts.Close)
		return ts
	}
	strict := domain.DefaultPolicy()
	strict.Retirement.RequiredCorpusMultiplier = decimal.NewFromInt(33)

	defaults := serve(domain.DefaultPolicy())
	stricter := serve(strict)

	first, firstBody := post(t, defaults.URL+"/v1/calculate", retireBody)
	require.Equal(t, http.StatusOK, first.StatusCode, string(firstBody))
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))

	second, secondBody := post(t, stricter.URL+"/v1/calculate", retireBody)
	require.Equal(t, http.StatusOK, second.StatusCode, string(secondBody))
	assert.Equal(t, "MISS", second.Header.Get("X-Cache"))
	assert.NotEqual(t, string(firstBody), string(secondBody))
	assert.Equal(t, 2, cache.Len())

	again, againBody := post(t, defaults.URL+"/v1/calculate", retireBody)
	assert.Equal(t, "HIT", again.Header.Get("X-Cache"))
	assert.Equal(t, firstBody, againBody)
}

func TestCalculate_FailureMetricsLabelledByKind(t *testing.T) {
	ts := newTestServer(t)

	failed := CalculationsTotal.WithLabelValues("sip", "validation")
	stray := CalculationsTotal.WithLabelValues("unknown", "validation")
	before := testutil.ToFloat64(failed)
	strayBefore := testutil.ToFloat64(stray)

	resp, data := post(t, ts.URL+"/v1/calculate", `{"name":"sip","kind":" SIP ","sip":{"monthlyAmount":-5000,"annualRatePercent":12,"years":10}}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(data))
	assert.Equal(t, "validation", decodeError(t, data).Type)
	assert.Equal(t, before+1, testutil.ToFloat64(failed))

	resp, _ = post(t, ts.URL+"/v1/calculate", `{"name":"x","kind":"lottery"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, strayBefore+1, testutil.ToFloat64(stray))
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)

	resp, data := post(t, ts.URL+"/v1/export", lumpSumBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "lump-sum-projection.csv")

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Period,PrincipalToDate,InterestToDate,TotalValue,PeriodGrowth", lines[0])
	assert.True(t, strings.HasPrefix(lines[10], "10,100000,"), lines[10])
	assert.Contains(t, lines[10], ",215892,")
}

func TestExport_Streams(t *testing.T) {
	ts := newTestServer(t)

	resp, data := post(t, ts.URL+"/v1/export?stream=blended", overseasBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "overseas-blended.csv")

	resp, data = post(t, ts.URL+"/v1/export?stream=missing", overseasBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_request", decodeError(t, data).Type)

	resp, data = post(t, ts.URL+"/v1/export", coverBody)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "kind", decodeError(t, data).Field)
}

func TestReport(t *testing.T) {
	ts := newTestServer(t)
	body := `{"scenarios":[` + sipBody + `,` + lumpSumBody + `]}`

	resp, data := post(t, ts.URL+"/v1/report?format=csv", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.True(t, strings.HasPrefix(string(data), "Scenario,Kind,TotalContributed"), string(data))
	assert.Contains(t, string(data), "sip,sip,600000,561695,1161695")

	resp, data = post(t, ts.URL+"/v1/report", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report domain.ScenarioReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Len(t, report.Outcomes, 2)
	assert.NotEmpty(t, report.Assumptions)

	resp, _ = post(t, ts.URL+"/v1/report?format=pdf", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, ts.URL+"/v1/report", `{"scenarios":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data = post(t, ts.URL+"/v1/report", `{"scenarios":[`+sipBody+`,{"name":"bad","kind":"sip","sip":{"monthlyAmount":1,"annualRatePercent":1,"years":0}}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, decodeError(t, data).Message, "scenario 2 (bad)")
}

func TestTemplatesAndKinds(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/templates")
	require.NoError(t, err)
	defer resp.Body.Close()
	var templates struct {
		Templates []templateInfo `json:"templates"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&templates))
	assert.Len(t, templates.Templates, 8)
	assert.Equal(t, "currency_risk_10", templates.Templates[0].Name)

	resp, err = http.Get(ts.URL + "/v1/kinds")
	require.NoError(t, err)
	defer resp.Body.Close()
	var kinds struct {
		Kinds []domain.CalculatorKind `json:"kinds"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&kinds))
	assert.Equal(t, domain.AllKinds(), kinds.Kinds)
}

func TestCompare(t *testing.T) {
	ts := newTestServer(t)

	resp, data := post(t, ts.URL+"/v1/compare", `{"scenario":`+sipBody+`,"templates":["rate_plus_1","double_contribution"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var set struct {
		BaseScenarioName   string            `json:"baseScenarioName"`
		Best               string            `json:"best"`
		AlternativeResults []json.RawMessage `json:"alternativeResults"`
	}
	require.NoError(t, json.Unmarshal(data, &set))
	assert.Equal(t, "sip", set.BaseScenarioName)
	assert.Equal(t, "sip_double_contribution", set.Best)
	assert.Len(t, set.AlternativeResults, 2)

	// Without templates every applicable one runs
	resp, data = post(t, ts.URL+"/v1/compare", `{"scenario":`+sipBody+`}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	resp, _ = post(t, ts.URL+"/v1/compare", `{"scenario":`+sipBody+`,"templates":["nope"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, ts.URL+"/v1/compare", `{"scenario":`+sipBody+`,"templates":["currency_risk_10"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, func(s *Server) { s.EnableMetrics() })

	resp, _ := post(t, ts.URL+"/v1/calculate", sipBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metrics, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	data, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `finproj_engine_calculations_total{kind="sip",result="ok"}`)

	disabled := newTestServer(t)
	resp, err = http.Get(disabled.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/calculate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCacheKeyAndMemoryCache(t *testing.T) {
	digest := PolicyDigest(domain.DefaultPolicy())
	assert.Equal(t, digest, PolicyDigest(domain.DefaultPolicy()))

	a := CacheKey("calculate", digest, []byte(sipBody))
	assert.Equal(t, a, CacheKey("calculate", digest, []byte(sipBody)))
	assert.NotEqual(t, a, CacheKey("export", digest, []byte(sipBody)))
	assert.True(t, strings.HasPrefix(a, "finproj:calculate:"+digest+":"))

	other := domain.DefaultPolicy()
	other.Retirement.RequiredCorpusMultiplier = decimal.NewFromInt(33)
	assert.NotEqual(t, digest, PolicyDigest(other))
	assert.NotEqual(t, a, CacheKey("calculate", PolicyDigest(other), []byte(sipBody)))

	ctx := context.Background()
	c := NewMemoryCache()
	_, ok := c.Get(ctx, a)
	assert.False(t, ok)
	require.NoError(t, c.Set(ctx, a, "value"))
	v, ok := c.Get(ctx, a)
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, ok := c.Get(ctx, "finproj:calculate:missing")
	assert.False(t, ok)
	assert.Error(t, c.Ping(ctx))
}
