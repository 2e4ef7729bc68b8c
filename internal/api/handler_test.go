package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"goanova/adapters/dist"
	"goanova/app"
	"goanova/internal/analysis"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	calc := analysis.NewCalculator(dist.NewFProvider())
	service := app.NewAnalysisService(calc, 0.05, nil)
	return NewRouter(service, calc)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestComputeANOVA_GroupedInput(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/v1/anova", map[string]interface{}{
		"groups": map[string][]float64{
			"pursuit":   {95, 90, 97, 95},
			"flight":    {85, 89, 92, 89},
			"substance": {75, 77, 79, 80},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Report struct {
			ID     string `json:"id"`
			Result struct {
				FValue    float64 `json:"f_value"`
				PValue    float64 `json:"p_value"`
				DFBetween int     `json:"df_between"`
				DFWithin  int     `json:"df_within"`
			} `json:"result"`
			Verdict struct {
				RejectNull    bool    `json:"reject_null"`
				CriticalValue float64 `json:"critical_value"`
			} `json:"verdict"`
		} `json:"report"`
		Table string `json:"table"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Report.ID)
	assert.InDelta(t, 38.3547, resp.Report.Result.FValue, 1e-3)
	assert.Equal(t, 2, resp.Report.Result.DFBetween)
	assert.Equal(t, 9, resp.Report.Result.DFWithin)
	assert.True(t, resp.Report.Verdict.RejectNull)
	assert.InDelta(t, 4.2565, resp.Report.Verdict.CriticalValue, 1e-3)
	assert.Contains(t, resp.Table, "Between")
}

func TestComputeANOVA_FlatPairsInput(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/v1/anova", map[string]interface{}{
		"observations": []map[string]interface{}{
			{"group": "a", "value": 1},
			{"group": "a", "value": 2},
			{"group": "b", "value": 5},
			{"group": "b", "value": 6},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestComputeANOVA_InputErrors(t *testing.T) {
	router := newTestRouter()

	// Single group
	rec := postJSON(t, router, "/v1/anova", map[string]interface{}{
		"groups": map[string][]float64{"only": {1, 2, 3}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Empty body
	rec = postJSON(t, router, "/v1/anova", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Both shapes at once
	rec = postJSON(t, router, "/v1/anova", map[string]interface{}{
		"groups":       map[string][]float64{"a": {1}, "b": {2}},
		"observations": []map[string]interface{}{{"group": "a", "value": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Degenerate design: N == k
	rec = postJSON(t, router, "/v1/anova", map[string]interface{}{
		"groups": map[string][]float64{"a": {1}, "b": {2}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Invalid alpha
	rec = postJSON(t, router, "/v1/anova", map[string]interface{}{
		"groups": map[string][]float64{"a": {1, 2}, "b": {2, 3}},
		"alpha":  2.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCriticalValueEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/critical-value?df_between=2&df_within=9&alpha=0.05", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		CriticalValue float64 `json:"critical_value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 4.2565, resp.CriticalValue, 1e-3)
}

func TestCriticalValueEndpoint_BadQuery(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/v1/critical-value",
		"/v1/critical-value?df_between=x&df_within=9",
		"/v1/critical-value?df_between=2&df_within=9&alpha=5",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
