package api

import (
	"net/http"
	"strconv"

	"goanova/app"
	"goanova/domain/anova"
	"goanova/domain/core"
	"goanova/internal/analysis"

	"github.com/gin-gonic/gin"
)

// Handler exposes the ANOVA calculator over HTTP
type Handler struct {
	service *app.AnalysisService
	calc    *analysis.Calculator
}

// NewHandler creates the HTTP handler for the analysis service
func NewHandler(service *app.AnalysisService, calc *analysis.Calculator) *Handler {
	return &Handler{service: service, calc: calc}
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(service *app.AnalysisService, calc *analysis.Calculator) *gin.Engine {
	h := NewHandler(service, calc)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/anova", h.computeANOVA)
		v1.GET("/critical-value", h.criticalValue)
	}
	return r
}

// computeRequest accepts both spec input shapes: a group-to-values mapping
// or a flat list of (group, value) pairs.
type computeRequest struct {
	Groups       map[string][]float64 `json:"groups"`
	Observations []anova.Observation  `json:"observations"`
	Alpha        *float64             `json:"alpha"`
}

type computeResponse struct {
	Report *app.AnalysisReport `json:"report"`
	Table  string              `json:"table"`
}

func (h *Handler) computeANOVA(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	var ds anova.Dataset
	switch {
	case len(req.Groups) > 0 && len(req.Observations) > 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide either groups or observations, not both"})
		return
	case len(req.Groups) > 0:
		ds = anova.NewDatasetFromGroups(req.Groups)
	case len(req.Observations) > 0:
		ds = anova.NewDatasetFromObservations(req.Observations)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no observations supplied"})
		return
	}

	result, err := h.calc.Compute(ds)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	alpha := h.service.Alpha()
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	if alpha <= 0 || alpha >= 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alpha must be in (0, 1)"})
		return
	}
	verdict, err := h.calc.Decide(result, alpha)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, computeResponse{
		Report: &app.AnalysisReport{
			ID:         core.NewReportID(),
			Name:       c.Query("name"),
			Result:     result,
			Verdict:    verdict,
			ComputedAt: core.Now(),
		},
		Table: analysis.Table(result),
	})
}

func (h *Handler) criticalValue(c *gin.Context) {
	df1, err := strconv.Atoi(c.Query("df_between"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "df_between must be an integer"})
		return
	}
	df2, err := strconv.Atoi(c.Query("df_within"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "df_within must be an integer"})
		return
	}

	alpha := h.service.Alpha()
	if raw := c.Query("alpha"); raw != "" {
		alpha, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "alpha must be a number"})
			return
		}
	}
	if alpha <= 0 || alpha >= 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alpha must be in (0, 1)"})
		return
	}

	fCrit, err := h.calc.CriticalValue(df1, df2, alpha)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"df_between":     df1,
		"df_within":      df2,
		"alpha":          alpha,
		"critical_value": fCrit,
	})
}

func statusForError(err error) int {
	switch {
	case core.IsInvalidInputError(err):
		return http.StatusBadRequest
	case core.IsDegenerateDesignError(err):
		return http.StatusUnprocessableEntity
	case core.IsDistributionError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
