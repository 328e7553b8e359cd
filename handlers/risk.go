package handlers

import (
	"net/http"

	"go-suraksha/observability"
	"go-suraksha/risk"
	"go-suraksha/types"

	"github.com/gin-gonic/gin"
)

type riskRequest struct {
	WeatherData *types.WeatherReport `json:"weatherData"`
	Location    string               `json:"location"`
}

// AssessRisk runs the AI risk analysis for a weather payload. Upstream
// failures are swallowed into fallback analyses with HTTP 200; only missing
// input is a caller error.
func AssessRisk(c *gin.Context, assessor *risk.Assessor, metrics *observability.Metrics) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.WeatherData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Weather data is required"})
		return
	}

	snapshot := req.WeatherData.Snapshot()
	if req.Location != "" {
		snapshot.Location.Name = req.Location
	}

	analysis, degraded := assessor.Assess(c.Request.Context(), snapshot)
	if degraded {
		metrics.UpstreamRequests.WithLabelValues("risk", observability.OutcomeFallback).Inc()
	} else {
		metrics.UpstreamRequests.WithLabelValues("risk", observability.OutcomeSuccess).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
		"degraded": degraded,
	})
}
