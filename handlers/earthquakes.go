package handlers

import (
	"net/http"

	"go-suraksha/earthquakes"
	"go-suraksha/observability"

	"github.com/gin-gonic/gin"
)

// GetEarthquakes serves the regional earthquake feed from the cached
// collection, falling back to the static mock when the feed is down.
func GetEarthquakes(c *gin.Context, svc *earthquakes.Service, metrics *observability.Metrics) {
	fc, degraded := svc.Current(c.Request.Context())
	if degraded {
		metrics.UpstreamRequests.WithLabelValues("earthquakes", observability.OutcomeFallback).Inc()
	} else {
		metrics.UpstreamRequests.WithLabelValues("earthquakes", observability.OutcomeSuccess).Inc()
	}

	c.JSON(http.StatusOK, fc)
}
