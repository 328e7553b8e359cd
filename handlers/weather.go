package handlers

import (
	"fmt"
	"net/http"

	"go-suraksha/observability"
	"go-suraksha/weather"

	"github.com/gin-gonic/gin"
)

// GetWeather proxies the provider's current-conditions payload. Upstream
// failure degrades to the fixed mock payload, still HTTP 200, so existing
// clients never see a hard error here.
func GetWeather(c *gin.Context, client *weather.Client, metrics *observability.Metrics) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	q := c.Query("q")

	var query string
	switch {
	case lat != "" && lon != "":
		query = fmt.Sprintf("%s,%s", lat, lon)
	case q != "":
		query = q
	default:
		query = weather.DefaultQuery
	}

	report, degraded := client.FetchCurrent(c.Request.Context(), query)
	if degraded {
		metrics.UpstreamRequests.WithLabelValues("weather", observability.OutcomeFallback).Inc()
	} else {
		metrics.UpstreamRequests.WithLabelValues("weather", observability.OutcomeSuccess).Inc()
	}

	c.JSON(http.StatusOK, report)
}
