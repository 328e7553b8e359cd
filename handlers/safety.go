package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go-suraksha/geocode"
	"go-suraksha/observability"
	"go-suraksha/safety"
	"go-suraksha/types"

	"github.com/gin-gonic/gin"
)

// GetSafetyView runs the full search pipeline and returns the aggregated
// view. An unresolvable location is the only visible failure.
func GetSafetyView(c *gin.Context, builder *safety.Builder, metrics *observability.Metrics) {
	query := safety.Query{Text: c.Query("q")}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid coordinates"})
			return
		}
		query.Coords = &types.Coordinates{Lat: lat, Lon: lon}
	}

	if query.Text == "" && query.Coords == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "a location query or coordinates are required"})
		return
	}

	view, err := builder.Build(c.Request.Context(), query)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues("geocode", observability.OutcomeError).Inc()
		if errors.Is(err, geocode.ErrLocationNotResolved) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no match for the requested location"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	metrics.SafetyViews.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "view": view})
}
