package handlers

import (
	"net/http"
	"strconv"

	"go-suraksha/shelters"
	"go-suraksha/types"

	"github.com/gin-gonic/gin"
)

// GetShelters looks up the static shelter table for a location name, with
// the generic nearby list when only coordinates are given.
func GetShelters(c *gin.Context) {
	location := c.Query("location")

	var coords *types.Coordinates
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid coordinates"})
			return
		}
		coords = &types.Coordinates{Lat: lat, Lon: lon}
		if !coords.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "coordinates out of range"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"shelters": shelters.Nearest(location, coords),
	})
}
