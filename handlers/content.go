package handlers

import (
	"net/http"

	"go-suraksha/history"
	"go-suraksha/tips"

	"github.com/gin-gonic/gin"
)

// GetSafetyTips serves the rule-based tip tables.
func GetSafetyTips(c *gin.Context) {
	disasterType := c.DefaultQuery("type", "flood")
	severity := c.DefaultQuery("severity", "moderate")

	c.JSON(http.StatusOK, gin.H{"safetyTips": tips.For(disasterType, severity)})
}

// GetDisasterHistory serves the static record of past alerts with optional
// location/type filters.
func GetDisasterHistory(c *gin.Context) {
	location := c.DefaultQuery("location", "all")
	disasterType := c.DefaultQuery("type", "all")

	c.JSON(http.StatusOK, gin.H{"alerts": history.Filter(location, disasterType)})
}
