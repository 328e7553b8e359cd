package handlers

import (
	"net/http"

	"go-suraksha/alerts"
	"go-suraksha/observability"
	"go-suraksha/types"

	"github.com/gin-gonic/gin"
)

type activeAlertRequest struct {
	Alert *types.ActiveAlert `json:"alert"`
	Clear bool               `json:"clear"`
}

// GetActiveAlert returns the currently held alert, or null when idle.
// Polling clients hit this on a fixed interval.
func GetActiveAlert(c *gin.Context, register *alerts.Register) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"alert":   register.Get(),
	})
}

// SetActiveAlert sets or clears the process-wide alert. Setting triggers
// the SMS fan-out to every registered number.
func SetActiveAlert(c *gin.Context, register *alerts.Register, metrics *observability.Metrics) {
	var req activeAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Clear {
		register.Clear()
		c.JSON(http.StatusOK, gin.H{"success": true, "alert": nil})
		return
	}

	if req.Alert == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "alert or clear is required"})
		return
	}
	if req.Alert.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "alert message is required"})
		return
	}

	stored := register.SetActive(*req.Alert)
	metrics.AlertBroadcasts.Inc()

	c.JSON(http.StatusOK, gin.H{"success": true, "alert": stored})
}
