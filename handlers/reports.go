package handlers

import (
	"net/http"

	"go-suraksha/reports"
	"go-suraksha/types"

	"github.com/gin-gonic/gin"
)

// SubmitReport accepts a citizen incident report.
func SubmitReport(c *gin.Context, svc *reports.Service) {
	var report types.IncidentReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	stored, err := svc.Submit(c.Request.Context(), report)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": stored})
}

// ListReports returns all stored incident reports.
func ListReports(c *gin.Context, svc *reports.Service) {
	all, err := svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reports": all})
}
