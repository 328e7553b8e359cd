package handlers

import (
	"net/http"

	"go-suraksha/assistant"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Messages []assistant.Message `json:"messages"`
}

// Chat forwards a conversation to the disaster-management assistant.
func Chat(c *gin.Context, a *assistant.Assistant) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid messages array is required"})
		return
	}

	reply, err := a.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": reply})
}
