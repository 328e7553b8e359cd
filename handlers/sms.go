package handlers

import (
	"log"
	"net/http"

	"go-suraksha/observability"
	"go-suraksha/registry"
	"go-suraksha/sms"

	"github.com/gin-gonic/gin"
)

type sendSMSRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type registerRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// SendSMS dispatches a single message. One attempt, no retry.
func SendSMS(c *gin.Context, sender sms.Sender, metrics *observability.Metrics) {
	var req sendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "message is required"})
		return
	}

	to, err := sms.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := sender.Send(to, req.Message); err != nil {
		metrics.SMSDispatches.WithLabelValues(observability.OutcomeError).Inc()
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "failed to send SMS"})
		return
	}

	metrics.SMSDispatches.WithLabelValues(observability.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "phoneNumber": to})
}

// RegisterNumber normalizes and stores a phone number, then fires a welcome
// SMS. The welcome message is best-effort: its failure does not undo the
// registration.
func RegisterNumber(c *gin.Context, store registry.Store, sender sms.Sender, metrics *observability.Metrics) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Phone number is required"})
		return
	}

	number, err := sms.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	added, err := store.Add(c.Request.Context(), number)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to register number"})
		return
	}

	if added {
		go func() {
			if err := sender.Send(number, sms.WelcomeMessage); err != nil {
				metrics.SMSDispatches.WithLabelValues(observability.OutcomeError).Inc()
				log.Printf("Welcome SMS to %s failed: %v", number, err)
				return
			}
			metrics.SMSDispatches.WithLabelValues(observability.OutcomeSuccess).Inc()
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Mobile number registered successfully",
		"phoneNumber": number,
	})
}
