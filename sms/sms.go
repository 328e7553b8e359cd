package sms

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	twilio "github.com/kevinburke/twilio-go"
)

// WelcomeMessage greets a freshly registered number.
const WelcomeMessage = "Welcome to Disaster Alert System! You will now receive emergency alerts for your area."

// defaultCountryCode is prepended to bare 10-digit numbers.
const defaultCountryCode = "+91"

// Sender dispatches a single SMS. Implementations are best-effort: one
// attempt, failures reported to the caller who decides whether to log or
// surface them.
type Sender interface {
	Send(to, body string) error
}

// TwilioSender sends through the Twilio REST API.
type TwilioSender struct {
	client *twilio.Client
	from   string
}

func NewTwilioSender(sid, token, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewClient(sid, token, nil),
		from:   from,
	}
}

func (s *TwilioSender) Send(to, body string) error {
	msg, err := s.client.Messages.SendMessage(s.from, to, body, nil)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", to, err)
	}
	log.Printf("SMS %s dispatched to %s (status %s)", msg.Sid, to, msg.Status)
	return nil
}

// NormalizePhoneNumber converts raw input to E.164. A bare 10-digit number
// gets the default +91 country code; a number that already carries a foreign
// country code passes through unchanged; anything shorter than 10 digits is
// rejected.
func NormalizePhoneNumber(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	var digits strings.Builder
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	switch {
	case strings.HasPrefix(trimmed, "+") && digits.Len() > 10:
		return trimmed, nil
	case digits.Len() == 10:
		return defaultCountryCode + digits.String(), nil
	case strings.HasPrefix(trimmed, "+") && digits.Len() == 10:
		return trimmed, nil
	default:
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
}
