package alerts

import (
	"context"
	"log"
	"sync"
	"time"

	"go-suraksha/registry"
	"go-suraksha/sms"
	"go-suraksha/types"

	"github.com/google/uuid"
)

// Register holds the single process-wide active alert. Two states: idle
// (no alert) and active (one alert held). Concurrent SetActive calls are
// last-write-wins. Dismissal on a client hides its own display only; the
// alert stays active here until an admin clears it.
type Register struct {
	mu     sync.Mutex
	active *types.ActiveAlert

	numbers registry.Store
	sender  sms.Sender
}

func NewRegister(numbers registry.Store, sender sms.Sender) *Register {
	return &Register{numbers: numbers, sender: sender}
}

// SetActive installs the alert and starts an asynchronous best-effort SMS
// fan-out to every registered number. Per-recipient failures are logged,
// never retried, and never roll back the state transition. The stored alert
// is returned with its assigned ID and timestamp.
func (r *Register) SetActive(alert types.ActiveAlert) types.ActiveAlert {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.Timestamp == "" {
		alert.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	r.mu.Lock()
	r.active = &alert
	r.mu.Unlock()

	log.Printf("Active alert set: %s (%s, %s)", alert.ID, alert.Type, alert.Severity)
	go r.broadcast(alert)

	return alert
}

// Clear transitions back to idle. Clearing an already-idle register is a
// no-op.
func (r *Register) Clear() {
	r.mu.Lock()
	r.active = nil
	r.mu.Unlock()
	log.Println("Active alert cleared")
}

// Get returns a copy of the held alert, or nil when idle.
func (r *Register) Get() *types.ActiveAlert {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return nil
	}
	copied := *r.active
	return &copied
}

func (r *Register) broadcast(alert types.ActiveAlert) {
	if r.sender == nil {
		return
	}

	numbers, err := r.numbers.All(context.Background())
	if err != nil {
		log.Printf("Alert fan-out aborted, could not list numbers: %v", err)
		return
	}

	sent := 0
	for _, number := range numbers {
		if err := r.sender.Send(number, alert.Message); err != nil {
			log.Printf("Alert fan-out to %s failed: %v", number, err)
			continue
		}
		sent++
	}
	log.Printf("Alert %s fan-out complete: %d/%d recipients", alert.ID, sent, len(numbers))
}
