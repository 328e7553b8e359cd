package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the service. Upstream outcomes
// are labelled by provider so fallback rates per dependency stay visible.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec // labels: provider={weather,risk,geocode,earthquakes}, outcome={success,fallback,error}
	SafetyViews      prometheus.Counter
	SMSDispatches    *prometheus.CounterVec // labels: outcome={success,error}
	AlertBroadcasts  prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "upstream_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		SafetyViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "safety_views_total",
			Help:      "Safety views built.",
		}),
		SMSDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "sms_dispatches_total",
			Help:      "SMS dispatch attempts by outcome.",
		}, []string{"outcome"}),
		AlertBroadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "alert_broadcasts_total",
			Help:      "Emergency alert broadcasts triggered.",
		}),
	}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.UpstreamRequests, m.SafetyViews, m.SMSDispatches, m.AlertBroadcasts)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can run in
// parallel without registry collisions.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)
