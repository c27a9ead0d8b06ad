package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeConflict     = "conflict"
	OutcomeNotFound     = "not_found"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// Metrics holds the Prometheus collectors of the registration service.
type Metrics struct {
	PersonOperations *prometheus.CounterVec
	LoginAttempts    *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PersonOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_person_operations_total",
			Help: "Person operations handled, by operation and outcome",
		}, []string{"operation", "outcome"}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_login_attempts_total",
			Help: "Login attempts, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObservePerson(operation, outcome string) {
	if m == nil {
		return
	}
	m.PersonOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}
