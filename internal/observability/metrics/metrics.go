package metrics

import "github.com/prometheus/client_golang/prometheus"

// AgentMetrics exposes counters for the booking agent.
type AgentMetrics struct {
	requestsTotal     *prometheus.CounterVec
	reservationsTotal *prometheus.CounterVec
}

func NewAgentMetrics(reg prometheus.Registerer) *AgentMetrics {
	m := &AgentMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "agent",
			Name:      "requests_total",
			Help:      "Agent requests by classified intent",
		}, []string{"intent"}),
		reservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "agent",
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.reservationsTotal)
	return m
}

// ObserveRequest counts one agent request for the given intent.
func (m *AgentMetrics) ObserveRequest(intent string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(intent).Inc()
}

// ObserveReservation counts one reservation attempt by outcome
// ("confirmed", "conflict", "rejected", "incomplete").
func (m *AgentMetrics) ObserveReservation(outcome string) {
	if m == nil {
		return
	}
	m.reservationsTotal.WithLabelValues(outcome).Inc()
}
