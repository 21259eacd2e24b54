package events

import (
	"github.com/iov-one/quorum"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts emitted events by name. Executed transfers are also counted
// by their outcome.
type Metrics struct {
	events    *prometheus.CounterVec
	transfers *prometheus.CounterVec
}

// NewMetrics registers the counters with given registerer. Use
// prometheus.DefaultRegisterer to expose them on the default handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "events_total",
			Help:      "Number of committed engine events",
		}, []string{"event"}),
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "transfers_total",
			Help:      "Number of executed transfers by dispatch outcome",
		}, []string{"success"}),
	}
}

// Emit increments the counter of e. A TransactionExecuted also increments the
// transfer counter labeled with its outcome.
func (m *Metrics) Emit(_ quorum.Context, e Event) {
	m.events.WithLabelValues(e.EventName()).Inc()
	if tx, ok := e.(TransactionExecuted); ok {
		if tx.Success {
			m.transfers.WithLabelValues("true").Inc()
		} else {
			m.transfers.WithLabelValues("false").Inc()
		}
	}
}
