package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	id "quorumid/pkg/domain"
)

// Outcome label values for Operations.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Operations          *prometheus.CounterVec
	RecoveriesCompleted prometheus.Counter
	Approvals           prometheus.Counter
	Height              prometheus.Gauge
}

// New registers every collector with reg. Passing a fresh
// prometheus.NewRegistry() keeps engines independent.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Operations applied by kind and outcome",
		}, []string{"kind", "outcome"}),

		RecoveriesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recoveries_completed_total",
			Help:      "Recoveries that moved an identity to a new address",
		}),

		Approvals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovery_approvals_total",
			Help:      "Distinct validator approvals recorded on recovery requests",
		}),

		Height: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "block_height",
			Help:      "Current simulated block height",
		}),
	}
}

// ObserveOperation counts one applied operation.
func (m *Metrics) ObserveOperation(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeRejected
	}
	m.Operations.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementRecoveriesCompleted() {
	if m != nil {
		m.RecoveriesCompleted.Inc()
	}
}

func (m *Metrics) IncrementApprovals() {
	if m != nil {
		m.Approvals.Inc()
	}
}

func (m *Metrics) SetHeight(h id.Height) {
	if m != nil {
		m.Height.Set(float64(h))
	}
}
