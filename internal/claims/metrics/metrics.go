package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for claim evaluation.
type Metrics struct {
	// Evaluation outcomes by reason code
	Outcomes *prometheus.CounterVec

	// Payout amounts for approved claims
	Payouts prometheus.Histogram

	// Evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates the claim metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "claimeval_claim_outcomes_total",
			Help: "Total claim evaluations by reason code",
		}, []string{"reason"}),

		Payouts: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "claimeval_claim_payout_amount",
			Help:    "Payout amounts of approved claims",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "claimeval_claim_evaluate_duration_seconds",
			Help:    "Duration of a single claim evaluation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementOutcome records an evaluation outcome.
func (m *Metrics) IncrementOutcome(reason string) {
	if m != nil {
		m.Outcomes.WithLabelValues(reason).Inc()
	}
}

// ObservePayout records the payout of an approved claim.
func (m *Metrics) ObservePayout(amount float64) {
	if m != nil {
		m.Payouts.Observe(amount)
	}
}

// ObserveEvaluateLatency records the evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
