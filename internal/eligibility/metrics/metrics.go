package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility engine.
type Metrics struct {
	// Signal fetch latencies by source
	SignalLatency *prometheus.HistogramVec

	// Signals that failed and were treated as contributing nothing
	SoftFailures *prometheus.CounterVec

	// Pipeline stages skipped because nothing could be booked
	ShortCircuits *prometheus.CounterVec

	// Sessions removed by clash detection or the weekend/holiday cutoff
	SessionsRemoved *prometheus.CounterVec

	// Overall pipeline latency
	EvaluateLatency prometheus.Histogram
}

// New registers the engine metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the engine metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignalLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "visitgate_eligibility_signal_duration_seconds",
			Help:    "Duration of eligibility signal fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "prisoner_restrictions", "alerts", "visitor_restrictions", "scheduled_events", "bank_holidays"

		SoftFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "visitgate_eligibility_soft_failures_total",
			Help: "Signal fetches that failed open",
		}, []string{"source"}),

		ShortCircuits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "visitgate_eligibility_short_circuits_total",
			Help: "Requests answered early with an empty session list",
		}, []string{"reason"}),

		SessionsRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "visitgate_eligibility_sessions_removed_total",
			Help: "Candidate sessions removed from the result",
		}, []string{"reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "visitgate_eligibility_evaluate_duration_seconds",
			Help:    "Duration of the full available-sessions pipeline",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveSignalLatency records the duration of fetching a signal.
func (m *Metrics) ObserveSignalLatency(source string, d time.Duration) {
	if m != nil {
		m.SignalLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementSoftFailure records a signal that failed open.
func (m *Metrics) IncrementSoftFailure(source string) {
	if m != nil {
		m.SoftFailures.WithLabelValues(source).Inc()
	}
}

// IncrementShortCircuit records an early empty response.
func (m *Metrics) IncrementShortCircuit(reason string) {
	if m != nil {
		m.ShortCircuits.WithLabelValues(reason).Inc()
	}
}

// AddSessionsRemoved records removed sessions.
func (m *Metrics) AddSessionsRemoved(reason string, n int) {
	if m != nil && n > 0 {
		m.SessionsRemoved.WithLabelValues(reason).Add(float64(n))
	}
}

// ObserveEvaluateLatency records the total pipeline duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
