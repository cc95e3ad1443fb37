// Package metrics records success/failure counts and latency for the two
// external call paths.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call path labels.
const (
	ServiceTranscription = "transcription"
	ServiceTranslation   = "translation"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the collectors for outbound API calls.
type Metrics struct {
	ExternalCalls *prometheus.CounterVec
	CallDuration  *prometheus.HistogramVec
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ExternalCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scribe",
			Name:      "external_calls_total",
			Help:      "Outbound calls to hosted APIs by service and outcome.",
		}, []string{"service", "outcome"}),
		CallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scribe",
			Name:      "external_call_duration_seconds",
			Help:      "Latency of outbound calls to hosted APIs.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"service"}),
	}
}

// Record observes one finished external call.
func (m *Metrics) Record(service string, elapsed time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.ExternalCalls.WithLabelValues(service, outcome).Inc()
	m.CallDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}
