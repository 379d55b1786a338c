package experiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

const metricsNamespace = "pgsolve"

// Solve outcomes used as the "outcome" label.
const (
	OutcomeSolved  = "solved"
	OutcomeTimeout = "timeout"
)

// Metrics collects per-strategy solver statistics for a batch run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// SolvesTotal counts solves by strategy and outcome.
	SolvesTotal *prometheus.CounterVec

	// LiftsTotal counts lift applications by strategy.
	LiftsTotal *prometheus.CounterVec

	// PassesTotal counts outer passes by strategy.
	PassesTotal *prometheus.CounterVec

	// SolveSeconds observes wall time per solve, timeouts included.
	SolveSeconds *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry in tests; promauto panics on duplicate
// registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SolvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "solves_total",
				Help:      "Solves by strategy and outcome (solved, timeout).",
			},
			[]string{"strategy", "outcome"},
		),
		LiftsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "lifts_total",
				Help:      "Lift applications by strategy.",
			},
			[]string{"strategy"},
		),
		PassesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "passes_total",
				Help:      "Outer fixpoint passes by strategy.",
			},
			[]string{"strategy"},
		),
		SolveSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "solve_seconds",
				Help:      "Wall time per solve.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"strategy"},
		),
	}
}

// RecordSolve adds one finished solve. res may be partial (timeout).
func (m *Metrics) RecordSolve(k strategy.Kind, outcome string, res *spm.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	name := k.String()
	m.SolvesTotal.WithLabelValues(name, outcome).Inc()
	m.SolveSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	if res != nil {
		m.LiftsTotal.WithLabelValues(name).Add(float64(res.Lifts))
		m.PassesTotal.WithLabelValues(name).Add(float64(res.Passes))
	}
}

// WriteTextfile dumps everything g gathers to path in the Prometheus text
// exposition format (node_exporter textfile collector layout).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
