// Package metrics exposes Prometheus collectors for the machine runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the runtime collectors. Registering against a caller-owned
// registry keeps tests isolated from the global default.
type Recorder struct {
	runsTotal        *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	runErrorsTotal   *prometheus.CounterVec
}

// NewRecorder creates and registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_runs_total",
				Help: "Total number of sequence runs labeled by verdict",
			},
			[]string{"verdict"},
		),
		transitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_transitions_total",
				Help: "Total number of applied state transitions",
			},
			[]string{"from", "to"},
		),
		runErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weft_run_errors_total",
				Help: "Total number of run failures labeled by error kind",
			},
			[]string{"kind"},
		),
	}
}

// RecordRun counts a finished run.
func (r *Recorder) RecordRun(terminated bool) {
	verdict := "rejected"
	if terminated {
		verdict = "terminated"
	}
	r.runsTotal.WithLabelValues(verdict).Inc()
}

// RecordTransition counts one applied transition.
func (r *Recorder) RecordTransition(from, to string) {
	r.transitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordError counts a run failure by kind ("symbol" or "transition").
func (r *Recorder) RecordError(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	r.runErrorsTotal.WithLabelValues(kind).Inc()
}
