// Package metrics exposes Prometheus instrumentation for the engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the engine's Prometheus collectors. A nil *Manager is a
// valid no-op, so callers never have to guard instrumentation sites.
type Manager struct {
	attemptsProcessed prometheus.Counter
	attemptsDuplicate prometheus.Counter
	versionConflicts  prometheus.Counter
	nonFiniteAborts   prometheus.Counter
	updateLatency     prometheus.Histogram

	recenterChecks prometheus.Counter
	recenterRuns   prometheus.Counter

	irtRuns *prometheus.CounterVec
}

// New registers the engine collectors with reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Manager {
	return &Manager{
		attemptsProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "attempts_processed_total",
			Help:      "Rating updates applied successfully.",
		}),
		attemptsDuplicate: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "attempts_duplicate_total",
			Help:      "Replayed attempts skipped by the audit-log uniqueness guard.",
		}),
		versionConflicts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "rating_version_conflicts_total",
			Help:      "Optimistic-lock retries on concurrent rating writes.",
		}),
		nonFiniteAborts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "non_finite_aborts_total",
			Help:      "Updates aborted because a computation produced NaN or Inf.",
		}),
		updateLatency: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "calibrant",
			Name:      "update_duration_seconds",
			Help:      "Wall time of one attempt's rating transaction.",
			Buckets:   prometheus.DefBuckets,
		}),
		recenterChecks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "recenter_checks_total",
			Help:      "Drift checks performed.",
		}),
		recenterRuns: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "recenter_runs_total",
			Help:      "Recenter transactions that shifted ratings.",
		}),
		irtRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "calibrant",
			Name:      "irt_runs_total",
			Help:      "IRT calibration runs by terminal status.",
		}, []string{"status"}),
	}
}

func (m *Manager) AttemptProcessed(d time.Duration) {
	if m == nil {
		return
	}
	m.attemptsProcessed.Inc()
	m.updateLatency.Observe(d.Seconds())
}

func (m *Manager) AttemptDuplicate() {
	if m == nil {
		return
	}
	m.attemptsDuplicate.Inc()
}

func (m *Manager) VersionConflict() {
	if m == nil {
		return
	}
	m.versionConflicts.Inc()
}

func (m *Manager) NonFiniteAbort() {
	if m == nil {
		return
	}
	m.nonFiniteAborts.Inc()
}

func (m *Manager) RecenterCheck() {
	if m == nil {
		return
	}
	m.recenterChecks.Inc()
}

func (m *Manager) RecenterRun() {
	if m == nil {
		return
	}
	m.recenterRuns.Inc()
}

func (m *Manager) IrtRunFinished(status string) {
	if m == nil {
		return
	}
	m.irtRuns.WithLabelValues(status).Inc()
}
