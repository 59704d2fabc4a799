package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilManagerIsNoop(t *testing.T) {
	var m *Manager
	// Must not panic.
	m.AttemptProcessed(time.Millisecond)
	m.AttemptDuplicate()
	m.VersionConflict()
	m.NonFiniteAbort()
	m.RecenterCheck()
	m.RecenterRun()
	m.IrtRunFinished("succeeded")
}

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.AttemptProcessed(time.Millisecond)
	m.AttemptProcessed(time.Millisecond)
	m.VersionConflict()

	if got := testutil.ToFloat64(m.attemptsProcessed); got != 2 {
		t.Errorf("attempts_processed_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.versionConflicts); got != 1 {
		t.Errorf("rating_version_conflicts_total = %v, want 1", got)
	}
}

func TestIrtRunStatusLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IrtRunFinished("succeeded")
	m.IrtRunFinished("failed")
	m.IrtRunFinished("failed")

	if got := testutil.ToFloat64(m.irtRuns.WithLabelValues("failed")); got != 2 {
		t.Errorf("irt_runs_total{status=failed} = %v, want 2", got)
	}
}
