package evaluation

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/adaptly/calibrant/internal/store"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestLogLoss_KnownValue(t *testing.T) {
	// -mean(ln 0.8, ln 0.6) for (p=0.8,y=1) and (p=0.4,y=0).
	got := LogLoss([]float64{0.8, 0.4}, []bool{true, false})
	want := -(math.Log(0.8) + math.Log(0.6)) / 2
	if !almostEqual(got, want) {
		t.Errorf("LogLoss = %v, want %v", got, want)
	}
}

func TestLogLoss_ClipsExtremePredictions(t *testing.T) {
	// A confident wrong prediction must not produce Inf.
	got := LogLoss([]float64{0.0}, []bool{true})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("LogLoss at p=0, y=1 = %v, want finite", got)
	}
	if got < 30 {
		t.Errorf("LogLoss = %v, want a large clipped penalty", got)
	}
}

func TestLogLoss_EmptyWindow(t *testing.T) {
	if got := LogLoss(nil, nil); got != 0 {
		t.Errorf("LogLoss(empty) = %v, want 0", got)
	}
}

func TestBrier_KnownValue(t *testing.T) {
	// ((0.8-1)^2 + (0.4-0)^2) / 2 = (0.04 + 0.16)/2 = 0.1
	got := Brier([]float64{0.8, 0.4}, []bool{true, false})
	if !almostEqual(got, 0.1) {
		t.Errorf("Brier = %v, want 0.1", got)
	}
}

func TestBrier_EmptyWindow(t *testing.T) {
	if got := Brier(nil, nil); got != 0 {
		t.Errorf("Brier(empty) = %v, want 0", got)
	}
}

func TestReliability_PerfectCalibration(t *testing.T) {
	// In each bucket the observed frequency equals the mean prediction.
	preds := []float64{0.25, 0.25, 0.25, 0.25, 0.75, 0.75, 0.75, 0.75}
	outcomes := []bool{true, false, false, false, true, true, true, false}
	_, ece := Reliability(preds, outcomes, 2)
	if !almostEqual(ece, 0) {
		t.Errorf("ECE = %v, want 0 for perfectly calibrated input", ece)
	}
}

func TestReliability_KnownGap(t *testing.T) {
	// One bucket, all mass: |0.7 - 0.5| = 0.2.
	preds := []float64{0.7, 0.7}
	outcomes := []bool{true, false}
	bins, ece := Reliability(preds, outcomes, 1)
	if !almostEqual(ece, 0.2) {
		t.Errorf("ECE = %v, want 0.2", ece)
	}
	if len(bins) != 1 || bins[0].Count != 2 {
		t.Fatalf("bins = %+v, want one bin with count 2", bins)
	}
	if !almostEqual(bins[0].MeanPred, 0.7) || !almostEqual(bins[0].ObsFreq, 0.5) {
		t.Errorf("bin = %+v, want mean_pred 0.7 obs_freq 0.5", bins[0])
	}
}

func TestReliability_TopEdgeLandsInLastBin(t *testing.T) {
	bins, _ := Reliability([]float64{1.0}, []bool{true}, 10)
	if bins[9].Count != 1 {
		t.Errorf("p=1.0 landed in bin %+v, want top bin", bins)
	}
}

func TestReport_PureRead(t *testing.T) {
	ms := store.NewMemStore()
	now := time.Now()
	seedEntries(t, ms, now)

	svc := NewService(ms)
	ctx := context.Background()
	w := Window{From: now.Add(-time.Hour)}

	first, err := svc.Report(ctx, w, DefaultBins)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	second, err := svc.Report(ctx, w, DefaultBins)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if first.LogLoss != second.LogLoss || first.Brier != second.Brier || first.ECE != second.ECE {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}
	if first.N != 3 {
		t.Errorf("N = %d, want 3", first.N)
	}
}

func TestReport_EmptyWindowYieldsZeros(t *testing.T) {
	svc := NewService(store.NewMemStore())
	rep, err := svc.Report(context.Background(), Window{}, DefaultBins)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if rep.N != 0 || rep.LogLoss != 0 || rep.Brier != 0 || rep.ECE != 0 {
		t.Errorf("empty report = %+v, want all zeros", rep)
	}
}

func seedEntries(t *testing.T, ms *store.MemStore, now time.Time) {
	t.Helper()
	ctx := context.Background()
	rows := []struct {
		id    string
		p     float64
		score bool
	}{
		{"a1", 0.8, true},
		{"a2", 0.6, false},
		{"a3", 0.3, false},
	}
	for i, r := range rows {
		err := ms.ApplyAttempt(ctx, &store.AttemptUpdate{
			User:         store.Rating{EntityID: "u1", Scope: store.Global(), Version: int64(i)},
			Question:     store.Rating{EntityID: r.id + "-q", Scope: store.Global()},
			UserPost:     store.Rating{EntityID: "u1", Scope: store.Global()},
			QuestionPost: store.Rating{EntityID: r.id + "-q", Scope: store.Global()},
			Entry: store.UpdateLogEntry{
				AttemptID:  r.id,
				UserID:     "u1",
				QuestionID: r.id + "-q",
				Scope:      store.Global(),
				Score:      r.score,
				PPred:      r.p,
				OccurredAt: now.Add(time.Duration(i) * time.Second),
			},
		})
		if err != nil {
			t.Fatalf("seed entry %s: %v", r.id, err)
		}
	}
}
