// Package evaluation computes calibration-quality metrics from the
// update audit log. Both the online engine and shadow IRT runs are
// monitored with the same aggregations.
package evaluation

import (
	"context"
	"math"
	"time"

	"github.com/adaptly/calibrant/internal/store"
)

// probEps clips predictions away from 0 and 1 before taking logs.
const probEps = 1e-15

// DefaultBins is the reliability-curve bin count.
const DefaultBins = 10

// Bin is one reliability-curve bucket over predicted probability.
type Bin struct {
	Lo       float64 `json:"lo"`
	Hi       float64 `json:"hi"`
	Count    int     `json:"count"`
	MeanPred float64 `json:"mean_pred"`
	ObsFreq  float64 `json:"obs_freq"`
}

// Report is the full calibration summary over one window.
type Report struct {
	N           int     `json:"n"`
	LogLoss     float64 `json:"log_loss"`
	Brier       float64 `json:"brier"`
	ECE         float64 `json:"ece"`
	Reliability []Bin   `json:"reliability"`
}

// Window filters the audit-log rows a report covers.
type Window struct {
	From   time.Time
	To     time.Time
	UserID string
	Scope  *store.Scope
}

// Service computes metrics over a store-backed audit log.
type Service struct {
	logs store.UpdateLogRepo
}

// NewService creates a metrics service over the given audit log.
func NewService(logs store.UpdateLogRepo) *Service {
	return &Service{logs: logs}
}

// Report computes all metrics over one window. Pure read: calling it
// twice over the same window yields identical values. An empty window
// is the expected steady state for new entities and yields zeros, not
// an error.
func (s *Service) Report(ctx context.Context, w Window, bins int) (*Report, error) {
	entries, err := s.logs.Window(ctx, store.LogWindow{
		From:   w.From,
		To:     w.To,
		UserID: w.UserID,
		Scope:  w.Scope,
	})
	if err != nil {
		return nil, err
	}

	preds := make([]float64, len(entries))
	outcomes := make([]bool, len(entries))
	for i, e := range entries {
		preds[i] = e.PPred
		outcomes[i] = e.Score
	}

	rel, ece := Reliability(preds, outcomes, bins)
	return &Report{
		N:           len(entries),
		LogLoss:     LogLoss(preds, outcomes),
		Brier:       Brier(preds, outcomes),
		ECE:         ece,
		Reliability: rel,
	}, nil
}

// LogLoss is the mean negative log-likelihood of the outcomes under the
// predictions, with predictions clipped to [eps, 1-eps]. Empty input
// yields 0.
func LogLoss(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}
	sum := 0.0
	for i, p := range preds {
		p = clip(p)
		if outcomes[i] {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(preds))
}

// Brier is the mean squared error between predictions and outcomes.
// Empty input yields 0.
func Brier(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}
	sum := 0.0
	for i, p := range preds {
		y := 0.0
		if outcomes[i] {
			y = 1.0
		}
		d := p - y
		sum += d * d
	}
	return sum / float64(len(preds))
}

// Reliability partitions [0,1] into bins equal-width buckets by
// predicted probability and compares mean prediction against observed
// frequency per bucket. The second return is the expected calibration
// error: the count-weighted mean absolute gap. Empty input yields
// (empty curve, 0).
func Reliability(preds []float64, outcomes []bool, bins int) ([]Bin, float64) {
	if bins <= 0 {
		bins = DefaultBins
	}
	if len(preds) == 0 {
		return nil, 0
	}

	width := 1.0 / float64(bins)
	sumPred := make([]float64, bins)
	sumObs := make([]float64, bins)
	counts := make([]int, bins)

	for i, p := range preds {
		idx := int(p / width)
		if idx >= bins { // p == 1.0 lands in the top bin
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		sumPred[idx] += p
		if outcomes[i] {
			sumObs[idx]++
		}
		counts[idx]++
	}

	out := make([]Bin, 0, bins)
	ece := 0.0
	total := float64(len(preds))
	for i := 0; i < bins; i++ {
		bin := Bin{Lo: float64(i) * width, Hi: float64(i+1) * width, Count: counts[i]}
		if counts[i] > 0 {
			bin.MeanPred = sumPred[i] / float64(counts[i])
			bin.ObsFreq = sumObs[i] / float64(counts[i])
			ece += math.Abs(bin.MeanPred-bin.ObsFreq) * float64(counts[i]) / total
		}
		out = append(out, bin)
	}
	return out, ece
}

func clip(p float64) float64 {
	if p < probEps {
		return probEps
	}
	if p > 1-probEps {
		return 1 - probEps
	}
	return p
}
