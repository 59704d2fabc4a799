package rating

import (
	"testing"
	"time"
)

func TestNextUncertainty_DecayOnly(t *testing.T) {
	now := time.Now()
	// No prior observation: pure multiplicative decay.
	unc := NextUncertainty(100, nil, now, 30, 0.97, 1.0)
	if !almostEqual(unc, 97.0) {
		t.Errorf("NextUncertainty = %f, want 97.0", unc)
	}
}

func TestNextUncertainty_InactivityGrowth(t *testing.T) {
	now := time.Now()
	last := now.Add(-10 * 24 * time.Hour)
	// 100*0.97 + 10*1.0 = 107
	unc := NextUncertainty(100, &last, now, 30, 0.97, 1.0)
	if !almostEqual(unc, 107.0) {
		t.Errorf("NextUncertainty = %f, want 107.0", unc)
	}
}

func TestNextUncertainty_InactivityCappedAtYear(t *testing.T) {
	now := time.Now()
	last := now.Add(-5 * 365 * 24 * time.Hour)
	unc := NextUncertainty(100, &last, now, 30, 0.97, 1.0)
	if !almostEqual(unc, 97.0+365.0) {
		t.Errorf("NextUncertainty = %f, want %f", unc, 97.0+365.0)
	}
}

func TestNextUncertainty_Floor(t *testing.T) {
	now := time.Now()
	unc := NextUncertainty(30, &now, now, 30, 0.5, 0)
	if !almostEqual(unc, 30.0) {
		t.Errorf("NextUncertainty = %f, want floor 30.0", unc)
	}
}

func TestNextUncertainty_NoGrowthForSameInstant(t *testing.T) {
	now := time.Now()
	unc := NextUncertainty(100, &now, now, 30, 0.97, 5.0)
	if !almostEqual(unc, 97.0) {
		t.Errorf("NextUncertainty = %f, want 97.0 (no gap, no growth)", unc)
	}
}
