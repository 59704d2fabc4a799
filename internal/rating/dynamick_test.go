package rating

import "testing"

func TestDynamicK_ReferenceValue(t *testing.T) {
	// norm = 350/382 = 0.9162; k = 8 + 56*0.9162 = 59.31
	k := DynamicK(32, 350, 8, 64)
	if !almostEqual(k, 59.309) {
		t.Errorf("DynamicK(32, 350, 8, 64) = %f, want 59.309", k)
	}
}

func TestDynamicK_Midpoint(t *testing.T) {
	// unc == kBase lands exactly halfway between the bounds.
	k := DynamicK(32, 32, 8, 64)
	if !almostEqual(k, 36.0) {
		t.Errorf("DynamicK at midpoint = %f, want 36.0", k)
	}
}

func TestDynamicK_SaturatesLow(t *testing.T) {
	k := DynamicK(32, 0, 8, 64)
	if !almostEqual(k, 8.0) {
		t.Errorf("DynamicK at unc=0 = %f, want 8.0", k)
	}
}

func TestDynamicK_SaturatesHigh(t *testing.T) {
	k := DynamicK(32, 1e9, 8, 64)
	if k > 64 || k < 63.9 {
		t.Errorf("DynamicK at huge unc = %f, want just under 64", k)
	}
}

func TestDynamicK_MonotoneInUncertainty(t *testing.T) {
	prev := -1.0
	for _, unc := range []float64{0, 10, 50, 100, 350, 1000, 10000} {
		k := DynamicK(32, unc, 8, 64)
		if k < prev {
			t.Errorf("DynamicK not monotone: k(%v) = %f < %f", unc, k, prev)
		}
		prev = k
	}
}

func TestDynamicK_NegativeUncertaintyTreatedAsZero(t *testing.T) {
	if k := DynamicK(32, -5, 8, 64); !almostEqual(k, 8.0) {
		t.Errorf("DynamicK(-5) = %f, want 8.0", k)
	}
}
