package rating

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPCorrect_EvenMatch(t *testing.T) {
	// guess_floor + (1-guess_floor)*sigmoid(0) = 0.2 + 0.8*0.5
	p := PCorrect(0, 0, 0.2, 400)
	if !almostEqual(p, 0.6) {
		t.Errorf("PCorrect(0,0,0.2,400) = %f, want 0.6", p)
	}
}

func TestPCorrect_StrongUser(t *testing.T) {
	p := PCorrect(800, 0, 0.2, 400)
	// sigmoid(2) = 0.8808; 0.2 + 0.8*0.8808 = 0.9046
	if !almostEqual(p, 0.9046) {
		t.Errorf("PCorrect = %f, want 0.9046", p)
	}
}

func TestPCorrect_Bounds(t *testing.T) {
	cases := []struct {
		theta, b, gf, scale float64
	}{
		{-3000, 3000, 0.2, 400},
		{3000, -3000, 0.2, 400},
		{0, 0, 0, 1},
		{1e6, -1e6, 0.5, 1}, // clamped extremes
		{-1e6, 1e6, 0.25, 400},
		{42, -17, 0.1, 100},
	}
	for _, c := range cases {
		p := PCorrect(c.theta, c.b, c.gf, c.scale)
		gf := clamp(c.gf, 0, 0.5)
		if p < gf || p > 1 {
			t.Errorf("PCorrect(%v,%v,%v,%v) = %f outside [%f, 1]", c.theta, c.b, c.gf, c.scale, p, gf)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Errorf("PCorrect(%v,%v,%v,%v) = %f not finite", c.theta, c.b, c.gf, c.scale, p)
		}
	}
}

func TestPCorrect_GuessFloorIsLowerAsymptote(t *testing.T) {
	// A hopeless user still answers at chance level.
	p := PCorrect(-3000, 3000, 0.2, 400)
	if !almostEqual(p, 0.2) {
		t.Errorf("PCorrect at worst case = %f, want 0.2", p)
	}
}

func TestPCorrect_PanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on NaN theta")
		}
	}()
	PCorrect(math.NaN(), 0, 0.2, 400)
}

func TestSigmoid_StableAtExtremes(t *testing.T) {
	if got := Sigmoid(800); !almostEqual(got, 1.0) {
		t.Errorf("Sigmoid(800) = %v, want 1", got)
	}
	if got := Sigmoid(-800); !almostEqual(got, 0.0) {
		t.Errorf("Sigmoid(-800) = %v, want 0", got)
	}
	// The naive 1/(1+e^-x) would overflow e^800 on the negative branch.
	if got := Sigmoid(-800); math.IsNaN(got) {
		t.Error("Sigmoid(-800) is NaN")
	}
}

func TestSigmoid_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 1, 3, 10, 50} {
		if !almostEqual(Sigmoid(x)+Sigmoid(-x), 1.0) {
			t.Errorf("Sigmoid(%v) + Sigmoid(-%v) != 1", x, x)
		}
	}
}
