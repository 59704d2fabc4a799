package rating

import (
	"errors"
	"math"
	"testing"
	"time"
)

// testConfig returns a config with chance-level floor on the 400 scale
// and a tiny uncertainty floor so K values can be pinned exactly.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.UncFloor = 1
	cfg.UncInitUser = 24
	cfg.UncInitQuestion = 9.6
	return cfg
}

func TestComputeUpdate_ReferenceDeltas(t *testing.T) {
	cfg := testConfig()
	now := time.Now()

	// unc=24 with kBase=32 pins k_user at 8 + 56*24/56 = 32;
	// unc=9.6 with kBase=24 pins k_question at 8 + 56*9.6/33.6 = 24.
	user := State{Rating: 0, Uncertainty: 24}
	question := State{Rating: 0, Uncertainty: 9.6}

	out, err := ComputeUpdate(cfg, user, question, true, now, 1.0)
	if err != nil {
		t.Fatalf("ComputeUpdate: %v", err)
	}

	if !almostEqual(out.PPred, 0.6) {
		t.Errorf("PPred = %f, want 0.6", out.PPred)
	}
	if !almostEqual(out.Delta, 0.4) {
		t.Errorf("Delta = %f, want 0.4", out.Delta)
	}
	if !almostEqual(out.KUser, 32) {
		t.Errorf("KUser = %f, want 32", out.KUser)
	}
	if !almostEqual(out.KQuestion, 24) {
		t.Errorf("KQuestion = %f, want 24", out.KQuestion)
	}
	// theta + k_u*delta and b - k_q*delta.
	if !almostEqual(out.User.Rating, 12.8) {
		t.Errorf("new theta = %f, want 12.8", out.User.Rating)
	}
	if !almostEqual(out.Question.Rating, -9.6) {
		t.Errorf("new b = %f, want -9.6", out.Question.Rating)
	}
}

func TestComputeUpdate_IncorrectMovesOppositeWays(t *testing.T) {
	cfg := testConfig()
	out, err := ComputeUpdate(cfg, State{Uncertainty: 24}, State{Uncertainty: 9.6}, false, time.Now(), 1.0)
	if err != nil {
		t.Fatalf("ComputeUpdate: %v", err)
	}
	if out.User.Rating >= 0 {
		t.Errorf("theta should drop on a miss, got %f", out.User.Rating)
	}
	if out.Question.Rating <= 0 {
		t.Errorf("b should rise on a miss, got %f", out.Question.Rating)
	}
}

func TestComputeUpdate_ThemeWeightScalesDelta(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	full, _ := ComputeUpdate(cfg, State{Uncertainty: 24}, State{Uncertainty: 9.6}, true, now, 1.0)
	half, _ := ComputeUpdate(cfg, State{Uncertainty: 24}, State{Uncertainty: 9.6}, true, now, 0.5)

	if !almostEqual(half.User.Rating*2, full.User.Rating) {
		t.Errorf("half-weight theta %f should be half of %f", half.User.Rating, full.User.Rating)
	}
	if !almostEqual(half.Delta*2, full.Delta) {
		t.Errorf("half-weight delta %f should be half of %f", half.Delta, full.Delta)
	}
}

func TestComputeUpdate_CountsAndTimestamps(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	out, err := ComputeUpdate(cfg, State{NAttempts: 3, Uncertainty: 50}, State{NAttempts: 7, Uncertainty: 50}, true, now, 1.0)
	if err != nil {
		t.Fatalf("ComputeUpdate: %v", err)
	}
	if out.User.NAttempts != 4 || out.Question.NAttempts != 8 {
		t.Errorf("attempt counts = %d/%d, want 4/8", out.User.NAttempts, out.Question.NAttempts)
	}
	if out.User.LastSeenAt == nil || !out.User.LastSeenAt.Equal(now) {
		t.Error("user LastSeenAt not set to the attempt time")
	}
}

func TestComputeUpdate_RejectsNonFinitePre(t *testing.T) {
	cfg := testConfig()
	_, err := ComputeUpdate(cfg, State{Rating: math.NaN(), Uncertainty: 50}, State{Uncertainty: 50}, true, time.Now(), 1.0)
	var nf *NonFiniteRatingError
	if err == nil {
		t.Fatal("expected NonFiniteRatingError")
	}
	if !errors.As(err, &nf) {
		t.Fatalf("got %T, want *NonFiniteRatingError", err)
	}
	if nf.Quantity != "user_rating_pre" {
		t.Errorf("Quantity = %q, want user_rating_pre", nf.Quantity)
	}
}

func TestComputeUpdate_ClampsRatings(t *testing.T) {
	cfg := testConfig()
	out, err := ComputeUpdate(cfg, State{Rating: RatingClampMax, Uncertainty: 350}, State{Rating: -100, Uncertainty: 350}, true, time.Now(), 1.0)
	if err != nil {
		t.Fatalf("ComputeUpdate: %v", err)
	}
	if out.User.Rating > RatingClampMax {
		t.Errorf("theta %f exceeds clamp", out.User.Rating)
	}
}
