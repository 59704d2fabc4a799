package rating

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
	"github.com/adaptly/calibrant/pkg/metrics"
)

func newTestService(t *testing.T, repo store.RatingRepo, opts ...Option) *Service {
	t.Helper()
	cfg := DefaultConfig()
	svc, err := NewService(cfg, repo, logger.Nop(), opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func attempt(id string, correct bool, at time.Time) Attempt {
	return Attempt{
		AttemptID:  id,
		UserID:     "u1",
		QuestionID: "q1",
		Correct:    correct,
		OccurredAt: at,
	}
}

func TestRecordAttempt_NewEntitiesGetDefaults(t *testing.T) {
	ms := store.NewMemStore()
	svc := newTestService(t, ms)
	ctx := context.Background()

	// Before any attempt, reads synthesize the configured init values.
	r, err := svc.GetRating(ctx, "u1", store.Global())
	if err != nil {
		t.Fatalf("GetRating: %v", err)
	}
	if r.Rating != 0 || r.Uncertainty != 350 || r.NAttempts != 0 {
		t.Errorf("fresh user rating = %+v, want init values", r)
	}
	if r.LastSeenAt != nil {
		t.Error("fresh rating should have no last_seen_at")
	}

	q, _ := svc.GetQuestionRating(ctx, "q1", store.Global())
	if q.Uncertainty != 300 {
		t.Errorf("fresh question uncertainty = %v, want 300", q.Uncertainty)
	}
}

func TestRecordAttempt_AppliesUpdate(t *testing.T) {
	ms := store.NewMemStore()
	svc := newTestService(t, ms)
	ctx := context.Background()
	now := time.Now()

	res, err := svc.RecordAttempt(ctx, attempt("a1", true, now))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if res.Duplicate {
		t.Error("first application flagged duplicate")
	}
	if res.PPred <= 0 || res.PPred >= 1 {
		t.Errorf("PPred = %v, want in (0,1)", res.PPred)
	}
	if res.UserRating.Rating <= 0 {
		t.Errorf("correct answer should raise theta, got %v", res.UserRating.Rating)
	}
	if res.QuestionRating.Rating >= 0 {
		t.Errorf("correct answer should lower b, got %v", res.QuestionRating.Rating)
	}

	// Audit row written.
	entries, err := ms.Window(ctx, store.LogWindow{})
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.AttemptID != "a1" || !e.Score || e.PPred != res.PPred {
		t.Errorf("log entry mismatch: %+v", e)
	}
	if e.UserRatingPost != res.UserRating.Rating {
		t.Errorf("log post rating %v != result %v", e.UserRatingPost, res.UserRating.Rating)
	}
}

func TestRecordAttempt_ReplayIsNoop(t *testing.T) {
	ms := store.NewMemStore()
	svc := newTestService(t, ms)
	ctx := context.Background()
	now := time.Now()

	first, err := svc.RecordAttempt(ctx, attempt("a1", true, now))
	if err != nil {
		t.Fatalf("first RecordAttempt: %v", err)
	}
	second, err := svc.RecordAttempt(ctx, attempt("a1", true, now))
	if err != nil {
		t.Fatalf("replay RecordAttempt: %v", err)
	}
	if !second.Duplicate {
		t.Error("replay not flagged duplicate")
	}

	after, _ := svc.GetRating(ctx, "u1", store.Global())
	if after.Rating != first.UserRating.Rating {
		t.Errorf("replay moved rating: %v -> %v", first.UserRating.Rating, after.Rating)
	}
	entries, _ := ms.Window(ctx, store.LogWindow{})
	if len(entries) != 1 {
		t.Errorf("replay appended a log entry: %d rows", len(entries))
	}
}

func TestRecordAttempt_FiveCorrectMonotoneDivergence(t *testing.T) {
	ms := store.NewMemStore()
	svc := newTestService(t, ms)
	ctx := context.Background()
	now := time.Now()

	var prevTheta, prevB float64
	prevUncU, prevUncQ := 1e18, 1e18
	for i := 0; i < 5; i++ {
		res, err := svc.RecordAttempt(ctx, attempt(fmt.Sprintf("a%d", i), true, now))
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if res.UserRating.Rating <= prevTheta {
			t.Errorf("attempt %d: theta %v not strictly above %v", i, res.UserRating.Rating, prevTheta)
		}
		if res.QuestionRating.Rating >= prevB {
			t.Errorf("attempt %d: b %v not strictly below %v", i, res.QuestionRating.Rating, prevB)
		}
		if res.UserRating.Uncertainty > prevUncU || res.QuestionRating.Uncertainty > prevUncQ {
			t.Errorf("attempt %d: uncertainty grew without an inactivity gap", i)
		}
		prevTheta, prevB = res.UserRating.Rating, res.QuestionRating.Rating
		prevUncU, prevUncQ = res.UserRating.Uncertainty, res.QuestionRating.Uncertainty
	}
}

func TestRecordAttempt_ThemeScopeDownWeighted(t *testing.T) {
	ms := store.NewMemStore()
	svc := newTestService(t, ms)
	ctx := context.Background()
	now := time.Now()

	a := attempt("a1", true, now)
	a.ThemeID = "algebra"
	res, err := svc.RecordAttempt(ctx, a)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if !res.ThemeApplied {
		t.Fatal("theme update not applied")
	}

	global, _ := svc.GetRating(ctx, "u1", store.Global())
	theme, _ := svc.GetRating(ctx, "u1", store.Theme("algebra"))
	if theme.Version == 0 {
		t.Fatal("theme rating row not created")
	}
	// Default theme weight is 0.5: the theme move is half the global move.
	if !almostEqual(theme.Rating*2, global.Rating) {
		t.Errorf("theme rating %v, want half of global %v", theme.Rating, global.Rating)
	}

	entries, _ := ms.Window(ctx, store.LogWindow{})
	if len(entries) != 2 {
		t.Errorf("got %d log entries, want global + theme", len(entries))
	}
}

func TestRecordAttempt_ThemeNonFiniteCountedAsAbort(t *testing.T) {
	ms := store.NewMemStore()
	ctx := context.Background()

	// Corrupt the theme-scope question rating so the global update
	// succeeds and only the theme update aborts.
	themed := store.Theme("algebra")
	seed := &store.AttemptUpdate{
		User:     store.Rating{EntityID: "u1", Scope: themed},
		Question: store.Rating{EntityID: "q1", Scope: themed},
		UserPost: store.Rating{EntityID: "u1", Scope: themed, Uncertainty: 350},
		QuestionPost: store.Rating{
			EntityID: "q1", Scope: themed, Rating: math.NaN(), Uncertainty: 300,
		},
		Entry: store.UpdateLogEntry{
			AttemptID: "seed", UserID: "u1", QuestionID: "q1",
			Scope: themed, OccurredAt: time.Now(),
		},
	}
	if err := ms.ApplyAttempt(ctx, seed); err != nil {
		t.Fatalf("seed theme rating: %v", err)
	}

	reg := prometheus.NewRegistry()
	svc := newTestService(t, ms, WithMetrics(metrics.New(reg)))

	a := attempt("a1", true, time.Now())
	a.ThemeID = "algebra"
	res, err := svc.RecordAttempt(ctx, a)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if res.ThemeApplied {
		t.Error("theme update over a NaN rating must not apply")
	}
	if got := counterValue(t, reg, "calibrant_non_finite_aborts_total"); got != 1 {
		t.Errorf("non_finite_aborts_total = %v, want 1", got)
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecordAttempt_Validation(t *testing.T) {
	svc := newTestService(t, store.NewMemStore())
	ctx := context.Background()

	_, err := svc.RecordAttempt(ctx, Attempt{UserID: "u1", QuestionID: "q1"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if ve.Field != "attempt_id" {
		t.Errorf("Field = %q, want attempt_id", ve.Field)
	}
}

// conflictOnce wraps a repo and fails the first ApplyAttempt with a
// version conflict, as a concurrent writer would.
type conflictOnce struct {
	store.RatingRepo
	fired bool
}

func (c *conflictOnce) ApplyAttempt(ctx context.Context, upd *store.AttemptUpdate) error {
	if !c.fired {
		c.fired = true
		return store.ErrVersionConflict
	}
	return c.RatingRepo.ApplyAttempt(ctx, upd)
}

func TestRecordAttempt_RetriesOnVersionConflict(t *testing.T) {
	ms := store.NewMemStore()
	repo := &conflictOnce{RatingRepo: ms}
	svc := newTestService(t, repo)

	res, err := svc.RecordAttempt(context.Background(), attempt("a1", true, time.Now()))
	if err != nil {
		t.Fatalf("RecordAttempt should retry past one conflict: %v", err)
	}
	if res.UserRating.Rating <= 0 {
		t.Error("update not applied after retry")
	}
}

func TestNewService_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 0
	_, err := NewService(cfg, store.NewMemStore(), logger.Nop())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
