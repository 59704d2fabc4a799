package rating

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
	"github.com/adaptly/calibrant/pkg/metrics"
)

// conflictRetries bounds optimistic-lock retries per scope before the
// attempt is surfaced to the caller for backoff.
const conflictRetries = 3

// defaultOptionCount is assumed when the delivery system doesn't say how
// many answer options the question had.
const defaultOptionCount = 5

// Attempt is one answered attempt as reported by the delivery system.
type Attempt struct {
	AttemptID   string
	UserID      string
	QuestionID  string
	ThemeID     string // empty when the question has no theme
	Correct     bool
	OptionCount int // 0 means unknown; defaults to 5
	OccurredAt  time.Time
}

// UpdateResult reports the applied update for the global scope.
type UpdateResult struct {
	PPred          float64
	UserRating     store.Rating
	QuestionRating store.Rating
	ThemeApplied   bool
	// Duplicate is true when the attempt had already been applied and
	// this call was a no-op replay.
	Duplicate bool
}

// Service is the online rating updater. One instance is shared across
// request handlers; all state lives in the store.
type Service struct {
	cfg     Config
	ratings store.RatingRepo
	drift   *DriftController
	log     logger.Logger
	mon     *metrics.Manager

	updates atomic.Int64
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithDrift attaches a drift controller that is consulted every
// RecenterEveryNUpdates applied updates.
func WithDrift(d *DriftController) Option {
	return func(s *Service) { s.drift = d }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) { s.mon = m }
}

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService validates cfg and creates the online updater.
func NewService(cfg Config, ratings store.RatingRepo, log logger.Logger, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Service{
		cfg:     cfg,
		ratings: ratings,
		log:     log.Named("rating"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RecordAttempt applies one attempt to the global-scope ratings and,
// when the attempt carries a theme, to the theme-scoped ratings with the
// configured down-weight. The global update is authoritative; a theme
// update failure is logged but does not fail the call once the global
// scope is committed.
func (s *Service) RecordAttempt(ctx context.Context, a Attempt) (*UpdateResult, error) {
	if err := validateAttempt(&a); err != nil {
		return nil, err
	}

	start := s.now()

	out, dup, err := s.applyScope(ctx, a, store.Global(), 1.0)
	if err != nil {
		if isNonFinite(err) {
			s.mon.NonFiniteAbort()
		}
		return nil, fmt.Errorf("apply global scope: %w", err)
	}

	res := &UpdateResult{
		PPred:          out.PPred,
		UserRating:     ratingRow(a.UserID, store.Global(), out.User),
		QuestionRating: ratingRow(a.QuestionID, store.Global(), out.Question),
		Duplicate:      dup,
	}

	if a.ThemeID != "" && s.cfg.ThemeUpdateWeight > 0 {
		if _, _, err := s.applyScope(ctx, a, store.Theme(a.ThemeID), s.cfg.ThemeUpdateWeight); err != nil {
			if isNonFinite(err) {
				s.mon.NonFiniteAbort()
			}
			s.log.Error(ctx, "theme scope update failed",
				logger.String("attempt_id", a.AttemptID),
				logger.String("theme_id", a.ThemeID),
				logger.Error(err))
		} else {
			res.ThemeApplied = true
		}
	}

	if dup {
		s.mon.AttemptDuplicate()
		return res, nil
	}
	s.mon.AttemptProcessed(s.now().Sub(start))

	s.maybeRecenter(ctx)
	return res, nil
}

func (s *Service) applyScope(ctx context.Context, a Attempt, scope store.Scope, weight float64) (*Outcome, bool, error) {
	var lastErr error
	for i := 0; i < conflictRetries; i++ {
		user, err := s.loadOrInit(ctx, a.UserID, scope, true)
		if err != nil {
			return nil, false, err
		}
		question, err := s.loadOrInit(ctx, a.QuestionID, scope, false)
		if err != nil {
			return nil, false, err
		}

		out, err := ComputeUpdate(s.cfg, toState(user), toState(question), a.Correct, a.OccurredAt, weight)
		if err != nil {
			return nil, false, err
		}

		upd := &store.AttemptUpdate{
			User:         *user,
			Question:     *question,
			UserPost:     ratingRow(a.UserID, scope, out.User),
			QuestionPost: ratingRow(a.QuestionID, scope, out.Question),
			Entry: store.UpdateLogEntry{
				AttemptID:               a.AttemptID,
				UserID:                  a.UserID,
				QuestionID:              a.QuestionID,
				Scope:                   scope,
				Score:                   a.Correct,
				PPred:                   out.PPred,
				UserRatingPre:           user.Rating,
				UserRatingPost:          out.User.Rating,
				UserUncertaintyPre:      user.Uncertainty,
				UserUncertaintyPost:     out.User.Uncertainty,
				QuestionRatingPre:       question.Rating,
				QuestionRatingPost:      out.Question.Rating,
				QuestionUncertaintyPre:  question.Uncertainty,
				QuestionUncertaintyPost: out.Question.Uncertainty,
				KUser:                   out.KUser,
				KQuestion:               out.KQuestion,
				GuessFloor:              s.cfg.GuessFloor,
				Scale:                   s.cfg.Scale,
				OptionCount:             a.OptionCount,
				OccurredAt:              a.OccurredAt,
			},
		}

		err = s.ratings.ApplyAttempt(ctx, upd)
		switch {
		case err == nil:
			return out, false, nil
		case errors.Is(err, store.ErrDuplicateAttempt):
			// Replay of an already-applied attempt: nothing written,
			// report the state as currently stored.
			return &Outcome{
				PPred:    out.PPred,
				User:     toState(user),
				Question: toState(question),
			}, true, nil
		case errors.Is(err, store.ErrVersionConflict):
			s.mon.VersionConflict()
			lastErr = err
			continue
		default:
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("gave up after %d conflicts: %w", conflictRetries, lastErr)
}

// GetRating returns a user's rating row, synthesizing the configured
// initial values when the entity has never been seen in this scope.
func (s *Service) GetRating(ctx context.Context, userID string, scope store.Scope) (*store.Rating, error) {
	return s.loadOrInit(ctx, userID, scope, true)
}

// GetQuestionRating is GetRating for the question side.
func (s *Service) GetQuestionRating(ctx context.Context, questionID string, scope store.Scope) (*store.Rating, error) {
	return s.loadOrInit(ctx, questionID, scope, false)
}

func (s *Service) loadOrInit(ctx context.Context, entityID string, scope store.Scope, user bool) (*store.Rating, error) {
	var (
		row *store.Rating
		err error
	)
	if user {
		row, err = s.ratings.UserRating(ctx, entityID, scope)
	} else {
		row, err = s.ratings.QuestionRating(ctx, entityID, scope)
	}
	if err != nil {
		return nil, err
	}
	if row != nil {
		return row, nil
	}

	uncInit := s.cfg.UncInitQuestion
	if user {
		uncInit = s.cfg.UncInitUser
	}
	return &store.Rating{
		EntityID:    entityID,
		Scope:       scope,
		Rating:      s.cfg.RatingInit,
		Uncertainty: uncInit,
		NAttempts:   0,
		Version:     0,
	}, nil
}

func (s *Service) maybeRecenter(ctx context.Context) {
	if s.drift == nil || !s.cfg.RecenterEnabled || s.cfg.RecenterEveryNUpdates <= 0 {
		return
	}
	n := s.updates.Add(1)
	if n%int64(s.cfg.RecenterEveryNUpdates) != 0 {
		return
	}
	res, err := s.drift.CheckAndRecenter(ctx, store.Global(), s.cfg.RecenterThreshold)
	if err != nil {
		s.log.Error(ctx, "periodic drift check failed", logger.Error(err))
		return
	}
	if res.Recentered {
		s.log.Info(ctx, "periodic recenter applied",
			logger.Float64("mean", res.Mean),
			logger.Int("questions", res.QuestionsUpdated),
			logger.Int("users", res.UsersUpdated))
	}
}

func validateAttempt(a *Attempt) error {
	switch {
	case a.AttemptID == "":
		return &ValidationError{Field: "attempt_id", Reason: "must not be empty"}
	case a.UserID == "":
		return &ValidationError{Field: "user_id", Reason: "must not be empty"}
	case a.QuestionID == "":
		return &ValidationError{Field: "question_id", Reason: "must not be empty"}
	}
	if a.OptionCount <= 0 {
		a.OptionCount = defaultOptionCount
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}
	return nil
}

func toState(r *store.Rating) State {
	return State{
		Rating:      r.Rating,
		Uncertainty: r.Uncertainty,
		NAttempts:   r.NAttempts,
		LastSeenAt:  r.LastSeenAt,
	}
}

func ratingRow(entityID string, scope store.Scope, s State) store.Rating {
	return store.Rating{
		EntityID:    entityID,
		Scope:       scope,
		Rating:      s.Rating,
		Uncertainty: s.Uncertainty,
		NAttempts:   s.NAttempts,
		LastSeenAt:  s.LastSeenAt,
	}
}

func isNonFinite(err error) bool {
	var nf *NonFiniteRatingError
	return errors.As(err, &nf)
}
