package store

import (
	"context"
	"errors"
	"time"
)

// ScopeType is the closed set of rating scopes.
type ScopeType int

const (
	// ScopeGlobal is the single cross-theme rating every entity has.
	ScopeGlobal ScopeType = iota
	// ScopeTheme is a per-theme rating; an entity may have many.
	ScopeTheme
)

func (s ScopeType) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Scope identifies which rating row of an entity an operation targets.
type Scope struct {
	Type    ScopeType
	ThemeID string // empty for the global scope
}

// Global returns the global scope.
func Global() Scope {
	return Scope{Type: ScopeGlobal}
}

// Theme returns a theme scope for the given theme.
func Theme(themeID string) Scope {
	return Scope{Type: ScopeTheme, ThemeID: themeID}
}

// Rating is one ability or difficulty row.
type Rating struct {
	EntityID    string
	Scope       Scope
	Rating      float64
	Uncertainty float64
	NAttempts   int
	LastSeenAt  *time.Time
	Version     int64 // 0 means the row does not exist yet
}

// UpdateLogEntry is the immutable audit row written with every update.
type UpdateLogEntry struct {
	AttemptID  string
	UserID     string
	QuestionID string
	Scope      Scope
	Score      bool
	PPred      float64

	UserRatingPre           float64
	UserRatingPost          float64
	UserUncertaintyPre      float64
	UserUncertaintyPost     float64
	QuestionRatingPre       float64
	QuestionRatingPost      float64
	QuestionUncertaintyPre  float64
	QuestionUncertaintyPost float64

	KUser     float64
	KQuestion float64

	GuessFloor  float64
	Scale       float64
	OptionCount int

	OccurredAt time.Time
	CreatedAt  time.Time
}

// AttemptUpdate carries one scope's rating transition plus its audit row.
// User.Version / Question.Version are the versions the new values were
// computed from; version 0 means "create the row".
type AttemptUpdate struct {
	User         Rating
	Question     Rating
	UserPost     Rating
	QuestionPost Rating
	Entry        UpdateLogEntry
}

// RecenterStats reports what a recenter transaction did.
type RecenterStats struct {
	Mean             float64
	Recentered       bool
	QuestionsUpdated int
	UsersUpdated     int
}

var (
	// ErrVersionConflict means a concurrent writer touched a rating row
	// between read and write; the caller should re-read and retry.
	ErrVersionConflict = errors.New("rating version conflict")

	// ErrDuplicateAttempt means this (attempt, scope) was already applied;
	// re-application is a no-op.
	ErrDuplicateAttempt = errors.New("attempt already applied")

	// ErrRunNotFound means no IRT run exists with the given id.
	ErrRunNotFound = errors.New("irt run not found")
)

// RatingRepo provides transactional access to the rating tables.
type RatingRepo interface {
	// UserRating returns the row, or nil when the entity has no rating
	// in this scope yet.
	UserRating(ctx context.Context, entityID string, scope Scope) (*Rating, error)

	// QuestionRating returns the row, or nil when absent.
	QuestionRating(ctx context.Context, entityID string, scope Scope) (*Rating, error)

	// ApplyAttempt writes both post-ratings and the audit row in one
	// transaction. Returns ErrVersionConflict if either row moved since
	// it was read, ErrDuplicateAttempt if the audit row already exists.
	// No partial write is ever observable.
	ApplyAttempt(ctx context.Context, upd *AttemptUpdate) error

	// MeanQuestionRating returns the mean question rating and row count
	// for a scope. Zero rows yields (0, 0, nil).
	MeanQuestionRating(ctx context.Context, scope Scope) (float64, int, error)

	// Recenter subtracts the scope's mean question rating from every
	// question and user rating in the scope, in one transaction against
	// a consistent snapshot. When |mean| < minAbs nothing is written.
	Recenter(ctx context.Context, scope Scope, minAbs float64) (*RecenterStats, error)
}

// LogWindow filters update-log reads.
type LogWindow struct {
	From   time.Time // zero = unbounded
	To     time.Time // zero = unbounded
	UserID string    // empty = all users
	Scope  *Scope    // nil = all scopes
	Limit  int       // 0 = unlimited
}

// UpdateLogRepo reads the append-only audit log.
type UpdateLogRepo interface {
	Window(ctx context.Context, w LogWindow) ([]UpdateLogEntry, error)
}

// IrtRun is one offline calibration run record.
type IrtRun struct {
	ID          string
	ModelType   string // "2pl" or "3pl"
	Status      string // "queued", "running", "succeeded", "failed"
	Seed        int64
	DatasetSpec map[string]any
	Metrics     map[string]any
	Error       string
	Notes       string
	ArtifactDir string
	CreatedAt   time.Time
	StartedAt   *time.Time
	FinishedAt  *time.Time
}

// ItemParams is the fitted parameter triple for one question in one run.
type ItemParams struct {
	QuestionID string
	A          float64 // discrimination, > 0
	B          float64 // difficulty
	C          float64 // guessing, 0 for 2PL
	SEA        float64
	SEB        float64
	NObs       int
}

// UserAbility is the fitted ability for one user in one run.
type UserAbility struct {
	UserID  string
	Theta   float64
	ThetaSE float64
	NObs    int
}

// RunFilter narrows ListRuns.
type RunFilter struct {
	ModelType string // empty = any
	Status    string // empty = any
	Limit     int    // 0 = repo default
}

// IrtRepo owns run lifecycle and the write-once parameter snapshots.
type IrtRepo interface {
	CreateRun(ctx context.Context, run *IrtRun) error
	Run(ctx context.Context, id string) (*IrtRun, error)
	ListRuns(ctx context.Context, f RunFilter) ([]IrtRun, error)

	// MarkRunning transitions queued -> running.
	MarkRunning(ctx context.Context, id string, at time.Time) error

	// MarkFailed records the error text and transitions to failed.
	MarkFailed(ctx context.Context, id string, at time.Time, msg string) error

	// SaveResults atomically replaces the run's full parameter set
	// (delete+reinsert scoped to the run) and transitions to succeeded.
	SaveResults(ctx context.Context, id string, at time.Time, metrics map[string]any,
		artifactDir string, items []ItemParams, abilities []UserAbility) error

	ItemParams(ctx context.Context, runID string) ([]ItemParams, error)
	Abilities(ctx context.Context, runID string) ([]UserAbility, error)
}
