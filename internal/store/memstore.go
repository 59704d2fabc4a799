package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemStore is an in-memory implementation of the repo interfaces.
// It mirrors the SQL-backed semantics (version checks, duplicate-attempt
// detection, snapshot-consistent recenter) so domain logic can be tested
// without a database.
type MemStore struct {
	mu        sync.Mutex
	users     map[ratingKey]*Rating
	questions map[ratingKey]*Rating
	log       []UpdateLogEntry
	logKeys   map[logKey]bool
	runs      map[string]*IrtRun
	items     map[string][]ItemParams
	abilities map[string][]UserAbility
}

type ratingKey struct {
	entityID  string
	scopeType ScopeType
	themeID   string
}

type logKey struct {
	attemptID string
	scopeType ScopeType
	themeID   string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:     make(map[ratingKey]*Rating),
		questions: make(map[ratingKey]*Rating),
		logKeys:   make(map[logKey]bool),
		runs:      make(map[string]*IrtRun),
		items:     make(map[string][]ItemParams),
		abilities: make(map[string][]UserAbility),
	}
}

func key(entityID string, scope Scope) ratingKey {
	return ratingKey{entityID: entityID, scopeType: scope.Type, themeID: scope.ThemeID}
}

func (m *MemStore) UserRating(ctx context.Context, entityID string, scope Scope) (*Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.users[key(entityID, scope)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *MemStore) QuestionRating(ctx context.Context, entityID string, scope Scope) (*Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.questions[key(entityID, scope)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *MemStore) ApplyAttempt(ctx context.Context, upd *AttemptUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lk := logKey{
		attemptID: upd.Entry.AttemptID,
		scopeType: upd.Entry.Scope.Type,
		themeID:   upd.Entry.Scope.ThemeID,
	}
	if m.logKeys[lk] {
		return ErrDuplicateAttempt
	}

	// Validate both version checks before mutating anything, so a
	// conflict leaves the store untouched.
	if err := m.checkVersion(m.users, &upd.User); err != nil {
		return err
	}
	if err := m.checkVersion(m.questions, &upd.Question); err != nil {
		return err
	}

	m.putRating(m.users, &upd.User, &upd.UserPost)
	m.putRating(m.questions, &upd.Question, &upd.QuestionPost)

	entry := upd.Entry
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.log = append(m.log, entry)
	m.logKeys[lk] = true
	return nil
}

func (m *MemStore) checkVersion(table map[ratingKey]*Rating, pre *Rating) error {
	cur, ok := table[key(pre.EntityID, pre.Scope)]
	if pre.Version == 0 {
		if ok {
			return ErrVersionConflict
		}
		return nil
	}
	if !ok || cur.Version != pre.Version {
		return ErrVersionConflict
	}
	return nil
}

func (m *MemStore) putRating(table map[ratingKey]*Rating, pre, post *Rating) {
	cp := *post
	cp.Version = pre.Version + 1
	table[key(post.EntityID, post.Scope)] = &cp
}

func (m *MemStore) MeanQuestionRating(ctx context.Context, scope Scope) (float64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meanLocked(scope)
}

func (m *MemStore) meanLocked(scope Scope) (float64, int, error) {
	sum, n := 0.0, 0
	for k, r := range m.questions {
		if k.scopeType == scope.Type && k.themeID == scope.ThemeID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return sum / float64(n), n, nil
}

func (m *MemStore) Recenter(ctx context.Context, scope Scope, minAbs float64) (*RecenterStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mean, n, _ := m.meanLocked(scope)
	stats := &RecenterStats{Mean: mean}
	if n == 0 || (mean < minAbs && mean > -minAbs) {
		return stats, nil
	}

	for k, r := range m.questions {
		if k.scopeType == scope.Type && k.themeID == scope.ThemeID {
			r.Rating -= mean
			r.Version++
			stats.QuestionsUpdated++
		}
	}
	for k, r := range m.users {
		if k.scopeType == scope.Type && k.themeID == scope.ThemeID {
			r.Rating -= mean
			r.Version++
			stats.UsersUpdated++
		}
	}
	stats.Recentered = true
	return stats, nil
}

func (m *MemStore) Window(ctx context.Context, w LogWindow) ([]UpdateLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []UpdateLogEntry
	for _, e := range m.log {
		if !w.From.IsZero() && e.OccurredAt.Before(w.From) {
			continue
		}
		if !w.To.IsZero() && !e.OccurredAt.Before(w.To) {
			continue
		}
		if w.UserID != "" && e.UserID != w.UserID {
			continue
		}
		if w.Scope != nil && (e.Scope.Type != w.Scope.Type || e.Scope.ThemeID != w.Scope.ThemeID) {
			continue
		}
		out = append(out, e)
		if w.Limit > 0 && len(out) >= w.Limit {
			break
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

func (m *MemStore) CreateRun(ctx context.Context, run *IrtRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[run.ID]; ok {
		return fmt.Errorf("run %s already exists", run.ID)
	}
	cp := *run
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	m.runs[run.ID] = &cp
	return nil
}

func (m *MemStore) Run(ctx context.Context, id string) (*IrtRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	cp := *run
	return &cp, nil
}

func (m *MemStore) ListRuns(ctx context.Context, f RunFilter) ([]IrtRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []IrtRun
	for _, run := range m.runs {
		if f.ModelType != "" && run.ModelType != f.ModelType {
			continue
		}
		if f.Status != "" && run.Status != f.Status {
			continue
		}
		out = append(out, *run)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemStore) MarkRunning(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok || run.Status != "queued" {
		return ErrRunNotFound
	}
	run.Status = "running"
	t := at
	run.StartedAt = &t
	return nil
}

func (m *MemStore) MarkFailed(ctx context.Context, id string, at time.Time, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok {
		return ErrRunNotFound
	}
	delete(m.items, id)
	delete(m.abilities, id)
	run.Status = "failed"
	run.Error = msg
	t := at
	run.FinishedAt = &t
	return nil
}

func (m *MemStore) SaveResults(ctx context.Context, id string, at time.Time, metrics map[string]any,
	artifactDir string, items []ItemParams, abilities []UserAbility) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok || run.Status != "running" {
		return ErrRunNotFound
	}
	m.items[id] = append([]ItemParams(nil), items...)
	m.abilities[id] = append([]UserAbility(nil), abilities...)
	run.Status = "succeeded"
	run.Metrics = metrics
	run.ArtifactDir = artifactDir
	t := at
	run.FinishedAt = &t
	return nil
}

func (m *MemStore) ItemParams(ctx context.Context, runID string) ([]ItemParams, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]ItemParams(nil), m.items[runID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (m *MemStore) Abilities(ctx context.Context, runID string) ([]UserAbility, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]UserAbility(nil), m.abilities[runID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

var (
	_ RatingRepo    = (*MemStore)(nil)
	_ UpdateLogRepo = (*MemStore)(nil)
	_ IrtRepo       = (*MemStore)(nil)
)
