package irt

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptly/calibrant/internal/store"
)

// seeder drives attempts through MemStore.ApplyAttempt, tracking row
// versions so every write passes the optimistic check.
type seeder struct {
	t        *testing.T
	ms       *store.MemStore
	versions map[string]int64
	n        int
}

func newSeeder(t *testing.T, ms *store.MemStore) *seeder {
	return &seeder{t: t, ms: ms, versions: make(map[string]int64)}
}

func (s *seeder) attempt(user, question string, correct bool, at time.Time, scope store.Scope, optionCount int) {
	s.t.Helper()
	s.n++
	uk := "u/" + scope.Type.String() + "/" + scope.ThemeID + "/" + user
	qk := "q/" + scope.Type.String() + "/" + scope.ThemeID + "/" + question
	err := s.ms.ApplyAttempt(context.Background(), &store.AttemptUpdate{
		User:         store.Rating{EntityID: user, Scope: scope, Version: s.versions[uk]},
		Question:     store.Rating{EntityID: question, Scope: scope, Version: s.versions[qk]},
		UserPost:     store.Rating{EntityID: user, Scope: scope},
		QuestionPost: store.Rating{EntityID: question, Scope: scope},
		Entry: store.UpdateLogEntry{
			AttemptID:   fmt.Sprintf("att-%04d", s.n),
			UserID:      user,
			QuestionID:  question,
			Scope:       scope,
			Score:       correct,
			PPred:       0.5,
			OptionCount: optionCount,
			OccurredAt:  at,
		},
	})
	require.NoError(s.t, err)
	s.versions[uk]++
	s.versions[qk]++
}

func TestBuild_KeepsFirstAttemptPerPair(t *testing.T) {
	ms := store.NewMemStore()
	s := newSeeder(t, ms)
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	s.attempt("u1", "q1", true, base, store.Global(), 4)
	s.attempt("u1", "q1", false, base.Add(time.Hour), store.Global(), 4)
	s.attempt("u2", "q1", false, base.Add(2*time.Hour), store.Global(), 4)

	d, err := NewDatasetBuilder(ms).Build(context.Background(), DatasetSpec{SplitSeed: 1})
	require.NoError(t, err)

	require.Equal(t, 2, d.NObs())
	for _, r := range append(append([]Row{}, d.Train...), d.Valid...) {
		if r.UserID == "u1" {
			assert.True(t, r.Correct, "u1's retained row must be the first attempt")
			assert.True(t, r.OccurredAt.Equal(base))
		}
	}
}

func TestBuild_DeterministicSplit(t *testing.T) {
	ms := store.NewMemStore()
	s := newSeeder(t, ms)
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for u := 0; u < 5; u++ {
		for q := 0; q < 4; q++ {
			s.attempt(fmt.Sprintf("u%d", u), fmt.Sprintf("q%d", q), (u+q)%2 == 0,
				base.Add(time.Duration(u*4+q)*time.Minute), store.Global(), 4)
		}
	}

	spec := DatasetSpec{SplitSeed: 42, TrainFrac: 0.8}
	b := NewDatasetBuilder(ms)
	first, err := b.Build(context.Background(), spec)
	require.NoError(t, err)
	second, err := b.Build(context.Background(), spec)
	require.NoError(t, err)

	require.Equal(t, len(first.Train), len(second.Train))
	for i := range first.Train {
		assert.Equal(t, first.Train[i], second.Train[i])
	}
	for i := range first.Valid {
		assert.Equal(t, first.Valid[i], second.Valid[i])
	}
	assert.Equal(t, 16, len(first.Train))
	assert.Equal(t, 4, len(first.Valid))
}

func TestBuild_MinAttemptFilters(t *testing.T) {
	ms := store.NewMemStore()
	s := newSeeder(t, ms)
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	// q-rare is answered once, q-common by three users.
	s.attempt("u1", "q-common", true, base, store.Global(), 4)
	s.attempt("u2", "q-common", false, base.Add(time.Minute), store.Global(), 4)
	s.attempt("u3", "q-common", true, base.Add(2*time.Minute), store.Global(), 4)
	s.attempt("u1", "q-rare", false, base.Add(3*time.Minute), store.Global(), 4)

	d, err := NewDatasetBuilder(ms).Build(context.Background(),
		DatasetSpec{SplitSeed: 1, MinItemAttempts: 2})
	require.NoError(t, err)

	require.Len(t, d.Items, 1)
	assert.Equal(t, "q-common", d.Items[0].QuestionID)
	assert.Equal(t, 3, d.Items[0].NObs)
}

func TestBuild_OptionCountDefaultsToFive(t *testing.T) {
	ms := store.NewMemStore()
	s := newSeeder(t, ms)
	s.attempt("u1", "q1", true, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), store.Global(), 0)

	d, err := NewDatasetBuilder(ms).Build(context.Background(), DatasetSpec{SplitSeed: 1})
	require.NoError(t, err)
	require.Len(t, d.Items, 1)
	assert.Equal(t, 5, d.Items[0].OptionCount)
}

func TestBuild_ThemeScopeIsolated(t *testing.T) {
	ms := store.NewMemStore()
	s := newSeeder(t, ms)
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.attempt("u1", "q1", true, base, store.Global(), 4)
	s.attempt("u1", "q2", false, base.Add(time.Minute), store.Theme("algebra"), 4)

	d, err := NewDatasetBuilder(ms).Build(context.Background(),
		DatasetSpec{SplitSeed: 1, ThemeID: "algebra"})
	require.NoError(t, err)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "q2", d.Items[0].QuestionID)
}

func TestBuild_EmptyWindow(t *testing.T) {
	_, err := NewDatasetBuilder(store.NewMemStore()).Build(context.Background(),
		DatasetSpec{SplitSeed: 1})
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDatasetSpec_MapRoundTrip(t *testing.T) {
	spec := DatasetSpec{
		From:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:              time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ThemeID:         "geometry",
		MinUserAttempts: 3,
		MinItemAttempts: 5,
		TrainFrac:       0.75,
		SplitSeed:       1234,
	}

	got, err := SpecFromMap(spec.ToMap())
	require.NoError(t, err)
	assert.True(t, got.From.Equal(spec.From))
	assert.True(t, got.To.Equal(spec.To))
	assert.Equal(t, spec.ThemeID, got.ThemeID)
	assert.Equal(t, spec.MinUserAttempts, got.MinUserAttempts)
	assert.Equal(t, spec.MinItemAttempts, got.MinItemAttempts)
	assert.InDelta(t, spec.TrainFrac, got.TrainFrac, 1e-12)
	assert.Equal(t, spec.SplitSeed, got.SplitSeed)
}
