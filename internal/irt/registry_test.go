package irt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
)

func seedHistory(t *testing.T, ms *store.MemStore, nUsers, nItems int) {
	t.Helper()
	s := newSeeder(t, ms)
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for u := 0; u < nUsers; u++ {
		for q := 0; q < nItems; q++ {
			// A fixed pattern: stronger users and easier items succeed.
			correct := (u+2*q)%3 != 0
			s.attempt(fmt.Sprintf("u%02d", u), fmt.Sprintf("q%02d", q), correct,
				base.Add(time.Duration(u*nItems+q)*time.Minute), store.Global(), 4)
		}
	}
}

func newTestRunner(t *testing.T, ms *store.MemStore, opts ...RunnerOption) *Runner {
	t.Helper()
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	opts = append(opts, WithRunnerClock(func() time.Time { return now }))
	return NewRunner(ms, ms, logger.Nop(), opts...)
}

func TestRunner_ExecuteSuccess(t *testing.T) {
	ms := store.NewMemStore()
	seedHistory(t, ms, 20, 6)
	dir := t.TempDir()
	r := newTestRunner(t, ms, WithArtifactRoot(dir), WithWarmStart(ms, 400))
	ctx := context.Background()

	run, err := r.Submit(ctx, Model2PL, DatasetSpec{SplitSeed: 7}, 7, "nightly shadow fit")
	require.NoError(t, err)
	assert.Equal(t, "queued", run.Status)

	done, err := r.Execute(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "succeeded", done.Status)
	require.NotNil(t, done.FinishedAt)
	assert.Equal(t, filepath.Join(dir, run.ID), done.ArtifactDir)

	assert.EqualValues(t, 6, done.Metrics["n_items"])
	assert.EqualValues(t, 20, done.Metrics["n_users"])
	assert.Contains(t, done.Metrics, "neg_loglik")
	assert.Contains(t, done.Metrics, "validation_log_loss")

	items, err := r.Params(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, items, 6)
	abilities, err := r.Abilities(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, abilities, 20)

	for _, name := range []string{"summary.json", "report.txt"} {
		_, err := os.Stat(filepath.Join(done.ArtifactDir, name))
		assert.NoError(t, err, "artifact %s", name)
	}
}

func TestRunner_EmptyDatasetFailsRun(t *testing.T) {
	ms := store.NewMemStore()
	r := newTestRunner(t, ms)
	ctx := context.Background()

	run, err := r.Submit(ctx, Model3PL, DatasetSpec{SplitSeed: 1}, 1, "")
	require.NoError(t, err)

	_, err = r.Execute(ctx, run.ID)
	require.ErrorIs(t, err, ErrEmptyDataset)

	failed, err := r.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", failed.Status)
	assert.NotEmpty(t, failed.Error)

	items, err := r.Params(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "a failed run must leave no parameters")
}

func TestRunner_ReproducibleAcrossRuns(t *testing.T) {
	ms := store.NewMemStore()
	seedHistory(t, ms, 15, 4)
	r := newTestRunner(t, ms)
	ctx := context.Background()

	spec := DatasetSpec{SplitSeed: 99}
	first, err := r.Submit(ctx, Model2PL, spec, 99, "")
	require.NoError(t, err)
	second, err := r.Submit(ctx, Model2PL, spec, 99, "")
	require.NoError(t, err)

	_, err = r.Execute(ctx, first.ID)
	require.NoError(t, err)
	_, err = r.Execute(ctx, second.ID)
	require.NoError(t, err)

	itemsA, err := r.Params(ctx, first.ID)
	require.NoError(t, err)
	itemsB, err := r.Params(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, itemsB, len(itemsA))
	for i := range itemsA {
		assert.Equal(t, itemsA[i].QuestionID, itemsB[i].QuestionID)
		assert.InDelta(t, itemsA[i].A, itemsB[i].A, 1e-9)
		assert.InDelta(t, itemsA[i].B, itemsB[i].B, 1e-9)
	}
}

func TestRunner_List(t *testing.T) {
	ms := store.NewMemStore()
	r := newTestRunner(t, ms)
	ctx := context.Background()

	_, err := r.Submit(ctx, Model2PL, DatasetSpec{SplitSeed: 1}, 1, "")
	require.NoError(t, err)
	_, err = r.Submit(ctx, Model3PL, DatasetSpec{SplitSeed: 2}, 2, "")
	require.NoError(t, err)

	all, err := r.List(ctx, store.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only3pl, err := r.List(ctx, store.RunFilter{ModelType: "3pl"})
	require.NoError(t, err)
	require.Len(t, only3pl, 1)
	assert.Equal(t, "3pl", only3pl[0].ModelType)
}

func TestRunner_SubmitRejectsUnknownModel(t *testing.T) {
	r := newTestRunner(t, store.NewMemStore())
	_, err := r.Submit(context.Background(), ModelType("rasch"), DatasetSpec{}, 1, "")
	require.Error(t, err)
}
