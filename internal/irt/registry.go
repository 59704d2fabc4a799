package irt

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
	"github.com/adaptly/calibrant/pkg/metrics"
)

// Runner owns the run lifecycle: it creates queued runs, executes
// them through the dataset builder and fitter, and persists the
// outcome. It never touches the online rating tables.
type Runner struct {
	runs    store.IrtRepo
	builder *DatasetBuilder

	// ratings and scale enable warm-starting item difficulty from the
	// online engine; both optional.
	ratings store.RatingRepo
	scale   float64

	artifactRoot string

	log   logger.Logger
	mon   *metrics.Manager
	clock func() time.Time
	newID func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWarmStart seeds initial item difficulty from the online rating
// table, dividing by the engine's Elo scale constant.
func WithWarmStart(ratings store.RatingRepo, scale float64) RunnerOption {
	return func(r *Runner) {
		r.ratings = ratings
		r.scale = scale
	}
}

// WithArtifactRoot stores per-run artifact directories under dir.
func WithArtifactRoot(dir string) RunnerOption {
	return func(r *Runner) { r.artifactRoot = dir }
}

// WithRunnerMetrics attaches run counters.
func WithRunnerMetrics(m *metrics.Manager) RunnerOption {
	return func(r *Runner) { r.mon = m }
}

// WithRunnerClock overrides the time source, used by tests.
func WithRunnerClock(fn func() time.Time) RunnerOption {
	return func(r *Runner) { r.clock = fn }
}

// NewRunner wires a Runner over the run store and attempt history.
func NewRunner(runs store.IrtRepo, logs store.UpdateLogRepo, lg logger.Logger, opts ...RunnerOption) *Runner {
	if lg == nil {
		lg = logger.Nop()
	}
	r := &Runner{
		runs:    runs,
		builder: NewDatasetBuilder(logs),
		log:     lg.Named("irt"),
		clock:   time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit records a new queued run and returns it. Execution is a
// separate step so runs can be queued ahead of a batch window.
func (r *Runner) Submit(ctx context.Context, model ModelType, spec DatasetSpec, seed int64, notes string) (*store.IrtRun, error) {
	if _, err := ParseModelType(string(model)); err != nil {
		return nil, err
	}
	run := &store.IrtRun{
		ID:          r.newID(),
		ModelType:   string(model),
		Status:      "queued",
		Seed:        seed,
		DatasetSpec: spec.ToMap(),
		Notes:       notes,
		CreatedAt:   r.clock().UTC(),
	}
	if err := r.runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	r.log.Info(ctx, "irt run queued",
		logger.String("run_id", run.ID),
		logger.String("model", run.ModelType),
		logger.Int64("seed", run.Seed))
	return run, nil
}

// Execute runs a queued run to completion. Any failure marks the run
// failed with the error text; no partial parameters are ever left
// behind. The returned run reflects the final state.
func (r *Runner) Execute(ctx context.Context, id string) (*store.IrtRun, error) {
	run, err := r.runs.Run(ctx, id)
	if err != nil {
		return nil, err
	}
	spec, err := SpecFromMap(run.DatasetSpec)
	if err != nil {
		return nil, r.fail(ctx, id, fmt.Errorf("decode dataset spec: %w", err))
	}
	if err := r.runs.MarkRunning(ctx, id, r.clock().UTC()); err != nil {
		return nil, err
	}

	dataset, err := r.builder.Build(ctx, spec)
	if err != nil {
		return nil, r.fail(ctx, id, err)
	}

	warm, err := r.warmStart(ctx, dataset, spec)
	if err != nil {
		return nil, r.fail(ctx, id, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, r.fail(ctx, id, err)
	}

	model, _ := ParseModelType(run.ModelType)
	res, err := Fit(dataset, FitOptions{
		Model:     model,
		Seed:      run.Seed,
		WarmStart: warm,
	})
	if err != nil {
		return nil, r.fail(ctx, id, err)
	}

	artifactDir := ""
	if r.artifactRoot != "" {
		artifactDir = filepath.Join(r.artifactRoot, run.ID)
		if err := WriteArtifacts(artifactDir, run, dataset, res); err != nil {
			return nil, r.fail(ctx, id, err)
		}
	}

	summary := runMetrics(dataset, res)
	if err := r.runs.SaveResults(ctx, id, r.clock().UTC(), summary, artifactDir, res.Items, res.Abilities); err != nil {
		return nil, r.fail(ctx, id, err)
	}
	r.mon.IrtRunFinished("succeeded")
	r.log.Info(ctx, "irt run succeeded",
		logger.String("run_id", id),
		logger.Int("n_items", len(res.Items)),
		logger.Int("n_users", len(res.Abilities)),
		logger.Float64("neg_loglik", res.NegLogLik))
	return r.runs.Run(ctx, id)
}

func (r *Runner) fail(ctx context.Context, id string, cause error) error {
	if err := r.runs.MarkFailed(ctx, id, r.clock().UTC(), cause.Error()); err != nil {
		r.log.Error(ctx, "marking irt run failed", logger.String("run_id", id), logger.Error(err))
	}
	r.mon.IrtRunFinished("failed")
	r.log.Warn(ctx, "irt run failed", logger.String("run_id", id), logger.Error(cause))
	return cause
}

func (r *Runner) warmStart(ctx context.Context, d *Dataset, spec DatasetSpec) (map[string]float64, error) {
	if r.ratings == nil || r.scale <= 0 {
		return nil, nil
	}
	scope := spec.scope()
	warm := make(map[string]float64, len(d.Items))
	for _, it := range d.Items {
		row, err := r.ratings.QuestionRating(ctx, it.QuestionID, scope)
		if err != nil {
			return nil, fmt.Errorf("warm start for %s: %w", it.QuestionID, err)
		}
		if row != nil {
			warm[it.QuestionID] = row.Rating / r.scale
		}
	}
	return warm, nil
}

func runMetrics(d *Dataset, res *FitResult) map[string]any {
	return map[string]any{
		"neg_loglik":          res.NegLogLik,
		"train_log_loss":      res.TrainLogLoss,
		"validation_log_loss": res.ValidLogLoss,
		"iterations":          res.Iterations,
		"n_train":             len(d.Train),
		"n_validation":        len(d.Valid),
		"n_users":             len(d.Users),
		"n_items":             len(d.Items),
	}
}

// Get returns one run record.
func (r *Runner) Get(ctx context.Context, id string) (*store.IrtRun, error) {
	return r.runs.Run(ctx, id)
}

// List returns run records newest first.
func (r *Runner) List(ctx context.Context, f store.RunFilter) ([]store.IrtRun, error) {
	return r.runs.ListRuns(ctx, f)
}

// Params returns the fitted item parameters of a run.
func (r *Runner) Params(ctx context.Context, id string) ([]store.ItemParams, error) {
	return r.runs.ItemParams(ctx, id)
}

// Abilities returns the fitted user abilities of a run.
func (r *Runner) Abilities(ctx context.Context, id string) ([]store.UserAbility, error) {
	return r.runs.Abilities(ctx, id)
}
