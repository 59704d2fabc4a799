package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adaptly/calibrant/ent"
	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/irtrun"
)

const defaultListLimit = 50

// irtRepo implements IrtRepo using the ent client.
type irtRepo struct {
	client *ent.Client
}

func (r *irtRepo) CreateRun(ctx context.Context, run *IrtRun) error {
	_, err := r.client.IrtRun.Create().
		SetID(run.ID).
		SetModelType(irtrun.ModelType(run.ModelType)).
		SetStatus(irtrun.Status(run.Status)).
		SetSeed(run.Seed).
		SetDatasetSpec(run.DatasetSpec).
		SetNotes(run.Notes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create irt run: %w", err)
	}
	return nil
}

func (r *irtRepo) Run(ctx context.Context, id string) (*IrtRun, error) {
	row, err := r.client.IrtRun.Query().Where(irtrun.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("query irt run: %w", err)
	}
	return runFromEnt(row), nil
}

func (r *irtRepo) ListRuns(ctx context.Context, f RunFilter) ([]IrtRun, error) {
	q := r.client.IrtRun.Query()
	if f.ModelType != "" {
		q = q.Where(irtrun.ModelTypeEQ(irtrun.ModelType(f.ModelType)))
	}
	if f.Status != "" {
		q = q.Where(irtrun.StatusEQ(irtrun.Status(f.Status)))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := q.Order(ent.Desc(irtrun.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list irt runs: %w", err)
	}
	out := make([]IrtRun, 0, len(rows))
	for _, row := range rows {
		out = append(out, *runFromEnt(row))
	}
	return out, nil
}

func (r *irtRepo) MarkRunning(ctx context.Context, id string, at time.Time) error {
	n, err := r.client.IrtRun.Update().
		Where(irtrun.ID(id), irtrun.StatusEQ(irtrun.Status("queued"))).
		SetStatus(irtrun.Status("running")).
		SetStartedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark run running: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s is not queued: %w", id, ErrRunNotFound)
	}
	return nil
}

func (r *irtRepo) MarkFailed(ctx context.Context, id string, at time.Time, msg string) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		// Discard any partial parameter state from the failed attempt.
		if err := deleteRunParams(ctx, tx, id); err != nil {
			return err
		}
		n, err := tx.IrtRun.Update().
			Where(irtrun.ID(id)).
			SetStatus(irtrun.Status("failed")).
			SetError(msg).
			SetFinishedAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("mark run failed: %w", err)
		}
		if n == 0 {
			return ErrRunNotFound
		}
		return nil
	})
}

func (r *irtRepo) SaveResults(ctx context.Context, id string, at time.Time, metrics map[string]any,
	artifactDir string, items []ItemParams, abilities []UserAbility) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		// Write-once semantics: the full parameter set is replaced by
		// delete+reinsert scoped to the run, never partially updated.
		if err := deleteRunParams(ctx, tx, id); err != nil {
			return err
		}

		itemBuilders := make([]*ent.IrtItemParamCreate, 0, len(items))
		for _, it := range items {
			itemBuilders = append(itemBuilders, tx.IrtItemParam.Create().
				SetRunID(id).
				SetQuestionID(it.QuestionID).
				SetDiscrimination(it.A).
				SetDifficulty(it.B).
				SetGuessing(it.C).
				SetSeDiscrimination(it.SEA).
				SetSeDifficulty(it.SEB).
				SetNObs(it.NObs))
		}
		if _, err := tx.IrtItemParam.CreateBulk(itemBuilders...).Save(ctx); err != nil {
			return fmt.Errorf("insert item params: %w", err)
		}

		abilityBuilders := make([]*ent.IrtAbilityCreate, 0, len(abilities))
		for _, ab := range abilities {
			abilityBuilders = append(abilityBuilders, tx.IrtAbility.Create().
				SetRunID(id).
				SetUserID(ab.UserID).
				SetTheta(ab.Theta).
				SetThetaSe(ab.ThetaSE).
				SetNObs(ab.NObs))
		}
		if _, err := tx.IrtAbility.CreateBulk(abilityBuilders...).Save(ctx); err != nil {
			return fmt.Errorf("insert abilities: %w", err)
		}

		n, err := tx.IrtRun.Update().
			Where(irtrun.ID(id), irtrun.StatusEQ(irtrun.Status("running"))).
			SetStatus(irtrun.Status("succeeded")).
			SetMetrics(metrics).
			SetArtifactDir(artifactDir).
			SetFinishedAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("mark run succeeded: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("run %s is not running: %w", id, ErrRunNotFound)
		}
		return nil
	})
}

func deleteRunParams(ctx context.Context, tx *ent.Tx, runID string) error {
	if _, err := tx.IrtItemParam.Delete().Where(irtitemparam.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete item params: %w", err)
	}
	if _, err := tx.IrtAbility.Delete().Where(irtability.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete abilities: %w", err)
	}
	return nil
}

func (r *irtRepo) ItemParams(ctx context.Context, runID string) ([]ItemParams, error) {
	rows, err := r.client.IrtItemParam.Query().
		Where(irtitemparam.RunID(runID)).
		Order(ent.Asc(irtitemparam.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item params: %w", err)
	}
	out := make([]ItemParams, 0, len(rows))
	for _, row := range rows {
		out = append(out, ItemParams{
			QuestionID: row.QuestionID,
			A:          row.Discrimination,
			B:          row.Difficulty,
			C:          row.Guessing,
			SEA:        row.SeDiscrimination,
			SEB:        row.SeDifficulty,
			NObs:       row.NObs,
		})
	}
	return out, nil
}

func (r *irtRepo) Abilities(ctx context.Context, runID string) ([]UserAbility, error) {
	rows, err := r.client.IrtAbility.Query().
		Where(irtability.RunID(runID)).
		Order(ent.Asc(irtability.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query abilities: %w", err)
	}
	out := make([]UserAbility, 0, len(rows))
	for _, row := range rows {
		out = append(out, UserAbility{
			UserID:  row.UserID,
			Theta:   row.Theta,
			ThetaSE: row.ThetaSe,
			NObs:    row.NObs,
		})
	}
	return out, nil
}

func runFromEnt(row *ent.IrtRun) *IrtRun {
	return &IrtRun{
		ID:          row.ID,
		ModelType:   string(row.ModelType),
		Status:      string(row.Status),
		Seed:        row.Seed,
		DatasetSpec: row.DatasetSpec,
		Metrics:     row.Metrics,
		Error:       row.Error,
		Notes:       row.Notes,
		ArtifactDir: row.ArtifactDir,
		CreatedAt:   row.CreatedAt,
		StartedAt:   row.StartedAt,
		FinishedAt:  row.FinishedAt,
	}
}
