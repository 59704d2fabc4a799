package store

import (
	"context"
	"fmt"

	"github.com/adaptly/calibrant/ent"
	"github.com/adaptly/calibrant/ent/questionrating"
	"github.com/adaptly/calibrant/ent/userrating"
)

// ratingRepo implements RatingRepo using the ent client.
type ratingRepo struct {
	client *ent.Client
}

func (r *ratingRepo) UserRating(ctx context.Context, entityID string, scope Scope) (*Rating, error) {
	row, err := r.client.UserRating.Query().
		Where(
			userrating.EntityID(entityID),
			userrating.ScopeTypeEQ(userrating.ScopeType(scope.Type.String())),
			userrating.ScopeID(scope.ThemeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user rating: %w", err)
	}
	return userRatingFromEnt(row), nil
}

func (r *ratingRepo) QuestionRating(ctx context.Context, entityID string, scope Scope) (*Rating, error) {
	row, err := r.client.QuestionRating.Query().
		Where(
			questionrating.EntityID(entityID),
			questionrating.ScopeTypeEQ(questionrating.ScopeType(scope.Type.String())),
			questionrating.ScopeID(scope.ThemeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question rating: %w", err)
	}
	return questionRatingFromEnt(row), nil
}

func (r *ratingRepo) ApplyAttempt(ctx context.Context, upd *AttemptUpdate) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		// The audit row goes first: its uniqueness on (attempt, scope) is
		// the idempotency guard, and failing here leaves nothing written.
		if err := insertLogEntry(ctx, tx, &upd.Entry); err != nil {
			return err
		}
		if err := writeUserRating(ctx, tx, &upd.User, &upd.UserPost); err != nil {
			return err
		}
		return writeQuestionRating(ctx, tx, &upd.Question, &upd.QuestionPost)
	})
}

func insertLogEntry(ctx context.Context, tx *ent.Tx, e *UpdateLogEntry) error {
	_, err := tx.UpdateLog.Create().
		SetAttemptID(e.AttemptID).
		SetUserID(e.UserID).
		SetQuestionID(e.QuestionID).
		SetScopeType(updatelogScopeType(e.Scope)).
		SetScopeID(e.Scope.ThemeID).
		SetScore(e.Score).
		SetPPred(e.PPred).
		SetUserRatingPre(e.UserRatingPre).
		SetUserRatingPost(e.UserRatingPost).
		SetUserUncertaintyPre(e.UserUncertaintyPre).
		SetUserUncertaintyPost(e.UserUncertaintyPost).
		SetQuestionRatingPre(e.QuestionRatingPre).
		SetQuestionRatingPost(e.QuestionRatingPost).
		SetQuestionUncertaintyPre(e.QuestionUncertaintyPre).
		SetQuestionUncertaintyPost(e.QuestionUncertaintyPost).
		SetKUser(e.KUser).
		SetKQuestion(e.KQuestion).
		SetGuessFloor(e.GuessFloor).
		SetScale(e.Scale).
		SetOptionCount(e.OptionCount).
		SetOccurredAt(e.OccurredAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateAttempt
		}
		return fmt.Errorf("insert update log: %w", err)
	}
	return nil
}

func writeUserRating(ctx context.Context, tx *ent.Tx, pre, post *Rating) error {
	if pre.Version == 0 {
		_, err := tx.UserRating.Create().
			SetEntityID(post.EntityID).
			SetScopeType(userrating.ScopeType(post.Scope.Type.String())).
			SetScopeID(post.Scope.ThemeID).
			SetRating(post.Rating).
			SetUncertainty(post.Uncertainty).
			SetNAttempts(post.NAttempts).
			SetNillableLastSeenAt(post.LastSeenAt).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Another writer created the row first; retry from a fresh read.
				return ErrVersionConflict
			}
			return fmt.Errorf("create user rating: %w", err)
		}
		return nil
	}

	n, err := tx.UserRating.Update().
		Where(
			userrating.EntityID(pre.EntityID),
			userrating.ScopeTypeEQ(userrating.ScopeType(pre.Scope.Type.String())),
			userrating.ScopeID(pre.Scope.ThemeID),
			userrating.Version(pre.Version),
		).
		SetRating(post.Rating).
		SetUncertainty(post.Uncertainty).
		SetNAttempts(post.NAttempts).
		SetNillableLastSeenAt(post.LastSeenAt).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user rating: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

func writeQuestionRating(ctx context.Context, tx *ent.Tx, pre, post *Rating) error {
	if pre.Version == 0 {
		_, err := tx.QuestionRating.Create().
			SetEntityID(post.EntityID).
			SetScopeType(questionrating.ScopeType(post.Scope.Type.String())).
			SetScopeID(post.Scope.ThemeID).
			SetRating(post.Rating).
			SetUncertainty(post.Uncertainty).
			SetNAttempts(post.NAttempts).
			SetNillableLastSeenAt(post.LastSeenAt).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return ErrVersionConflict
			}
			return fmt.Errorf("create question rating: %w", err)
		}
		return nil
	}

	n, err := tx.QuestionRating.Update().
		Where(
			questionrating.EntityID(pre.EntityID),
			questionrating.ScopeTypeEQ(questionrating.ScopeType(pre.Scope.Type.String())),
			questionrating.ScopeID(pre.Scope.ThemeID),
			questionrating.Version(pre.Version),
		).
		SetRating(post.Rating).
		SetUncertainty(post.Uncertainty).
		SetNAttempts(post.NAttempts).
		SetNillableLastSeenAt(post.LastSeenAt).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update question rating: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *ratingRepo) MeanQuestionRating(ctx context.Context, scope Scope) (float64, int, error) {
	q := r.client.QuestionRating.Query().
		Where(
			questionrating.ScopeTypeEQ(questionrating.ScopeType(scope.Type.String())),
			questionrating.ScopeID(scope.ThemeID),
		)
	n, err := q.Clone().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count question ratings: %w", err)
	}
	if n == 0 {
		return 0, 0, nil
	}
	mean, err := q.Aggregate(ent.Mean(questionrating.FieldRating)).Float64(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("mean question rating: %w", err)
	}
	return mean, n, nil
}

func (r *ratingRepo) Recenter(ctx context.Context, scope Scope, minAbs float64) (*RecenterStats, error) {
	stats := &RecenterStats{}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		// Mean and shift happen in the same transaction so the offset is
		// computed from the exact snapshot it is applied to.
		qq := tx.QuestionRating.Query().
			Where(
				questionrating.ScopeTypeEQ(questionrating.ScopeType(scope.Type.String())),
				questionrating.ScopeID(scope.ThemeID),
			)
		n, err := qq.Clone().Count(ctx)
		if err != nil {
			return fmt.Errorf("count question ratings: %w", err)
		}
		if n == 0 {
			return nil
		}
		mean, err := qq.Aggregate(ent.Mean(questionrating.FieldRating)).Float64(ctx)
		if err != nil {
			return fmt.Errorf("mean question rating: %w", err)
		}
		stats.Mean = mean
		if mean < minAbs && mean > -minAbs {
			return nil
		}

		qn, err := tx.QuestionRating.Update().
			Where(
				questionrating.ScopeTypeEQ(questionrating.ScopeType(scope.Type.String())),
				questionrating.ScopeID(scope.ThemeID),
			).
			AddRating(-mean).
			AddVersion(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("shift question ratings: %w", err)
		}
		un, err := tx.UserRating.Update().
			Where(
				userrating.ScopeTypeEQ(userrating.ScopeType(scope.Type.String())),
				userrating.ScopeID(scope.ThemeID),
			).
			AddRating(-mean).
			AddVersion(1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("shift user ratings: %w", err)
		}

		stats.Recentered = true
		stats.QuestionsUpdated = qn
		stats.UsersUpdated = un
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func userRatingFromEnt(row *ent.UserRating) *Rating {
	return &Rating{
		EntityID:    row.EntityID,
		Scope:       scopeFromStrings(string(row.ScopeType), row.ScopeID),
		Rating:      row.Rating,
		Uncertainty: row.Uncertainty,
		NAttempts:   row.NAttempts,
		LastSeenAt:  row.LastSeenAt,
		Version:     row.Version,
	}
}

func questionRatingFromEnt(row *ent.QuestionRating) *Rating {
	return &Rating{
		EntityID:    row.EntityID,
		Scope:       scopeFromStrings(string(row.ScopeType), row.ScopeID),
		Rating:      row.Rating,
		Uncertainty: row.Uncertainty,
		NAttempts:   row.NAttempts,
		LastSeenAt:  row.LastSeenAt,
		Version:     row.Version,
	}
}

func scopeFromStrings(scopeType, scopeID string) Scope {
	if scopeType == "theme" {
		return Theme(scopeID)
	}
	return Global()
}
