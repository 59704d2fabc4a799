package store

import (
	"context"
	"fmt"

	"github.com/adaptly/calibrant/ent"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// updateLogRepo implements UpdateLogRepo using the ent client.
type updateLogRepo struct {
	client *ent.Client
}

func (r *updateLogRepo) Window(ctx context.Context, w LogWindow) ([]UpdateLogEntry, error) {
	q := r.client.UpdateLog.Query()

	if !w.From.IsZero() {
		q = q.Where(updatelog.OccurredAtGTE(w.From))
	}
	if !w.To.IsZero() {
		q = q.Where(updatelog.OccurredAtLT(w.To))
	}
	if w.UserID != "" {
		q = q.Where(updatelog.UserID(w.UserID))
	}
	if w.Scope != nil {
		q = q.Where(
			updatelog.ScopeTypeEQ(updatelog.ScopeType(w.Scope.Type.String())),
			updatelog.ScopeID(w.Scope.ThemeID),
		)
	}
	if w.Limit > 0 {
		q = q.Limit(w.Limit)
	}

	rows, err := q.Order(ent.Asc(updatelog.FieldOccurredAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query update log: %w", err)
	}

	out := make([]UpdateLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, UpdateLogEntry{
			AttemptID:               row.AttemptID,
			UserID:                  row.UserID,
			QuestionID:              row.QuestionID,
			Scope:                   scopeFromStrings(string(row.ScopeType), row.ScopeID),
			Score:                   row.Score,
			PPred:                   row.PPred,
			UserRatingPre:           row.UserRatingPre,
			UserRatingPost:          row.UserRatingPost,
			UserUncertaintyPre:      row.UserUncertaintyPre,
			UserUncertaintyPost:     row.UserUncertaintyPost,
			QuestionRatingPre:       row.QuestionRatingPre,
			QuestionRatingPost:      row.QuestionRatingPost,
			QuestionUncertaintyPre:  row.QuestionUncertaintyPre,
			QuestionUncertaintyPost: row.QuestionUncertaintyPost,
			KUser:                   row.KUser,
			KQuestion:               row.KQuestion,
			GuessFloor:              row.GuessFloor,
			Scale:                   row.Scale,
			OptionCount:             row.OptionCount,
			OccurredAt:              row.OccurredAt,
			CreatedAt:               row.CreatedAt,
		})
	}
	return out, nil
}

func updatelogScopeType(s Scope) updatelog.ScopeType {
	return updatelog.ScopeType(s.Type.String())
}
