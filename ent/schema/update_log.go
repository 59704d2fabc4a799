package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UpdateLog is the append-only audit row written with every rating update.
// It snapshots both sides of the update plus the model constants in effect,
// making every rating change reproducible. Rows are created once and never
// mutated; the (attempt_id, scope) uniqueness makes replays a no-op.
type UpdateLog struct {
	ent.Schema
}

func (UpdateLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Immutable().
			Comment("Attempt identity from the delivery system"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Enum("scope_type").
			Values("global", "theme").
			Immutable(),
		field.String("scope_id").
			Default("").
			Immutable(),
		field.Bool("score").
			Immutable().
			Comment("Whether the attempt was correct"),
		field.Float("p_pred").
			Immutable().
			Comment("Predicted P(correct) before the update"),
		field.Float("user_rating_pre").Immutable(),
		field.Float("user_rating_post").Immutable(),
		field.Float("user_uncertainty_pre").Immutable(),
		field.Float("user_uncertainty_post").Immutable(),
		field.Float("question_rating_pre").Immutable(),
		field.Float("question_rating_post").Immutable(),
		field.Float("question_uncertainty_pre").Immutable(),
		field.Float("question_uncertainty_post").Immutable(),
		field.Float("k_user").
			Immutable().
			Comment("Dynamic K actually applied to the user side"),
		field.Float("k_question").
			Immutable().
			Comment("Dynamic K actually applied to the question side"),
		field.Float("guess_floor").Immutable(),
		field.Float("scale").Immutable(),
		field.Int("option_count").
			Default(5).
			Immutable().
			Comment("Answer options on the question, bounds the IRT guess parameter"),
		field.Time("occurred_at").
			Immutable().
			Comment("When the attempt happened, per the delivery system"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UpdateLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "scope_type", "scope_id").Unique(),
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("occurred_at"),
	}
}
