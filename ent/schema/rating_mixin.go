package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// RatingMixin provides the columns shared by UserRating and QuestionRating.
// Both variants live on the same numeric scale; only the entity they
// describe differs.
type RatingMixin struct {
	mixin.Schema
}

func (RatingMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("entity_id").
			NotEmpty().
			Immutable().
			Comment("User or question identifier"),
		field.Enum("scope_type").
			Values("global", "theme").
			Immutable().
			Comment("Rating scope: one global row, zero or more theme rows"),
		field.String("scope_id").
			Default("").
			Immutable().
			Comment("Theme identifier; empty for the global scope"),
		field.Float("rating").
			Comment("Ability theta or difficulty b"),
		field.Float("uncertainty").
			Comment("RD-like confidence; never below the configured floor"),
		field.Int("n_attempts").
			Default(0).
			Comment("Attempts applied to this row"),
		field.Time("last_seen_at").
			Optional().
			Nillable().
			Comment("Wall-clock time of the last applied attempt"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-lock counter; bumped on every write"),
	}
}

func (RatingMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "scope_type", "scope_id").Unique(),
	}
}
