package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IrtItemParam holds the fitted item parameters for one question in one run.
type IrtItemParam struct {
	ent.Schema
}

func (IrtItemParam) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.Float("discrimination").
			Comment("Slope a; strictly positive by construction"),
		field.Float("difficulty").
			Comment("Location b on the standardized theta scale"),
		field.Float("guessing").
			Default(0).
			Comment("Lower asymptote c; zero for 2PL"),
		field.Float("se_discrimination").Default(0),
		field.Float("se_difficulty").Default(0),
		field.Int("n_obs").
			Comment("Observations backing this item"),
	}
}

func (IrtItemParam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "question_id").Unique(),
		index.Fields("run_id"),
	}
}
