package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IrtAbility holds the fitted ability for one user in one run.
type IrtAbility struct {
	ent.Schema
}

func (IrtAbility) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Float("theta").
			Comment("Latent ability on the standardized scale"),
		field.Float("theta_se").Default(0),
		field.Int("n_obs").
			Comment("Observations backing this user"),
	}
}

func (IrtAbility) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "user_id").Unique(),
		index.Fields("run_id"),
	}
}
