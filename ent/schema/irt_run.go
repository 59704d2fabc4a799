package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IrtRun is one offline calibration run. Parameters hang off it via
// IrtItemParam and IrtAbility rows keyed by run_id; a SUCCEEDED run's
// parameter set is immutable.
type IrtRun struct {
	ent.Schema
}

func (IrtRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Unique().
			Comment("UUID assigned at queue time"),
		field.Enum("model_type").
			Values("2pl", "3pl").
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed").
			Default("queued"),
		field.Int64("seed").
			Immutable().
			Comment("Seeds dataset split and parameter init; makes the run reproducible"),
		field.JSON("dataset_spec", map[string]any{}).
			Immutable().
			Comment("Window, filters, split fraction and seed; reconstructs the dataset"),
		field.JSON("metrics", map[string]any{}).
			Optional().
			Comment("Fit metrics: neg_loglik, train/validation log-loss, counts"),
		field.String("error").
			Default("").
			Comment("Captured error text when status is failed"),
		field.String("notes").
			Default(""),
		field.String("artifact_dir").
			Default("").
			Comment("Directory holding the metrics summary and report"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

func (IrtRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("model_type"),
		index.Fields("created_at"),
	}
}
