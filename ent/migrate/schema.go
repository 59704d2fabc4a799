// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IrtAbilitiesColumns holds the columns for the "irt_abilities" table.
	IrtAbilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "theta_se", Type: field.TypeFloat64, Default: 0},
		{Name: "n_obs", Type: field.TypeInt},
	}
	// IrtAbilitiesTable holds the schema information for the "irt_abilities" table.
	IrtAbilitiesTable = &schema.Table{
		Name:       "irt_abilities",
		Columns:    IrtAbilitiesColumns,
		PrimaryKey: []*schema.Column{IrtAbilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "irtability_run_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{IrtAbilitiesColumns[1], IrtAbilitiesColumns[2]},
			},
			{
				Name:    "irtability_run_id",
				Unique:  false,
				Columns: []*schema.Column{IrtAbilitiesColumns[1]},
			},
		},
	}
	// IrtItemParamsColumns holds the columns for the "irt_item_params" table.
	IrtItemParamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "discrimination", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "guessing", Type: field.TypeFloat64, Default: 0},
		{Name: "se_discrimination", Type: field.TypeFloat64, Default: 0},
		{Name: "se_difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "n_obs", Type: field.TypeInt},
	}
	// IrtItemParamsTable holds the schema information for the "irt_item_params" table.
	IrtItemParamsTable = &schema.Table{
		Name:       "irt_item_params",
		Columns:    IrtItemParamsColumns,
		PrimaryKey: []*schema.Column{IrtItemParamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "irtitemparam_run_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{IrtItemParamsColumns[1], IrtItemParamsColumns[2]},
			},
			{
				Name:    "irtitemparam_run_id",
				Unique:  false,
				Columns: []*schema.Column{IrtItemParamsColumns[1]},
			},
		},
	}
	// IrtRunsColumns holds the columns for the "irt_runs" table.
	IrtRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "model_type", Type: field.TypeEnum, Enums: []string{"2pl", "3pl"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed"}, Default: "queued"},
		{Name: "seed", Type: field.TypeInt64},
		{Name: "dataset_spec", Type: field.TypeJSON},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "artifact_dir", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// IrtRunsTable holds the schema information for the "irt_runs" table.
	IrtRunsTable = &schema.Table{
		Name:       "irt_runs",
		Columns:    IrtRunsColumns,
		PrimaryKey: []*schema.Column{IrtRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "irtrun_status",
				Unique:  false,
				Columns: []*schema.Column{IrtRunsColumns[2]},
			},
			{
				Name:    "irtrun_model_type",
				Unique:  false,
				Columns: []*schema.Column{IrtRunsColumns[1]},
			},
			{
				Name:    "irtrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{IrtRunsColumns[9]},
			},
		},
	}
	// QuestionRatingsColumns holds the columns for the "question_ratings" table.
	QuestionRatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"global", "theme"}},
		{Name: "scope_id", Type: field.TypeString, Default: ""},
		{Name: "rating", Type: field.TypeFloat64},
		{Name: "uncertainty", Type: field.TypeFloat64},
		{Name: "n_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// QuestionRatingsTable holds the schema information for the "question_ratings" table.
	QuestionRatingsTable = &schema.Table{
		Name:       "question_ratings",
		Columns:    QuestionRatingsColumns,
		PrimaryKey: []*schema.Column{QuestionRatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionrating_entity_id_scope_type_scope_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionRatingsColumns[1], QuestionRatingsColumns[2], QuestionRatingsColumns[3]},
			},
		},
	}
	// UpdateLogsColumns holds the columns for the "update_logs" table.
	UpdateLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"global", "theme"}},
		{Name: "scope_id", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeBool},
		{Name: "p_pred", Type: field.TypeFloat64},
		{Name: "user_rating_pre", Type: field.TypeFloat64},
		{Name: "user_rating_post", Type: field.TypeFloat64},
		{Name: "user_uncertainty_pre", Type: field.TypeFloat64},
		{Name: "user_uncertainty_post", Type: field.TypeFloat64},
		{Name: "question_rating_pre", Type: field.TypeFloat64},
		{Name: "question_rating_post", Type: field.TypeFloat64},
		{Name: "question_uncertainty_pre", Type: field.TypeFloat64},
		{Name: "question_uncertainty_post", Type: field.TypeFloat64},
		{Name: "k_user", Type: field.TypeFloat64},
		{Name: "k_question", Type: field.TypeFloat64},
		{Name: "guess_floor", Type: field.TypeFloat64},
		{Name: "scale", Type: field.TypeFloat64},
		{Name: "option_count", Type: field.TypeInt, Default: 5},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UpdateLogsTable holds the schema information for the "update_logs" table.
	UpdateLogsTable = &schema.Table{
		Name:       "update_logs",
		Columns:    UpdateLogsColumns,
		PrimaryKey: []*schema.Column{UpdateLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "updatelog_attempt_id_scope_type_scope_id",
				Unique:  true,
				Columns: []*schema.Column{UpdateLogsColumns[1], UpdateLogsColumns[4], UpdateLogsColumns[5]},
			},
			{
				Name:    "updatelog_user_id",
				Unique:  false,
				Columns: []*schema.Column{UpdateLogsColumns[2]},
			},
			{
				Name:    "updatelog_question_id",
				Unique:  false,
				Columns: []*schema.Column{UpdateLogsColumns[3]},
			},
			{
				Name:    "updatelog_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{UpdateLogsColumns[21]},
			},
		},
	}
	// UserRatingsColumns holds the columns for the "user_ratings" table.
	UserRatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"global", "theme"}},
		{Name: "scope_id", Type: field.TypeString, Default: ""},
		{Name: "rating", Type: field.TypeFloat64},
		{Name: "uncertainty", Type: field.TypeFloat64},
		{Name: "n_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// UserRatingsTable holds the schema information for the "user_ratings" table.
	UserRatingsTable = &schema.Table{
		Name:       "user_ratings",
		Columns:    UserRatingsColumns,
		PrimaryKey: []*schema.Column{UserRatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userrating_entity_id_scope_type_scope_id",
				Unique:  true,
				Columns: []*schema.Column{UserRatingsColumns[1], UserRatingsColumns[2], UserRatingsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IrtAbilitiesTable,
		IrtItemParamsTable,
		IrtRunsTable,
		QuestionRatingsTable,
		UpdateLogsTable,
		UserRatingsTable,
	}
)

func init() {
}
