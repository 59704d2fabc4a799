// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/irtrun"
)

// IrtRun is the model entity for the IrtRun schema.
type IrtRun struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned at queue time
	ID string `json:"id,omitempty"`
	// ModelType holds the value of the "model_type" field.
	ModelType irtrun.ModelType `json:"model_type,omitempty"`
	// Status holds the value of the "status" field.
	Status irtrun.Status `json:"status,omitempty"`
	// Seeds dataset split and parameter init; makes the run reproducible
	Seed int64 `json:"seed,omitempty"`
	// Window, filters, split fraction and seed; reconstructs the dataset
	DatasetSpec map[string]interface{} `json:"dataset_spec,omitempty"`
	// Fit metrics: neg_loglik, train/validation log-loss, counts
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Captured error text when status is failed
	Error string `json:"error,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Directory holding the metrics summary and report
	ArtifactDir string `json:"artifact_dir,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IrtRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case irtrun.FieldDatasetSpec, irtrun.FieldMetrics:
			values[i] = new([]byte)
		case irtrun.FieldSeed:
			values[i] = new(sql.NullInt64)
		case irtrun.FieldID, irtrun.FieldModelType, irtrun.FieldStatus, irtrun.FieldError, irtrun.FieldNotes, irtrun.FieldArtifactDir:
			values[i] = new(sql.NullString)
		case irtrun.FieldCreatedAt, irtrun.FieldStartedAt, irtrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IrtRun fields.
func (ir *IrtRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case irtrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ir.ID = value.String
			}
		case irtrun.FieldModelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_type", values[i])
			} else if value.Valid {
				ir.ModelType = irtrun.ModelType(value.String)
			}
		case irtrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ir.Status = irtrun.Status(value.String)
			}
		case irtrun.FieldSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				ir.Seed = value.Int64
			}
		case irtrun.FieldDatasetSpec:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_spec", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ir.DatasetSpec); err != nil {
					return fmt.Errorf("unmarshal field dataset_spec: %w", err)
				}
			}
		case irtrun.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ir.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case irtrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				ir.Error = value.String
			}
		case irtrun.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				ir.Notes = value.String
			}
		case irtrun.FieldArtifactDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_dir", values[i])
			} else if value.Valid {
				ir.ArtifactDir = value.String
			}
		case irtrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ir.CreatedAt = value.Time
			}
		case irtrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				ir.StartedAt = new(time.Time)
				*ir.StartedAt = value.Time
			}
		case irtrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				ir.FinishedAt = new(time.Time)
				*ir.FinishedAt = value.Time
			}
		default:
			ir.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IrtRun.
// This includes values selected through modifiers, order, etc.
func (ir *IrtRun) Value(name string) (ent.Value, error) {
	return ir.selectValues.Get(name)
}

// Update returns a builder for updating this IrtRun.
// Note that you need to call IrtRun.Unwrap() before calling this method if this IrtRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (ir *IrtRun) Update() *IrtRunUpdateOne {
	return NewIrtRunClient(ir.config).UpdateOne(ir)
}

// Unwrap unwraps the IrtRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ir *IrtRun) Unwrap() *IrtRun {
	_tx, ok := ir.config.driver.(*txDriver)
	if !ok {
		panic("ent: IrtRun is not a transactional entity")
	}
	ir.config.driver = _tx.drv
	return ir
}

// String implements the fmt.Stringer.
func (ir *IrtRun) String() string {
	var builder strings.Builder
	builder.WriteString("IrtRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ir.ID))
	builder.WriteString("model_type=")
	builder.WriteString(fmt.Sprintf("%v", ir.ModelType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ir.Status))
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(fmt.Sprintf("%v", ir.Seed))
	builder.WriteString(", ")
	builder.WriteString("dataset_spec=")
	builder.WriteString(fmt.Sprintf("%v", ir.DatasetSpec))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", ir.Metrics))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(ir.Error)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(ir.Notes)
	builder.WriteString(", ")
	builder.WriteString("artifact_dir=")
	builder.WriteString(ir.ArtifactDir)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ir.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := ir.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ir.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// IrtRuns is a parsable slice of IrtRun.
type IrtRuns []*IrtRun
