// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/questionrating"
)

// QuestionRating is the model entity for the QuestionRating schema.
type QuestionRating struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User or question identifier
	EntityID string `json:"entity_id,omitempty"`
	// Rating scope: one global row, zero or more theme rows
	ScopeType questionrating.ScopeType `json:"scope_type,omitempty"`
	// Theme identifier; empty for the global scope
	ScopeID string `json:"scope_id,omitempty"`
	// Ability theta or difficulty b
	Rating float64 `json:"rating,omitempty"`
	// RD-like confidence; never below the configured floor
	Uncertainty float64 `json:"uncertainty,omitempty"`
	// Attempts applied to this row
	NAttempts int `json:"n_attempts,omitempty"`
	// Wall-clock time of the last applied attempt
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	// Optimistic-lock counter; bumped on every write
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionRating) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionrating.FieldRating, questionrating.FieldUncertainty:
			values[i] = new(sql.NullFloat64)
		case questionrating.FieldID, questionrating.FieldNAttempts, questionrating.FieldVersion:
			values[i] = new(sql.NullInt64)
		case questionrating.FieldEntityID, questionrating.FieldScopeType, questionrating.FieldScopeID:
			values[i] = new(sql.NullString)
		case questionrating.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionRating fields.
func (qr *QuestionRating) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionrating.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			qr.ID = int(value.Int64)
		case questionrating.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				qr.EntityID = value.String
			}
		case questionrating.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				qr.ScopeType = questionrating.ScopeType(value.String)
			}
		case questionrating.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				qr.ScopeID = value.String
			}
		case questionrating.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				qr.Rating = value.Float64
			}
		case questionrating.FieldUncertainty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uncertainty", values[i])
			} else if value.Valid {
				qr.Uncertainty = value.Float64
			}
		case questionrating.FieldNAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field n_attempts", values[i])
			} else if value.Valid {
				qr.NAttempts = int(value.Int64)
			}
		case questionrating.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				qr.LastSeenAt = new(time.Time)
				*qr.LastSeenAt = value.Time
			}
		case questionrating.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				qr.Version = value.Int64
			}
		default:
			qr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionRating.
// This includes values selected through modifiers, order, etc.
func (qr *QuestionRating) Value(name string) (ent.Value, error) {
	return qr.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionRating.
// Note that you need to call QuestionRating.Unwrap() before calling this method if this QuestionRating
// was returned from a transaction, and the transaction was committed or rolled back.
func (qr *QuestionRating) Update() *QuestionRatingUpdateOne {
	return NewQuestionRatingClient(qr.config).UpdateOne(qr)
}

// Unwrap unwraps the QuestionRating entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qr *QuestionRating) Unwrap() *QuestionRating {
	_tx, ok := qr.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionRating is not a transactional entity")
	}
	qr.config.driver = _tx.drv
	return qr
}

// String implements the fmt.Stringer.
func (qr *QuestionRating) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionRating(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qr.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(qr.EntityID)
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", qr.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(qr.ScopeID)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", qr.Rating))
	builder.WriteString(", ")
	builder.WriteString("uncertainty=")
	builder.WriteString(fmt.Sprintf("%v", qr.Uncertainty))
	builder.WriteString(", ")
	builder.WriteString("n_attempts=")
	builder.WriteString(fmt.Sprintf("%v", qr.NAttempts))
	builder.WriteString(", ")
	if v := qr.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", qr.Version))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionRatings is a parsable slice of QuestionRating.
type QuestionRatings []*QuestionRating
