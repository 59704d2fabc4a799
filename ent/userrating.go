// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/userrating"
)

// UserRating is the model entity for the UserRating schema.
type UserRating struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User or question identifier
	EntityID string `json:"entity_id,omitempty"`
	// Rating scope: one global row, zero or more theme rows
	ScopeType userrating.ScopeType `json:"scope_type,omitempty"`
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
func (*UserRating) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userrating.FieldRating, userrating.FieldUncertainty:
			values[i] = new(sql.NullFloat64)
		case userrating.FieldID, userrating.FieldNAttempts, userrating.FieldVersion:
			values[i] = new(sql.NullInt64)
		case userrating.FieldEntityID, userrating.FieldScopeType, userrating.FieldScopeID:
			values[i] = new(sql.NullString)
		case userrating.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserRating fields.
func (ur *UserRating) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userrating.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ur.ID = int(value.Int64)
		case userrating.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				ur.EntityID = value.String
			}
		case userrating.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				ur.ScopeType = userrating.ScopeType(value.String)
			}
		case userrating.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				ur.ScopeID = value.String
			}
		case userrating.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				ur.Rating = value.Float64
			}
		case userrating.FieldUncertainty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uncertainty", values[i])
			} else if value.Valid {
				ur.Uncertainty = value.Float64
			}
		case userrating.FieldNAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field n_attempts", values[i])
			} else if value.Valid {
				ur.NAttempts = int(value.Int64)
			}
		case userrating.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				ur.LastSeenAt = new(time.Time)
				*ur.LastSeenAt = value.Time
			}
		case userrating.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				ur.Version = value.Int64
			}
		default:
			ur.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserRating.
// This includes values selected through modifiers, order, etc.
func (ur *UserRating) Value(name string) (ent.Value, error) {
	return ur.selectValues.Get(name)
}

// Update returns a builder for updating this UserRating.
// Note that you need to call UserRating.Unwrap() before calling this method if this UserRating
// was returned from a transaction, and the transaction was committed or rolled back.
func (ur *UserRating) Update() *UserRatingUpdateOne {
	return NewUserRatingClient(ur.config).UpdateOne(ur)
}

// Unwrap unwraps the UserRating entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ur *UserRating) Unwrap() *UserRating {
	_tx, ok := ur.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserRating is not a transactional entity")
	}
	ur.config.driver = _tx.drv
	return ur
}

// String implements the fmt.Stringer.
func (ur *UserRating) String() string {
	var builder strings.Builder
	builder.WriteString("UserRating(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ur.ID))
	builder.WriteString("entity_id=")
	builder.WriteString(ur.EntityID)
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", ur.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(ur.ScopeID)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", ur.Rating))
	builder.WriteString(", ")
	builder.WriteString("uncertainty=")
	builder.WriteString(fmt.Sprintf("%v", ur.Uncertainty))
	builder.WriteString(", ")
	builder.WriteString("n_attempts=")
	builder.WriteString(fmt.Sprintf("%v", ur.NAttempts))
	builder.WriteString(", ")
	if v := ur.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", ur.Version))
	builder.WriteByte(')')
	return builder.String()
}

// UserRatings is a parsable slice of UserRating.
type UserRatings []*UserRating
