// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/irtability"
)

// IrtAbility is the model entity for the IrtAbility schema.
type IrtAbility struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Latent ability on the standardized scale
	Theta float64 `json:"theta,omitempty"`
	// ThetaSe holds the value of the "theta_se" field.
	ThetaSe float64 `json:"theta_se,omitempty"`
	// Observations backing this user
	NObs         int `json:"n_obs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IrtAbility) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case irtability.FieldTheta, irtability.FieldThetaSe:
			values[i] = new(sql.NullFloat64)
		case irtability.FieldID, irtability.FieldNObs:
			values[i] = new(sql.NullInt64)
		case irtability.FieldRunID, irtability.FieldUserID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IrtAbility fields.
func (ia *IrtAbility) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case irtability.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ia.ID = int(value.Int64)
		case irtability.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				ia.RunID = value.String
			}
		case irtability.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ia.UserID = value.String
			}
		case irtability.FieldTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta", values[i])
			} else if value.Valid {
				ia.Theta = value.Float64
			}
		case irtability.FieldThetaSe:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_se", values[i])
			} else if value.Valid {
				ia.ThetaSe = value.Float64
			}
		case irtability.FieldNObs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field n_obs", values[i])
			} else if value.Valid {
				ia.NObs = int(value.Int64)
			}
		default:
			ia.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IrtAbility.
// This includes values selected through modifiers, order, etc.
func (ia *IrtAbility) Value(name string) (ent.Value, error) {
	return ia.selectValues.Get(name)
}

// Update returns a builder for updating this IrtAbility.
// Note that you need to call IrtAbility.Unwrap() before calling this method if this IrtAbility
// was returned from a transaction, and the transaction was committed or rolled back.
func (ia *IrtAbility) Update() *IrtAbilityUpdateOne {
	return NewIrtAbilityClient(ia.config).UpdateOne(ia)
}

// Unwrap unwraps the IrtAbility entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ia *IrtAbility) Unwrap() *IrtAbility {
	_tx, ok := ia.config.driver.(*txDriver)
	if !ok {
		panic("ent: IrtAbility is not a transactional entity")
	}
	ia.config.driver = _tx.drv
	return ia
}

// String implements the fmt.Stringer.
func (ia *IrtAbility) String() string {
	var builder strings.Builder
	builder.WriteString("IrtAbility(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ia.ID))
	builder.WriteString("run_id=")
	builder.WriteString(ia.RunID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(ia.UserID)
	builder.WriteString(", ")
	builder.WriteString("theta=")
	builder.WriteString(fmt.Sprintf("%v", ia.Theta))
	builder.WriteString(", ")
	builder.WriteString("theta_se=")
	builder.WriteString(fmt.Sprintf("%v", ia.ThetaSe))
	builder.WriteString(", ")
	builder.WriteString("n_obs=")
	builder.WriteString(fmt.Sprintf("%v", ia.NObs))
	builder.WriteByte(')')
	return builder.String()
}

// IrtAbilities is a parsable slice of IrtAbility.
type IrtAbilities []*IrtAbility
