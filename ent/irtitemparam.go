// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/irtitemparam"
)

// IrtItemParam is the model entity for the IrtItemParam schema.
type IrtItemParam struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Slope a; strictly positive by construction
	Discrimination float64 `json:"discrimination,omitempty"`
	// Location b on the standardized theta scale
	Difficulty float64 `json:"difficulty,omitempty"`
	// Lower asymptote c; zero for 2PL
	Guessing float64 `json:"guessing,omitempty"`
	// SeDiscrimination holds the value of the "se_discrimination" field.
	SeDiscrimination float64 `json:"se_discrimination,omitempty"`
	// SeDifficulty holds the value of the "se_difficulty" field.
	SeDifficulty float64 `json:"se_difficulty,omitempty"`
	// Observations backing this item
	NObs         int `json:"n_obs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IrtItemParam) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case irtitemparam.FieldDiscrimination, irtitemparam.FieldDifficulty, irtitemparam.FieldGuessing, irtitemparam.FieldSeDiscrimination, irtitemparam.FieldSeDifficulty:
			values[i] = new(sql.NullFloat64)
		case irtitemparam.FieldID, irtitemparam.FieldNObs:
			values[i] = new(sql.NullInt64)
		case irtitemparam.FieldRunID, irtitemparam.FieldQuestionID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IrtItemParam fields.
func (iip *IrtItemParam) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case irtitemparam.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			iip.ID = int(value.Int64)
		case irtitemparam.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				iip.RunID = value.String
			}
		case irtitemparam.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				iip.QuestionID = value.String
			}
		case irtitemparam.FieldDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrimination", values[i])
			} else if value.Valid {
				iip.Discrimination = value.Float64
			}
		case irtitemparam.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				iip.Difficulty = value.Float64
			}
		case irtitemparam.FieldGuessing:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field guessing", values[i])
			} else if value.Valid {
				iip.Guessing = value.Float64
			}
		case irtitemparam.FieldSeDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field se_discrimination", values[i])
			} else if value.Valid {
				iip.SeDiscrimination = value.Float64
			}
		case irtitemparam.FieldSeDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field se_difficulty", values[i])
			} else if value.Valid {
				iip.SeDifficulty = value.Float64
			}
		case irtitemparam.FieldNObs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field n_obs", values[i])
			} else if value.Valid {
				iip.NObs = int(value.Int64)
			}
		default:
			iip.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IrtItemParam.
// This includes values selected through modifiers, order, etc.
func (iip *IrtItemParam) Value(name string) (ent.Value, error) {
	return iip.selectValues.Get(name)
}

// Update returns a builder for updating this IrtItemParam.
// Note that you need to call IrtItemParam.Unwrap() before calling this method if this IrtItemParam
// was returned from a transaction, and the transaction was committed or rolled back.
func (iip *IrtItemParam) Update() *IrtItemParamUpdateOne {
	return NewIrtItemParamClient(iip.config).UpdateOne(iip)
}

// Unwrap unwraps the IrtItemParam entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (iip *IrtItemParam) Unwrap() *IrtItemParam {
	_tx, ok := iip.config.driver.(*txDriver)
	if !ok {
		panic("ent: IrtItemParam is not a transactional entity")
	}
	iip.config.driver = _tx.drv
	return iip
}

// String implements the fmt.Stringer.
func (iip *IrtItemParam) String() string {
	var builder strings.Builder
	builder.WriteString("IrtItemParam(")
	builder.WriteString(fmt.Sprintf("id=%v, ", iip.ID))
	builder.WriteString("run_id=")
	builder.WriteString(iip.RunID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(iip.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("discrimination=")
	builder.WriteString(fmt.Sprintf("%v", iip.Discrimination))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", iip.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("guessing=")
	builder.WriteString(fmt.Sprintf("%v", iip.Guessing))
	builder.WriteString(", ")
	builder.WriteString("se_discrimination=")
	builder.WriteString(fmt.Sprintf("%v", iip.SeDiscrimination))
	builder.WriteString(", ")
	builder.WriteString("se_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", iip.SeDifficulty))
	builder.WriteString(", ")
	builder.WriteString("n_obs=")
	builder.WriteString(fmt.Sprintf("%v", iip.NObs))
	builder.WriteByte(')')
	return builder.String()
}

// IrtItemParams is a parsable slice of IrtItemParam.
type IrtItemParams []*IrtItemParam
