// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/updatelog"
)

// UpdateLog is the model entity for the UpdateLog schema.
type UpdateLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Attempt identity from the delivery system
	AttemptID string `json:"attempt_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType updatelog.ScopeType `json:"scope_type,omitempty"`
	// ScopeID holds the value of the "scope_id" field.
	ScopeID string `json:"scope_id,omitempty"`
	// Whether the attempt was correct
	Score bool `json:"score,omitempty"`
	// Predicted P(correct) before the update
	PPred float64 `json:"p_pred,omitempty"`
	// UserRatingPre holds the value of the "user_rating_pre" field.
	UserRatingPre float64 `json:"user_rating_pre,omitempty"`
	// UserRatingPost holds the value of the "user_rating_post" field.
	UserRatingPost float64 `json:"user_rating_post,omitempty"`
	// UserUncertaintyPre holds the value of the "user_uncertainty_pre" field.
	UserUncertaintyPre float64 `json:"user_uncertainty_pre,omitempty"`
	// UserUncertaintyPost holds the value of the "user_uncertainty_post" field.
	UserUncertaintyPost float64 `json:"user_uncertainty_post,omitempty"`
	// QuestionRatingPre holds the value of the "question_rating_pre" field.
	QuestionRatingPre float64 `json:"question_rating_pre,omitempty"`
	// QuestionRatingPost holds the value of the "question_rating_post" field.
	QuestionRatingPost float64 `json:"question_rating_post,omitempty"`
	// QuestionUncertaintyPre holds the value of the "question_uncertainty_pre" field.
	QuestionUncertaintyPre float64 `json:"question_uncertainty_pre,omitempty"`
	// QuestionUncertaintyPost holds the value of the "question_uncertainty_post" field.
	QuestionUncertaintyPost float64 `json:"question_uncertainty_post,omitempty"`
	// Dynamic K actually applied to the user side
	KUser float64 `json:"k_user,omitempty"`
	// Dynamic K actually applied to the question side
	KQuestion float64 `json:"k_question,omitempty"`
	// GuessFloor holds the value of the "guess_floor" field.
	GuessFloor float64 `json:"guess_floor,omitempty"`
	// Scale holds the value of the "scale" field.
	Scale float64 `json:"scale,omitempty"`
	// Answer options on the question, bounds the IRT guess parameter
	OptionCount int `json:"option_count,omitempty"`
	// When the attempt happened, per the delivery system
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UpdateLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case updatelog.FieldScore:
			values[i] = new(sql.NullBool)
		case updatelog.FieldPPred, updatelog.FieldUserRatingPre, updatelog.FieldUserRatingPost, updatelog.FieldUserUncertaintyPre, updatelog.FieldUserUncertaintyPost, updatelog.FieldQuestionRatingPre, updatelog.FieldQuestionRatingPost, updatelog.FieldQuestionUncertaintyPre, updatelog.FieldQuestionUncertaintyPost, updatelog.FieldKUser, updatelog.FieldKQuestion, updatelog.FieldGuessFloor, updatelog.FieldScale:
			values[i] = new(sql.NullFloat64)
		case updatelog.FieldID, updatelog.FieldOptionCount:
			values[i] = new(sql.NullInt64)
		case updatelog.FieldAttemptID, updatelog.FieldUserID, updatelog.FieldQuestionID, updatelog.FieldScopeType, updatelog.FieldScopeID:
			values[i] = new(sql.NullString)
		case updatelog.FieldOccurredAt, updatelog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UpdateLog fields.
func (ul *UpdateLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case updatelog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ul.ID = int(value.Int64)
		case updatelog.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				ul.AttemptID = value.String
			}
		case updatelog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ul.UserID = value.String
			}
		case updatelog.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				ul.QuestionID = value.String
			}
		case updatelog.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				ul.ScopeType = updatelog.ScopeType(value.String)
			}
		case updatelog.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				ul.ScopeID = value.String
			}
		case updatelog.FieldScore:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				ul.Score = value.Bool
			}
		case updatelog.FieldPPred:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p_pred", values[i])
			} else if value.Valid {
				ul.PPred = value.Float64
			}
		case updatelog.FieldUserRatingPre:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field user_rating_pre", values[i])
			} else if value.Valid {
				ul.UserRatingPre = value.Float64
			}
		case updatelog.FieldUserRatingPost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field user_rating_post", values[i])
			} else if value.Valid {
				ul.UserRatingPost = value.Float64
			}
		case updatelog.FieldUserUncertaintyPre:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field user_uncertainty_pre", values[i])
			} else if value.Valid {
				ul.UserUncertaintyPre = value.Float64
			}
		case updatelog.FieldUserUncertaintyPost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field user_uncertainty_post", values[i])
			} else if value.Valid {
				ul.UserUncertaintyPost = value.Float64
			}
		case updatelog.FieldQuestionRatingPre:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_rating_pre", values[i])
			} else if value.Valid {
				ul.QuestionRatingPre = value.Float64
			}
		case updatelog.FieldQuestionRatingPost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_rating_post", values[i])
			} else if value.Valid {
				ul.QuestionRatingPost = value.Float64
			}
		case updatelog.FieldQuestionUncertaintyPre:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_uncertainty_pre", values[i])
			} else if value.Valid {
				ul.QuestionUncertaintyPre = value.Float64
			}
		case updatelog.FieldQuestionUncertaintyPost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field question_uncertainty_post", values[i])
			} else if value.Valid {
				ul.QuestionUncertaintyPost = value.Float64
			}
		case updatelog.FieldKUser:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field k_user", values[i])
			} else if value.Valid {
				ul.KUser = value.Float64
			}
		case updatelog.FieldKQuestion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field k_question", values[i])
			} else if value.Valid {
				ul.KQuestion = value.Float64
			}
		case updatelog.FieldGuessFloor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field guess_floor", values[i])
			} else if value.Valid {
				ul.GuessFloor = value.Float64
			}
		case updatelog.FieldScale:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field scale", values[i])
			} else if value.Valid {
				ul.Scale = value.Float64
			}
		case updatelog.FieldOptionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field option_count", values[i])
			} else if value.Valid {
				ul.OptionCount = int(value.Int64)
			}
		case updatelog.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				ul.OccurredAt = value.Time
			}
		case updatelog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ul.CreatedAt = value.Time
			}
		default:
			ul.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UpdateLog.
// This includes values selected through modifiers, order, etc.
func (ul *UpdateLog) Value(name string) (ent.Value, error) {
	return ul.selectValues.Get(name)
}

// Update returns a builder for updating this UpdateLog.
// Note that you need to call UpdateLog.Unwrap() before calling this method if this UpdateLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (ul *UpdateLog) Update() *UpdateLogUpdateOne {
	return NewUpdateLogClient(ul.config).UpdateOne(ul)
}

// Unwrap unwraps the UpdateLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ul *UpdateLog) Unwrap() *UpdateLog {
	_tx, ok := ul.config.driver.(*txDriver)
	if !ok {
		panic("ent: UpdateLog is not a transactional entity")
	}
	ul.config.driver = _tx.drv
	return ul
}

// String implements the fmt.Stringer.
func (ul *UpdateLog) String() string {
	var builder strings.Builder
	builder.WriteString("UpdateLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ul.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(ul.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(ul.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(ul.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", ul.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(ul.ScopeID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", ul.Score))
	builder.WriteString(", ")
	builder.WriteString("p_pred=")
	builder.WriteString(fmt.Sprintf("%v", ul.PPred))
	builder.WriteString(", ")
	builder.WriteString("user_rating_pre=")
	builder.WriteString(fmt.Sprintf("%v", ul.UserRatingPre))
	builder.WriteString(", ")
	builder.WriteString("user_rating_post=")
	builder.WriteString(fmt.Sprintf("%v", ul.UserRatingPost))
	builder.WriteString(", ")
	builder.WriteString("user_uncertainty_pre=")
	builder.WriteString(fmt.Sprintf("%v", ul.UserUncertaintyPre))
	builder.WriteString(", ")
	builder.WriteString("user_uncertainty_post=")
	builder.WriteString(fmt.Sprintf("%v", ul.UserUncertaintyPost))
	builder.WriteString(", ")
	builder.WriteString("question_rating_pre=")
	builder.WriteString(fmt.Sprintf("%v", ul.QuestionRatingPre))
	builder.WriteString(", ")
	builder.WriteString("question_rating_post=")
	builder.WriteString(fmt.Sprintf("%v", ul.QuestionRatingPost))
	builder.WriteString(", ")
	builder.WriteString("question_uncertainty_pre=")
	builder.WriteString(fmt.Sprintf("%v", ul.QuestionUncertaintyPre))
	builder.WriteString(", ")
	builder.WriteString("question_uncertainty_post=")
	builder.WriteString(fmt.Sprintf("%v", ul.QuestionUncertaintyPost))
	builder.WriteString(", ")
	builder.WriteString("k_user=")
	builder.WriteString(fmt.Sprintf("%v", ul.KUser))
	builder.WriteString(", ")
	builder.WriteString("k_question=")
	builder.WriteString(fmt.Sprintf("%v", ul.KQuestion))
	builder.WriteString(", ")
	builder.WriteString("guess_floor=")
	builder.WriteString(fmt.Sprintf("%v", ul.GuessFloor))
	builder.WriteString(", ")
	builder.WriteString("scale=")
	builder.WriteString(fmt.Sprintf("%v", ul.Scale))
	builder.WriteString(", ")
	builder.WriteString("option_count=")
	builder.WriteString(fmt.Sprintf("%v", ul.OptionCount))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(ul.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ul.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UpdateLogs is a parsable slice of UpdateLog.
type UpdateLogs []*UpdateLog
