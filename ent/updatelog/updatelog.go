// Code generated by ent, DO NOT EDIT.

package updatelog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the updatelog type in the database.
	Label = "update_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldPPred holds the string denoting the p_pred field in the database.
	FieldPPred = "p_pred"
	// FieldUserRatingPre holds the string denoting the user_rating_pre field in the database.
	FieldUserRatingPre = "user_rating_pre"
	// FieldUserRatingPost holds the string denoting the user_rating_post field in the database.
	FieldUserRatingPost = "user_rating_post"
	// FieldUserUncertaintyPre holds the string denoting the user_uncertainty_pre field in the database.
	FieldUserUncertaintyPre = "user_uncertainty_pre"
	// FieldUserUncertaintyPost holds the string denoting the user_uncertainty_post field in the database.
	FieldUserUncertaintyPost = "user_uncertainty_post"
	// FieldQuestionRatingPre holds the string denoting the question_rating_pre field in the database.
	FieldQuestionRatingPre = "question_rating_pre"
	// FieldQuestionRatingPost holds the string denoting the question_rating_post field in the database.
	FieldQuestionRatingPost = "question_rating_post"
	// FieldQuestionUncertaintyPre holds the string denoting the question_uncertainty_pre field in the database.
	FieldQuestionUncertaintyPre = "question_uncertainty_pre"
	// FieldQuestionUncertaintyPost holds the string denoting the question_uncertainty_post field in the database.
	FieldQuestionUncertaintyPost = "question_uncertainty_post"
	// FieldKUser holds the string denoting the k_user field in the database.
	FieldKUser = "k_user"
	// FieldKQuestion holds the string denoting the k_question field in the database.
	FieldKQuestion = "k_question"
	// FieldGuessFloor holds the string denoting the guess_floor field in the database.
	FieldGuessFloor = "guess_floor"
	// FieldScale holds the string denoting the scale field in the database.
	FieldScale = "scale"
	// FieldOptionCount holds the string denoting the option_count field in the database.
	FieldOptionCount = "option_count"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the updatelog in the database.
	Table = "update_logs"
)

// Columns holds all SQL columns for updatelog fields.
var Columns = []string{
	FieldID,
	FieldAttemptID,
	FieldUserID,
	FieldQuestionID,
	FieldScopeType,
	FieldScopeID,
	FieldScore,
	FieldPPred,
	FieldUserRatingPre,
	FieldUserRatingPost,
	FieldUserUncertaintyPre,
	FieldUserUncertaintyPost,
	FieldQuestionRatingPre,
	FieldQuestionRatingPost,
	FieldQuestionUncertaintyPre,
	FieldQuestionUncertaintyPost,
	FieldKUser,
	FieldKQuestion,
	FieldGuessFloor,
	FieldScale,
	FieldOptionCount,
	FieldOccurredAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultScopeID holds the default value on creation for the "scope_id" field.
	DefaultScopeID string
	// DefaultOptionCount holds the default value on creation for the "option_count" field.
	DefaultOptionCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ScopeType defines the type for the "scope_type" enum field.
type ScopeType string

// ScopeType values.
const (
	ScopeTypeGlobal ScopeType = "global"
	ScopeTypeTheme  ScopeType = "theme"
)

func (st ScopeType) String() string {
	return string(st)
}

// ScopeTypeValidator is a validator for the "scope_type" field enum values. It is called by the builders before save.
func ScopeTypeValidator(st ScopeType) error {
	switch st {
	case ScopeTypeGlobal, ScopeTypeTheme:
		return nil
	default:
		return fmt.Errorf("updatelog: invalid enum value for scope_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the UpdateLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByPPred orders the results by the p_pred field.
func ByPPred(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPPred, opts...).ToFunc()
}

// ByUserRatingPre orders the results by the user_rating_pre field.
func ByUserRatingPre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRatingPre, opts...).ToFunc()
}

// ByUserRatingPost orders the results by the user_rating_post field.
func ByUserRatingPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRatingPost, opts...).ToFunc()
}

// ByUserUncertaintyPre orders the results by the user_uncertainty_pre field.
func ByUserUncertaintyPre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserUncertaintyPre, opts...).ToFunc()
}

// ByUserUncertaintyPost orders the results by the user_uncertainty_post field.
func ByUserUncertaintyPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserUncertaintyPost, opts...).ToFunc()
}

// ByQuestionRatingPre orders the results by the question_rating_pre field.
func ByQuestionRatingPre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionRatingPre, opts...).ToFunc()
}

// ByQuestionRatingPost orders the results by the question_rating_post field.
func ByQuestionRatingPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionRatingPost, opts...).ToFunc()
}

// ByQuestionUncertaintyPre orders the results by the question_uncertainty_pre field.
func ByQuestionUncertaintyPre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionUncertaintyPre, opts...).ToFunc()
}

// ByQuestionUncertaintyPost orders the results by the question_uncertainty_post field.
func ByQuestionUncertaintyPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionUncertaintyPost, opts...).ToFunc()
}

// ByKUser orders the results by the k_user field.
func ByKUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKUser, opts...).ToFunc()
}

// ByKQuestion orders the results by the k_question field.
func ByKQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKQuestion, opts...).ToFunc()
}

// ByGuessFloor orders the results by the guess_floor field.
func ByGuessFloor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessFloor, opts...).ToFunc()
}

// ByScale orders the results by the scale field.
func ByScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScale, opts...).ToFunc()
}

// ByOptionCount orders the results by the option_count field.
func ByOptionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionCount, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
