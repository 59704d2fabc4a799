// Code generated by ent, DO NOT EDIT.

package irtitemparam

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the irtitemparam type in the database.
	Label = "irt_item_param"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldDiscrimination holds the string denoting the discrimination field in the database.
	FieldDiscrimination = "discrimination"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldGuessing holds the string denoting the guessing field in the database.
	FieldGuessing = "guessing"
	// FieldSeDiscrimination holds the string denoting the se_discrimination field in the database.
	FieldSeDiscrimination = "se_discrimination"
	// FieldSeDifficulty holds the string denoting the se_difficulty field in the database.
	FieldSeDifficulty = "se_difficulty"
	// FieldNObs holds the string denoting the n_obs field in the database.
	FieldNObs = "n_obs"
	// Table holds the table name of the irtitemparam in the database.
	Table = "irt_item_params"
)

// Columns holds all SQL columns for irtitemparam fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldQuestionID,
	FieldDiscrimination,
	FieldDifficulty,
	FieldGuessing,
	FieldSeDiscrimination,
	FieldSeDifficulty,
	FieldNObs,
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
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultGuessing holds the default value on creation for the "guessing" field.
	DefaultGuessing float64
	// DefaultSeDiscrimination holds the default value on creation for the "se_discrimination" field.
	DefaultSeDiscrimination float64
	// DefaultSeDifficulty holds the default value on creation for the "se_difficulty" field.
	DefaultSeDifficulty float64
)

// OrderOption defines the ordering options for the IrtItemParam queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByDiscrimination orders the results by the discrimination field.
func ByDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscrimination, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByGuessing orders the results by the guessing field.
func ByGuessing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessing, opts...).ToFunc()
}

// BySeDiscrimination orders the results by the se_discrimination field.
func BySeDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeDiscrimination, opts...).ToFunc()
}

// BySeDifficulty orders the results by the se_difficulty field.
func BySeDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeDifficulty, opts...).ToFunc()
}

// ByNObs orders the results by the n_obs field.
func ByNObs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNObs, opts...).ToFunc()
}
