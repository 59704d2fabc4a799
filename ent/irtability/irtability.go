// Code generated by ent, DO NOT EDIT.

package irtability

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the irtability type in the database.
	Label = "irt_ability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldThetaSe holds the string denoting the theta_se field in the database.
	FieldThetaSe = "theta_se"
	// FieldNObs holds the string denoting the n_obs field in the database.
	FieldNObs = "n_obs"
	// Table holds the table name of the irtability in the database.
	Table = "irt_abilities"
)

// Columns holds all SQL columns for irtability fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldUserID,
	FieldTheta,
	FieldThetaSe,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultThetaSe holds the default value on creation for the "theta_se" field.
	DefaultThetaSe float64
)

// OrderOption defines the ordering options for the IrtAbility queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// ByThetaSe orders the results by the theta_se field.
func ByThetaSe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaSe, opts...).ToFunc()
}

// ByNObs orders the results by the n_obs field.
func ByNObs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNObs, opts...).ToFunc()
}
