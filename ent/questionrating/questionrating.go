// Code generated by ent, DO NOT EDIT.

package questionrating

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionrating type in the database.
	Label = "question_rating"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldUncertainty holds the string denoting the uncertainty field in the database.
	FieldUncertainty = "uncertainty"
	// FieldNAttempts holds the string denoting the n_attempts field in the database.
	FieldNAttempts = "n_attempts"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the questionrating in the database.
	Table = "question_ratings"
)

// Columns holds all SQL columns for questionrating fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldScopeType,
	FieldScopeID,
	FieldRating,
	FieldUncertainty,
	FieldNAttempts,
	FieldLastSeenAt,
	FieldVersion,
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
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// DefaultScopeID holds the default value on creation for the "scope_id" field.
	DefaultScopeID string
	// DefaultNAttempts holds the default value on creation for the "n_attempts" field.
	DefaultNAttempts int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
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
		return fmt.Errorf("questionrating: invalid enum value for scope_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the QuestionRating queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByUncertainty orders the results by the uncertainty field.
func ByUncertainty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUncertainty, opts...).ToFunc()
}

// ByNAttempts orders the results by the n_attempts field.
func ByNAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNAttempts, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
