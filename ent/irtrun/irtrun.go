// Code generated by ent, DO NOT EDIT.

package irtrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the irtrun type in the database.
	Label = "irt_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldModelType holds the string denoting the model_type field in the database.
	FieldModelType = "model_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// FieldDatasetSpec holds the string denoting the dataset_spec field in the database.
	FieldDatasetSpec = "dataset_spec"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldArtifactDir holds the string denoting the artifact_dir field in the database.
	FieldArtifactDir = "artifact_dir"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the irtrun in the database.
	Table = "irt_runs"
)

// Columns holds all SQL columns for irtrun fields.
var Columns = []string{
	FieldID,
	FieldModelType,
	FieldStatus,
	FieldSeed,
	FieldDatasetSpec,
	FieldMetrics,
	FieldError,
	FieldNotes,
	FieldArtifactDir,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
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
	// DefaultError holds the default value on creation for the "error" field.
	DefaultError string
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultArtifactDir holds the default value on creation for the "artifact_dir" field.
	DefaultArtifactDir string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// ModelType defines the type for the "model_type" enum field.
type ModelType string

// ModelType values.
const (
	ModelType2pl ModelType = "2pl"
	ModelType3pl ModelType = "3pl"
)

func (mt ModelType) String() string {
	return string(mt)
}

// ModelTypeValidator is a validator for the "model_type" field enum values. It is called by the builders before save.
func ModelTypeValidator(mt ModelType) error {
	switch mt {
	case ModelType2pl, ModelType3pl:
		return nil
	default:
		return fmt.Errorf("irtrun: invalid enum value for model_type field: %q", mt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusSucceeded, StatusFailed:
		return nil
	default:
		return fmt.Errorf("irtrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IrtRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModelType orders the results by the model_type field.
func ByModelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByArtifactDir orders the results by the artifact_dir field.
func ByArtifactDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactDir, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
