// Code generated by ent, DO NOT EDIT.

package irtrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContainsFold(FieldID, id))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldSeed, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldError, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldNotes, v))
}

// ArtifactDir applies equality check predicate on the "artifact_dir" field. It's identical to ArtifactDirEQ.
func ArtifactDir(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldArtifactDir, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldFinishedAt, v))
}

// ModelTypeEQ applies the EQ predicate on the "model_type" field.
func ModelTypeEQ(v ModelType) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldModelType, v))
}

// ModelTypeNEQ applies the NEQ predicate on the "model_type" field.
func ModelTypeNEQ(v ModelType) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldModelType, v))
}

// ModelTypeIn applies the In predicate on the "model_type" field.
func ModelTypeIn(vs ...ModelType) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldModelType, vs...))
}

// ModelTypeNotIn applies the NotIn predicate on the "model_type" field.
func ModelTypeNotIn(vs ...ModelType) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldModelType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldStatus, vs...))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldSeed, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotNull(FieldMetrics))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContainsFold(FieldError, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContainsFold(FieldNotes, v))
}

// ArtifactDirEQ applies the EQ predicate on the "artifact_dir" field.
func ArtifactDirEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldArtifactDir, v))
}

// ArtifactDirNEQ applies the NEQ predicate on the "artifact_dir" field.
func ArtifactDirNEQ(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldArtifactDir, v))
}

// ArtifactDirIn applies the In predicate on the "artifact_dir" field.
func ArtifactDirIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldArtifactDir, vs...))
}

// ArtifactDirNotIn applies the NotIn predicate on the "artifact_dir" field.
func ArtifactDirNotIn(vs ...string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldArtifactDir, vs...))
}

// ArtifactDirGT applies the GT predicate on the "artifact_dir" field.
func ArtifactDirGT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldArtifactDir, v))
}

// ArtifactDirGTE applies the GTE predicate on the "artifact_dir" field.
func ArtifactDirGTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldArtifactDir, v))
}

// ArtifactDirLT applies the LT predicate on the "artifact_dir" field.
func ArtifactDirLT(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldArtifactDir, v))
}

// ArtifactDirLTE applies the LTE predicate on the "artifact_dir" field.
func ArtifactDirLTE(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldArtifactDir, v))
}

// ArtifactDirContains applies the Contains predicate on the "artifact_dir" field.
func ArtifactDirContains(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContains(FieldArtifactDir, v))
}

// ArtifactDirHasPrefix applies the HasPrefix predicate on the "artifact_dir" field.
func ArtifactDirHasPrefix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasPrefix(FieldArtifactDir, v))
}

// ArtifactDirHasSuffix applies the HasSuffix predicate on the "artifact_dir" field.
func ArtifactDirHasSuffix(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldHasSuffix(FieldArtifactDir, v))
}

// ArtifactDirEqualFold applies the EqualFold predicate on the "artifact_dir" field.
func ArtifactDirEqualFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEqualFold(FieldArtifactDir, v))
}

// ArtifactDirContainsFold applies the ContainsFold predicate on the "artifact_dir" field.
func ArtifactDirContainsFold(v string) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldContainsFold(FieldArtifactDir, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.IrtRun {
	return predicate.IrtRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.IrtRun {
	return predicate.IrtRun(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IrtRun) predicate.IrtRun {
	return predicate.IrtRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IrtRun) predicate.IrtRun {
	return predicate.IrtRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IrtRun) predicate.IrtRun {
	return predicate.IrtRun(sql.NotPredicates(p))
}
