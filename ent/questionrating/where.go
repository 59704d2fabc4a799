// Code generated by ent, DO NOT EDIT.

package questionrating

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldEntityID, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldScopeID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldRating, v))
}

// Uncertainty applies equality check predicate on the "uncertainty" field. It's identical to UncertaintyEQ.
func Uncertainty(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldUncertainty, v))
}

// NAttempts applies equality check predicate on the "n_attempts" field. It's identical to NAttemptsEQ.
func NAttempts(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldNAttempts, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldLastSeenAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldVersion, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldContainsFold(FieldEntityID, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldScopeID, v))
}

// ScopeIDContains applies the Contains predicate on the "scope_id" field.
func ScopeIDContains(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldContains(FieldScopeID, v))
}

// ScopeIDHasPrefix applies the HasPrefix predicate on the "scope_id" field.
func ScopeIDHasPrefix(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldHasPrefix(FieldScopeID, v))
}

// ScopeIDHasSuffix applies the HasSuffix predicate on the "scope_id" field.
func ScopeIDHasSuffix(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldHasSuffix(FieldScopeID, v))
}

// ScopeIDEqualFold applies the EqualFold predicate on the "scope_id" field.
func ScopeIDEqualFold(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEqualFold(FieldScopeID, v))
}

// ScopeIDContainsFold applies the ContainsFold predicate on the "scope_id" field.
func ScopeIDContainsFold(v string) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldContainsFold(FieldScopeID, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldRating, v))
}

// UncertaintyEQ applies the EQ predicate on the "uncertainty" field.
func UncertaintyEQ(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldUncertainty, v))
}

// UncertaintyNEQ applies the NEQ predicate on the "uncertainty" field.
func UncertaintyNEQ(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldUncertainty, v))
}

// UncertaintyIn applies the In predicate on the "uncertainty" field.
func UncertaintyIn(vs ...float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldUncertainty, vs...))
}

// UncertaintyNotIn applies the NotIn predicate on the "uncertainty" field.
func UncertaintyNotIn(vs ...float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldUncertainty, vs...))
}

// UncertaintyGT applies the GT predicate on the "uncertainty" field.
func UncertaintyGT(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldUncertainty, v))
}

// UncertaintyGTE applies the GTE predicate on the "uncertainty" field.
func UncertaintyGTE(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldUncertainty, v))
}

// UncertaintyLT applies the LT predicate on the "uncertainty" field.
func UncertaintyLT(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldUncertainty, v))
}

// UncertaintyLTE applies the LTE predicate on the "uncertainty" field.
func UncertaintyLTE(v float64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldUncertainty, v))
}

// NAttemptsEQ applies the EQ predicate on the "n_attempts" field.
func NAttemptsEQ(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldNAttempts, v))
}

// NAttemptsNEQ applies the NEQ predicate on the "n_attempts" field.
func NAttemptsNEQ(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldNAttempts, v))
}

// NAttemptsIn applies the In predicate on the "n_attempts" field.
func NAttemptsIn(vs ...int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldNAttempts, vs...))
}

// NAttemptsNotIn applies the NotIn predicate on the "n_attempts" field.
func NAttemptsNotIn(vs ...int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldNAttempts, vs...))
}

// NAttemptsGT applies the GT predicate on the "n_attempts" field.
func NAttemptsGT(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldNAttempts, v))
}

// NAttemptsGTE applies the GTE predicate on the "n_attempts" field.
func NAttemptsGTE(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldNAttempts, v))
}

// NAttemptsLT applies the LT predicate on the "n_attempts" field.
func NAttemptsLT(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldNAttempts, v))
}

// NAttemptsLTE applies the LTE predicate on the "n_attempts" field.
func NAttemptsLTE(v int) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldNAttempts, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotNull(FieldLastSeenAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.QuestionRating {
	return predicate.QuestionRating(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionRating) predicate.QuestionRating {
	return predicate.QuestionRating(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionRating) predicate.QuestionRating {
	return predicate.QuestionRating(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionRating) predicate.QuestionRating {
	return predicate.QuestionRating(sql.NotPredicates(p))
}
