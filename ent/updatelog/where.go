// Code generated by ent, DO NOT EDIT.

package updatelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionID, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScopeID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v bool) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScore, v))
}

// PPred applies equality check predicate on the "p_pred" field. It's identical to PPredEQ.
func PPred(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldPPred, v))
}

// UserRatingPre applies equality check predicate on the "user_rating_pre" field. It's identical to UserRatingPreEQ.
func UserRatingPre(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserRatingPre, v))
}

// UserRatingPost applies equality check predicate on the "user_rating_post" field. It's identical to UserRatingPostEQ.
func UserRatingPost(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserRatingPost, v))
}

// UserUncertaintyPre applies equality check predicate on the "user_uncertainty_pre" field. It's identical to UserUncertaintyPreEQ.
func UserUncertaintyPre(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPost applies equality check predicate on the "user_uncertainty_post" field. It's identical to UserUncertaintyPostEQ.
func UserUncertaintyPost(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserUncertaintyPost, v))
}

// QuestionRatingPre applies equality check predicate on the "question_rating_pre" field. It's identical to QuestionRatingPreEQ.
func QuestionRatingPre(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionRatingPre, v))
}

// QuestionRatingPost applies equality check predicate on the "question_rating_post" field. It's identical to QuestionRatingPostEQ.
func QuestionRatingPost(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionRatingPost, v))
}

// QuestionUncertaintyPre applies equality check predicate on the "question_uncertainty_pre" field. It's identical to QuestionUncertaintyPreEQ.
func QuestionUncertaintyPre(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPost applies equality check predicate on the "question_uncertainty_post" field. It's identical to QuestionUncertaintyPostEQ.
func QuestionUncertaintyPost(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionUncertaintyPost, v))
}

// KUser applies equality check predicate on the "k_user" field. It's identical to KUserEQ.
func KUser(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldKUser, v))
}

// KQuestion applies equality check predicate on the "k_question" field. It's identical to KQuestionEQ.
func KQuestion(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldKQuestion, v))
}

// GuessFloor applies equality check predicate on the "guess_floor" field. It's identical to GuessFloorEQ.
func GuessFloor(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldGuessFloor, v))
}

// Scale applies equality check predicate on the "scale" field. It's identical to ScaleEQ.
func Scale(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScale, v))
}

// OptionCount applies equality check predicate on the "option_count" field. It's identical to OptionCountEQ.
func OptionCount(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldOptionCount, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldOccurredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldCreatedAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContainsFold(FieldQuestionID, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldScopeID, v))
}

// ScopeIDContains applies the Contains predicate on the "scope_id" field.
func ScopeIDContains(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContains(FieldScopeID, v))
}

// ScopeIDHasPrefix applies the HasPrefix predicate on the "scope_id" field.
func ScopeIDHasPrefix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasPrefix(FieldScopeID, v))
}

// ScopeIDHasSuffix applies the HasSuffix predicate on the "scope_id" field.
func ScopeIDHasSuffix(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldHasSuffix(FieldScopeID, v))
}

// ScopeIDEqualFold applies the EqualFold predicate on the "scope_id" field.
func ScopeIDEqualFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEqualFold(FieldScopeID, v))
}

// ScopeIDContainsFold applies the ContainsFold predicate on the "scope_id" field.
func ScopeIDContainsFold(v string) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldContainsFold(FieldScopeID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v bool) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v bool) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldScore, v))
}

// PPredEQ applies the EQ predicate on the "p_pred" field.
func PPredEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldPPred, v))
}

// PPredNEQ applies the NEQ predicate on the "p_pred" field.
func PPredNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldPPred, v))
}

// PPredIn applies the In predicate on the "p_pred" field.
func PPredIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldPPred, vs...))
}

// PPredNotIn applies the NotIn predicate on the "p_pred" field.
func PPredNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldPPred, vs...))
}

// PPredGT applies the GT predicate on the "p_pred" field.
func PPredGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldPPred, v))
}

// PPredGTE applies the GTE predicate on the "p_pred" field.
func PPredGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldPPred, v))
}

// PPredLT applies the LT predicate on the "p_pred" field.
func PPredLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldPPred, v))
}

// PPredLTE applies the LTE predicate on the "p_pred" field.
func PPredLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldPPred, v))
}

// UserRatingPreEQ applies the EQ predicate on the "user_rating_pre" field.
func UserRatingPreEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserRatingPre, v))
}

// UserRatingPreNEQ applies the NEQ predicate on the "user_rating_pre" field.
func UserRatingPreNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldUserRatingPre, v))
}

// UserRatingPreIn applies the In predicate on the "user_rating_pre" field.
func UserRatingPreIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldUserRatingPre, vs...))
}

// UserRatingPreNotIn applies the NotIn predicate on the "user_rating_pre" field.
func UserRatingPreNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldUserRatingPre, vs...))
}

// UserRatingPreGT applies the GT predicate on the "user_rating_pre" field.
func UserRatingPreGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldUserRatingPre, v))
}

// UserRatingPreGTE applies the GTE predicate on the "user_rating_pre" field.
func UserRatingPreGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldUserRatingPre, v))
}

// UserRatingPreLT applies the LT predicate on the "user_rating_pre" field.
func UserRatingPreLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldUserRatingPre, v))
}

// UserRatingPreLTE applies the LTE predicate on the "user_rating_pre" field.
func UserRatingPreLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldUserRatingPre, v))
}

// UserRatingPostEQ applies the EQ predicate on the "user_rating_post" field.
func UserRatingPostEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserRatingPost, v))
}

// UserRatingPostNEQ applies the NEQ predicate on the "user_rating_post" field.
func UserRatingPostNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldUserRatingPost, v))
}

// UserRatingPostIn applies the In predicate on the "user_rating_post" field.
func UserRatingPostIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldUserRatingPost, vs...))
}

// UserRatingPostNotIn applies the NotIn predicate on the "user_rating_post" field.
func UserRatingPostNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldUserRatingPost, vs...))
}

// UserRatingPostGT applies the GT predicate on the "user_rating_post" field.
func UserRatingPostGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldUserRatingPost, v))
}

// UserRatingPostGTE applies the GTE predicate on the "user_rating_post" field.
func UserRatingPostGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldUserRatingPost, v))
}

// UserRatingPostLT applies the LT predicate on the "user_rating_post" field.
func UserRatingPostLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldUserRatingPost, v))
}

// UserRatingPostLTE applies the LTE predicate on the "user_rating_post" field.
func UserRatingPostLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldUserRatingPost, v))
}

// UserUncertaintyPreEQ applies the EQ predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPreNEQ applies the NEQ predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPreIn applies the In predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldUserUncertaintyPre, vs...))
}

// UserUncertaintyPreNotIn applies the NotIn predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldUserUncertaintyPre, vs...))
}

// UserUncertaintyPreGT applies the GT predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPreGTE applies the GTE predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPreLT applies the LT predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPreLTE applies the LTE predicate on the "user_uncertainty_pre" field.
func UserUncertaintyPreLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldUserUncertaintyPre, v))
}

// UserUncertaintyPostEQ applies the EQ predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldUserUncertaintyPost, v))
}

// UserUncertaintyPostNEQ applies the NEQ predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldUserUncertaintyPost, v))
}

// UserUncertaintyPostIn applies the In predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldUserUncertaintyPost, vs...))
}

// UserUncertaintyPostNotIn applies the NotIn predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldUserUncertaintyPost, vs...))
}

// UserUncertaintyPostGT applies the GT predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldUserUncertaintyPost, v))
}

// UserUncertaintyPostGTE applies the GTE predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldUserUncertaintyPost, v))
}

// UserUncertaintyPostLT applies the LT predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldUserUncertaintyPost, v))
}

// UserUncertaintyPostLTE applies the LTE predicate on the "user_uncertainty_post" field.
func UserUncertaintyPostLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldUserUncertaintyPost, v))
}

// QuestionRatingPreEQ applies the EQ predicate on the "question_rating_pre" field.
func QuestionRatingPreEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionRatingPre, v))
}

// QuestionRatingPreNEQ applies the NEQ predicate on the "question_rating_pre" field.
func QuestionRatingPreNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldQuestionRatingPre, v))
}

// QuestionRatingPreIn applies the In predicate on the "question_rating_pre" field.
func QuestionRatingPreIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldQuestionRatingPre, vs...))
}

// QuestionRatingPreNotIn applies the NotIn predicate on the "question_rating_pre" field.
func QuestionRatingPreNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldQuestionRatingPre, vs...))
}

// QuestionRatingPreGT applies the GT predicate on the "question_rating_pre" field.
func QuestionRatingPreGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldQuestionRatingPre, v))
}

// QuestionRatingPreGTE applies the GTE predicate on the "question_rating_pre" field.
func QuestionRatingPreGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldQuestionRatingPre, v))
}

// QuestionRatingPreLT applies the LT predicate on the "question_rating_pre" field.
func QuestionRatingPreLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldQuestionRatingPre, v))
}

// QuestionRatingPreLTE applies the LTE predicate on the "question_rating_pre" field.
func QuestionRatingPreLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldQuestionRatingPre, v))
}

// QuestionRatingPostEQ applies the EQ predicate on the "question_rating_post" field.
func QuestionRatingPostEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionRatingPost, v))
}

// QuestionRatingPostNEQ applies the NEQ predicate on the "question_rating_post" field.
func QuestionRatingPostNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldQuestionRatingPost, v))
}

// QuestionRatingPostIn applies the In predicate on the "question_rating_post" field.
func QuestionRatingPostIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldQuestionRatingPost, vs...))
}

// QuestionRatingPostNotIn applies the NotIn predicate on the "question_rating_post" field.
func QuestionRatingPostNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldQuestionRatingPost, vs...))
}

// QuestionRatingPostGT applies the GT predicate on the "question_rating_post" field.
func QuestionRatingPostGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldQuestionRatingPost, v))
}

// QuestionRatingPostGTE applies the GTE predicate on the "question_rating_post" field.
func QuestionRatingPostGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldQuestionRatingPost, v))
}

// QuestionRatingPostLT applies the LT predicate on the "question_rating_post" field.
func QuestionRatingPostLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldQuestionRatingPost, v))
}

// QuestionRatingPostLTE applies the LTE predicate on the "question_rating_post" field.
func QuestionRatingPostLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldQuestionRatingPost, v))
}

// QuestionUncertaintyPreEQ applies the EQ predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPreNEQ applies the NEQ predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPreIn applies the In predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldQuestionUncertaintyPre, vs...))
}

// QuestionUncertaintyPreNotIn applies the NotIn predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldQuestionUncertaintyPre, vs...))
}

// QuestionUncertaintyPreGT applies the GT predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPreGTE applies the GTE predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPreLT applies the LT predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPreLTE applies the LTE predicate on the "question_uncertainty_pre" field.
func QuestionUncertaintyPreLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldQuestionUncertaintyPre, v))
}

// QuestionUncertaintyPostEQ applies the EQ predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldQuestionUncertaintyPost, v))
}

// QuestionUncertaintyPostNEQ applies the NEQ predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldQuestionUncertaintyPost, v))
}

// QuestionUncertaintyPostIn applies the In predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldQuestionUncertaintyPost, vs...))
}

// QuestionUncertaintyPostNotIn applies the NotIn predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldQuestionUncertaintyPost, vs...))
}

// QuestionUncertaintyPostGT applies the GT predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldQuestionUncertaintyPost, v))
}

// QuestionUncertaintyPostGTE applies the GTE predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldQuestionUncertaintyPost, v))
}

// QuestionUncertaintyPostLT applies the LT predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldQuestionUncertaintyPost, v))
}

// QuestionUncertaintyPostLTE applies the LTE predicate on the "question_uncertainty_post" field.
func QuestionUncertaintyPostLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldQuestionUncertaintyPost, v))
}

// KUserEQ applies the EQ predicate on the "k_user" field.
func KUserEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldKUser, v))
}

// KUserNEQ applies the NEQ predicate on the "k_user" field.
func KUserNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldKUser, v))
}

// KUserIn applies the In predicate on the "k_user" field.
func KUserIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldKUser, vs...))
}

// KUserNotIn applies the NotIn predicate on the "k_user" field.
func KUserNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldKUser, vs...))
}

// KUserGT applies the GT predicate on the "k_user" field.
func KUserGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldKUser, v))
}

// KUserGTE applies the GTE predicate on the "k_user" field.
func KUserGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldKUser, v))
}

// KUserLT applies the LT predicate on the "k_user" field.
func KUserLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldKUser, v))
}

// KUserLTE applies the LTE predicate on the "k_user" field.
func KUserLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldKUser, v))
}

// KQuestionEQ applies the EQ predicate on the "k_question" field.
func KQuestionEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldKQuestion, v))
}

// KQuestionNEQ applies the NEQ predicate on the "k_question" field.
func KQuestionNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldKQuestion, v))
}

// KQuestionIn applies the In predicate on the "k_question" field.
func KQuestionIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldKQuestion, vs...))
}

// KQuestionNotIn applies the NotIn predicate on the "k_question" field.
func KQuestionNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldKQuestion, vs...))
}

// KQuestionGT applies the GT predicate on the "k_question" field.
func KQuestionGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldKQuestion, v))
}

// KQuestionGTE applies the GTE predicate on the "k_question" field.
func KQuestionGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldKQuestion, v))
}

// KQuestionLT applies the LT predicate on the "k_question" field.
func KQuestionLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldKQuestion, v))
}

// KQuestionLTE applies the LTE predicate on the "k_question" field.
func KQuestionLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldKQuestion, v))
}

// GuessFloorEQ applies the EQ predicate on the "guess_floor" field.
func GuessFloorEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldGuessFloor, v))
}

// GuessFloorNEQ applies the NEQ predicate on the "guess_floor" field.
func GuessFloorNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldGuessFloor, v))
}

// GuessFloorIn applies the In predicate on the "guess_floor" field.
func GuessFloorIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldGuessFloor, vs...))
}

// GuessFloorNotIn applies the NotIn predicate on the "guess_floor" field.
func GuessFloorNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldGuessFloor, vs...))
}

// GuessFloorGT applies the GT predicate on the "guess_floor" field.
func GuessFloorGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldGuessFloor, v))
}

// GuessFloorGTE applies the GTE predicate on the "guess_floor" field.
func GuessFloorGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldGuessFloor, v))
}

// GuessFloorLT applies the LT predicate on the "guess_floor" field.
func GuessFloorLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldGuessFloor, v))
}

// GuessFloorLTE applies the LTE predicate on the "guess_floor" field.
func GuessFloorLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldGuessFloor, v))
}

// ScaleEQ applies the EQ predicate on the "scale" field.
func ScaleEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldScale, v))
}

// ScaleNEQ applies the NEQ predicate on the "scale" field.
func ScaleNEQ(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldScale, v))
}

// ScaleIn applies the In predicate on the "scale" field.
func ScaleIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldScale, vs...))
}

// ScaleNotIn applies the NotIn predicate on the "scale" field.
func ScaleNotIn(vs ...float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldScale, vs...))
}

// ScaleGT applies the GT predicate on the "scale" field.
func ScaleGT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldScale, v))
}

// ScaleGTE applies the GTE predicate on the "scale" field.
func ScaleGTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldScale, v))
}

// ScaleLT applies the LT predicate on the "scale" field.
func ScaleLT(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldScale, v))
}

// ScaleLTE applies the LTE predicate on the "scale" field.
func ScaleLTE(v float64) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldScale, v))
}

// OptionCountEQ applies the EQ predicate on the "option_count" field.
func OptionCountEQ(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldOptionCount, v))
}

// OptionCountNEQ applies the NEQ predicate on the "option_count" field.
func OptionCountNEQ(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldOptionCount, v))
}

// OptionCountIn applies the In predicate on the "option_count" field.
func OptionCountIn(vs ...int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldOptionCount, vs...))
}

// OptionCountNotIn applies the NotIn predicate on the "option_count" field.
func OptionCountNotIn(vs ...int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldOptionCount, vs...))
}

// OptionCountGT applies the GT predicate on the "option_count" field.
func OptionCountGT(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldOptionCount, v))
}

// OptionCountGTE applies the GTE predicate on the "option_count" field.
func OptionCountGTE(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldOptionCount, v))
}

// OptionCountLT applies the LT predicate on the "option_count" field.
func OptionCountLT(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldOptionCount, v))
}

// OptionCountLTE applies the LTE predicate on the "option_count" field.
func OptionCountLTE(v int) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldOptionCount, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldOccurredAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UpdateLog {
	return predicate.UpdateLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UpdateLog) predicate.UpdateLog {
	return predicate.UpdateLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UpdateLog) predicate.UpdateLog {
	return predicate.UpdateLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UpdateLog) predicate.UpdateLog {
	return predicate.UpdateLog(sql.NotPredicates(p))
}
