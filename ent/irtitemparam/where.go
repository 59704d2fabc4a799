// Code generated by ent, DO NOT EDIT.

package irtitemparam

import (
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldRunID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldQuestionID, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldDiscrimination, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldDifficulty, v))
}

// Guessing applies equality check predicate on the "guessing" field. It's identical to GuessingEQ.
func Guessing(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldGuessing, v))
}

// SeDiscrimination applies equality check predicate on the "se_discrimination" field. It's identical to SeDiscriminationEQ.
func SeDiscrimination(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldSeDiscrimination, v))
}

// SeDifficulty applies equality check predicate on the "se_difficulty" field. It's identical to SeDifficultyEQ.
func SeDifficulty(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldSeDifficulty, v))
}

// NObs applies equality check predicate on the "n_obs" field. It's identical to NObsEQ.
func NObs(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldNObs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldContainsFold(FieldRunID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldContainsFold(FieldQuestionID, v))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldDiscrimination, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldDifficulty, v))
}

// GuessingEQ applies the EQ predicate on the "guessing" field.
func GuessingEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldGuessing, v))
}

// GuessingNEQ applies the NEQ predicate on the "guessing" field.
func GuessingNEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldGuessing, v))
}

// GuessingIn applies the In predicate on the "guessing" field.
func GuessingIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldGuessing, vs...))
}

// GuessingNotIn applies the NotIn predicate on the "guessing" field.
func GuessingNotIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldGuessing, vs...))
}

// GuessingGT applies the GT predicate on the "guessing" field.
func GuessingGT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldGuessing, v))
}

// GuessingGTE applies the GTE predicate on the "guessing" field.
func GuessingGTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldGuessing, v))
}

// GuessingLT applies the LT predicate on the "guessing" field.
func GuessingLT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldGuessing, v))
}

// GuessingLTE applies the LTE predicate on the "guessing" field.
func GuessingLTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldGuessing, v))
}

// SeDiscriminationEQ applies the EQ predicate on the "se_discrimination" field.
func SeDiscriminationEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldSeDiscrimination, v))
}

// SeDiscriminationNEQ applies the NEQ predicate on the "se_discrimination" field.
func SeDiscriminationNEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldSeDiscrimination, v))
}

// SeDiscriminationIn applies the In predicate on the "se_discrimination" field.
func SeDiscriminationIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldSeDiscrimination, vs...))
}

// SeDiscriminationNotIn applies the NotIn predicate on the "se_discrimination" field.
func SeDiscriminationNotIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldSeDiscrimination, vs...))
}

// SeDiscriminationGT applies the GT predicate on the "se_discrimination" field.
func SeDiscriminationGT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldSeDiscrimination, v))
}

// SeDiscriminationGTE applies the GTE predicate on the "se_discrimination" field.
func SeDiscriminationGTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldSeDiscrimination, v))
}

// SeDiscriminationLT applies the LT predicate on the "se_discrimination" field.
func SeDiscriminationLT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldSeDiscrimination, v))
}

// SeDiscriminationLTE applies the LTE predicate on the "se_discrimination" field.
func SeDiscriminationLTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldSeDiscrimination, v))
}

// SeDifficultyEQ applies the EQ predicate on the "se_difficulty" field.
func SeDifficultyEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldSeDifficulty, v))
}

// SeDifficultyNEQ applies the NEQ predicate on the "se_difficulty" field.
func SeDifficultyNEQ(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldSeDifficulty, v))
}

// SeDifficultyIn applies the In predicate on the "se_difficulty" field.
func SeDifficultyIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldSeDifficulty, vs...))
}

// SeDifficultyNotIn applies the NotIn predicate on the "se_difficulty" field.
func SeDifficultyNotIn(vs ...float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldSeDifficulty, vs...))
}

// SeDifficultyGT applies the GT predicate on the "se_difficulty" field.
func SeDifficultyGT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldSeDifficulty, v))
}

// SeDifficultyGTE applies the GTE predicate on the "se_difficulty" field.
func SeDifficultyGTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldSeDifficulty, v))
}

// SeDifficultyLT applies the LT predicate on the "se_difficulty" field.
func SeDifficultyLT(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldSeDifficulty, v))
}

// SeDifficultyLTE applies the LTE predicate on the "se_difficulty" field.
func SeDifficultyLTE(v float64) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldSeDifficulty, v))
}

// NObsEQ applies the EQ predicate on the "n_obs" field.
func NObsEQ(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldEQ(FieldNObs, v))
}

// NObsNEQ applies the NEQ predicate on the "n_obs" field.
func NObsNEQ(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNEQ(FieldNObs, v))
}

// NObsIn applies the In predicate on the "n_obs" field.
func NObsIn(vs ...int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldIn(FieldNObs, vs...))
}

// NObsNotIn applies the NotIn predicate on the "n_obs" field.
func NObsNotIn(vs ...int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldNotIn(FieldNObs, vs...))
}

// NObsGT applies the GT predicate on the "n_obs" field.
func NObsGT(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGT(FieldNObs, v))
}

// NObsGTE applies the GTE predicate on the "n_obs" field.
func NObsGTE(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldGTE(FieldNObs, v))
}

// NObsLT applies the LT predicate on the "n_obs" field.
func NObsLT(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLT(FieldNObs, v))
}

// NObsLTE applies the LTE predicate on the "n_obs" field.
func NObsLTE(v int) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.FieldLTE(FieldNObs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IrtItemParam) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IrtItemParam) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IrtItemParam) predicate.IrtItemParam {
	return predicate.IrtItemParam(sql.NotPredicates(p))
}
