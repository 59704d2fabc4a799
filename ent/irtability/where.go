// Code generated by ent, DO NOT EDIT.

package irtability

import (
	"entgo.io/ent/dialect/sql"
	"github.com/adaptly/calibrant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldRunID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldUserID, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldTheta, v))
}

// ThetaSe applies equality check predicate on the "theta_se" field. It's identical to ThetaSeEQ.
func ThetaSe(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldThetaSe, v))
}

// NObs applies equality check predicate on the "n_obs" field. It's identical to NObsEQ.
func NObs(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldNObs, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldContainsFold(FieldRunID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldContainsFold(FieldUserID, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldTheta, v))
}

// ThetaSeEQ applies the EQ predicate on the "theta_se" field.
func ThetaSeEQ(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldThetaSe, v))
}

// ThetaSeNEQ applies the NEQ predicate on the "theta_se" field.
func ThetaSeNEQ(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldThetaSe, v))
}

// ThetaSeIn applies the In predicate on the "theta_se" field.
func ThetaSeIn(vs ...float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldThetaSe, vs...))
}

// ThetaSeNotIn applies the NotIn predicate on the "theta_se" field.
func ThetaSeNotIn(vs ...float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldThetaSe, vs...))
}

// ThetaSeGT applies the GT predicate on the "theta_se" field.
func ThetaSeGT(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldThetaSe, v))
}

// ThetaSeGTE applies the GTE predicate on the "theta_se" field.
func ThetaSeGTE(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldThetaSe, v))
}

// ThetaSeLT applies the LT predicate on the "theta_se" field.
func ThetaSeLT(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldThetaSe, v))
}

// ThetaSeLTE applies the LTE predicate on the "theta_se" field.
func ThetaSeLTE(v float64) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldThetaSe, v))
}

// NObsEQ applies the EQ predicate on the "n_obs" field.
func NObsEQ(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldEQ(FieldNObs, v))
}

// NObsNEQ applies the NEQ predicate on the "n_obs" field.
func NObsNEQ(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNEQ(FieldNObs, v))
}

// NObsIn applies the In predicate on the "n_obs" field.
func NObsIn(vs ...int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldIn(FieldNObs, vs...))
}

// NObsNotIn applies the NotIn predicate on the "n_obs" field.
func NObsNotIn(vs ...int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldNotIn(FieldNObs, vs...))
}

// NObsGT applies the GT predicate on the "n_obs" field.
func NObsGT(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGT(FieldNObs, v))
}

// NObsGTE applies the GTE predicate on the "n_obs" field.
func NObsGTE(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldGTE(FieldNObs, v))
}

// NObsLT applies the LT predicate on the "n_obs" field.
func NObsLT(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLT(FieldNObs, v))
}

// NObsLTE applies the LTE predicate on the "n_obs" field.
func NObsLTE(v int) predicate.IrtAbility {
	return predicate.IrtAbility(sql.FieldLTE(FieldNObs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IrtAbility) predicate.IrtAbility {
	return predicate.IrtAbility(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IrtAbility) predicate.IrtAbility {
	return predicate.IrtAbility(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IrtAbility) predicate.IrtAbility {
	return predicate.IrtAbility(sql.NotPredicates(p))
}
