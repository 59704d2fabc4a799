// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adaptly/calibrant/ent/irtability"
	"github.com/adaptly/calibrant/ent/irtitemparam"
	"github.com/adaptly/calibrant/ent/irtrun"
	"github.com/adaptly/calibrant/ent/questionrating"
	"github.com/adaptly/calibrant/ent/schema"
	"github.com/adaptly/calibrant/ent/updatelog"
	"github.com/adaptly/calibrant/ent/userrating"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	irtabilityFields := schema.IrtAbility{}.Fields()
	_ = irtabilityFields
	// irtabilityDescRunID is the schema descriptor for run_id field.
	irtabilityDescRunID := irtabilityFields[0].Descriptor()
	// irtability.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	irtability.RunIDValidator = irtabilityDescRunID.Validators[0].(func(string) error)
	// irtabilityDescUserID is the schema descriptor for user_id field.
	irtabilityDescUserID := irtabilityFields[1].Descriptor()
	// irtability.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	irtability.UserIDValidator = irtabilityDescUserID.Validators[0].(func(string) error)
	// irtabilityDescThetaSe is the schema descriptor for theta_se field.
	irtabilityDescThetaSe := irtabilityFields[3].Descriptor()
	// irtability.DefaultThetaSe holds the default value on creation for the theta_se field.
	irtability.DefaultThetaSe = irtabilityDescThetaSe.Default.(float64)
	irtitemparamFields := schema.IrtItemParam{}.Fields()
	_ = irtitemparamFields
	// irtitemparamDescRunID is the schema descriptor for run_id field.
	irtitemparamDescRunID := irtitemparamFields[0].Descriptor()
	// irtitemparam.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	irtitemparam.RunIDValidator = irtitemparamDescRunID.Validators[0].(func(string) error)
	// irtitemparamDescQuestionID is the schema descriptor for question_id field.
	irtitemparamDescQuestionID := irtitemparamFields[1].Descriptor()
	// irtitemparam.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	irtitemparam.QuestionIDValidator = irtitemparamDescQuestionID.Validators[0].(func(string) error)
	// irtitemparamDescGuessing is the schema descriptor for guessing field.
	irtitemparamDescGuessing := irtitemparamFields[4].Descriptor()
	// irtitemparam.DefaultGuessing holds the default value on creation for the guessing field.
	irtitemparam.DefaultGuessing = irtitemparamDescGuessing.Default.(float64)
	// irtitemparamDescSeDiscrimination is the schema descriptor for se_discrimination field.
	irtitemparamDescSeDiscrimination := irtitemparamFields[5].Descriptor()
	// irtitemparam.DefaultSeDiscrimination holds the default value on creation for the se_discrimination field.
	irtitemparam.DefaultSeDiscrimination = irtitemparamDescSeDiscrimination.Default.(float64)
	// irtitemparamDescSeDifficulty is the schema descriptor for se_difficulty field.
	irtitemparamDescSeDifficulty := irtitemparamFields[6].Descriptor()
	// irtitemparam.DefaultSeDifficulty holds the default value on creation for the se_difficulty field.
	irtitemparam.DefaultSeDifficulty = irtitemparamDescSeDifficulty.Default.(float64)
	irtrunFields := schema.IrtRun{}.Fields()
	_ = irtrunFields
	// irtrunDescError is the schema descriptor for error field.
	irtrunDescError := irtrunFields[6].Descriptor()
	// irtrun.DefaultError holds the default value on creation for the error field.
	irtrun.DefaultError = irtrunDescError.Default.(string)
	// irtrunDescNotes is the schema descriptor for notes field.
	irtrunDescNotes := irtrunFields[7].Descriptor()
	// irtrun.DefaultNotes holds the default value on creation for the notes field.
	irtrun.DefaultNotes = irtrunDescNotes.Default.(string)
	// irtrunDescArtifactDir is the schema descriptor for artifact_dir field.
	irtrunDescArtifactDir := irtrunFields[8].Descriptor()
	// irtrun.DefaultArtifactDir holds the default value on creation for the artifact_dir field.
	irtrun.DefaultArtifactDir = irtrunDescArtifactDir.Default.(string)
	// irtrunDescCreatedAt is the schema descriptor for created_at field.
	irtrunDescCreatedAt := irtrunFields[9].Descriptor()
	// irtrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	irtrun.DefaultCreatedAt = irtrunDescCreatedAt.Default.(func() time.Time)
	// irtrunDescID is the schema descriptor for id field.
	irtrunDescID := irtrunFields[0].Descriptor()
	// irtrun.IDValidator is a validator for the "id" field. It is called by the builders before save.
	irtrun.IDValidator = irtrunDescID.Validators[0].(func(string) error)
	questionratingMixin := schema.QuestionRating{}.Mixin()
	questionratingMixinFields0 := questionratingMixin[0].Fields()
	_ = questionratingMixinFields0
	questionratingFields := schema.QuestionRating{}.Fields()
	_ = questionratingFields
	// questionratingDescEntityID is the schema descriptor for entity_id field.
	questionratingDescEntityID := questionratingMixinFields0[0].Descriptor()
	// questionrating.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	questionrating.EntityIDValidator = questionratingDescEntityID.Validators[0].(func(string) error)
	// questionratingDescScopeID is the schema descriptor for scope_id field.
	questionratingDescScopeID := questionratingMixinFields0[2].Descriptor()
	// questionrating.DefaultScopeID holds the default value on creation for the scope_id field.
	questionrating.DefaultScopeID = questionratingDescScopeID.Default.(string)
	// questionratingDescNAttempts is the schema descriptor for n_attempts field.
	questionratingDescNAttempts := questionratingMixinFields0[5].Descriptor()
	// questionrating.DefaultNAttempts holds the default value on creation for the n_attempts field.
	questionrating.DefaultNAttempts = questionratingDescNAttempts.Default.(int)
	// questionratingDescVersion is the schema descriptor for version field.
	questionratingDescVersion := questionratingMixinFields0[7].Descriptor()
	// questionrating.DefaultVersion holds the default value on creation for the version field.
	questionrating.DefaultVersion = questionratingDescVersion.Default.(int64)
	updatelogFields := schema.UpdateLog{}.Fields()
	_ = updatelogFields
	// updatelogDescAttemptID is the schema descriptor for attempt_id field.
	updatelogDescAttemptID := updatelogFields[0].Descriptor()
	// updatelog.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	updatelog.AttemptIDValidator = updatelogDescAttemptID.Validators[0].(func(string) error)
	// updatelogDescUserID is the schema descriptor for user_id field.
	updatelogDescUserID := updatelogFields[1].Descriptor()
	// updatelog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	updatelog.UserIDValidator = updatelogDescUserID.Validators[0].(func(string) error)
	// updatelogDescQuestionID is the schema descriptor for question_id field.
	updatelogDescQuestionID := updatelogFields[2].Descriptor()
	// updatelog.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	updatelog.QuestionIDValidator = updatelogDescQuestionID.Validators[0].(func(string) error)
	// updatelogDescScopeID is the schema descriptor for scope_id field.
	updatelogDescScopeID := updatelogFields[4].Descriptor()
	// updatelog.DefaultScopeID holds the default value on creation for the scope_id field.
	updatelog.DefaultScopeID = updatelogDescScopeID.Default.(string)
	// updatelogDescOptionCount is the schema descriptor for option_count field.
	updatelogDescOptionCount := updatelogFields[19].Descriptor()
	// updatelog.DefaultOptionCount holds the default value on creation for the option_count field.
	updatelog.DefaultOptionCount = updatelogDescOptionCount.Default.(int)
	// updatelogDescCreatedAt is the schema descriptor for created_at field.
	updatelogDescCreatedAt := updatelogFields[21].Descriptor()
	// updatelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	updatelog.DefaultCreatedAt = updatelogDescCreatedAt.Default.(func() time.Time)
	userratingMixin := schema.UserRating{}.Mixin()
	userratingMixinFields0 := userratingMixin[0].Fields()
	_ = userratingMixinFields0
	userratingFields := schema.UserRating{}.Fields()
	_ = userratingFields
	// userratingDescEntityID is the schema descriptor for entity_id field.
	userratingDescEntityID := userratingMixinFields0[0].Descriptor()
	// userrating.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	userrating.EntityIDValidator = userratingDescEntityID.Validators[0].(func(string) error)
	// userratingDescScopeID is the schema descriptor for scope_id field.
	userratingDescScopeID := userratingMixinFields0[2].Descriptor()
	// userrating.DefaultScopeID holds the default value on creation for the scope_id field.
	userrating.DefaultScopeID = userratingDescScopeID.Default.(string)
	// userratingDescNAttempts is the schema descriptor for n_attempts field.
	userratingDescNAttempts := userratingMixinFields0[5].Descriptor()
	// userrating.DefaultNAttempts holds the default value on creation for the n_attempts field.
	userrating.DefaultNAttempts = userratingDescNAttempts.Default.(int)
	// userratingDescVersion is the schema descriptor for version field.
	userratingDescVersion := userratingMixinFields0[7].Descriptor()
	// userrating.DefaultVersion holds the default value on creation for the version field.
	userrating.DefaultVersion = userratingDescVersion.Default.(int64)
}
