package schema

import "entgo.io/ent"

// QuestionRating is the difficulty estimate (b) for one question in one scope.
type QuestionRating struct {
	ent.Schema
}

func (QuestionRating) Mixin() []ent.Mixin {
	return []ent.Mixin{RatingMixin{}}
}
