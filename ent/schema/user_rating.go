package schema

import "entgo.io/ent"

// UserRating is the ability estimate (theta) for one user in one scope.
type UserRating struct {
	ent.Schema
}

func (UserRating) Mixin() []ent.Mixin {
	return []ent.Mixin{RatingMixin{}}
}
