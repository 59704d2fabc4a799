// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IrtAbility is the predicate function for irtability builders.
type IrtAbility func(*sql.Selector)

// IrtItemParam is the predicate function for irtitemparam builders.
type IrtItemParam func(*sql.Selector)

// IrtRun is the predicate function for irtrun builders.
type IrtRun func(*sql.Selector)

// QuestionRating is the predicate function for questionrating builders.
type QuestionRating func(*sql.Selector)

// UpdateLog is the predicate function for updatelog builders.
type UpdateLog func(*sql.Selector)

// UserRating is the predicate function for userrating builders.
type UserRating func(*sql.Selector)
