package rating

import "fmt"

// NonFiniteRatingError means a rating computation produced NaN or Inf.
// It is fatal for the attempt: the whole update is aborted and nothing is
// persisted. It signals a configuration or upstream data bug, never a
// condition to correct silently.
type NonFiniteRatingError struct {
	Quantity string  // which intermediate went non-finite
	Value    float64 // the offending value
}

func (e *NonFiniteRatingError) Error() string {
	return fmt.Sprintf("non-finite rating value: %s = %v", e.Quantity, e.Value)
}

// ValidationError means malformed input or configuration, rejected before
// any computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
