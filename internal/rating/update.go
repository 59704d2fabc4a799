package rating

import (
	"math"
	"time"
)

// State is the pre- or post-update view of one rating row.
type State struct {
	Rating      float64
	Uncertainty float64
	NAttempts   int
	LastSeenAt  *time.Time
}

// Outcome is the result of applying one attempt to a (user, question)
// pair in one scope. All values are finite by construction.
type Outcome struct {
	PPred     float64
	Delta     float64
	KUser     float64
	KQuestion float64
	User      State // post-update
	Question  State // post-update
}

// ComputeUpdate applies one attempt's outcome to a user/question rating
// pair. Pure: it reads the pre states and the config and produces the
// post states without side effects. weight scales the delta magnitude
// (1 for the global scope, ThemeUpdateWeight for theme scopes).
//
// Any non-finite intermediate aborts with NonFiniteRatingError; the
// caller must not persist anything in that case.
func ComputeUpdate(cfg Config, user, question State, score bool, occurredAt time.Time, weight float64) (*Outcome, error) {
	if err := checkStateFinite("user", user); err != nil {
		return nil, err
	}
	if err := checkStateFinite("question", question); err != nil {
		return nil, err
	}

	p := PCorrect(user.Rating, question.Rating, cfg.GuessFloor, cfg.Scale)

	y := 0.0
	if score {
		y = 1.0
	}
	delta := clamp(y-p, -1, 1) * weight

	kU := DynamicK(cfg.KBaseUser, user.Uncertainty, cfg.KMin, cfg.KMax)
	kQ := DynamicK(cfg.KBaseQuestion, question.Uncertainty, cfg.KMin, cfg.KMax)

	newTheta := clamp(user.Rating+kU*delta, RatingClampMin, RatingClampMax)
	// Sign flip: a correct answer makes the question look easier.
	newB := clamp(question.Rating-kQ*delta, RatingClampMin, RatingClampMax)

	newUncU := NextUncertainty(user.Uncertainty, user.LastSeenAt, occurredAt,
		cfg.UncFloor, cfg.UncDecayPerAttempt, cfg.UncAgeIncreasePerDay)
	newUncQ := NextUncertainty(question.Uncertainty, question.LastSeenAt, occurredAt,
		cfg.UncFloor, cfg.UncDecayPerAttempt, cfg.UncAgeIncreasePerDay)

	out := &Outcome{
		PPred:     p,
		Delta:     delta,
		KUser:     kU,
		KQuestion: kQ,
		User: State{
			Rating:      newTheta,
			Uncertainty: newUncU,
			NAttempts:   user.NAttempts + 1,
			LastSeenAt:  &occurredAt,
		},
		Question: State{
			Rating:      newB,
			Uncertainty: newUncQ,
			NAttempts:   question.NAttempts + 1,
			LastSeenAt:  &occurredAt,
		},
	}

	for _, check := range []struct {
		name string
		v    float64
	}{
		{"p_pred", out.PPred},
		{"delta", out.Delta},
		{"k_user", out.KUser},
		{"k_question", out.KQuestion},
		{"user_rating", out.User.Rating},
		{"user_uncertainty", out.User.Uncertainty},
		{"question_rating", out.Question.Rating},
		{"question_uncertainty", out.Question.Uncertainty},
	} {
		if !isFinite(check.v) {
			return nil, &NonFiniteRatingError{Quantity: check.name, Value: check.v}
		}
	}
	return out, nil
}

func checkStateFinite(side string, s State) error {
	if !isFinite(s.Rating) {
		return &NonFiniteRatingError{Quantity: side + "_rating_pre", Value: s.Rating}
	}
	if !isFinite(s.Uncertainty) {
		return &NonFiniteRatingError{Quantity: side + "_uncertainty_pre", Value: s.Uncertainty}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
