package irt

import (
	"fmt"
	"math"

	"github.com/adaptly/calibrant/internal/rating"
)

// ModelType selects the item-response curve fitted by a run.
type ModelType string

const (
	// Model2PL fits discrimination and difficulty per item.
	Model2PL ModelType = "2pl"
	// Model3PL additionally fits a guessing lower asymptote per item,
	// capped at 1/option_count.
	Model3PL ModelType = "3pl"
)

// ParseModelType validates a model type string.
func ParseModelType(s string) (ModelType, error) {
	switch ModelType(s) {
	case Model2PL, Model3PL:
		return ModelType(s), nil
	default:
		return "", fmt.Errorf("unknown model type %q (want 2pl or 3pl)", s)
	}
}

func (m ModelType) String() string { return string(m) }

// PCorrect is the item-response curve: P = c + (1-c)*sigmoid(a*(theta-b)).
// For a 2PL fit c is 0 and this reduces to the plain logistic curve.
func PCorrect(theta, a, b, c float64) float64 {
	return c + (1-c)*rating.Sigmoid(a*(theta-b))
}

func sigmoid(x float64) float64 { return rating.Sigmoid(x) }

// softplus maps an unconstrained raw value to a strictly positive one.
// The branch keeps the intermediate exp from overflowing.
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// softplusInv returns the raw value whose softplus is y (y > 0).
func softplusInv(y float64) float64 {
	// For large y, expm1 overflows; softplus is ~identity there anyway.
	if y > 30 {
		return y
	}
	return math.Log(math.Expm1(y))
}

// logit is the inverse sigmoid, used for empirical difficulty starts.
func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
