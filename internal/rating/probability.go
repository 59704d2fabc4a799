package rating

import (
	"fmt"
	"math"
)

const (
	// RatingClampMin and RatingClampMax bound every stored rating. The
	// logistic is numerically safe well beyond this range; the clamp
	// keeps runaway configurations from walking ratings off to infinity.
	RatingClampMin = -3000.0
	RatingClampMax = 3000.0
)

// PCorrect returns the predicted probability that a user with ability
// theta answers a question with difficulty b correctly.
//
//	p = guessFloor + (1 - guessFloor) * sigmoid((theta - b) / scale)
//
// theta and b are clamped to [-3000, 3000], guessFloor to [0, 0.5], and
// scale to at least 1 before evaluation. The result is always within
// [guessFloor, 1]. Non-finite inputs violate the calling contract and
// panic: they indicate a bug upstream, not a recoverable condition.
func PCorrect(theta, b, guessFloor, scale float64) float64 {
	checkFinite("theta", theta)
	checkFinite("b", b)
	checkFinite("guess_floor", guessFloor)
	checkFinite("scale", scale)

	theta = clamp(theta, RatingClampMin, RatingClampMax)
	b = clamp(b, RatingClampMin, RatingClampMax)
	guessFloor = clamp(guessFloor, 0, 0.5)
	if scale < 1 {
		scale = 1
	}

	sig := Sigmoid((theta - b) / scale)
	p := guessFloor + (1-guessFloor)*sig
	return clamp(p, guessFloor, 1)
}

// Sigmoid is the numerically stable logistic function. The two branches
// avoid computing e^x for large positive x.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	ex := math.Exp(x)
	return ex / (1 + ex)
}

func checkFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("probability model: non-finite %s: %v", name, v))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
