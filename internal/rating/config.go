package rating

// Config holds the online engine's model constants. It is passed
// explicitly and treated as immutable; the engine keeps no process-wide
// configuration state.
type Config struct {
	// GuessFloor is the chance-level probability floor, 1/N for an
	// N-option multiple-choice question.
	GuessFloor float64 `json:"guess_floor" koanf:"guess_floor"`
	// Scale is the Elo logistic scale constant.
	Scale float64 `json:"scale" koanf:"scale"`

	// KBaseUser and KBaseQuestion are the reference uncertainties at
	// which the dynamic K sits at its midpoint.
	KBaseUser     float64 `json:"k_base_user" koanf:"k_base_user"`
	KBaseQuestion float64 `json:"k_base_question" koanf:"k_base_question"`
	KMin          float64 `json:"k_min" koanf:"k_min"`
	KMax          float64 `json:"k_max" koanf:"k_max"`

	UncInitUser          float64 `json:"unc_init_user" koanf:"unc_init_user"`
	UncInitQuestion      float64 `json:"unc_init_question" koanf:"unc_init_question"`
	UncFloor             float64 `json:"unc_floor" koanf:"unc_floor"`
	UncDecayPerAttempt   float64 `json:"unc_decay_per_attempt" koanf:"unc_decay_per_attempt"`
	UncAgeIncreasePerDay float64 `json:"unc_age_increase_per_day" koanf:"unc_age_increase_per_day"`

	// ThemeUpdateWeight down-weights the delta applied to theme-scoped
	// ratings relative to the global update.
	ThemeUpdateWeight float64 `json:"theme_update_weight" koanf:"theme_update_weight"`

	RatingInit float64 `json:"rating_init" koanf:"rating_init"`

	RecenterEnabled       bool    `json:"recenter_enabled" koanf:"recenter_enabled"`
	RecenterEveryNUpdates int     `json:"recenter_every_n_updates" koanf:"recenter_every_n_updates"`
	RecenterThreshold     float64 `json:"recenter_threshold" koanf:"recenter_threshold"`
}

// DefaultConfig returns the production defaults: a 5-option MCQ guess
// floor on the classic 400-point Elo scale, Glicko-like starting
// uncertainty.
func DefaultConfig() Config {
	return Config{
		GuessFloor:            0.2,
		Scale:                 400,
		KBaseUser:             32,
		KBaseQuestion:         24,
		KMin:                  8,
		KMax:                  64,
		UncInitUser:           350,
		UncInitQuestion:       300,
		UncFloor:              30,
		UncDecayPerAttempt:    0.97,
		UncAgeIncreasePerDay:  1.0,
		ThemeUpdateWeight:     0.5,
		RatingInit:            0,
		RecenterEnabled:       true,
		RecenterEveryNUpdates: 1000,
		RecenterThreshold:     50,
	}
}

// Validate rejects configurations the formulas are not stable under.
func (c Config) Validate() error {
	switch {
	case c.GuessFloor < 0 || c.GuessFloor > 0.5:
		return &ValidationError{Field: "guess_floor", Reason: "must be in [0, 0.5]"}
	case c.Scale < 1:
		return &ValidationError{Field: "scale", Reason: "must be >= 1"}
	case c.KBaseUser <= 0:
		return &ValidationError{Field: "k_base_user", Reason: "must be > 0"}
	case c.KBaseQuestion <= 0:
		return &ValidationError{Field: "k_base_question", Reason: "must be > 0"}
	case c.KMin < 0 || c.KMax < c.KMin:
		return &ValidationError{Field: "k_min/k_max", Reason: "need 0 <= k_min <= k_max"}
	case c.UncFloor <= 0:
		return &ValidationError{Field: "unc_floor", Reason: "must be > 0"}
	case c.UncInitUser < c.UncFloor:
		return &ValidationError{Field: "unc_init_user", Reason: "must be >= unc_floor"}
	case c.UncInitQuestion < c.UncFloor:
		return &ValidationError{Field: "unc_init_question", Reason: "must be >= unc_floor"}
	case c.UncDecayPerAttempt < 0.5 || c.UncDecayPerAttempt > 1.0:
		return &ValidationError{Field: "unc_decay_per_attempt", Reason: "must be in [0.5, 1.0]"}
	case c.UncAgeIncreasePerDay < 0:
		return &ValidationError{Field: "unc_age_increase_per_day", Reason: "must be >= 0"}
	case c.ThemeUpdateWeight < 0 || c.ThemeUpdateWeight > 1:
		return &ValidationError{Field: "theme_update_weight", Reason: "must be in [0, 1]"}
	case c.RatingInit < RatingClampMin || c.RatingInit > RatingClampMax:
		return &ValidationError{Field: "rating_init", Reason: "must be within the rating clamp range"}
	case c.RecenterEveryNUpdates < 0:
		return &ValidationError{Field: "recenter_every_n_updates", Reason: "must be >= 0"}
	case c.RecenterThreshold <= 0:
		return &ValidationError{Field: "recenter_threshold", Reason: "must be > 0"}
	}
	return nil
}
