package rating

import (
	"context"

	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
	"github.com/adaptly/calibrant/pkg/metrics"
)

// alreadyCenteredEps is the mean magnitude below which a recenter is a
// no-op: the scale is considered centered already.
const alreadyCenteredEps = 0.01

// DefaultDriftThreshold is the |mean(b)| above which drift is reported.
const DefaultDriftThreshold = 50.0

// DriftResult reports one drift check.
type DriftResult struct {
	DriftDetected    bool
	Mean             float64
	Questions        int
	Recentered       bool
	QuestionsUpdated int
	UsersUpdated     int
	Reason           string // "no_data", "within_threshold", "already_centered", "recentered"
}

// DriftController counters long-run difficulty inflation. Recentering
// subtracts the scope's mean question rating from every question AND
// every user rating in the scope, so every theta-b gap (and therefore
// every predicted probability) is exactly preserved; only the absolute
// scale moves.
//
// Each scope is recentered independently; theme scopes never inherit the
// global shift.
type DriftController struct {
	ratings store.RatingRepo
	log     logger.Logger
	mon     *metrics.Manager
}

// NewDriftController creates a drift controller over the given ratings.
func NewDriftController(ratings store.RatingRepo, log logger.Logger, mon *metrics.Manager) *DriftController {
	return &DriftController{ratings: ratings, log: log.Named("drift"), mon: mon}
}

// CheckAndRecenter measures drift in a scope and recenters when
// |mean(b)| exceeds threshold. The mean used for the shift is recomputed
// inside the recenter transaction, so concurrent online updates can
// never make the offset stale.
func (d *DriftController) CheckAndRecenter(ctx context.Context, scope store.Scope, threshold float64) (*DriftResult, error) {
	d.mon.RecenterCheck()
	if threshold <= 0 {
		threshold = DefaultDriftThreshold
	}

	mean, n, err := d.ratings.MeanQuestionRating(ctx, scope)
	if err != nil {
		return nil, err
	}
	res := &DriftResult{Mean: mean, Questions: n}

	if n == 0 {
		res.Reason = "no_data"
		return res, nil
	}
	if mean <= threshold && mean >= -threshold {
		res.Reason = "within_threshold"
		return res, nil
	}
	res.DriftDetected = true

	stats, err := d.ratings.Recenter(ctx, scope, alreadyCenteredEps)
	if err != nil {
		return nil, err
	}
	res.Mean = stats.Mean
	if !stats.Recentered {
		res.Reason = "already_centered"
		return res, nil
	}

	res.Recentered = true
	res.QuestionsUpdated = stats.QuestionsUpdated
	res.UsersUpdated = stats.UsersUpdated
	res.Reason = "recentered"
	d.mon.RecenterRun()
	d.log.Info(ctx, "recentered scope",
		logger.String("scope", scope.Type.String()),
		logger.String("theme_id", scope.ThemeID),
		logger.Float64("mean", stats.Mean),
		logger.Int("questions_updated", stats.QuestionsUpdated),
		logger.Int("users_updated", stats.UsersUpdated))
	return res, nil
}

// Recenter forces a recenter of the scope regardless of threshold,
// subject only to the already-centered floor. Operator invoked.
func (d *DriftController) Recenter(ctx context.Context, scope store.Scope) (*DriftResult, error) {
	stats, err := d.ratings.Recenter(ctx, scope, alreadyCenteredEps)
	if err != nil {
		return nil, err
	}
	res := &DriftResult{Mean: stats.Mean}
	if !stats.Recentered {
		res.Reason = "already_centered"
		return res, nil
	}
	res.DriftDetected = true
	res.Recentered = true
	res.QuestionsUpdated = stats.QuestionsUpdated
	res.UsersUpdated = stats.UsersUpdated
	res.Reason = "recentered"
	d.mon.RecenterRun()
	return res, nil
}
