package rating

import (
	"math"
	"time"
)

// maxInactiveDays caps the inactivity growth so a years-dormant entity
// re-expands its K without blowing past every bound.
const maxInactiveDays = 365.0

// NextUncertainty evolves an entity's uncertainty for one applied attempt.
// Multiplicative decay first (more data means more confidence), then
// linear growth for time spent inactive since the prior observation,
// capped at a year. The result never drops below floor.
func NextUncertainty(unc float64, lastSeen *time.Time, now time.Time, floor, decayPerAttempt, ageIncreasePerDay float64) float64 {
	unc *= decayPerAttempt

	if lastSeen != nil {
		days := now.Sub(*lastSeen).Hours() / 24
		if days > 0 {
			unc += math.Min(days, maxInactiveDays) * ageIncreasePerDay
		}
	}

	if unc < floor {
		unc = floor
	}
	return unc
}
