package rating

// DynamicK maps an entity's current uncertainty to its effective Elo
// K-factor:
//
//	k = kMin + (kMax - kMin) * unc / (unc + kBase)
//
// Monotonically increasing in unc: it saturates to kMin as unc goes to 0,
// to kMax as unc grows without bound, and hits the midpoint at
// unc == kBase. New or stale entities adapt fast, mature ones move slowly.
func DynamicK(kBase, unc, kMin, kMax float64) float64 {
	if unc < 0 {
		unc = 0
	}
	norm := unc / (unc + kBase)
	return kMin + (kMax-kMin)*norm
}
