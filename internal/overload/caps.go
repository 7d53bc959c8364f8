package overload

import (
	"math"

	"github.com/2beens/liftlog/internal/units"
)

const minPercentCap = 0.03

// indexed by Tier, so adding a tier without a cap fails to compile
var (
	basePercentCap = [...]float64{
		Novice:       0.10,
		Intermediate: 0.08,
		Trained:      0.06,
	}
	// absolute caps for lifters under 50 or of unknown age, authored in pounds
	baseAbsoluteCapLb = [...]float64{
		Novice:       7.5,
		Intermediate: 12.5,
		Trained:      12.5,
	}
)

// knownAge treats a nil or zero age as not set.
func knownAge(age *int) (int, bool) {
	if age == nil || *age == 0 {
		return 0, false
	}
	return *age, true
}

// PercentCap returns the maximum allowed relative load increase (0.08 = 8%).
func PercentCap(age *int, tier Tier) float64 {
	ageCut := 0.0
	if a, ok := knownAge(age); ok {
		switch {
		case a >= 60:
			ageCut = -0.03
		case a >= 50:
			ageCut = -0.02
		case a >= 40:
			ageCut = -0.01
		}
	}
	return math.Max(minPercentCap, basePercentCap[tier]+ageCut)
}

// AbsoluteCapKg returns the maximum allowed per-set weight increase in kilograms.
func AbsoluteCapKg(age *int, tier Tier) float64 {
	lb := baseAbsoluteCapLb[tier]
	if a, ok := knownAge(age); ok {
		switch {
		case a >= 60:
			lb = 5
		case a >= 50:
			lb = 7.5
		}
	}
	return units.LbToKg(lb)
}
