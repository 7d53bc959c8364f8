package overload

import "fmt"

// Tier is a coarse training-experience bucket derived from how often
// the lifter has trained an exercise recently.
type Tier int

const (
	Novice Tier = iota
	Intermediate
	Trained
)

const (
	intermediateMinSessions = 6
	trainedMinSessions      = 24
)

var tierNames = [...]string{
	Novice:       "novice",
	Intermediate: "intermediate",
	Trained:      "trained",
}

// ClassifyTier maps a recent session count to a tier. Zero and negative counts are novice.
func ClassifyTier(recentSessionCount int) Tier {
	switch {
	case recentSessionCount < intermediateMinSessions:
		return Novice
	case recentSessionCount < trainedMinSessions:
		return Intermediate
	default:
		return Trained
	}
}

func (t Tier) String() string {
	if t < Novice || t > Trained {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < Novice || t > Trained {
		return nil, fmt.Errorf("invalid tier: %d", int(t))
	}
	return []byte(tierNames[t]), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	for i, name := range tierNames {
		if name == string(text) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier: %s", text)
}
