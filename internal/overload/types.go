package overload

import "github.com/2beens/liftlog/internal/units"

// Level is the traffic-light classification of a proposed set.
type Level string

const (
	LevelGreen Level = "green"
	LevelAmber Level = "amber"
	LevelRed   Level = "red"
)

func (l Level) String() string {
	return string(l)
}

// HistoricalSet is a read-only snapshot of a previously logged set.
type HistoricalSet struct {
	WeightKg float64 `json:"weightKg"`
	Reps     int     `json:"reps"`
	ISODate  string  `json:"isoDate"`
}

// Request carries everything a single evaluation needs. Unit system and age
// are explicit; resolving them from the user profile is the caller's job.
type Request struct {
	// BestInWindow is the highest-load set in the trailing window.
	BestInWindow *HistoricalSet
	// LastSet is the most recent set at or before the evaluation date.
	LastSet *HistoricalSet

	// EnteredWeight is in UnitSystem units.
	EnteredWeight      float64
	EnteredReps        int
	UnitSystem         units.System
	Age                *int
	RecentSessionCount int
}

type Verdict struct {
	Level  Level  `json:"level"`
	Title  string `json:"title"`
	Detail string `json:"detail"`

	// set only when a cap was exceeded or reps crashed
	SuggestedWeightKg      *float64 `json:"suggestedWeightKg,omitempty"`
	SuggestedWeightDisplay string   `json:"suggestedWeightDisplay,omitempty"`

	IsRegression bool `json:"isRegression"`

	// diagnostics, zero on the baseline path
	Tier               Tier    `json:"tier"`
	PercentIncrease    float64 `json:"percentIncrease"`
	AbsoluteIncreaseKg float64 `json:"absoluteIncreaseKg"`
}

// HasSuggestion reports whether the verdict carries a safer weight.
func (v Verdict) HasSuggestion() bool {
	return v.SuggestedWeightKg != nil
}
