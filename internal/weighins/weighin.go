package weighins

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/2beens/liftlog/internal/profile"
	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/pkg"
)

const (
	DefaultLastN = 6

	// kg/week distance between the actual and the needed rate
	greenTolerance = 0.11
	amberTolerance = 0.22

	minWeeksBetweenWeighIns = 1.0 / 7
	minWeeksToGoal          = 0.01
)

var ErrInvalidWeighIn = errors.New("invalid weigh-in")

type WeighIn struct {
	ISODate  string  `json:"isoDate"`
	WeightKg float64 `json:"weightKg"`
	Note     string  `json:"note,omitempty"`
}

func (w WeighIn) Validate() error {
	if _, err := pkg.ParseISODate(w.ISODate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWeighIn, err)
	}
	if w.WeightKg <= 0 || math.IsNaN(w.WeightKg) || math.IsInf(w.WeightKg, 0) {
		return fmt.Errorf("%w: weight must be > 0", ErrInvalidWeighIn)
	}
	return nil
}

type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

type TrackStatus struct {
	Status            Status  `json:"status"`
	Message           string  `json:"message"`
	ActualKgPerWeek   float64 `json:"actualKgPerWeek"`
	NeededKgPerWeek   float64 `json:"neededKgPerWeek"`
	LatestWeighInDate string  `json:"latestWeighInDate"`
}

// SortAsc orders weigh-ins by date, oldest first.
func SortAsc(weighIns []WeighIn) {
	sort.SliceStable(weighIns, func(i, j int) bool {
		return weighIns[i].ISODate < weighIns[j].ISODate
	})
}

// OnTrackStatus compares the rate between the two latest weigh-ins with the rate
// needed to reach the goal weight by the goal date. Positive rates are gains.
// Returns nil without a goal, a current weight, or at least two weigh-ins.
func OnTrackStatus(p profile.Profile, weighIns []WeighIn) *TrackStatus {
	if p.GoalDate == nil || p.WeightKg == nil || p.GoalWeightKg == nil {
		return nil
	}
	if len(weighIns) < 2 {
		return nil
	}

	sorted := make([]WeighIn, len(weighIns))
	copy(sorted, weighIns)
	SortAsc(sorted)
	latest := sorted[len(sorted)-1]
	prev := sorted[len(sorted)-2]

	weeks, err := pkg.WeeksBetween(prev.ISODate, latest.ISODate)
	if err != nil {
		return nil
	}
	actual := (latest.WeightKg - prev.WeightKg) / math.Max(weeks, minWeeksBetweenWeighIns)

	weeksLeft, err := pkg.WeeksBetween(latest.ISODate, *p.GoalDate)
	if err != nil {
		return nil
	}
	needed := (*p.GoalWeightKg - latest.WeightKg) / math.Max(weeksLeft, minWeeksToGoal)

	ts := &TrackStatus{
		ActualKgPerWeek:   actual,
		NeededKgPerWeek:   needed,
		LatestWeighInDate: latest.ISODate,
	}

	switch diff := math.Abs(actual - needed); {
	case diff > amberTolerance:
		ts.Status = StatusRed
		ts.Message = fmt.Sprintf("Off track — %s vs %s. Tighten recovery & nutrition.", lbPerWeek(actual), lbPerWeek(needed))
	case diff > greenTolerance:
		ts.Status = StatusAmber
		ts.Message = fmt.Sprintf("Slightly off — %s vs %s. Adjust steps/intake.", lbPerWeek(actual), lbPerWeek(needed))
	default:
		ts.Status = StatusGreen
		ts.Message = fmt.Sprintf("On track — %s vs target %s.", lbPerWeek(actual), lbPerWeek(needed))
	}

	return ts
}

func lbPerWeek(kg float64) string {
	return fmt.Sprintf("%.1f lb/wk", units.KgToLb(math.Abs(kg)))
}
