package profile

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/pkg"
)

// KcalPerKg is the energy equivalent of one kg of body weight.
const KcalPerKg = 7700

var ErrInvalidProfile = errors.New("invalid profile")

type WeighInDay string

var weighInDays = []WeighInDay{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (d WeighInDay) Weekday() (time.Weekday, bool) {
	for i, wd := range weighInDays {
		if wd == d {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

func WeighInDayFromWeekday(wd time.Weekday) WeighInDay {
	return weighInDays[int(wd)%len(weighInDays)]
}

type Profile struct {
	UnitSystem   units.System `json:"unitSystem"`
	Age          *int         `json:"age"`
	HeightCm     *float64     `json:"heightCm"`
	WeightKg     *float64     `json:"weightKg"`
	GoalWeightKg *float64     `json:"goalWeightKg"`
	GoalDate     *string      `json:"goalDate"`
	WeighInDay   *WeighInDay  `json:"weighInDay"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Default is the profile of a user who never saved one.
func Default() Profile {
	return Profile{UnitSystem: units.Imperial}
}

// Patch is a partial profile; nil fields are left as they are.
type Patch struct {
	UnitSystem   *units.System `json:"unitSystem,omitempty"`
	Age          *int          `json:"age,omitempty"`
	HeightCm     *float64      `json:"heightCm,omitempty"`
	WeightKg     *float64      `json:"weightKg,omitempty"`
	GoalWeightKg *float64      `json:"goalWeightKg,omitempty"`
	GoalDate     *string       `json:"goalDate,omitempty"`
	WeighInDay   *WeighInDay   `json:"weighInDay,omitempty"`
}

func (p Patch) Validate() error {
	if p.UnitSystem != nil && !p.UnitSystem.IsValid() {
		return fmt.Errorf("%w: unit system %q", ErrInvalidProfile, *p.UnitSystem)
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 120) {
		return fmt.Errorf("%w: age %d", ErrInvalidProfile, *p.Age)
	}
	for name, v := range map[string]*float64{
		"height":      p.HeightCm,
		"weight":      p.WeightKg,
		"goal weight": p.GoalWeightKg,
	} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0) {
			return fmt.Errorf("%w: %s must be > 0", ErrInvalidProfile, name)
		}
	}
	if p.GoalDate != nil {
		if _, err := pkg.ParseISODate(*p.GoalDate); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidProfile, err)
		}
	}
	if p.WeighInDay != nil {
		if _, ok := p.WeighInDay.Weekday(); !ok {
			return fmt.Errorf("%w: weigh-in day %q", ErrInvalidProfile, *p.WeighInDay)
		}
	}
	return nil
}

func (p Patch) Apply(profile Profile) Profile {
	if p.UnitSystem != nil {
		profile.UnitSystem = *p.UnitSystem
	}
	if p.Age != nil {
		profile.Age = p.Age
	}
	if p.HeightCm != nil {
		profile.HeightCm = p.HeightCm
	}
	if p.WeightKg != nil {
		profile.WeightKg = p.WeightKg
	}
	if p.GoalWeightKg != nil {
		profile.GoalWeightKg = p.GoalWeightKg
	}
	if p.GoalDate != nil {
		profile.GoalDate = p.GoalDate
	}
	if p.WeighInDay != nil {
		profile.WeighInDay = p.WeighInDay
	}
	return profile
}

type OnTrack struct {
	WeeksLeft      float64 `json:"weeksLeft"`
	DeltaToGoalKg  float64 `json:"deltaToGoalKg"`
	WeeklyTargetKg float64 `json:"weeklyTargetKg"`
}

// OnTrackInfo derives the weekly rate needed to reach the goal. A positive
// weekly target means losing weight. Returns nil when weight, goal weight or
// goal date is missing.
func OnTrackInfo(p Profile, now time.Time) *OnTrack {
	if p.WeightKg == nil || p.GoalWeightKg == nil || p.GoalDate == nil {
		return nil
	}
	goal, err := time.ParseInLocation(pkg.ISODateLayout, *p.GoalDate, now.Location())
	if err != nil {
		return nil
	}

	weeksLeft := goal.Sub(now).Hours() / (24 * 7)
	delta := *p.WeightKg - *p.GoalWeightKg
	weekly := 0.0
	if weeksLeft > 0 {
		weekly = delta / weeksLeft
	}
	return &OnTrack{
		WeeksLeft:      weeksLeft,
		DeltaToGoalKg:  delta,
		WeeklyTargetKg: weekly,
	}
}

type EnergyMode string

const (
	EnergyDeficit EnergyMode = "deficit"
	EnergySurplus EnergyMode = "surplus"
)

type EnergyPlan struct {
	Mode           EnergyMode `json:"mode"`
	KcalPerDay     float64    `json:"kcalPerDay"`
	WeeklyTargetKg float64    `json:"weeklyTargetKg"`
}

// DailyEnergyPlan turns the weekly target into a daily kcal deficit or surplus.
func DailyEnergyPlan(p Profile, now time.Time) *EnergyPlan {
	info := OnTrackInfo(p, now)
	if info == nil {
		return nil
	}
	mode := EnergyDeficit
	if info.WeeklyTargetKg < 0 {
		mode = EnergySurplus
	}
	return &EnergyPlan{
		Mode:           mode,
		KcalPerDay:     math.Abs(info.WeeklyTargetKg) * KcalPerKg / 7,
		WeeklyTargetKg: info.WeeklyTargetKg,
	}
}
