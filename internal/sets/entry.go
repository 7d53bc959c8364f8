package sets

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/liftlog/internal/overload"
	"github.com/2beens/liftlog/pkg"
)

var (
	ErrSetNotFound    = errors.New("set not found")
	ErrInvalidWeight  = errors.New("weight must be a finite number >= 0")
	ErrInvalidReps    = errors.New("reps must be > 0")
	ErrInvalidISODate = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyExercise  = errors.New("exercise id empty")
)

// Entry is a single logged set. Weight is always stored in kg.
type Entry struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	ISODate    string    `json:"isoDate"`
	WeightKg   float64   `json:"weightKg"`
	Reps       int       `json:"reps"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e Entry) Load() float64 {
	return e.WeightKg * float64(e.Reps)
}

func (e Entry) Historical() *overload.HistoricalSet {
	return &overload.HistoricalSet{
		WeightKg: e.WeightKg,
		Reps:     e.Reps,
		ISODate:  e.ISODate,
	}
}

func (e Entry) Validate() error {
	if e.ExerciseID == "" {
		return ErrEmptyExercise
	}
	if err := ValidateWeight(e.WeightKg); err != nil {
		return err
	}
	if e.Reps <= 0 {
		return ErrInvalidReps
	}
	if _, err := ParseISODate(e.ISODate); err != nil {
		return err
	}
	return nil
}

// Patch holds the fields an update may change; nil means keep.
type Patch struct {
	ISODate  *string  `json:"isoDate,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
}

func (p Patch) Apply(e Entry) Entry {
	if p.ISODate != nil {
		e.ISODate = *p.ISODate
	}
	if p.WeightKg != nil {
		e.WeightKg = *p.WeightKg
	}
	if p.Reps != nil {
		e.Reps = *p.Reps
	}
	return e
}

func (p Patch) IsEmpty() bool {
	return p.ISODate == nil && p.WeightKg == nil && p.Reps == nil
}

func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return ErrInvalidWeight
	}
	return nil
}

func ParseISODate(s string) (time.Time, error) {
	t, err := pkg.ParseISODate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, s)
	}
	return t, nil
}
