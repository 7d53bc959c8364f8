package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// KgPerLb is the exact international avoirdupois pound.
const KgPerLb = 0.45359237

const cmPerInch = 2.54

var ErrUnknownSystem = errors.New("unknown unit system")

// System is the unit system a user enters and reads weights in.
// Everything stored and compared internally is kilograms.
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

func (s System) String() string {
	return string(s)
}

func (s System) IsValid() bool {
	switch s {
	case Imperial, Metric:
		return true
	default:
		return false
	}
}

// Parse reads a unit system, falling back to imperial for an empty value.
func Parse(s string) (System, error) {
	if s == "" {
		return Imperial, nil
	}
	sys := System(strings.ToLower(strings.TrimSpace(s)))
	if !sys.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownSystem, s)
	}
	return sys, nil
}

func LbToKg(lb float64) float64 {
	return lb * KgPerLb
}

func KgToLb(kg float64) float64 {
	return kg / KgPerLb
}

// ToKg converts a weight entered in sys to kilograms.
func ToKg(weight float64, sys System) float64 {
	if sys == Imperial {
		return LbToKg(weight)
	}
	return weight
}

// FromKg converts kilograms to sys.
func FromKg(kg float64, sys System) float64 {
	if sys == Imperial {
		return KgToLb(kg)
	}
	return kg
}

// FormatWeight renders kg in sys, rounded to the nearest whole unit, e.g. "103 kg" or "228 lb".
func FormatWeight(kg float64, sys System) string {
	if sys == Imperial {
		return fmt.Sprintf("%d lb", int64(math.Round(KgToLb(kg))))
	}
	return fmt.Sprintf("%d kg", int64(math.Round(kg)))
}

// CmToFtIn splits a height into feet and inches, inches rounded to one decimal.
func CmToFtIn(cm float64) (ft int, inch float64) {
	totalIn := cm / cmPerInch
	ft = int(math.Floor(totalIn / 12))
	inch = math.Round((totalIn-float64(ft)*12)*10) / 10
	return ft, inch
}

func FtInToCm(ft int, inch float64) float64 {
	return (float64(ft)*12 + inch) * cmPerInch
}
