package progress

import (
	"sort"
	"time"

	"github.com/2beens/liftlog/internal/sets"
	"github.com/2beens/liftlog/pkg"
)

const DefaultWindowDays = 28

type BestSet struct {
	Entry       sets.Entry `json:"entry"`
	ScoreKgReps float64    `json:"scoreKgReps"`
}

type DayVolume struct {
	Date         string  `json:"date"`
	VolumeKgReps float64 `json:"volumeKgReps"`
}

// WindowStart is the first day of a days-long window ending on today, inclusive.
func WindowStart(today time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return today.AddDate(0, 0, -(days - 1))
}

// WindowByDays keeps the entries dated within the last days days, today included.
func WindowByDays(entries []sets.Entry, today time.Time, days int) []sets.Entry {
	from := pkg.FormatISODate(WindowStart(today, days))
	to := pkg.FormatISODate(today)

	var windowed []sets.Entry
	for _, e := range entries {
		if e.ISODate >= from && e.ISODate <= to {
			windowed = append(windowed, e)
		}
	}
	return windowed
}

func TotalVolumeKg(entries []sets.Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Load()
	}
	return total
}

// BestSetOf returns the set with the highest weight x reps, the first one on ties.
func BestSetOf(entries []sets.Entry) *BestSet {
	var best *BestSet
	for _, e := range entries {
		if best == nil || e.Load() > best.ScoreKgReps {
			best = &BestSet{Entry: e, ScoreKgReps: e.Load()}
		}
	}
	return best
}

// ByDayVolumeKg sums the volume per date, oldest date first.
func ByDayVolumeKg(entries []sets.Entry) []DayVolume {
	volumes := make(map[string]float64)
	for _, e := range entries {
		volumes[e.ISODate] += e.Load()
	}

	byDay := make([]DayVolume, 0, len(volumes))
	for date, volume := range volumes {
		byDay = append(byDay, DayVolume{Date: date, VolumeKgReps: volume})
	}
	sort.Slice(byDay, func(i, j int) bool {
		return byDay[i].Date < byDay[j].Date
	})
	return byDay
}

func WorkoutDaysCount(entries []sets.Entry) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.ISODate] = struct{}{}
	}
	return len(days)
}
