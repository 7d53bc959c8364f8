package sets

import (
	"sort"

	"github.com/2beens/liftlog/pkg"
)

const (
	DefaultBestWindowWeeks     = 6
	DefaultRecentSessionsWeeks = 12
)

// SortAsc orders entries by date, then by creation time within a day.
func SortAsc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ISODate == entries[j].ISODate {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ISODate < entries[j].ISODate
	})
}

// LastSetAtOrBefore returns the latest entry dated on or before isoDate.
// entries must be sorted ascending.
func LastSetAtOrBefore(entries []Entry, isoDate string) *Entry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].ISODate <= isoDate {
			e := entries[i]
			return &e
		}
	}
	return nil
}

// BestInWindow returns the highest weight x reps entry within the trailing
// window of the given weeks, ending at isoDate. When the window holds nothing
// it falls back to every entry on or before isoDate. Ties keep the earliest.
func BestInWindow(entries []Entry, isoDate string, weeks int) *Entry {
	end, err := ParseISODate(isoDate)
	if err != nil {
		return nil
	}
	start := pkg.FormatISODate(end.AddDate(0, 0, -7*weeks))

	var inWindow, beforeEnd []Entry
	for _, e := range entries {
		if e.ISODate > isoDate {
			continue
		}
		beforeEnd = append(beforeEnd, e)
		if e.ISODate >= start {
			inWindow = append(inWindow, e)
		}
	}

	candidates := inWindow
	if len(candidates) == 0 {
		candidates = beforeEnd
	}

	var best *Entry
	for i := range candidates {
		if best == nil || candidates[i].Load() > best.Load() {
			e := candidates[i]
			best = &e
		}
	}
	return best
}

// RecentSessionCount counts distinct training dates within the trailing
// window of the given weeks, ending at isoDate.
func RecentSessionCount(entries []Entry, isoDate string, weeks int) int {
	end, err := ParseISODate(isoDate)
	if err != nil {
		return 0
	}
	start := pkg.FormatISODate(end.AddDate(0, 0, -7*weeks))

	dates := map[string]struct{}{}
	for _, e := range entries {
		if e.ISODate >= start && e.ISODate <= isoDate {
			dates[e.ISODate] = struct{}{}
		}
	}
	return len(dates)
}
