package pkg

import (
	"fmt"
	"time"
)

const ISODateLayout = "2006-01-02"

func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse iso date %q: %w", s, err)
	}
	return t, nil
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// WeeksBetween returns the signed number of weeks from a to b.
func WeeksBetween(aISO, bISO string) (float64, error) {
	a, err := ParseISODate(aISO)
	if err != nil {
		return 0, err
	}
	b, err := ParseISODate(bISO)
	if err != nil {
		return 0, err
	}
	return b.Sub(a).Hours() / (24 * 7), nil
}
