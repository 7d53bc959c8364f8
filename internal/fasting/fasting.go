package fasting

import (
	"fmt"
	"time"
)

// State of the current or last fast. A nil StartedAt means no fast was started.
type State struct {
	StartedAt *time.Time `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

func (s State) IsActive() bool {
	return s.StartedAt != nil && s.EndedAt == nil
}

// Duration of the fast, up to now while it is still running. Never negative.
func Duration(s State, now time.Time) time.Duration {
	if s.StartedAt == nil {
		return 0
	}
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	return max(0, end.Sub(*s.StartedAt))
}

// FormatDuration renders "1d 2h" from a day on, "3h 5m" from an hour on, "7m" otherwise.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if days := hours / 24; days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours%24)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

type milestone struct {
	after time.Duration
	text  string
}

var milestones = []milestone{
	{8 * time.Hour, "Glycogen stores are being used for energy"},
	{12 * time.Hour, "Insulin levels are falling; fat burning is increasing"},
	{16 * time.Hour, "Autophagy is starting to ramp up"},
	{20 * time.Hour, "Growth hormone and repair processes are elevated"},
}

const earlyFast = "Early fast: you're clearing recent meals and stabilizing blood sugar."

// Milestones lists what the body is roughly going through after d of fasting.
func Milestones(d time.Duration) []string {
	var reached []string
	for _, m := range milestones {
		if d >= m.after {
			reached = append(reached, m.text)
		}
	}
	if len(reached) == 0 {
		return []string{earlyFast}
	}
	return reached
}
