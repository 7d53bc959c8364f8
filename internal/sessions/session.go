package sessions

import (
	"errors"
	"time"

	"github.com/2beens/liftlog/pkg"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoTemplate      = errors.New("session needs a template")
)

// Session is one run through a workout template.
type Session struct {
	ID              string     `json:"id"`
	TemplateID      string     `json:"templateId"`
	TemplateName    string     `json:"templateName"`
	TemplateIconKey string     `json:"templateIconKey,omitempty"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DayISO          string     `json:"dayIso"`
}

func (s Session) IsActive() bool {
	return s.EndedAt == nil
}

// Duration is the elapsed time of the session, up to now while it is still running.
func (s Session) Duration(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	return max(0, end.Sub(s.StartedAt))
}

// DayISO is the UTC calendar date a session started at belongs to.
func DayISO(startedAt time.Time) string {
	return pkg.FormatISODate(startedAt.UTC())
}
