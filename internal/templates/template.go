package templates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrEmptyName        = errors.New("template name is empty")
	ErrDuplicateID      = errors.New("duplicate exercise id")
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type Exercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

type WarmupItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Template is a named workout: exercises in the order they are done,
// plus the warm-up checklist.
type Template struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Exercises []Exercise   `json:"exercises"`
	Warmup    []WarmupItem `json:"warmup"`
	IconKey   string       `json:"iconKey,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Slugify lowercases the name and joins its alphanumeric runs with dashes,
// e.g. "Monday Legs!" becomes "monday-legs".
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

// Normalize fills in missing ids from names, drops blank rows and
// makes sure the slices are never nil.
func (t *Template) Normalize() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrEmptyName
	}
	if t.ID == "" {
		t.ID = Slugify(t.Name)
	}
	if t.ID == "" {
		return ErrEmptyName
	}

	exercises := make([]Exercise, 0, len(t.Exercises))
	seen := make(map[string]bool, len(t.Exercises))
	for _, e := range t.Exercises {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		if e.ID == "" {
			e.ID = Slugify(e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
		exercises = append(exercises, e)
	}
	t.Exercises = exercises

	warmup := make([]WarmupItem, 0, len(t.Warmup))
	for _, w := range t.Warmup {
		w.Text = strings.TrimSpace(w.Text)
		if w.Text == "" {
			continue
		}
		if w.ID == "" {
			w.ID = Slugify(w.Text)
		}
		warmup = append(warmup, w)
	}
	t.Warmup = warmup

	return nil
}
