package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/sets"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/templates"
	"github.com/2beens/liftlog/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type setsReader interface {
	ListRange(ctx context.Context, fromISO, toISO string) ([]sets.Entry, error)
	ListAsc(ctx context.Context, exerciseID string) ([]sets.Entry, error)
}

type templateReader interface {
	Get(ctx context.Context, id string) (*templates.Template, error)
}

// Summary of the training done within a window of days ending today.
type Summary struct {
	From          string      `json:"from"`
	To            string      `json:"to"`
	Days          int         `json:"days"`
	SetCount      int         `json:"setCount"`
	WorkoutDays   int         `json:"workoutDays"`
	TotalVolumeKg float64     `json:"totalVolumeKg"`
	BestSet       *BestSet    `json:"bestSet"`
	ByDay         []DayVolume `json:"byDay"`
}

// TemplateSession holds the sets logged for a template's exercises on a single day.
type TemplateSession struct {
	TemplateID   string       `json:"templateId"`
	TemplateName string       `json:"templateName"`
	Date         *string      `json:"date"`
	Sets         []sets.Entry `json:"sets"`
	VolumeKg     float64      `json:"volumeKg"`
}

type Analyzer struct {
	sets      setsReader
	templates templateReader
	nowFunc   func() time.Time
}

func NewAnalyzer(setsReader setsReader, templateReader templateReader) *Analyzer {
	return &Analyzer{
		sets:      setsReader,
		templates: templateReader,
		nowFunc:   time.Now,
	}
}

func (a *Analyzer) Summary(ctx context.Context, days int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if days <= 0 {
		days = DefaultWindowDays
	}
	span.SetAttributes(attribute.Int("days", days))

	today := a.nowFunc()
	from := pkg.FormatISODate(WindowStart(today, days))
	to := pkg.FormatISODate(today)

	entries, err := a.sets.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sets %s..%s: %w", from, to, err)
	}
	entries = WindowByDays(entries, today, days)

	return &Summary{
		From:          from,
		To:            to,
		Days:          days,
		SetCount:      len(entries),
		WorkoutDays:   WorkoutDaysCount(entries),
		TotalVolumeKg: TotalVolumeKg(entries),
		BestSet:       BestSetOf(entries),
		ByDay:         ByDayVolumeKg(entries),
	}, nil
}

// TemplateSessionSets gathers the sets of the template's exercises for one day:
// today when anything was logged today and preferToday is set, else the latest
// day with sets. Sets follow the template's exercise order.
func (a *Analyzer) TemplateSessionSets(ctx context.Context, templateID string, preferToday bool) (_ *TemplateSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.templateSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template_id", templateID))

	t, err := a.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]sets.Entry)
	latest := ""
	for _, ex := range t.Exercises {
		entries, err := a.sets.ListAsc(ctx, ex.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets of %s: %w", ex.ID, err)
		}
		for _, e := range entries {
			byDate[e.ISODate] = append(byDate[e.ISODate], e)
			if e.ISODate > latest {
				latest = e.ISODate
			}
		}
	}

	session := &TemplateSession{
		TemplateID:   t.ID,
		TemplateName: t.Name,
		Sets:         []sets.Entry{},
	}
	if latest == "" {
		return session, nil
	}

	pick := latest
	if today := pkg.FormatISODate(a.nowFunc()); preferToday && len(byDate[today]) > 0 {
		pick = today
	}
	session.Date = &pick
	session.Sets = byDate[pick]
	session.VolumeKg = TotalVolumeKg(session.Sets)

	return session, nil
}
