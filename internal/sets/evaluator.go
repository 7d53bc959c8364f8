package sets

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/overload"
	"github.com/2beens/liftlog/internal/profile"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/units"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=sets_test

type historyRepo interface {
	ListAsc(ctx context.Context, exerciseID string) ([]Entry, error)
}

type profileReader interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

// EvaluateRequest describes a proposed set. Weight is in UnitSystem units.
// A nil UnitSystem or Age is resolved from the stored profile.
type EvaluateRequest struct {
	ExerciseID string        `json:"exerciseId"`
	ISODate    string        `json:"isoDate"`
	Weight     float64       `json:"weight"`
	Reps       int           `json:"reps"`
	UnitSystem *units.System `json:"unitSystem,omitempty"`
	Age        *int          `json:"age,omitempty"`
}

type Evaluation struct {
	Verdict            overload.Verdict        `json:"verdict"`
	UnitSystem         units.System            `json:"unitSystem"`
	BestInWindow       *overload.HistoricalSet `json:"bestInWindow"`
	LastSet            *overload.HistoricalSet `json:"lastSet"`
	RecentSessionCount int                     `json:"recentSessionCount"`
}

type Evaluator struct {
	repo                historyRepo
	profiles            profileReader
	bestWindowWeeks     int
	recentSessionsWeeks int
	metricsManager      *metrics.Manager
}

func NewEvaluator(
	repo historyRepo,
	profiles profileReader,
	bestWindowWeeks, recentSessionsWeeks int,
	metricsManager *metrics.Manager,
) *Evaluator {
	if bestWindowWeeks <= 0 {
		bestWindowWeeks = DefaultBestWindowWeeks
	}
	if recentSessionsWeeks <= 0 {
		recentSessionsWeeks = DefaultRecentSessionsWeeks
	}
	return &Evaluator{
		repo:                repo,
		profiles:            profiles,
		bestWindowWeeks:     bestWindowWeeks,
		recentSessionsWeeks: recentSessionsWeeks,
		metricsManager:      metricsManager,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, req EvaluateRequest) (_ *Evaluation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sets.evaluator.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", req.ExerciseID))

	unitSystem, age, err := e.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	entries, err := e.repo.ListAsc(ctx, req.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	SortAsc(entries)

	eval := &Evaluation{
		UnitSystem:         unitSystem,
		RecentSessionCount: RecentSessionCount(entries, req.ISODate, e.recentSessionsWeeks),
	}
	if best := BestInWindow(entries, req.ISODate, e.bestWindowWeeks); best != nil {
		eval.BestInWindow = best.Historical()
	}
	if last := LastSetAtOrBefore(entries, req.ISODate); last != nil {
		eval.LastSet = last.Historical()
	}

	eval.Verdict = overload.Evaluate(overload.Request{
		BestInWindow:       eval.BestInWindow,
		LastSet:            eval.LastSet,
		EnteredWeight:      req.Weight,
		EnteredReps:        req.Reps,
		UnitSystem:         unitSystem,
		Age:                age,
		RecentSessionCount: eval.RecentSessionCount,
	})

	span.SetAttributes(
		attribute.String("verdict.level", eval.Verdict.Level.String()),
		attribute.String("verdict.tier", eval.Verdict.Tier.String()),
	)
	if e.metricsManager != nil {
		e.metricsManager.CounterGateVerdicts.WithLabelValues(eval.Verdict.Level.String()).Inc()
		if eval.LastSet != nil {
			e.metricsManager.HistogramPercentIncrease.Observe(eval.Verdict.PercentIncrease)
		}
	}
	log.Tracef("evaluated [%s] %.1f x %d: %s", req.ExerciseID, req.Weight, req.Reps, eval.Verdict.Level)

	return eval, nil
}

func (e *Evaluator) resolveProfile(ctx context.Context, req EvaluateRequest) (units.System, *int, error) {
	if req.UnitSystem != nil && req.Age != nil {
		return *req.UnitSystem, req.Age, nil
	}

	p, err := e.profiles.Get(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("get profile: %w", err)
	}

	unitSystem := p.UnitSystem
	if req.UnitSystem != nil {
		unitSystem = *req.UnitSystem
	}
	if !unitSystem.IsValid() {
		unitSystem = units.Imperial
	}
	age := p.Age
	if req.Age != nil {
		age = req.Age
	}
	return unitSystem, age, nil
}
