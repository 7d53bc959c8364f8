package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/units"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `unit_system, age, height_cm, weight_kg, goal_weight_kg,
	to_char(goal_date, 'YYYY-MM-DD'), weigh_in_day, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the stored profile, or the default one when nothing is stored.
func (r *Repo) Get(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = 1;`)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		def := Default()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Merge applies the patch over the stored profile and returns the result.
func (r *Repo) Merge(ctx context.Context, patch Patch) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.merge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var unitSystem *string
	if patch.UnitSystem != nil {
		s := patch.UnitSystem.String()
		unitSystem = &s
	}
	var weighInDay *int16
	if patch.WeighInDay != nil {
		wd, _ := patch.WeighInDay.Weekday()
		d := int16(wd)
		weighInDay = &d
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO profile
				(id, unit_system, age, height_cm, weight_kg, goal_weight_kg, goal_date, weigh_in_day, updated_at)
				VALUES (1, COALESCE($1, 'imperial'), $2, $3, $4, $5, $6::date, $7, now())
			ON CONFLICT (id) DO UPDATE SET
				unit_system = COALESCE($1, profile.unit_system),
				age = COALESCE($2, profile.age),
				height_cm = COALESCE($3, profile.height_cm),
				weight_kg = COALESCE($4, profile.weight_kg),
				goal_weight_kg = COALESCE($5, profile.goal_weight_kg),
				goal_date = COALESCE($6::date, profile.goal_date),
				weigh_in_day = COALESCE($7, profile.weigh_in_day),
				updated_at = now()
			RETURNING `+profileColumns+`;`,
		unitSystem, patch.Age, patch.HeightCm, patch.WeightKg, patch.GoalWeightKg, patch.GoalDate, weighInDay,
	)
	p, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("merge profile: %w", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var (
		p          Profile
		unitSystem string
		age        *int32
		weighInDay *int16
	)
	if err := row.Scan(
		&unitSystem, &age, &p.HeightCm, &p.WeightKg, &p.GoalWeightKg,
		&p.GoalDate, &weighInDay, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sys, err := units.Parse(unitSystem)
	if err != nil {
		return nil, err
	}
	p.UnitSystem = sys
	if age != nil {
		a := int(*age)
		p.Age = &a
	}
	if weighInDay != nil {
		d := WeighInDayFromWeekday(time.Weekday(*weighInDay))
		p.WeighInDay = &d
	}
	return &p, nil
}
