package sets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db      *pgxpool.Pool
	nowFunc func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:      db,
		nowFunc: time.Now,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", entry.ExerciseID))

	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.nowFunc()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO set_entry
				(id, exercise_id, iso_date, weight_kg, reps, created_at)
				VALUES ($1, $2, $3::date, $4, $5, $6);`,
		entry.ID, entry.ExerciseID, entry.ISODate, entry.WeightKg, entry.Reps, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	span.SetAttributes(attribute.String("set.id", entry.ID))
	return &entry, nil
}

func (r *Repo) Get(ctx context.Context, exerciseID, id string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, to_char(iso_date, 'YYYY-MM-DD'), weight_kg, reps, created_at
			FROM set_entry
			WHERE exercise_id = $1 AND id = $2;`,
		exerciseID, id,
	)
	if err != nil {
		return nil, err
	}

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrSetNotFound
	}
	return &entries[0], nil
}

// Update applies the patch to an existing set and returns the result.
func (r *Repo) Update(ctx context.Context, exerciseID, id string, patch Patch) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`UPDATE set_entry SET
				iso_date = COALESCE($3::date, iso_date),
				weight_kg = COALESCE($4, weight_kg),
				reps = COALESCE($5, reps)
			WHERE exercise_id = $1 AND id = $2
			RETURNING id, exercise_id, to_char(iso_date, 'YYYY-MM-DD'), weight_kg, reps, created_at;`,
		exerciseID, id, patch.ISODate, patch.WeightKg, patch.Reps,
	)
	if err != nil {
		return nil, err
	}

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrSetNotFound
	}
	return &entries[0], nil
}

func (r *Repo) Delete(ctx context.Context, exerciseID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM set_entry WHERE exercise_id = $1 AND id = $2;`,
		exerciseID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// DeleteForDay removes every set logged on the given date, across exercises.
func (r *Repo) DeleteForDay(ctx context.Context, isoDate string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.deleteForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("iso_date", isoDate))

	tag, err := r.db.Exec(ctx, `DELETE FROM set_entry WHERE iso_date = $1::date;`, isoDate)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListAsc returns all sets of an exercise, oldest first.
func (r *Repo) ListAsc(ctx context.Context, exerciseID string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listAsc")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, to_char(iso_date, 'YYYY-MM-DD'), weight_kg, reps, created_at
			FROM set_entry
			WHERE exercise_id = $1
			ORDER BY iso_date ASC, created_at ASC;`,
		exerciseID,
	)
	if err != nil {
		return nil, err
	}

	return rows2entries(rows)
}

// ListRange returns the sets of all exercises dated within [fromISO, toISO].
func (r *Repo) ListRange(ctx context.Context, fromISO, toISO string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", fromISO),
		attribute.String("to", toISO),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_id, to_char(iso_date, 'YYYY-MM-DD'), weight_kg, reps, created_at
			FROM set_entry
			WHERE iso_date >= $1::date AND iso_date <= $2::date
			ORDER BY iso_date ASC, created_at ASC;`,
		fromISO, toISO,
	)
	if err != nil {
		return nil, err
	}

	return rows2entries(rows)
}

func rows2entries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ExerciseID, &e.ISODate, &e.WeightKg, &e.Reps, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}
