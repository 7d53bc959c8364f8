package weighins

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the weigh-in, replacing any earlier one logged for the same date.
func (r *Repo) Upsert(ctx context.Context, w WeighIn) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("iso_date", w.ISODate))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weigh_in (iso_date, weight_kg, note)
				VALUES ($1::date, $2, $3)
			ON CONFLICT (iso_date) DO UPDATE SET
				weight_kg = EXCLUDED.weight_kg,
				note = EXCLUDED.note;`,
		w.ISODate, w.WeightKg, w.Note,
	)
	if err != nil {
		return fmt.Errorf("upsert weigh-in: %w", err)
	}
	return nil
}

func (r *Repo) ListAsc(ctx context.Context) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT to_char(iso_date, 'YYYY-MM-DD'), weight_kg, note
			FROM weigh_in
			ORDER BY iso_date ASC;`,
	)
	if err != nil {
		return nil, err
	}

	return rows2weighIns(rows)
}

// LastN returns the n most recent weigh-ins, oldest first.
func (r *Repo) LastN(ctx context.Context, n int) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.lastN")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("n", n))

	if n <= 0 {
		n = DefaultLastN
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT iso_date, weight_kg, note FROM (
				SELECT to_char(iso_date, 'YYYY-MM-DD') AS iso_date, weight_kg, note
					FROM weigh_in
					ORDER BY weigh_in.iso_date DESC
					LIMIT $1
			) AS recent
			ORDER BY iso_date ASC;`,
		n,
	)
	if err != nil {
		return nil, err
	}

	return rows2weighIns(rows)
}

func rows2weighIns(rows pgx.Rows) ([]WeighIn, error) {
	defer rows.Close()

	var weighIns []WeighIn
	for rows.Next() {
		var w WeighIn
		if err := rows.Scan(&w.ISODate, &w.WeightKg, &w.Note); err != nil {
			return nil, err
		}
		weighIns = append(weighIns, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weighIns, nil
}
