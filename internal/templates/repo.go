package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const templateColumns = `id, name, exercises, warmup, icon_key, updated_at`

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

// Upsert normalizes and stores the template. A template without an id
// gets the slug of its name.
func (r *Repo) Upsert(ctx context.Context, t Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := t.Normalize(); err != nil {
		return nil, err
	}
	t.UpdatedAt = r.nowFunc()
	span.SetAttributes(attribute.String("id", t.ID))

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_template
				(id, name, exercises, warmup, icon_key, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				exercises = EXCLUDED.exercises,
				warmup = EXCLUDED.warmup,
				icon_key = EXCLUDED.icon_key,
				updated_at = EXCLUDED.updated_at
			RETURNING `+templateColumns+`;`,
		t.ID, t.Name, t.Exercises, t.Warmup, t.IconKey, t.UpdatedAt,
	)
	stored, err := scanTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("upsert template: %w", err)
	}
	return stored, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	row := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM workout_template WHERE id = $1;`, id)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all templates, most recently updated first.
func (r *Repo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+templateColumns+` FROM workout_template ORDER BY updated_at DESC, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_template WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	if err := row.Scan(&t.ID, &t.Name, &t.Exercises, &t.Warmup, &t.IconKey, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if t.Exercises == nil {
		t.Exercises = []Exercise{}
	}
	if t.Warmup == nil {
		t.Warmup = []WarmupItem{}
	}
	return &t, nil
}
