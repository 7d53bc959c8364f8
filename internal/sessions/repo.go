package sessions

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

const sessionColumns = `id, template_id, template_name, template_icon_key,
	started_at, ended_at, to_char(day_iso, 'YYYY-MM-DD')`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", s.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, template_id, template_name, template_icon_key, started_at, ended_at, day_iso)
				VALUES ($1, $2, $3, $4, $5, $6, $7::date);`,
		s.ID, s.TemplateID, s.TemplateName, s.TemplateIconKey, s.StartedAt, s.EndedAt, s.DayISO,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *Repo) SetEnded(ctx context.Context, id string, endedAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setEnded")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE workout_session SET ended_at = $2 WHERE id = $1 RETURNING `+sessionColumns+`;`,
		id, endedAt,
	)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM workout_session WHERE id = $1;`, id)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListForDay returns the sessions started on the given day, in start order.
func (r *Repo) ListForDay(ctx context.Context, dayISO string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", dayISO))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_session
			WHERE day_iso = $1::date
			ORDER BY started_at ASC;`,
		dayISO,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(
		&s.ID, &s.TemplateID, &s.TemplateName, &s.TemplateIconKey,
		&s.StartedAt, &s.EndedAt, &s.DayISO,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
