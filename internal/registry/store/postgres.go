package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lanyard/internal/badge/models"
	id "lanyard/pkg/domain"
	"lanyard/pkg/platform/sentinel"
	txcontext "lanyard/pkg/platform/tx"
)

// Postgres implements the badge ports against the registry database.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a Postgres store over an existing pool; the caller
// owns the pool lifecycle.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// querier is the slice of pgx both the pool and a transaction satisfy.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// db returns the context transaction when one is in flight, else the pool.
func (s *Postgres) db(ctx context.Context) querier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.pool
}

const attendeeColumns = `
	id, event_id, name, email, phone, institution, designation,
	ticket_type_id, ticket_type_name, checkin_token, registration_number,
	status, assigned_template_id`

func (s *Postgres) FindByToken(ctx context.Context, token string) (*models.Attendee, error) {
	if token == "" {
		return nil, sentinel.ErrNotFound
	}
	row := s.db(ctx).QueryRow(ctx,
		`SELECT`+attendeeColumns+` FROM attendees WHERE checkin_token = $1`, token)
	return scanAttendee(row)
}

func (s *Postgres) FindByRegistrationNumber(ctx context.Context, eventID id.EventID, regNo string) (*models.Attendee, error) {
	if regNo == "" {
		return nil, sentinel.ErrNotFound
	}
	row := s.db(ctx).QueryRow(ctx,
		`SELECT`+attendeeColumns+` FROM attendees
		 WHERE event_id = $1 AND LOWER(registration_number) = LOWER($2)`,
		eventID.String(), regNo)
	return scanAttendee(row)
}

func scanAttendee(row pgx.Row) (*models.Attendee, error) {
	var a models.Attendee
	err := row.Scan(
		&a.ID, &a.EventID, &a.Name, &a.Email, &a.Phone, &a.Institution,
		&a.Designation, &a.TicketTypeID, &a.TicketTypeName, &a.CheckinToken,
		&a.RegistrationNumber, &a.Status, &a.AssignedTemplateID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan attendee: %w", err)
	}
	return &a, nil
}

func (s *Postgres) FindByID(ctx context.Context, eventID id.EventID) (*models.Event, error) {
	var e models.Event
	err := s.db(ctx).QueryRow(ctx,
		`SELECT id, name, start_date, end_date FROM events WHERE id = $1`,
		eventID.String(),
	).Scan(&e.ID, &e.Name, &e.StartDate, &e.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

func (s *Postgres) FindByEvent(ctx context.Context, eventID id.EventID) ([]models.Template, error) {
	rows, err := s.db(ctx).Query(ctx,
		`SELECT id, event_id, size_name, ticket_type_ids, is_default, is_locked,
		        generation_count, background_image_url, background_color, elements
		 FROM badge_templates WHERE event_id = $1 ORDER BY created_at, id`,
		eventID.String())
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var out []models.Template
	for rows.Next() {
		var (
			t           models.Template
			ticketTypes []string
			elements    []byte
		)
		if err := rows.Scan(
			&t.ID, &t.EventID, &t.SizeName, &ticketTypes, &t.IsDefault,
			&t.IsLocked, &t.GenerationCount, &t.BackgroundImageURL,
			&t.BackgroundColor, &elements,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		for _, raw := range ticketTypes {
			tt, err := id.ParseTicketTypeID(raw)
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", t.ID, err)
			}
			t.TicketTypeIDs = append(t.TicketTypeIDs, tt)
		}
		if len(elements) > 0 {
			if err := json.Unmarshal(elements, &t.Elements); err != nil {
				return nil, fmt.Errorf("template %s elements: %w", t.ID, err)
			}
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template %s: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// RecordRender applies the lock/usage transition as one statement so
// concurrent renders of the same template can neither lose an increment nor
// skip the lock. The counter only ever moves through this statement, so
// "lock with count 1, then increment" collapses to a single unconditional
// increment alongside the lock.
func (s *Postgres) RecordRender(ctx context.Context, templateID id.TemplateID) (int, error) {
	var count int
	err := s.db(ctx).QueryRow(ctx,
		`UPDATE badge_templates
		 SET is_locked = TRUE, generation_count = generation_count + 1
		 WHERE id = $1
		 RETURNING generation_count`,
		templateID.String(),
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, sentinel.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("record render: %w", err)
	}
	return count, nil
}

func (s *Postgres) ReassignTemplate(ctx context.Context, attendeeID id.AttendeeID, templateID id.TemplateID) error {
	tag, err := s.db(ctx).Exec(ctx,
		`UPDATE attendees SET assigned_template_id = $2 WHERE id = $1`,
		attendeeID.String(), templateID.String())
	if err != nil {
		return fmt.Errorf("reassign template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
