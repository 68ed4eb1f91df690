package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	id "lanyard/pkg/domain"
	txcontext "lanyard/pkg/platform/tx"
)

// PostgresStore persists the issuance trail in the badge_audit_events table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

type execer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (s *PostgresStore) db(ctx context.Context) execer {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.pool
}

// Append inserts one event. Idempotent per generated ID.
func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	var templateID *uuid.UUID
	if !event.TemplateID.IsZero() {
		tid := uuid.UUID(event.TemplateID)
		templateID = &tid
	}

	_, err := s.db(ctx).Exec(ctx,
		`INSERT INTO badge_audit_events (
			id, timestamp, action, attendee_id, event_id, template_id,
			reason, omitted_elements
		 )
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		uuid.New(),
		event.Timestamp,
		event.Action,
		uuid.UUID(event.AttendeeID),
		uuid.UUID(event.EventID),
		templateID,
		event.Reason,
		event.OmittedElements,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByAttendee returns the trail for one attendee, oldest first.
func (s *PostgresStore) ListByAttendee(ctx context.Context, attendeeID id.AttendeeID) ([]Event, error) {
	rows, err := s.db(ctx).Query(ctx,
		`SELECT timestamp, action, attendee_id, event_id, template_id,
		        reason, omitted_elements
		 FROM badge_audit_events
		 WHERE attendee_id = $1
		 ORDER BY timestamp`,
		uuid.UUID(attendeeID))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			event      Event
			templateID *uuid.UUID
		)
		if err := rows.Scan(
			&event.Timestamp, &event.Action, &event.AttendeeID,
			&event.EventID, &templateID, &event.Reason,
			&event.OmittedElements,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		if templateID != nil {
			event.TemplateID = id.TemplateID(*templateID)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
