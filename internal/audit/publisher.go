package audit

import (
	"context"

	id "lanyard/pkg/domain"
	"lanyard/pkg/requestcontext"
)

// Store persists audit events. Memory for tests, something durable in
// production.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAttendee(ctx context.Context, attendeeID id.AttendeeID) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// store for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit appends one event, stamping it with the request-scoped time when the
// caller left Timestamp zero. A nil publisher is a no-op so wiring stays
// optional.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if p == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	return p.store.Append(ctx, event)
}

// List returns the trail for one attendee, oldest first.
func (p *Publisher) List(ctx context.Context, attendeeID id.AttendeeID) ([]Event, error) {
	return p.store.ListByAttendee(ctx, attendeeID)
}
