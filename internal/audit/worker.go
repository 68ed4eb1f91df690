package audit

import (
	"context"

	id "lanyard/pkg/domain"
)

// Queue decouples audit writes from request latency. Append enqueues; Run
// drains the inbox into the wrapped store from a background goroutine. It
// implements Store so the Publisher wraps it transparently.
type Queue struct {
	store Store
	inbox chan Event
}

func NewQueue(store Store, buffer int) *Queue {
	return &Queue{
		store: store,
		inbox: make(chan Event, buffer),
	}
}

// Append enqueues one event. It blocks only when the buffer is full.
func (q *Queue) Append(ctx context.Context, event Event) error {
	select {
	case q.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListByAttendee reads through to the wrapped store. Events still in the
// inbox are not yet visible.
func (q *Queue) ListByAttendee(ctx context.Context, attendeeID id.AttendeeID) ([]Event, error) {
	return q.store.ListByAttendee(ctx, attendeeID)
}

// Run persists queued events until the context is cancelled or the store
// fails.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-q.inbox:
			if err := q.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}
