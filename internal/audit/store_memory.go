package audit

import (
	"context"
	"sync"

	id "lanyard/pkg/domain"
)

// InMemoryStore keeps the audit trail in process memory. Suitable for tests
// and single-node deployments where the trail is scraped into logs anyway.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByAttendee(_ context.Context, attendeeID id.AttendeeID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.AttendeeID == attendeeID {
			out = append(out, e)
		}
	}
	return out, nil
}
