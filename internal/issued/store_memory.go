package issued

import (
	"context"
	"sync"

	id "lanyard/pkg/domain"
	"lanyard/pkg/platform/sentinel"
)

// InMemoryStore is the non-Redis fallback for development and tests.
type InMemoryStore struct {
	mu   sync.RWMutex
	urls map[id.AttendeeID]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{urls: make(map[id.AttendeeID]string)}
}

func (s *InMemoryStore) FindCopyURL(_ context.Context, attendeeID id.AttendeeID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	url, ok := s.urls[attendeeID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return url, nil
}

func (s *InMemoryStore) SaveCopyURL(_ context.Context, attendeeID id.AttendeeID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls[attendeeID] = url
	return nil
}
