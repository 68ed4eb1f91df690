// Package store provides registry-backed implementations of the badge ports.
// The in-memory variant serves tests and single-node development; the
// postgres variant is the production path.
package store

import (
	"context"
	"strings"
	"sync"

	"lanyard/internal/badge/models"
	id "lanyard/pkg/domain"
	"lanyard/pkg/platform/sentinel"
)

// InMemory implements every badge port against process memory. All reads
// return copies so callers can't mutate shared state behind the mutex.
type InMemory struct {
	mu            sync.RWMutex
	attendees     map[id.AttendeeID]models.Attendee
	events        map[id.EventID]models.Event
	templates     map[id.EventID][]id.TemplateID
	templatesByID map[id.TemplateID]*models.Template
}

func NewInMemory() *InMemory {
	return &InMemory{
		attendees:     make(map[id.AttendeeID]models.Attendee),
		events:        make(map[id.EventID]models.Event),
		templates:     make(map[id.EventID][]id.TemplateID),
		templatesByID: make(map[id.TemplateID]*models.Template),
	}
}

// SeedAttendee registers an attendee record.
func (s *InMemory) SeedAttendee(a models.Attendee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendees[a.ID] = a
}

// SeedEvent registers an event record.
func (s *InMemory) SeedEvent(e models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

// SeedTemplate registers a template under its event.
func (s *InMemory) SeedTemplate(t models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := t
	s.templatesByID[t.ID] = &copied
	s.templates[t.EventID] = append(s.templates[t.EventID], t.ID)
}

func (s *InMemory) FindByToken(_ context.Context, token string) (*models.Attendee, error) {
	if token == "" {
		return nil, sentinel.ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attendees {
		if a.CheckinToken == token {
			copied := a
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByRegistrationNumber(_ context.Context, eventID id.EventID, regNo string) (*models.Attendee, error) {
	if regNo == "" {
		return nil, sentinel.ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attendees {
		if a.EventID == eventID && strings.EqualFold(a.RegistrationNumber, regNo) {
			copied := a
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByID(_ context.Context, eventID id.EventID) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[eventID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := e
	return &copied, nil
}

func (s *InMemory) FindByEvent(_ context.Context, eventID id.EventID) ([]models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.templates[eventID]
	out := make([]models.Template, 0, len(ids))
	for _, tid := range ids {
		if t, ok := s.templatesByID[tid]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

// RecordRender applies the lock/usage transition under a single mutex hold,
// the in-memory equivalent of the postgres store's one-statement update:
// validate and mutate with no window for a lost increment in between.
func (s *InMemory) RecordRender(_ context.Context, templateID id.TemplateID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.templatesByID[templateID]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	if !t.IsLocked {
		t.IsLocked = true
		t.GenerationCount = 1
	} else {
		t.GenerationCount++
	}
	return t.GenerationCount, nil
}

func (s *InMemory) ReassignTemplate(_ context.Context, attendeeID id.AttendeeID, templateID id.TemplateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendees[attendeeID]
	if !ok {
		return sentinel.ErrNotFound
	}
	a.AssignedTemplateID = &templateID
	s.attendees[attendeeID] = a
	return nil
}
