// Package ports defines the narrow interfaces through which the badge engine
// consumes the external registry. The engine never talks to storage or
// transport directly, so resolution and rendering stay unit-testable.
package ports

import (
	"context"

	"lanyard/internal/badge/models"
	id "lanyard/pkg/domain"
)

//go:generate mockgen -source=registry.go -destination=mocks/registry.go -package=mocks

// AttendeeStore looks up read-only attendee records.
type AttendeeStore interface {
	// FindByToken resolves an attendee by secure check-in token.
	// Returns sentinel.ErrNotFound when no attendee matches.
	FindByToken(ctx context.Context, token string) (*models.Attendee, error)

	// FindByRegistrationNumber is the human-input fallback: the match is
	// case-insensitive and scoped to one event.
	FindByRegistrationNumber(ctx context.Context, eventID id.EventID, regNo string) (*models.Attendee, error)
}

// EventStore looks up read-only event records.
type EventStore interface {
	FindByID(ctx context.Context, eventID id.EventID) (*models.Event, error)
}

// TemplateStore returns the full template set for an event. Resolution logic
// lives in the engine, not the store.
type TemplateStore interface {
	FindByEvent(ctx context.Context, eventID id.EventID) ([]models.Template, error)
}

// RenderMetadataStore is the only write path back into the registry.
type RenderMetadataStore interface {
	// RecordRender applies the lock/usage transition for one successful
	// render as a single atomic conditional update: an unlocked template
	// becomes locked with count 1, a locked one only increments. Returns the
	// resulting generation count.
	RecordRender(ctx context.Context, templateID id.TemplateID) (int, error)

	// ReassignTemplate overwrites the attendee's stored template assignment
	// after re-resolution picks a different template.
	ReassignTemplate(ctx context.Context, attendeeID id.AttendeeID, templateID id.TemplateID) error
}
