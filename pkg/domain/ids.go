// Package domain defines typed identifiers shared across the badge service.
// Distinct UUID wrappers prevent cross-type assignment at compile time; parse
// helpers enforce validity at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "lanyard/pkg/domain-errors"
)

type (
	// TemplateID identifies a badge template.
	TemplateID uuid.UUID
	// AttendeeID identifies a registered attendee.
	AttendeeID uuid.UUID
	// EventID identifies an event.
	EventID uuid.UUID
	// TicketTypeID identifies a ticket type within an event.
	TicketTypeID uuid.UUID
)

func (id TemplateID) String() string   { return uuid.UUID(id).String() }
func (id AttendeeID) String() string   { return uuid.UUID(id).String() }
func (id EventID) String() string      { return uuid.UUID(id).String() }
func (id TicketTypeID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the nil UUID.
func (id TemplateID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id AttendeeID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }
func (id TicketTypeID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID enforces the shared invariant: IDs must be valid, non-empty,
// non-nil UUIDs.
func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id cannot be empty", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s id", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id cannot be nil", kind)
	}
	return u, nil
}

// ParseTemplateID constructs a TemplateID from external input.
func ParseTemplateID(s string) (TemplateID, error) {
	u, err := parseUUID(s, "template")
	return TemplateID(u), err
}

// ParseAttendeeID constructs an AttendeeID from external input.
func ParseAttendeeID(s string) (AttendeeID, error) {
	u, err := parseUUID(s, "attendee")
	return AttendeeID(u), err
}

// ParseEventID constructs an EventID from external input.
func ParseEventID(s string) (EventID, error) {
	u, err := parseUUID(s, "event")
	return EventID(u), err
}

// ParseTicketTypeID constructs a TicketTypeID from external input.
func ParseTicketTypeID(s string) (TicketTypeID, error) {
	u, err := parseUUID(s, "ticket type")
	return TicketTypeID(u), err
}
