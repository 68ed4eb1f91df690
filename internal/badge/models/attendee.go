package models

import (
	"time"

	id "lanyard/pkg/domain"
)

// AttendeeStatus is the registration status carried on the attendee record.
type AttendeeStatus string

const (
	StatusConfirmed AttendeeStatus = "confirmed"
	StatusPending   AttendeeStatus = "pending"
	StatusCancelled AttendeeStatus = "cancelled"
)

// EligibleForBadge reports whether a badge may be issued for this status.
func (s AttendeeStatus) EligibleForBadge() bool {
	return s == StatusConfirmed
}

// Attendee is the read-only registration record fetched from the registry
// per render. This service never mutates attendee data beyond the template
// assignment overwrite.
type Attendee struct {
	ID      id.AttendeeID
	EventID id.EventID

	Name        string
	Email       string
	Phone       string
	Institution string
	Designation string

	TicketTypeID   *id.TicketTypeID
	TicketTypeName string

	CheckinToken       string
	RegistrationNumber string
	Status             AttendeeStatus

	// AssignedTemplateID remembers which template produced the last badge.
	// Resolution re-runs every render and overwrites it when the outcome
	// changes.
	AssignedTemplateID *id.TemplateID
}

// Event is the read-only event record. Dates are optional; a missing date
// blanks the {{event_date}} placeholder rather than failing the render.
type Event struct {
	ID        id.EventID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}
