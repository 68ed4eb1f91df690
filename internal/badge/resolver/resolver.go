// Package resolver selects which template applies to an attendee. The rules
// are centralized here and kept pure so they stay trivially testable.
package resolver

import (
	"lanyard/internal/badge/models"
	id "lanyard/pkg/domain"
	dErrors "lanyard/pkg/domain-errors"
)

// Resolve picks one template for an attendee out of the event's template set.
// Priority, first match wins:
//
//  1. a template whose linked ticket-type set contains the attendee's
//     ticket type
//  2. a default template with an empty linked set (the general default)
//  3. any default template
//
// Ties within a step break on the set's original order, so resolution is
// deterministic for a fixed (event, ticket type, template set) triple.
// No match is a configuration failure, not an internal error: the organizer
// simply has not set up a badge for this event yet.
func Resolve(templates []models.Template, ticketType *id.TicketTypeID) (*models.Template, error) {
	if ticketType != nil {
		for i := range templates {
			if templates[i].LinksTicketType(*ticketType) {
				return &templates[i], nil
			}
		}
	}
	for i := range templates {
		if templates[i].IsGeneralDefault() {
			return &templates[i], nil
		}
	}
	for i := range templates {
		if templates[i].IsDefault {
			return &templates[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "no badge template configured for this event")
}
