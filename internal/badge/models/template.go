// Package models defines the badge domain types: templates, their positioned
// elements, and the read-only attendee/event records the renderer consumes.
package models

import (
	id "lanyard/pkg/domain"
)

// PageSize is a finished-document size in points (72 per inch).
type PageSize struct {
	W float64
	H float64
}

// Named page sizes. Element geometry is authored in pixels at 96/inch; the
// page itself is declared directly in points.
var pageSizes = map[string]PageSize{
	"4x3": {W: 288, H: 216},
	"3x4": {W: 216, H: 288},
	"a6":  {W: 297.64, H: 419.53},
	"a7":  {W: 209.76, H: 297.64},
}

// fallbackSizeName is used for unrecognized size names so a typo never
// produces an oversized print job.
const fallbackSizeName = "a7"

// SizeByName maps a template's declared size name to point dimensions.
// Unrecognized names fall back to a7.
func SizeByName(name string) PageSize {
	if s, ok := pageSizes[name]; ok {
		return s
	}
	return pageSizes[fallbackSizeName]
}

// Template is an organizer-authored layout reusable across attendees.
// Authoring happens outside this service; templates arrive read-mostly from
// the registry, with only the lock/counter pair mutated here.
type Template struct {
	ID              id.TemplateID
	EventID         id.EventID
	SizeName        string
	TicketTypeIDs   []id.TicketTypeID
	IsDefault       bool
	IsLocked        bool
	GenerationCount int

	BackgroundImageURL string
	BackgroundColor    string // hex, empty means opaque white

	Elements []Element
}

// PageSize resolves the template's named size.
func (t *Template) PageSize() PageSize {
	return SizeByName(t.SizeName)
}

// LinksTicketType reports whether the template's linked set contains the
// given ticket type.
func (t *Template) LinksTicketType(ticketType id.TicketTypeID) bool {
	for _, tt := range t.TicketTypeIDs {
		if tt == ticketType {
			return true
		}
	}
	return false
}

// IsGeneralDefault reports whether the template is a default with no linked
// ticket types, i.e. the fallback for attendees no specific template claims.
func (t *Template) IsGeneralDefault() bool {
	return t.IsDefault && len(t.TicketTypeIDs) == 0
}

// Validate checks the template and all elements. Called when a template is
// loaded from the registry so the renderer never sees a half-formed variant.
func (t *Template) Validate() error {
	for i := range t.Elements {
		if err := t.Elements[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
