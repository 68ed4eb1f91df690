// Package audit keeps an append-only trail of badge issuance. Operators use
// it to answer "who rendered what, when, and did it come out whole".
package audit

import (
	"time"

	id "lanyard/pkg/domain"
)

// Actions recorded by the badge engine.
const (
	ActionBadgeRendered   = "badge.rendered"
	ActionBadgeRedirected = "badge.redirected"
	ActionBadgeFailed     = "badge.failed"
	ActionTemplateSwitch  = "badge.template_reassigned"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time
	Action     string
	AttendeeID id.AttendeeID
	EventID    id.EventID
	TemplateID id.TemplateID

	// Reason carries failure detail or, for reassignments, the previous
	// template ID.
	Reason string

	// OmittedElements counts visuals dropped from a rendered badge.
	OmittedElements int
}
