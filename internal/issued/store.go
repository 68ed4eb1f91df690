// Package issued tracks where previously generated badge copies were stored
// by the delivery layer. The render path consults it to short-circuit to an
// existing copy instead of re-rendering.
package issued

import (
	"context"

	id "lanyard/pkg/domain"
)

// Store maps attendees to stored badge copy URLs.
type Store interface {
	// FindCopyURL returns the stored copy URL for an attendee.
	// Returns sentinel.ErrNotFound when no copy has been recorded.
	FindCopyURL(ctx context.Context, attendeeID id.AttendeeID) (string, error)

	// SaveCopyURL records where a badge copy now lives. The delivery layer
	// calls this after uploading; the render path only reads.
	SaveCopyURL(ctx context.Context, attendeeID id.AttendeeID, url string) error
}
