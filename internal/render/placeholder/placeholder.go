// Package placeholder substitutes {{token}} markers in element content using
// attendee and event data. Unrecognized tokens pass through verbatim so a
// typo in a template shows up on the badge instead of failing the render.
package placeholder

import (
	"regexp"
	"strings"
	"unicode"

	"lanyard/internal/badge/models"
	"lanyard/pkg/email"
)

var tokenPattern = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

// Context carries everything token resolution needs.
type Context struct {
	Attendee *models.Attendee
	Event    *models.Event

	// VerifyBaseURL is the public base for QR payloads; checkin_url and
	// verify_url both expand to <base>/v/<checkin_token>.
	VerifyBaseURL string
}

// CheckinToken returns the attendee's secure token, falling back to the
// registration number so a QR payload is never empty.
func (c Context) CheckinToken() string {
	if c.Attendee == nil {
		return ""
	}
	if c.Attendee.CheckinToken != "" {
		return c.Attendee.CheckinToken
	}
	return c.Attendee.RegistrationNumber
}

// VerifyURL builds the on-site verification URL encoded into QR codes.
func (c Context) VerifyURL() string {
	return strings.TrimRight(c.VerifyBaseURL, "/") + "/v/" + c.CheckinToken()
}

// EventDateRange formats the event dates as a short range like
// "2 Jan – 5 Jan 2026". Either date missing yields an empty string; a badge
// with a blank date line beats a failed render.
func (c Context) EventDateRange() string {
	if c.Event == nil || c.Event.StartDate == nil || c.Event.EndDate == nil {
		return ""
	}
	return c.Event.StartDate.Format("2 Jan") + " – " + c.Event.EndDate.Format("2 Jan 2006")
}

func (c Context) resolve(token string) (string, bool) {
	a := c.Attendee
	switch token {
	case "name":
		if a.Name == "" {
			return email.DeriveDisplayName(a.Email), true
		}
		return a.Name, true
	case "registration_number":
		return a.RegistrationNumber, true
	case "ticket_type":
		return a.TicketTypeName, true
	case "email":
		return a.Email, true
	case "phone":
		return a.Phone, true
	case "institution":
		return a.Institution, true
	case "designation":
		return a.Designation, true
	case "event_name":
		if c.Event == nil {
			return "", true
		}
		return c.Event.Name, true
	case "checkin_token":
		return c.CheckinToken(), true
	case "checkin_url", "verify_url":
		return c.VerifyURL(), true
	case "event_date":
		return c.EventDateRange(), true
	}
	return "", false
}

// Substitute replaces every recognized {{token}} in s. Unrecognized tokens
// are left untouched.
func Substitute(s string, ctx Context) string {
	if ctx.Attendee == nil || !strings.Contains(s, "{{") {
		return s
	}
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		token := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := ctx.resolve(token); ok {
			return value
		}
		return match
	})
}

// ApplyCase applies a text-case policy after substitution. Only text
// elements carry one; an unknown policy is a no-op.
func ApplyCase(s, policy string) string {
	switch policy {
	case models.CaseUppercase:
		return strings.ToUpper(s)
	case models.CaseLowercase:
		return strings.ToLower(s)
	case models.CaseCapitalize:
		return capitalize(s)
	}
	return s
}

// capitalize uppercases the first letter at start-of-string and after
// whitespace or a period.
func capitalize(s string) string {
	runes := []rune(s)
	boundary := true
	for i, r := range runes {
		if boundary && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		boundary = unicode.IsSpace(r) || r == '.'
	}
	return string(runes)
}
