// Package email derives presentable fallbacks from email addresses for
// registrations that arrive without a name.
package email

import (
	"strings"
	"unicode"
)

// DeriveDisplayName builds a display name from the address local part:
// "jane.doe+conf@example.com" becomes "Jane Doe". Returns empty for an
// unusable address so callers can apply their own default.
func DeriveDisplayName(email string) string {
	localPart := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		localPart = email[:at]
	}
	// Subaddress tags ("+conf") are routing hints, not name material.
	if plus := strings.IndexByte(localPart, '+'); plus >= 0 {
		localPart = localPart[:plus]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return ""
	}

	// Digits-only fragments (ticket counters, years) add nothing to a name.
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if isDigits(p) {
			continue
		}
		words = append(words, capitalize(p))
	}
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
