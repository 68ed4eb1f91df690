// Package assets fetches external images for badge rendering. Every fetch
// passes the SSRF guard first, runs under a bounded timeout, and fails soft:
// the caller omits the image and keeps rendering.
package assets

import (
	"fmt"
	"net/url"
	"strings"
)

var blockedHosts = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"0.0.0.0":   {},
	"::1":       {},
}

var blockedPrefixes = []string{"10.", "172.", "192.168."}

var blockedSuffixes = []string{".internal", ".local"}

// CheckURL decides fetch-eligibility before any network access. Only https
// URLs pointing at public-looking hosts pass; loopback, private-range
// literals, and internal-only suffixes are rejected.
func CheckURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("unparseable image url: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("image url scheme %q is not https", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("image url has no host")
	}
	if _, blocked := blockedHosts[host]; blocked {
		return fmt.Errorf("image host %q is loopback", host)
	}
	for _, prefix := range blockedPrefixes {
		if strings.HasPrefix(host, prefix) {
			return fmt.Errorf("image host %q is in a private range", host)
		}
	}
	for _, suffix := range blockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return fmt.Errorf("image host %q is internal-only", host)
		}
	}
	return nil
}

// CheckRedirectTarget applies the same allowlist philosophy to outbound
// redirects: a previously stored badge copy may only be served from the
// system's own trusted storage host.
func CheckRedirectTarget(raw, trustedHost string) error {
	if trustedHost == "" {
		return fmt.Errorf("no trusted storage host configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("unparseable stored copy url: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("stored copy scheme %q is not https", u.Scheme)
	}
	if !strings.EqualFold(u.Hostname(), trustedHost) {
		return fmt.Errorf("stored copy host %q is not the trusted storage host", u.Hostname())
	}
	return nil
}
