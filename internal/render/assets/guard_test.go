package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckURL(t *testing.T) {
	rejected := []struct {
		name string
		url  string
	}{
		{"plain http scheme", "http://cdn.example.com/x.png"},
		{"loopback ip", "https://127.0.0.1/x.png"},
		{"localhost", "https://localhost/x.png"},
		{"unspecified address", "https://0.0.0.0/x.png"},
		{"ipv6 loopback", "https://[::1]/x.png"},
		{"ten-dot private range", "https://10.0.0.5/x.png"},
		{"one-seven-two private range", "https://172.16.0.9/x.png"},
		{"rfc1918 class c", "https://192.168.1.1/x.png"},
		{"internal suffix", "https://svc.internal/x.png"},
		{"local suffix", "https://printer.local/x.png"},
		{"empty host", "https:///x.png"},
	}
	for _, tt := range rejected {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			assert.Error(t, CheckURL(tt.url))
		})
	}

	t.Run("accepts a public https url", func(t *testing.T) {
		assert.NoError(t, CheckURL("https://cdn.example.com/x.png"))
	})

	t.Run("host matching is case-insensitive", func(t *testing.T) {
		assert.Error(t, CheckURL("https://SVC.INTERNAL/x.png"))
	})
}

func TestCheckRedirectTarget(t *testing.T) {
	t.Run("accepts the trusted storage host", func(t *testing.T) {
		require.NoError(t, CheckRedirectTarget("https://files.example.com/badges/REG-1.pdf", "files.example.com"))
	})

	t.Run("rejects any other host", func(t *testing.T) {
		assert.Error(t, CheckRedirectTarget("https://evil.example.net/badges/REG-1.pdf", "files.example.com"))
	})

	t.Run("rejects http even on the trusted host", func(t *testing.T) {
		assert.Error(t, CheckRedirectTarget("http://files.example.com/badges/REG-1.pdf", "files.example.com"))
	})

	t.Run("rejects everything when no trusted host is configured", func(t *testing.T) {
		assert.Error(t, CheckRedirectTarget("https://files.example.com/badges/REG-1.pdf", ""))
	})
}
