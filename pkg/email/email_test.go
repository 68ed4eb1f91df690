package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDisplayName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"jane_doe+conf@example.com", "Jane Doe"},
		{"jdoe@example.com", "Jdoe"},
		{"jane.doe.2026@example.com", "Jane Doe"},
		{"12345@example.com", ""},
		{"", ""},
		{"@example.com", ""},
		{"+promo@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveDisplayName(tt.email))
		})
	}
}
