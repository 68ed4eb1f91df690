package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligibleForBadge(t *testing.T) {
	assert.True(t, StatusConfirmed.EligibleForBadge())
	assert.False(t, StatusPending.EligibleForBadge())
	assert.False(t, StatusCancelled.EligibleForBadge())
	assert.False(t, AttendeeStatus("deleted").EligibleForBadge())
}
