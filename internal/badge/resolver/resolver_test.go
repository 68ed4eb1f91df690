package resolver

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanyard/internal/badge/models"
	id "lanyard/pkg/domain"
	dErrors "lanyard/pkg/domain-errors"
)

func ticketTypePtr(t id.TicketTypeID) *id.TicketTypeID { return &t }

func TestResolve_PriorityOrder(t *testing.T) {
	vip := id.TicketTypeID(uuid.New())
	specific := models.Template{
		ID:            id.TemplateID(uuid.New()),
		TicketTypeIDs: []id.TicketTypeID{vip},
	}
	generalDefault := models.Template{
		ID:        id.TemplateID(uuid.New()),
		IsDefault: true,
	}
	linkedDefault := models.Template{
		ID:            id.TemplateID(uuid.New()),
		IsDefault:     true,
		TicketTypeIDs: []id.TicketTypeID{id.TicketTypeID(uuid.New())},
	}

	t.Run("ticket-type match beats general default", func(t *testing.T) {
		got, err := Resolve([]models.Template{generalDefault, specific}, ticketTypePtr(vip))
		require.NoError(t, err)
		assert.Equal(t, specific.ID, got.ID)
	})

	t.Run("general default beats linked default", func(t *testing.T) {
		got, err := Resolve([]models.Template{linkedDefault, generalDefault}, nil)
		require.NoError(t, err)
		assert.Equal(t, generalDefault.ID, got.ID)
	})

	t.Run("any default is the last resort", func(t *testing.T) {
		got, err := Resolve([]models.Template{linkedDefault}, nil)
		require.NoError(t, err)
		assert.Equal(t, linkedDefault.ID, got.ID)
	})

	t.Run("no ticket type skips step one", func(t *testing.T) {
		got, err := Resolve([]models.Template{specific, generalDefault}, nil)
		require.NoError(t, err)
		assert.Equal(t, generalDefault.ID, got.ID)
	})

	t.Run("nothing configured is a not-found", func(t *testing.T) {
		_, err := Resolve([]models.Template{specific}, nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestResolve_Deterministic(t *testing.T) {
	vip := id.TicketTypeID(uuid.New())
	a := models.Template{ID: id.TemplateID(uuid.New()), TicketTypeIDs: []id.TicketTypeID{vip}}
	b := models.Template{ID: id.TemplateID(uuid.New()), TicketTypeIDs: []id.TicketTypeID{vip}}
	set := []models.Template{a, b}

	first, err := Resolve(set, ticketTypePtr(vip))
	require.NoError(t, err)
	second, err := Resolve(set, ticketTypePtr(vip))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, a.ID, first.ID, "first match in original order wins")
}
