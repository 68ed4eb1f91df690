package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "lanyard/pkg/domain"
)

func TestSizeByName(t *testing.T) {
	tests := []struct {
		name string
		want PageSize
	}{
		{"4x3", PageSize{W: 288, H: 216}},
		{"3x4", PageSize{W: 216, H: 288}},
		{"a6", PageSize{W: 297.64, H: 419.53}},
		{"a7", PageSize{W: 209.76, H: 297.64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeByName(tt.name))
		})
	}
}

func TestSizeByNameUnknownFallsBackToA7(t *testing.T) {
	assert.Equal(t, pageSizes["a7"], SizeByName("letter"))
	assert.Equal(t, pageSizes["a7"], SizeByName(""))
}

func TestLinksTicketType(t *testing.T) {
	vip := id.TicketTypeID(uuid.New())
	tpl := Template{TicketTypeIDs: []id.TicketTypeID{vip}}

	assert.True(t, tpl.LinksTicketType(vip))
	assert.False(t, tpl.LinksTicketType(id.TicketTypeID(uuid.New())))
}

func TestIsGeneralDefault(t *testing.T) {
	assert.True(t, (&Template{IsDefault: true}).IsGeneralDefault())
	assert.False(t, (&Template{}).IsGeneralDefault())

	linked := Template{
		IsDefault:     true,
		TicketTypeIDs: []id.TicketTypeID{id.TicketTypeID(uuid.New())},
	}
	assert.False(t, linked.IsGeneralDefault())
}

func TestTemplateValidateChecksElements(t *testing.T) {
	tpl := Template{
		Elements: []Element{
			{Kind: ElementText, Visible: true, Opacity: 100},
		},
	}
	assert.Error(t, tpl.Validate())

	tpl.Elements[0].Text = &TextElement{Content: "ok"}
	assert.NoError(t, tpl.Validate())
}
