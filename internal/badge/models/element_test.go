package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementUnmarshalAppliesDefaults(t *testing.T) {
	raw := `{"kind":"text","x":10,"y":20,"width":100,"height":30,"content":"{{name}}"}`

	var el Element
	require.NoError(t, json.Unmarshal([]byte(raw), &el))

	assert.Equal(t, ElementText, el.Kind)
	assert.Equal(t, 0, el.ZIndex)
	assert.True(t, el.Visible)
	assert.Equal(t, 100.0, el.Opacity)
	require.NotNil(t, el.Text)
	assert.Equal(t, "{{name}}", el.Text.Content)
}

func TestElementUnmarshalKeepsExplicitValues(t *testing.T) {
	raw := `{"kind":"shape","x":0,"y":0,"width":50,"height":50,"z_index":-2,"visible":false,"opacity":40,"color":"#ff0000"}`

	var el Element
	require.NoError(t, json.Unmarshal([]byte(raw), &el))

	assert.Equal(t, -2, el.ZIndex)
	assert.False(t, el.Visible)
	assert.Equal(t, 40.0, el.Opacity)
	require.NotNil(t, el.Shape)
	assert.Equal(t, "#ff0000", el.Shape.Color)
}

func TestElementUnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, el Element)
	}{
		{
			name: "line",
			raw:  `{"kind":"line","width":200,"height":2,"color":"#333"}`,
			want: func(t *testing.T, el Element) {
				require.NotNil(t, el.Line)
				assert.Equal(t, "#333", el.Line.Color)
			},
		},
		{
			name: "qr code",
			raw:  `{"kind":"qr_code","width":90,"height":90,"content":"{{verify_url}}"}`,
			want: func(t *testing.T, el Element) {
				require.NotNil(t, el.QR)
				assert.Equal(t, "{{verify_url}}", el.QR.Content)
			},
		},
		{
			name: "image",
			raw:  `{"kind":"image","width":64,"height":64,"image_url":"https://cdn.example.com/logo.png"}`,
			want: func(t *testing.T, el Element) {
				require.NotNil(t, el.Image)
				assert.Equal(t, "https://cdn.example.com/logo.png", el.Image.URL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var el Element
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &el))
			tt.want(t, el)
		})
	}
}

func TestElementUnmarshalRejectsUnknownKind(t *testing.T) {
	var el Element
	err := json.Unmarshal([]byte(`{"kind":"sticker","width":10,"height":10}`), &el)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown element kind")
}

func TestElementValidate(t *testing.T) {
	tests := []struct {
		name    string
		element Element
		wantErr string
	}{
		{
			name:    "text without payload",
			element: Element{Kind: ElementText, Visible: true, Opacity: 100},
			wantErr: "missing payload",
		},
		{
			name: "opacity above range",
			element: Element{
				Kind: ElementShape, Visible: true, Opacity: 120,
				Shape: &ShapeElement{},
			},
			wantErr: "out of range",
		},
		{
			name: "opacity below range",
			element: Element{
				Kind: ElementShape, Visible: true, Opacity: -1,
				Shape: &ShapeElement{},
			},
			wantErr: "out of range",
		},
		{
			name: "valid qr",
			element: Element{
				Kind: ElementQRCode, Visible: true, Opacity: 100,
				QR: &QRCodeElement{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.element.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestElementMarshalRoundTripsVariant(t *testing.T) {
	el := Element{
		Kind: ElementText, X: 5, Y: 6, W: 70, H: 20,
		ZIndex: 3, Visible: true, Opacity: 80,
		Text: &TextElement{Content: "hi", Align: AlignCenter, FontSize: 12},
	}

	data, err := json.Marshal(el)
	require.NoError(t, err)

	var got Element
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, el, got)
}
