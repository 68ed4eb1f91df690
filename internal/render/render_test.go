package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanyard/internal/badge/models"
	"lanyard/internal/render/assets"
	"lanyard/internal/render/placeholder"
)

// stubFetcher serves canned images per URL without touching the network.
type stubFetcher struct {
	images map[string]*assets.Image
}

func (s *stubFetcher) Fetch(_ context.Context, rawURL string) (*assets.Image, error) {
	if img, ok := s.images[rawURL]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("stub: no image for %s", rawURL)
}

func testPNG(t *testing.T) *assets.Image {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &assets.Image{Bytes: buf.Bytes(), Format: "PNG"}
}

func testTokens() placeholder.Context {
	return placeholder.Context{
		Attendee: &models.Attendee{
			Name:               "Ada Lovelace",
			RegistrationNumber: "REG-0042",
			CheckinToken:       "9f3a1b2c4d5e6f708192a3b4",
			TicketTypeName:     "VIP",
			Status:             models.StatusConfirmed,
		},
		Event:         &models.Event{Name: "GopherConf"},
		VerifyBaseURL: "https://app.example.com",
	}
}

func testTemplate() *models.Template {
	return &models.Template{
		SizeName: "4x3",
		Elements: []models.Element{
			{
				Kind: models.ElementShape, X: 0, Y: 0, W: 384, H: 40,
				Visible: true, Opacity: 100,
				Shape: &models.ShapeElement{Color: "#1E3A8A"},
			},
			{
				Kind: models.ElementText, X: 10, Y: 60, W: 364, H: 30,
				Visible: true, Opacity: 100,
				Text: &models.TextElement{
					Content: "{{name}}", Align: models.AlignCenter,
					FontWeight: "bold", FontSize: 18, Color: "#111111",
				},
			},
			{
				Kind: models.ElementLine, X: 10, Y: 100, W: 364, H: 0,
				Visible: true, Opacity: 100,
				Line: &models.LineElement{Color: "#888888"},
			},
			{
				Kind: models.ElementQRCode, X: 140, Y: 110, W: 100, H: 100,
				Visible: true, Opacity: 100,
				QR: &models.QRCodeElement{Content: "{{checkin_url}}"},
			},
		},
	}
}

func newTestAssembler(fetcher assets.ImageFetcher) *Assembler {
	return NewAssembler(fetcher, slog.New(slog.DiscardHandler))
}

func TestAssemble_ProducesPDF(t *testing.T) {
	a := newTestAssembler(&stubFetcher{})

	result, err := a.Assemble(context.Background(), Input{
		Template: testTemplate(),
		Tokens:   testTokens(),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF")), "output must start with the PDF magic")
	assert.Greater(t, len(result.PDF), 1024, "a painted badge should not be a trivially small file")
	assert.Empty(t, result.OmittedElements)
}

func TestAssemble_OmitsFailedImages(t *testing.T) {
	tpl := testTemplate()
	tpl.Elements = append(tpl.Elements, models.Element{
		Kind: models.ElementImage, X: 10, Y: 120, W: 80, H: 80,
		Visible: true, Opacity: 100,
		Image: &models.ImageElement{URL: "https://cdn.example.com/missing.png"},
	})

	a := newTestAssembler(&stubFetcher{})
	result, err := a.Assemble(context.Background(), Input{Template: tpl, Tokens: testTokens()})
	require.NoError(t, err, "a missing photo must not fail the badge")

	require.Len(t, result.OmittedElements, 1)
	assert.Contains(t, result.OmittedElements[0], "image")
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF")))
}

func TestAssemble_EmbedsFetchedImage(t *testing.T) {
	const url = "https://cdn.example.com/logo.png"
	tpl := testTemplate()
	tpl.Elements = append(tpl.Elements, models.Element{
		Kind: models.ElementImage, X: 10, Y: 120, W: 80, H: 80,
		Visible: true, Opacity: 100,
		Image: &models.ImageElement{URL: url},
	})

	a := newTestAssembler(&stubFetcher{images: map[string]*assets.Image{url: testPNG(t)}})
	result, err := a.Assemble(context.Background(), Input{Template: tpl, Tokens: testTokens()})
	require.NoError(t, err)
	assert.Empty(t, result.OmittedElements)
}

func TestAssemble_BackgroundFallsBackToFill(t *testing.T) {
	tpl := testTemplate()
	tpl.BackgroundImageURL = "https://cdn.example.com/gone.png"
	tpl.BackgroundColor = "#FAFAFA"

	a := newTestAssembler(&stubFetcher{})
	result, err := a.Assemble(context.Background(), Input{Template: tpl, Tokens: testTokens()})
	require.NoError(t, err)
	assert.Contains(t, result.OmittedElements, "background")
}

func TestAssemble_SkipsInvisibleElements(t *testing.T) {
	tpl := testTemplate()
	tpl.Elements = append(tpl.Elements, models.Element{
		Kind: models.ElementImage, X: 0, Y: 0, W: 10, H: 10,
		Visible: false, Opacity: 100,
		Image: &models.ImageElement{URL: "https://cdn.example.com/never-fetched.png"},
	})

	a := newTestAssembler(&stubFetcher{})
	result, err := a.Assemble(context.Background(), Input{Template: tpl, Tokens: testTokens()})
	require.NoError(t, err)
	assert.Empty(t, result.OmittedElements, "invisible elements are filtered before any fetch")
}

func TestVisibleByZIndex(t *testing.T) {
	elements := []models.Element{
		{Kind: models.ElementShape, ZIndex: 2, Visible: true, Shape: &models.ShapeElement{}},
		{Kind: models.ElementLine, ZIndex: 0, Visible: true, Line: &models.LineElement{}},
		{Kind: models.ElementText, ZIndex: 2, Visible: true, Text: &models.TextElement{}},
		{Kind: models.ElementImage, ZIndex: 1, Visible: false, Image: &models.ImageElement{}},
	}

	ordered := visibleByZIndex(elements)
	require.Len(t, ordered, 3)
	assert.Equal(t, models.ElementLine, ordered[0].Kind)
	// Stable sort: the shape stays ahead of the text at the same z.
	assert.Equal(t, models.ElementShape, ordered[1].Kind)
	assert.Equal(t, models.ElementText, ordered[2].Kind)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#FF0000", 255, 0, 0},
		{"00ff00", 0, 255, 0},
		{"#abc", 170, 187, 204},
		{"", 9, 9, 9},
		{"not-a-color", 9, 9, 9},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in, 9, 9, 9)
		assert.Equal(t, [3]int{tt.r, tt.g, tt.b}, [3]int{r, g, b}, "input %q", tt.in)
	}
}
