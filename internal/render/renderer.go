// Package render composites one badge document from a resolved template and
// an attendee's substituted content. Geometry arrives already transformed to
// output space; asset problems degrade to omitted elements, never to a
// failed document.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"lanyard/internal/badge/models"
	"lanyard/internal/render/assets"
	"lanyard/internal/render/geometry"
	"lanyard/internal/render/placeholder"
)

// qrEncodePixels is the bitmap size handed to the QR encoder. The bitmap is
// rescaled to the element box; encoding large keeps modules crisp in print.
const qrEncodePixels = 512

// ElementRenderer paints one element at a time onto an fpdf page. It is
// stateless across elements apart from the shared image fetcher.
type ElementRenderer struct {
	fetcher assets.ImageFetcher
	logger  *slog.Logger
}

// NewElementRenderer constructs an ElementRenderer.
func NewElementRenderer(fetcher assets.ImageFetcher, logger *slog.Logger) *ElementRenderer {
	return &ElementRenderer{fetcher: fetcher, logger: logger}
}

// paintContext carries per-document painting state.
type paintContext struct {
	pdf    *fpdf.Fpdf
	page   models.PageSize
	tokens placeholder.Context
}

// topY converts an output-space rect (bottom-left origin) to the painter's
// top edge (fpdf paints from the page top).
func (p *paintContext) topY(r geometry.Rect) float64 {
	return p.page.H - r.Y - r.H
}

// Paint renders one element. A non-nil error means the element was omitted;
// it never aborts the document.
func (er *ElementRenderer) Paint(ctx context.Context, pc *paintContext, idx int, el *models.Element) error {
	r := geometry.Transform(el.X, el.Y, el.W, el.H, pc.page.H)

	alpha := el.Opacity / 100
	if alpha != 1 {
		pc.pdf.SetAlpha(alpha, "Normal")
		defer pc.pdf.SetAlpha(1, "Normal")
	}

	switch el.Kind {
	case models.ElementShape:
		er.paintShape(pc, r, el.Shape)
		return nil
	case models.ElementLine:
		er.paintLine(pc, r, el.Line)
		return nil
	case models.ElementText:
		er.paintText(pc, r, el.Text)
		return nil
	case models.ElementQRCode:
		return er.paintQR(pc, r, idx, el.QR)
	case models.ElementImage:
		return er.paintImage(ctx, pc, r, idx, el.Image)
	}
	return fmt.Errorf("unknown element kind %q", el.Kind)
}

func (er *ElementRenderer) paintShape(pc *paintContext, r geometry.Rect, shape *models.ShapeElement) {
	red, green, blue := parseHexColor(shape.Color, 0, 0, 0)
	pc.pdf.SetFillColor(red, green, blue)
	pc.pdf.Rect(r.X, pc.topY(r), r.W, r.H, "F")
}

// paintLine approximates a stroke with a filled rectangle clamped to at
// least 1pt tall and centered in the element's box.
func (er *ElementRenderer) paintLine(pc *paintContext, r geometry.Rect, line *models.LineElement) {
	red, green, blue := parseHexColor(line.Color, 0, 0, 0)
	pc.pdf.SetFillColor(red, green, blue)

	lineH := r.H
	if lineH < 1 {
		lineH = 1
	}
	top := pc.topY(r) + (r.H-lineH)/2
	pc.pdf.Rect(r.X, top, r.W, lineH, "F")
}

func (er *ElementRenderer) paintText(pc *paintContext, r geometry.Rect, text *models.TextElement) {
	content := placeholder.Substitute(text.Content, pc.tokens)
	content = placeholder.ApplyCase(content, text.TextCase)
	if content == "" {
		return
	}

	style := ""
	if strings.EqualFold(text.FontWeight, "bold") {
		style = "B"
	}
	fontPt := text.FontSize * geometry.Scale
	if fontPt <= 0 {
		fontPt = 10
	}
	pc.pdf.SetFont("Helvetica", style, fontPt)

	red, green, blue := parseHexColor(text.Color, 0, 0, 0)
	pc.pdf.SetTextColor(red, green, blue)

	textW := pc.pdf.GetStringWidth(content)
	x := r.X
	switch text.Align {
	case models.AlignCenter:
		x = r.X + (r.W-textW)/2
	case models.AlignRight:
		x = r.X + r.W - textW
	}

	// Vertical centering: baseline sits below the box midpoint by roughly a
	// third of the font size for the core faces.
	baseline := pc.topY(r) + r.H/2 + fontPt*0.35
	pc.pdf.Text(x, baseline, content)
}

func (er *ElementRenderer) paintQR(pc *paintContext, r geometry.Rect, idx int, qr *models.QRCodeElement) error {
	payload := placeholder.Substitute(qr.Content, pc.tokens)
	if payload == "" {
		payload = pc.tokens.VerifyURL()
	}

	// High error correction keeps the code scannable on creased or smudged
	// badge stock.
	png, err := qrcode.Encode(payload, qrcode.High, qrEncodePixels)
	if err != nil {
		return fmt.Errorf("encode qr payload: %w", err)
	}

	side := r.W
	if r.H < side {
		side = r.H
	}
	x := r.X + (r.W-side)/2
	top := pc.topY(r) + (r.H-side)/2

	name := fmt.Sprintf("qr-%d", idx)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pc.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pc.pdf.ImageOptions(name, x, top, side, side, false, opts, 0, "")
	return nil
}

func (er *ElementRenderer) paintImage(ctx context.Context, pc *paintContext, r geometry.Rect, idx int, img *models.ImageElement) error {
	if img.URL == "" {
		return fmt.Errorf("image element has no url")
	}
	fetched, err := er.fetcher.Fetch(ctx, img.URL)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("img-%d", idx)
	opts := fpdf.ImageOptions{ImageType: fetched.Format}
	info := pc.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(fetched.Bytes))
	if pc.pdf.Err() {
		return fmt.Errorf("decode image: %w", pc.pdf.Error())
	}

	iw, ih := info.Extent()
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("image has no extent")
	}

	// Uniform scale preserving aspect ratio, centered in the box.
	scale := r.W / iw
	if hScale := r.H / ih; hScale < scale {
		scale = hScale
	}
	drawW, drawH := iw*scale, ih*scale
	x := r.X + (r.W-drawW)/2
	top := pc.topY(r) + (r.H-drawH)/2

	pc.pdf.ImageOptions(name, x, top, drawW, drawH, false, opts, 0, "")
	return nil
}

// parseHexColor normalizes a #RRGGBB or #RGB string. Malformed or empty
// values fall back to the provided default channels.
func parseHexColor(hex string, dr, dg, db int) (int, int, int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return dr, dg, db
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return dr, dg, db
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
