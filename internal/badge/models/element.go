package models

import (
	"encoding/json"
	"fmt"
)

// ElementKind tags the element variant.
type ElementKind string

const (
	ElementText   ElementKind = "text"
	ElementShape  ElementKind = "shape"
	ElementLine   ElementKind = "line"
	ElementQRCode ElementKind = "qr_code"
	ElementImage  ElementKind = "image"
)

// Horizontal alignment values for text elements.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Text case policies applied after placeholder substitution.
const (
	CaseNone       = ""
	CaseUppercase  = "uppercase"
	CaseLowercase  = "lowercase"
	CaseCapitalize = "capitalize"
)

// Element is one positioned visual unit in a template. It is a tagged
// variant: Kind selects exactly one of the payload pointers, enforced by
// Validate at template load so the renderer can dispatch without nil checks.
//
// Geometry is in design space: pixel units at 96/inch, origin top-left.
type Element struct {
	Kind ElementKind

	X float64
	Y float64
	W float64
	H float64

	ZIndex  int
	Visible bool
	Opacity float64 // 0-100

	Text  *TextElement
	Shape *ShapeElement
	Line  *LineElement
	QR    *QRCodeElement
	Image *ImageElement
}

// TextElement carries the text variant payload. Content may hold {{token}}
// placeholders.
type TextElement struct {
	Content    string
	FontWeight string // "bold" selects the bold face, anything else regular
	TextCase   string
	Align      string
	Color      string // hex
	FontSize   float64
}

// ShapeElement is a filled rectangle.
type ShapeElement struct {
	Color string
}

// LineElement approximates a stroke with a thin filled rectangle.
type LineElement struct {
	Color string
}

// QRCodeElement encodes its substituted content as a QR bitmap.
type QRCodeElement struct {
	Content string
}

// ImageElement embeds an externally hosted image.
type ImageElement struct {
	URL string
}

// Validate enforces the tagged-variant invariant and field ranges.
func (e *Element) Validate() error {
	switch e.Kind {
	case ElementText:
		if e.Text == nil {
			return fmt.Errorf("text element missing payload")
		}
	case ElementShape:
		if e.Shape == nil {
			return fmt.Errorf("shape element missing payload")
		}
	case ElementLine:
		if e.Line == nil {
			return fmt.Errorf("line element missing payload")
		}
	case ElementQRCode:
		if e.QR == nil {
			return fmt.Errorf("qr_code element missing payload")
		}
	case ElementImage:
		if e.Image == nil {
			return fmt.Errorf("image element missing payload")
		}
	default:
		return fmt.Errorf("unknown element kind %q", e.Kind)
	}
	if e.Opacity < 0 || e.Opacity > 100 {
		return fmt.Errorf("element opacity %v out of range 0-100", e.Opacity)
	}
	return nil
}

// elementWire is the registry JSON shape. Optional fields are pointers so
// absence and zero are distinguishable when applying defaults.
type elementWire struct {
	Kind    ElementKind `json:"kind"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	W       float64     `json:"width"`
	H       float64     `json:"height"`
	ZIndex  *int        `json:"z_index"`
	Visible *bool       `json:"visible"`
	Opacity *float64    `json:"opacity"`

	// Variant fields, flattened in the wire format.
	Content    string  `json:"content"`
	FontWeight string  `json:"font_weight"`
	TextCase   string  `json:"text_case"`
	Align      string  `json:"align"`
	Color      string  `json:"color"`
	FontSize   float64 `json:"font_size"`
	ImageURL   string  `json:"image_url"`
}

// UnmarshalJSON decodes the flat registry representation into the tagged
// variant, applying defaults: z-index 0, visible, opacity 100.
func (e *Element) UnmarshalJSON(data []byte) error {
	var w elementWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*e = Element{
		Kind:    w.Kind,
		X:       w.X,
		Y:       w.Y,
		W:       w.W,
		H:       w.H,
		Visible: true,
		Opacity: 100,
	}
	if w.ZIndex != nil {
		e.ZIndex = *w.ZIndex
	}
	if w.Visible != nil {
		e.Visible = *w.Visible
	}
	if w.Opacity != nil {
		e.Opacity = *w.Opacity
	}

	switch w.Kind {
	case ElementText:
		e.Text = &TextElement{
			Content:    w.Content,
			FontWeight: w.FontWeight,
			TextCase:   w.TextCase,
			Align:      w.Align,
			Color:      w.Color,
			FontSize:   w.FontSize,
		}
	case ElementShape:
		e.Shape = &ShapeElement{Color: w.Color}
	case ElementLine:
		e.Line = &LineElement{Color: w.Color}
	case ElementQRCode:
		e.QR = &QRCodeElement{Content: w.Content}
	case ElementImage:
		e.Image = &ImageElement{URL: w.ImageURL}
	}
	return e.Validate()
}

// MarshalJSON re-encodes the variant into the flat registry representation.
func (e Element) MarshalJSON() ([]byte, error) {
	w := elementWire{
		Kind:    e.Kind,
		X:       e.X,
		Y:       e.Y,
		W:       e.W,
		H:       e.H,
		ZIndex:  &e.ZIndex,
		Visible: &e.Visible,
		Opacity: &e.Opacity,
	}
	switch e.Kind {
	case ElementText:
		if e.Text != nil {
			w.Content = e.Text.Content
			w.FontWeight = e.Text.FontWeight
			w.TextCase = e.Text.TextCase
			w.Align = e.Text.Align
			w.Color = e.Text.Color
			w.FontSize = e.Text.FontSize
		}
	case ElementShape:
		if e.Shape != nil {
			w.Color = e.Shape.Color
		}
	case ElementLine:
		if e.Line != nil {
			w.Color = e.Line.Color
		}
	case ElementQRCode:
		if e.QR != nil {
			w.Content = e.QR.Content
		}
	case ElementImage:
		if e.Image != nil {
			w.ImageURL = e.Image.URL
		}
	}
	return json.Marshal(w)
}
