// Package geometry maps authored element geometry (pixel units, 96/inch,
// origin top-left) into output geometry (point units, 72/inch, origin
// bottom-left). Each element transforms independently; there is no grouping
// or nesting, and nothing is clipped to the page.
package geometry

// Scale converts pixels at 96/inch to points at 72/inch.
const Scale = 72.0 / 96.0

// Rect is an axis-aligned box in output space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Transform converts one element's design-space box to output space on a
// page of the given height in points. The vertical flip places Y at the
// box's bottom edge measured from the page bottom.
func Transform(x, y, w, h, pageHeight float64) Rect {
	outW := w * Scale
	outH := h * Scale
	return Rect{
		X: x * Scale,
		Y: pageHeight - y*Scale - outH,
		W: outW,
		H: outH,
	}
}
