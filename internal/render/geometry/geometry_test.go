package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	t.Run("one inch square at origin lands flush with the page top", func(t *testing.T) {
		const pageH = 216.0
		r := Transform(0, 0, 96, 96, pageH)

		assert.InDelta(t, 0.0, r.X, 1e-9)
		assert.InDelta(t, pageH-72, r.Y, 1e-9)
		assert.InDelta(t, 72.0, r.W, 1e-9)
		assert.InDelta(t, 72.0, r.H, 1e-9)
	})

	t.Run("scales by 0.75 on all axes", func(t *testing.T) {
		r := Transform(40, 20, 200, 100, 300)

		assert.InDelta(t, 30.0, r.X, 1e-9)
		assert.InDelta(t, 150.0, r.W, 1e-9)
		assert.InDelta(t, 75.0, r.H, 1e-9)
		assert.InDelta(t, 300-15-75, r.Y, 1e-9)
	})

	t.Run("overflow past the page is preserved, not clipped", func(t *testing.T) {
		r := Transform(0, 400, 96, 96, 216)
		assert.Less(t, r.Y, 0.0)
	})
}
