package lec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectSegments(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		p, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 4, Y: 0},
			Point{X: 1, Y: -1}, Point{X: 1, Y: 3},
			false,
		)
		assert.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 0, p.Y, 1e-12)
	})

	t.Run("diagonal crossing", func(t *testing.T) {
		p, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 2, Y: 2},
			Point{X: 0, Y: 2}, Point{X: 2, Y: 0},
			false,
		)
		assert.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("parallel segments", func(t *testing.T) {
		_, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 1, Y: 0},
			Point{X: 0, Y: 1}, Point{X: 1, Y: 1},
			false,
		)
		assert.False(t, ok)
	})

	t.Run("zero length second segment", func(t *testing.T) {
		_, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 1, Y: 0},
			Point{X: 0.5, Y: 0.5}, Point{X: 0.5, Y: 0.5},
			true,
		)
		assert.False(t, ok)
	})

	t.Run("miss beyond the first segment", func(t *testing.T) {
		_, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 1, Y: 0},
			Point{X: 2, Y: -1}, Point{X: 2, Y: 1},
			false,
		)
		assert.False(t, ok)
	})

	t.Run("miss beyond the second segment", func(t *testing.T) {
		_, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 4, Y: 0},
			Point{X: 1, Y: 1}, Point{X: 1, Y: 3},
			false,
		)
		assert.False(t, ok)
	})

	t.Run("unbounded extends past the second endpoint", func(t *testing.T) {
		p1, p2 := Point{X: 0, Y: 0}, Point{X: 4, Y: 0}
		p3, p4 := Point{X: 1, Y: -2}, Point{X: 1, Y: -1}

		_, ok := intersectSegments(p1, p2, p3, p4, false)
		assert.False(t, ok)

		p, ok := intersectSegments(p1, p2, p3, p4, true)
		assert.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 0, p.Y, 1e-12)
	})

	t.Run("unbounded never extends behind the anchor", func(t *testing.T) {
		// The ray points away from the first segment
		_, ok := intersectSegments(
			Point{X: 0, Y: 0}, Point{X: 4, Y: 0},
			Point{X: 1, Y: 1}, Point{X: 1, Y: 2},
			true,
		)
		assert.False(t, ok)
	})
}
