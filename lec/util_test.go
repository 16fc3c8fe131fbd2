package lec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistSq(t *testing.T) {
	assert.Equal(t, 25.0, distSq(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
	assert.Equal(t, 25.0, distSq(Point{X: 3, Y: 4}, Point{X: 0, Y: 0}))
	assert.Equal(t, 0.0, distSq(Point{X: 1, Y: 2}, Point{X: 1, Y: 2}))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := circularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestCircumcenter(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		// The circumcenter of a right triangle is the hypotenuse midpoint
		c := circumcenter(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 1})
		assert.InDelta(t, 0.5, c.X, 1e-12)
		assert.InDelta(t, 0.5, c.Y, 1e-12)
	})

	t.Run("equilateral triangle", func(t *testing.T) {
		a := Point{X: 0, Y: 0}
		b := Point{X: 1, Y: 0}
		cc := Point{X: 0.5, Y: math.Sqrt(3) / 2}
		center := circumcenter(a, b, cc)
		assert.InDelta(t, 0.5, center.X, 1e-12)
		assert.InDelta(t, math.Sqrt(3)/6, center.Y, 1e-12)

		// Equidistant from all three corners
		assert.InDelta(t, distSq(center, a), distSq(center, b), 1e-12)
		assert.InDelta(t, distSq(center, a), distSq(center, cc), 1e-12)
	})
}

func TestOrderByAngle(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	hull := []int{2, 0, 3, 1}
	orderByAngle(sites, hull)
	// atan2 runs from -π, so the bottom-left corner sorts first
	assert.Equal(t, []int{0, 1, 2, 3}, hull)
}
