// A largest-empty-circle package for Go.
//
// Given a set of points, this package finds the circle of maximum radius
// whose interior contains none of them, with the center constrained to lie
// inside the points' convex hull. This is the classic facility-siting
// question: place a new site as far as possible from every existing site,
// without leaving the region they span.
package emptycircle

import (
	"github.com/pkg/errors"

	"github.com/osuushi/emptycircle/lec"
)

type Point = lec.Point
type Circle = lec.Circle
type Diagram = lec.Diagram

// ErrDegenerateInput is returned (wrapped) when the points have no
// two-dimensional structure: fewer than three of them, duplicates, or all of
// them collinear.
var ErrDegenerateInput = lec.ErrDegenerateInput

// Find locates the largest empty circle for the points (xs[i], ys[i]). The
// input must contain at least three distinct, non-collinear points.
func Find(xs, ys []float64) (Circle, error) {
	if len(xs) != len(ys) {
		return Circle{}, errors.Errorf("mismatched coordinates: %d x values, %d y values", len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return FindPoints(points)
}

// FindPoints is Find for an already-assembled point slice. To reuse the
// Voronoi structure across calls, or to render it, use lec.NewDiagram
// directly.
func FindPoints(points []Point) (result Circle, err error) {
	defer func() {
		recoveredErr := lec.HandleFindPanicRecover(recover())
		if recoveredErr != nil {
			result = Circle{}
			err = recoveredErr
		}
	}()
	diagram, err := lec.NewDiagram(points)
	if err != nil {
		return Circle{}, err
	}
	return diagram.LargestEmptyCircle()
}
