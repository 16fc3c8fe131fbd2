package lec

import (
	"math"

	"github.com/pkg/errors"
)

// LargestEmptyCircle finds the maximum-radius circle whose interior contains
// no site, with its center constrained to the sites' convex hull.
//
// The center of such a circle is always either a Voronoi vertex or a point
// where a Voronoi ridge crosses the hull boundary, so the search is two
// scans: every vertex inside the hull, then every ridge against every hull
// edge. A candidate that fails a test is skipped, never fatal; the search
// only errors, wrapping ErrDegenerateInput, if no candidate survives at all.
func (d *Diagram) LargestEmptyCircle() (Circle, error) {
	if d.byVertex == nil {
		d.indexRidges()
	}
	hull := d.HullPolygon()
	if len(hull.Points) < 3 {
		return Circle{}, errors.Wrap(ErrDegenerateInput, "convex hull is not a polygon")
	}
	min, max := hull.BoundingBox()
	rays := d.resolveRays(min, max)

	bestSq := -1.0
	var best Point

	// Every Voronoi vertex is equidistant from the sites bisected by its
	// ridges, and no site is nearer, so that distance is the empty-circle
	// radius centered there. Only vertices inside the hull qualify.
	for vi, vertex := range d.Vertices {
		incident := d.byVertex[vi]
		if len(incident) == 0 || !hull.Contains(vertex) {
			continue
		}
		site := d.Sites[d.Ridges[incident[0]].Sites[0]]
		if rsq := distSq(vertex, site); rsq > bestSq {
			bestSq, best = rsq, vertex
		}
	}

	// Where a ridge crosses the hull boundary, the crossing is the best
	// center available on that hull edge for the ridge's two sites. Unbounded
	// ridges are intersected as rays through their resolved far point.
	for i := range d.Ridges {
		ridge := &d.Ridges[i]
		a := d.Vertices[ridge.Verts[0]]
		var b Point
		if ridge.Unbounded() {
			b = rays[ridge.Ray].far
		} else {
			b = d.Vertices[ridge.Verts[1]]
		}
		site := d.Sites[ridge.Sites[0]]

		for j := range hull.Points {
			h1 := hull.Points[j]
			h2 := hull.Points[circularIndex(j+1, len(hull.Points))]
			p, ok := intersectSegments(h1, h2, a, b, ridge.Unbounded())
			if !ok {
				continue
			}
			rsq := distSq(p, site)
			if ridge.Unbounded() && rsq > rays[ridge.Ray].bound {
				// The upstream triangulation's ray normals are occasionally
				// wrong. A crossing farther from the sites than the ridge's
				// third-nearest site cannot lie on the real ridge; discard
				// it rather than report a circle that isn't empty.
				continue
			}
			if rsq > bestSq {
				bestSq, best = rsq, p
			}
		}
	}

	if bestSq < 0 {
		return Circle{}, errors.Wrap(ErrDegenerateInput, "no empty-circle candidates found")
	}
	return Circle{X: best.X, Y: best.Y, Radius: math.Sqrt(bestSq)}, nil
}
