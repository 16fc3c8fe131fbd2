package lec

import (
	"math"
	"sort"
)

// distSq returns the squared distance between two points. Candidates are
// compared squared throughout the search; the square root happens once, on
// the winning radius.
func distSq(a, b Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// circumcenter returns the point equidistant from the three corners of the
// triangle abc. Each Delaunay triangle's circumcenter is a Voronoi vertex:
// the spot where the three corners' regions meet.
func circumcenter(a, b, c Point) Point {
	d := b.Sub(a)
	e := c.Sub(a)
	bl := d.Dot(d)
	cl := e.Dot(e)
	det := 0.5 / d.Cross(e)
	return Point{
		X: a.X + (e.Y*bl-d.Y*cl)*det,
		Y: a.Y + (d.X*cl-e.X*bl)*det,
	}
}

// orderByAngle sorts hull site indices counterclockwise by their angle about
// the hull centroid. After sorting, consecutive entries (wrapping from last
// to first) are the edges of the hull polygon. The centroid is strictly
// interior to the hull, so no two hull points share an angle and the order is
// deterministic.
func orderByAngle(sites []Point, hull []int) {
	var cx, cy float64
	for _, i := range hull {
		cx += sites[i].X
		cy += sites[i].Y
	}
	cx /= float64(len(hull))
	cy /= float64(len(hull))

	sort.Slice(hull, func(a, b int) bool {
		pa, pb := sites[hull[a]], sites[hull[b]]
		return math.Atan2(pa.Y-cy, pa.X-cx) < math.Atan2(pb.Y-cy, pb.X-cx)
	})
}
