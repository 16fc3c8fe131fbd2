package lec

import "math"

// rayEndpoint is the finite stand-in for an unbounded ridge: a far point a
// full bounding-box extent along the ray, so any hull edge the ray escapes
// through can be found with plain segment intersection, plus a squared
// distance bound used to reject intersections that only exist because the
// upstream normal was wrong.
type rayEndpoint struct {
	far   Point
	bound float64
}

// resolveRays materializes a far endpoint for every unbounded ridge, given
// the hull's bounding box. Scratch state for a single search call; nothing is
// cached on the diagram.
//
// The step runs perpendicular to the ridge's raw normal. The solve divides by
// whichever normal component is larger in magnitude, so a near-axis normal
// never puts a near-zero denominator under the division. The raw normal's
// sign is ambiguous, so the outward direction is recovered from the diagram:
// every point on the real ridge is closer to its two bisected sites than to
// any other site, so walking away from the vertex's third site is walking
// outward.
func (d *Diagram) resolveRays(min, max Point) []rayEndpoint {
	rays := make([]rayEndpoint, d.NumRays)
	for i := range d.Ridges {
		r := &d.Ridges[i]
		if !r.Unbounded() {
			continue
		}
		if r.Ray >= len(rays) {
			fatalf("ridge %d has ray id %d, but the diagram declares %d rays", i, r.Ray, d.NumRays)
		}
		vertex := d.Vertices[r.Verts[0]]

		var step Point
		switch {
		case math.Abs(r.Normal.Y) > math.Abs(r.Normal.X):
			step.X = max.X - min.X
			step.Y = -r.Normal.X * step.X / r.Normal.Y
		case r.Normal.X != 0:
			step.Y = max.Y - min.Y
			step.X = -r.Normal.Y * step.Y / r.Normal.X
		}
		// A zero normal leaves a zero step. The ray stays a zero-length
		// segment, which never intersects anything; the search just never
		// sees a candidate from it.

		kv, ok := d.thirdSite(r)
		if !ok {
			// No third site shares this ridge's vertex, so there is nothing
			// to orient the ray against. Leave it degenerate.
			rays[r.Ray] = rayEndpoint{far: vertex}
			continue
		}

		if step.Dot(d.Sites[r.Sites[0]].Sub(d.Sites[kv])) < 0 {
			step = step.Mul(-1)
		}
		rays[r.Ray] = rayEndpoint{
			far:   vertex.Add(step),
			bound: distSq(vertex, d.Sites[kv]),
		}
	}
	return rays
}

// thirdSite finds the next-closest site for an unbounded ridge: among the
// ridges meeting at its known vertex, the one site that is not in the ridge's
// own bisected pair. The vertex is equidistant from all three.
func (d *Diagram) thirdSite(r *Ridge) (int, bool) {
	for _, ri := range d.byVertex[r.Verts[0]] {
		for _, s := range d.Ridges[ri].Sites {
			if s != r.Sites[0] && s != r.Sites[1] {
				return s, true
			}
		}
	}
	return 0, false
}
