package lec

// Polygon is an ordered ring of vertices; the last vertex implicitly connects
// back to the first.
type Polygon struct {
	Points []Point
}

// Contains reports whether p lies inside the polygon, by the crossings test:
// walk the edges and toggle an inside flag each time an edge straddles p's Y
// value and crosses the +X ray from p. The crossing-side comparison is
// cross-multiplied so there is no division.
//
// The polygon must be convex with at least three vertices. A convex boundary
// crosses any ray at most twice, so the walk stops at the second straddling
// edge. Behavior for points exactly on the boundary is unspecified, as usual
// for crossing counts.
func (poly Polygon) Contains(p Point) bool {
	inside := false
	straddles := 0

	j := len(poly.Points) - 1
	prevFlag := poly.Points[j].Y >= p.Y
	for i := range poly.Points {
		flag := poly.Points[i].Y >= p.Y
		if flag != prevFlag {
			cur, prev := poly.Points[i], poly.Points[j]
			if ((cur.Y-p.Y)*(prev.X-cur.X) >= (cur.X-p.X)*(prev.Y-cur.Y)) == flag {
				inside = !inside
			}
			straddles++
			if straddles == 2 {
				break
			}
		}
		prevFlag = flag
		j = i
	}
	return inside
}

// BoundingBox returns the polygon's axis-aligned extent.
func (poly Polygon) BoundingBox() (min, max Point) {
	min = poly.Points[0]
	max = poly.Points[0]
	for _, p := range poly.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
