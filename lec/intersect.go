package lec

// intersectSegments returns the intersection of segment (p1,p2) with segment
// (p3,p4), solving p1 + s*(p2-p1) = p3 + t*(p4-p3). The point must lie within
// (p1,p2). It must also lie within (p3,p4), unless unbounded is set, in which
// case (p3,p4) is treated as a ray: anchored at p3, passing through p4, and
// extending past p4 forever.
//
// A false result is the expected outcome for most pairs the search tries; it
// is not an error. Parallel and coincident segments (including zero-length
// ones) never intersect.
func intersectSegments(p1, p2, p3, p4 Point, unbounded bool) (Point, bool) {
	d12 := p2.Sub(p1)
	d34 := p4.Sub(p3)
	d13 := p1.Sub(p3)

	denom := d12.Cross(d34)
	if denom == 0 {
		return Point{}, false
	}

	s := d34.Cross(d13) / denom // parameter along (p1,p2)
	t := d12.Cross(d13) / denom // parameter along (p3,p4)
	if s < 0 || s > 1 {
		return Point{}, false
	}
	if t < 0 || (!unbounded && t > 1) {
		return Point{}, false
	}
	return p3.Add(d34.Mul(t)), true
}
