package lec

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/emptycircle/dbg"
)

// A Ridge is the boundary between two adjacent Voronoi regions. Every point
// on it is equidistant from the two sites it bisects. A bounded ridge is the
// segment between two Voronoi vertices. An unbounded ridge has one known
// vertex and runs off to infinity; it carries a ray id and the raw normal of
// its line. The normal's sign is meaningless: the true outward direction is
// recovered later, from the diagram itself (see resolveRays).
type Ridge struct {
	Sites [2]int // indices of the two bisected sites
	Verts [2]int // Voronoi vertex indices; Verts[1] is -1 when unbounded
	Ray   int    // ray id when unbounded, otherwise -1
	// Raw normal of the ridge line for unbounded ridges (the inter-site
	// vector). Only its direction up to sign is meaningful.
	Normal Point
}

// Unbounded reports whether the ridge is a ray rather than a segment.
func (r *Ridge) Unbounded() bool {
	return r.Ray >= 0
}

func (r *Ridge) String() string {
	name := dbg.Name(r)
	if r.Unbounded() {
		name = aurora.Cyan(name).String()
		return fmt.Sprintf("Ridge %s (%d|%d) v%d → ray %d", name, r.Sites[0], r.Sites[1], r.Verts[0], r.Ray)
	}
	name = aurora.Green(name).String()
	return fmt.Sprintf("Ridge %s (%d|%d) v%d → v%d", name, r.Sites[0], r.Sites[1], r.Verts[0], r.Verts[1])
}

// Diagram is the combinatorial and geometric structure the search runs on:
// the sites, their convex hull, the Delaunay triangles, and the Voronoi
// vertices and ridges. It is read-only once built; a search allocates its own
// scratch state per call, so a Diagram may be shared between calls.
type Diagram struct {
	Sites     []Point
	Hull      []int    // hull site indices, counterclockwise
	Triangles [][3]int // Delaunay triangles as site index triples
	Vertices  []Point  // Voronoi vertices; Vertices[i] belongs to Triangles[i]
	Ridges    []Ridge
	NumRays   int

	byVertex [][]int // vertex index → indices into Ridges
}

// NewDiagram computes the Voronoi structure for the given sites. The Delaunay
// triangulation itself is delegated to fogleman/delaunay; everything the
// search needs is read off its halfedge mesh. Each triangle's circumcenter is
// a Voronoi vertex, each Delaunay edge is dual to a ridge between its two
// endpoints' regions, and the edges with no twin are the hull: their dual
// ridges are the unbounded rays.
//
// Degenerate input fails with an error wrapping ErrDegenerateInput. Duplicate
// coordinates are rejected rather than deduplicated, so that site indices in
// the result always refer to the caller's slice.
func NewDiagram(sites []Point) (*Diagram, error) {
	if len(sites) < 3 {
		return nil, errors.Wrapf(ErrDegenerateInput, "need at least 3 points, got %d", len(sites))
	}
	seen := make(map[Point]int, len(sites))
	for i, s := range sites {
		if j, ok := seen[s]; ok {
			return nil, errors.Wrapf(ErrDegenerateInput, "points %d and %d are both (%v, %v)", j, i, s.X, s.Y)
		}
		seen[s] = i
	}

	dpts := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		dpts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, errors.Wrap(ErrDegenerateInput, err.Error())
	}
	if len(tri.Triangles) == 0 {
		return nil, errors.Wrap(ErrDegenerateInput, "all points are collinear")
	}

	d := &Diagram{Sites: sites}

	numTriangles := len(tri.Triangles) / 3
	d.Triangles = make([][3]int, numTriangles)
	d.Vertices = make([]Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		a, b, c := tri.Triangles[3*t], tri.Triangles[3*t+1], tri.Triangles[3*t+2]
		d.Triangles[t] = [3]int{a, b, c}
		d.Vertices[t] = circumcenter(sites[a], sites[b], sites[c])
	}

	// One ridge per Delaunay edge. Interior edges appear as two twinned
	// halfedges; emit the ridge from the lower-numbered one. Edges without a
	// twin lie on the hull and dualize to unbounded rays.
	onHull := map[int]bool{}
	for e := 0; e < len(tri.Triangles); e++ {
		twin := tri.Halfedges[e]
		if twin >= 0 && twin < e {
			continue
		}
		s1 := tri.Triangles[e]
		s2 := tri.Triangles[nextHalfedge(e)]
		ridge := Ridge{
			Sites: [2]int{s1, s2},
			Verts: [2]int{e / 3, -1},
			Ray:   -1,
		}
		if twin >= 0 {
			ridge.Verts[1] = twin / 3
		} else {
			ridge.Ray = d.NumRays
			d.NumRays++
			ridge.Normal = sites[s2].Sub(sites[s1])
			onHull[s1] = true
			onHull[s2] = true
		}
		d.Ridges = append(d.Ridges, ridge)
	}

	for i := range onHull {
		d.Hull = append(d.Hull, i)
	}
	orderByAngle(sites, d.Hull)

	d.indexRidges()
	return d, nil
}

// nextHalfedge gives the halfedge following e within its triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// indexRidges builds the vertex → incident-ridge index used by the search
// and the ray resolver.
func (d *Diagram) indexRidges() {
	d.byVertex = make([][]int, len(d.Vertices))
	for i := range d.Ridges {
		for _, vi := range d.Ridges[i].Verts {
			if vi == -1 {
				continue
			}
			if vi < 0 || vi >= len(d.Vertices) {
				fatalf("ridge %d references vertex %d, but the diagram has %d vertices", i, vi, len(d.Vertices))
			}
			d.byVertex[vi] = append(d.byVertex[vi], i)
		}
	}
}

// HullPolygon returns the convex hull as a polygon, counterclockwise.
func (d *Diagram) HullPolygon() Polygon {
	points := make([]Point, len(d.Hull))
	for i, idx := range d.Hull {
		points[i] = d.Sites[idx]
	}
	return Polygon{Points: points}
}
