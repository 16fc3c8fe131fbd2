package lec

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering is a presentation hook layered over the search; nothing here
// feeds back into the numeric result.

const drawPadding = 20

// DrawPNG renders the diagram to a PNG at path: Delaunay triangles in gray,
// Voronoi ridges in blue (rays resolved exactly as the search sees them),
// the hull in green, sites as black dots, and, if given, the result circle
// in red. Scale is in pixels per input unit.
func (d *Diagram) DrawPNG(path string, scale float64, circle *Circle) error {
	hull := d.HullPolygon()
	min, max := hull.BoundingBox()

	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(1)
	c.SetRGB(0.8, 0.8, 0.8)
	for _, t := range d.Triangles {
		a, b, cc := d.Sites[t[0]], d.Sites[t[1]], d.Sites[t[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.Stroke()

	rays := d.resolveRays(min, max)
	c.SetRGB(0, 0.4, 1)
	for i := range d.Ridges {
		ridge := &d.Ridges[i]
		a := d.Vertices[ridge.Verts[0]]
		b := a
		if ridge.Unbounded() {
			b = rays[ridge.Ray].far
		} else {
			b = d.Vertices[ridge.Verts[1]]
		}
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.Stroke()

	c.SetRGB(0, 0.6, 0)
	c.MoveTo(hull.Points[0].X, hull.Points[0].Y)
	for _, p := range hull.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()

	c.SetRGB(0, 0, 0)
	for _, s := range d.Sites {
		c.DrawPoint(s.X, s.Y, 2)
	}
	c.Fill()

	if circle != nil {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(circle.X, circle.Y, circle.Radius)
		c.Stroke()
		c.DrawPoint(circle.X, circle.Y, 2)
		c.Fill()
	}

	return c.SavePNG(path)
}

// DebugShow writes the render to the temp dir and cats it to the terminal.
// The scale is chosen so the longer hull extent comes out around 512 pixels.
func (d *Diagram) DebugShow(circle *Circle) error {
	min, max := d.HullPolygon().BoundingBox()
	extent := max.X - min.X
	if max.Y-min.Y > extent {
		extent = max.Y - min.Y
	}
	scale := 1.0
	if extent > 0 {
		scale = 512 / extent
	}

	fpath := filepath.Join(os.TempDir(), "emptycircle.png")
	if err := d.DrawPNG(fpath, scale, circle); err != nil {
		return err
	}
	return imgcat.CatFile(fpath, os.Stdout)
}
