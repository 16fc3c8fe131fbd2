package lec

import "github.com/golang/geo/r2"

// Point doubles as a position and a vector. r2 supplies the arithmetic (Sub,
// Add, Mul, Dot, Cross), and the struct is comparable, so exact-duplicate
// detection can use points as map keys. Coordinates are never mutated once a
// site list is handed to NewDiagram; everything downstream refers to sites by
// index.
type Point = r2.Point

// Circle is the result of a search: the largest circle whose interior
// contains no site, centered at (X, Y) inside the sites' convex hull.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Center returns the circle's center as a point.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}
