package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/emptycircle/lec"
)

// Demo of the largest-empty-circle search. Input on stdin should be newline
// separated points in the form "x y"; blank lines are ignored. At least three
// distinct, non-collinear points are required. The result is printed to
// stdout, and the diagram can optionally be rendered.
var (
	pngPath = kingpin.Flag("png", "Render the diagram and result to this PNG file.").String()
	scale   = kingpin.Flag("scale", "Pixels per input unit in the PNG render.").Default("10").Float64()
	show    = kingpin.Flag("show", "Cat the render to the terminal (iTerm2).").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	diagram, err := lec.NewDiagram(points)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	circle, err := diagram.LargestEmptyCircle()
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	fmt.Printf("radius %.6f center (%.6f, %.6f)\n", circle.Radius, circle.X, circle.Y)

	if *pngPath != "" {
		if err := diagram.DrawPNG(*pngPath, *scale, &circle); err != nil {
			kingpin.Fatalf("rendering %s: %v", *pngPath, err)
		}
	}
	if *show {
		if err := diagram.DebugShow(&circle); err != nil {
			kingpin.Fatalf("rendering to terminal: %v", err)
		}
	}
}

func readPoints(in *os.File) []lec.Point {
	points := []lec.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("expected \"x y\", got %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, lec.Point{X: x, Y: y})
	}
	return points
}
