// Package testdata provides canonical point sets for recognizer and
// capture tests.
package testdata

import (
	"math"

	"github.com/dmahajan/scrawl/internal/geom"
)

// Circle approximates a circle of radius r centered at (cx, cy) with n
// points, drawn counter-clockwise starting at angle 0.
func Circle(cx, cy, r float64, n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return points
}

// Vee is a two-segment checkmark-like shape.
func Vee() []geom.Point {
	return Polyline(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 40, Y: 80},
		geom.Point{X: 80, Y: 0},
	)
}

// ZigZag is a three-segment zigzag.
func ZigZag() []geom.Point {
	return Polyline(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 30, Y: 60},
		geom.Point{X: 60, Y: 0},
		geom.Point{X: 90, Y: 60},
	)
}

// ExStrokes is a two-stroke X as separate per-stroke point lists.
func ExStrokes() [][]geom.Point {
	return [][]geom.Point{
		Polyline(geom.Point{X: 0, Y: 0}, geom.Point{X: 80, Y: 80}),
		Polyline(geom.Point{X: 80, Y: 0}, geom.Point{X: 0, Y: 80}),
	}
}

// Polyline subdivides the segments between vertices into a dense point
// sequence, eight points per segment.
func Polyline(vertices ...geom.Point) []geom.Point {
	const perSegment = 8

	var points []geom.Point
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		for j := 0; j < perSegment; j++ {
			t := float64(j) / perSegment
			points = append(points, geom.Point{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
			})
		}
	}
	if len(vertices) > 0 {
		points = append(points, vertices[len(vertices)-1])
	}
	return points
}

// Scale returns a copy of points scaled uniformly by factor about the
// origin.
func Scale(points []geom.Point, factor float64) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X * factor, Y: p.Y * factor, StrokeID: p.StrokeID}
	}
	return out
}
