package gesture

import (
	"math"

	"github.com/dmahajan/scrawl/internal/geom"
)

// RegisterBuiltins loads the starter symbol set into the store. The
// circle is registered in both drawing directions as two variants of one
// name, so either direction matches.
func RegisterBuiltins(s *Store) {
	s.Add("circle", circlePoints(100, 100, 40, 25, false))
	s.Add("circle", circlePoints(100, 100, 40, 25, true))
	s.Add("square", polylinePoints(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 80, Y: 0},
		geom.Point{X: 80, Y: 80},
		geom.Point{X: 0, Y: 80},
		geom.Point{X: 0, Y: 0},
	))
	s.Add("vee", polylinePoints(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 40, Y: 80},
		geom.Point{X: 80, Y: 0},
	))
	s.Add("zigzag", polylinePoints(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 30, Y: 60},
		geom.Point{X: 60, Y: 0},
		geom.Point{X: 90, Y: 60},
	))
	s.AddStrokes("ex", [][]geom.Point{
		polylinePoints(geom.Point{X: 0, Y: 0}, geom.Point{X: 80, Y: 80}),
		polylinePoints(geom.Point{X: 80, Y: 0}, geom.Point{X: 0, Y: 80}),
	})
}

// circlePoints approximates a circle with n points starting at angle 0.
func circlePoints(cx, cy, r float64, n int, clockwise bool) []geom.Point {
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			theta = -theta
		}
		points[i] = geom.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return points
}

// polylinePoints subdivides each segment of a polyline so the shape has
// enough density to resample cleanly.
func polylinePoints(vertices ...geom.Point) []geom.Point {
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
