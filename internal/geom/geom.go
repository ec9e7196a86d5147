// Package geom provides the planar geometry primitives used by the gesture
// recognizer: resampling by path length, centroid translation, bounding-box
// scaling and rotation of point sequences.
package geom

import "math"

// Point is a 2D point tagged with the stroke it belongs to.
// Stroke ids are 1-based and increase per stroke in input order.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	StrokeID int     `json:"stroke,omitempty"`
}

// Size is the extent of a bounding box.
type Size struct {
	Width  float64
	Height float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength returns the sum of distances between consecutive points.
func PathLength(points []Point) float64 {
	var d float64
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

// Centroid returns the arithmetic mean of the point coordinates.
// Returns the zero point for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}

	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// TranslateToOrigin returns a copy of points translated so that the
// centroid lies at the origin.
func TranslateToOrigin(points []Point) []Point {
	c := Centroid(points)

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X - c.X, Y: p.Y - c.Y, StrokeID: p.StrokeID}
	}
	return out
}

// BoundingBoxSize returns the extent of the axis-aligned bounding box of
// the points.
func BoundingBoxSize(points []Point) Size {
	if len(points) == 0 {
		return Size{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Size{Width: maxX - minX, Height: maxY - minY}
}

// ScaleTo returns a copy of points scaled so that their bounding box
// matches ref on each axis independently. An axis with zero extent is
// left unscaled.
func ScaleTo(points []Point, ref Size) []Point {
	box := BoundingBoxSize(points)

	sx, sy := 1.0, 1.0
	if box.Width > 0 {
		sx = ref.Width / box.Width
	}
	if box.Height > 0 {
		sy = ref.Height / box.Height
	}

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X * sx, Y: p.Y * sy, StrokeID: p.StrokeID}
	}
	return out
}

// RotateBy returns a copy of points rotated by theta radians around their
// centroid.
func RotateBy(points []Point, theta float64) []Point {
	c := Centroid(points)
	cos, sin := math.Cos(theta), math.Sin(theta)

	out := make([]Point, len(points))
	for i, p := range points {
		dx := p.X - c.X
		dy := p.Y - c.Y
		out[i] = Point{
			X:        dx*cos - dy*sin + c.X,
			Y:        dx*sin + dy*cos + c.Y,
			StrokeID: p.StrokeID,
		}
	}
	return out
}

// Resample returns exactly n points evenly spaced by path length along the
// polyline formed by connecting points in input order. Multi-stroke
// sequences are resampled as one concatenated path. A path of zero total
// length yields n copies of the first point.
func Resample(points []Point, n int) []Point {
	if len(points) == 0 || n <= 0 {
		return nil
	}

	total := PathLength(points)
	if total == 0 {
		out := make([]Point, n)
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	interval := total / float64(n-1)

	// Work on a copy: interpolated points are spliced into the walk so
	// the next segment starts from them.
	src := make([]Point, len(points))
	copy(src, points)

	out := make([]Point, 0, n)
	out = append(out, src[0])

	var acc float64
	for i := 1; i < len(src); i++ {
		d := Distance(src[i-1], src[i])
		if acc+d >= interval && d > 0 {
			t := (interval - acc) / d
			q := Point{
				X:        src[i-1].X + t*(src[i].X-src[i-1].X),
				Y:        src[i-1].Y + t*(src[i].Y-src[i-1].Y),
				StrokeID: src[i].StrokeID,
			}
			out = append(out, q)
			src = append(src[:i], append([]Point{q}, src[i:]...)...)
			acc = 0
		} else {
			acc += d
		}
	}

	// Rounding can leave the walk one point short of n.
	for len(out) < n {
		out = append(out, src[len(src)-1])
	}

	return out[:n]
}

// PathDistance returns the mean Euclidean distance between corresponding
// indexed points of two equal-length sequences.
func PathDistance(a, b []Point) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var d float64
	for i := 0; i < n; i++ {
		d += Distance(a[i], b[i])
	}
	return d / float64(n)
}
