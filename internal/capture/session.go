// Package capture turns raw pointer events into gesture submissions.
//
// A Session consumes pointer-down/move/up events, classifies each
// completed drag as a tap or a stroke, and submits strokes to the
// recognizer. A just-finished stroke is remembered for a grace period so
// a second stroke can be appended as one multi-stroke gesture; the check
// is a lazy timestamp comparison on the next pointer-up, not a timer.
package capture

import (
	"time"

	"github.com/dmahajan/scrawl/internal/geom"
	"github.com/dmahajan/scrawl/internal/gesture"
)

// Defaults used when Config fields are zero.
const (
	// DefaultMinDragDistance is the minimum movement in surface units for
	// a pointer-move to extend the stroke buffer, and the tap cutoff.
	DefaultMinDragDistance = 10.0
	// DefaultGracePeriod is the maximum gap between two strokes for them
	// to combine into one gesture.
	DefaultGracePeriod = 2 * time.Second
)

// Config holds stroke segmentation parameters.
type Config struct {
	MinDragDistance float64
	GracePeriod     time.Duration
}

// Recognizer classifies one candidate point sequence.
type Recognizer interface {
	Recognize(points []geom.Point) (gesture.Result, error)
}

// Session is the stroke-capture state machine for one pointer surface.
// All methods must be called from a single goroutine; state transitions
// happen synchronously inside the event handlers.
type Session struct {
	cfg        Config
	recognizer Recognizer

	// OnTap is invoked with the pointer-up coordinates when a completed
	// drag is classified as a tap. A tap never triggers recognition.
	OnTap func(x, y float64)

	// OnResult is invoked for every recognition submission, including
	// low-score ones, with the submitted candidate points. The caller
	// decides the acceptance threshold.
	OnResult func(name string, score float64, points []geom.Point)

	now func() time.Time

	drawing     bool
	stroke      []geom.Point
	strokeStart time.Time
	pending     []geom.Point
	pendingEnd  time.Time
}

// NewSession creates a Session submitting to r. Zero Config fields fall
// back to the package defaults.
func NewSession(r Recognizer, cfg Config) *Session {
	if cfg.MinDragDistance <= 0 {
		cfg.MinDragDistance = DefaultMinDragDistance
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	return &Session{
		cfg:        cfg,
		recognizer: r,
		now:        time.Now,
	}
}

// PointerDown starts a new stroke buffer at (x, y). A down while already
// drawing is ignored; only one active pointer is supported.
func (s *Session) PointerDown(x, y float64) {
	if s.drawing {
		return
	}
	s.drawing = true
	s.strokeStart = s.now()
	s.stroke = append(s.stroke[:0:0], geom.Point{X: x, Y: y, StrokeID: 1})
}

// PointerMove appends (x, y) to the stroke buffer if it moved far enough
// from the last buffered point. Sub-threshold jitter is dropped.
func (s *Session) PointerMove(x, y float64) {
	if !s.drawing {
		return
	}
	last := s.stroke[len(s.stroke)-1]
	p := geom.Point{X: x, Y: y, StrokeID: 1}
	if geom.Distance(last, p) > s.cfg.MinDragDistance {
		s.stroke = append(s.stroke, p)
	}
}

// PointerUp closes the stroke buffer. A buffer of at most one point, or
// one whose endpoints are within the drag threshold, is a tap: the tap
// callback fires, any pending first stroke is discarded, and nothing is
// submitted. Otherwise exactly one submission occurs: the stroke joins a
// pending first stroke finished within the grace period, or goes alone
// and becomes the pending stroke itself.
func (s *Session) PointerUp(x, y float64) {
	if !s.drawing {
		return
	}
	s.drawing = false
	stroke := s.stroke
	s.stroke = nil

	if len(stroke) <= 1 || geom.Distance(stroke[0], stroke[len(stroke)-1]) <= s.cfg.MinDragDistance {
		s.pending = nil
		if s.OnTap != nil {
			s.OnTap(x, y)
		}
		return
	}

	now := s.now()
	if s.pending != nil && now.Sub(s.pendingEnd) <= s.cfg.GracePeriod {
		combined := make([]geom.Point, 0, len(s.pending)+len(stroke))
		combined = append(combined, s.pending...)
		combined = append(combined, tagStroke(stroke, 2)...)
		s.pending = nil
		s.submit(combined)
		return
	}

	s.pending = stroke
	s.pendingEnd = now
	s.submit(stroke)
}

// Cancel resets the machine to idle, discarding the stroke buffer and
// any pending first stroke without submitting.
func (s *Session) Cancel() {
	s.drawing = false
	s.stroke = nil
	s.pending = nil
}

// ActiveStroke returns the in-progress stroke buffer and its start time,
// for callers drawing visual feedback. The slice must not be retained.
func (s *Session) ActiveStroke() ([]geom.Point, time.Time) {
	if !s.drawing {
		return nil, time.Time{}
	}
	return s.stroke, s.strokeStart
}

func (s *Session) submit(points []geom.Point) {
	res, err := s.recognizer.Recognize(points)
	if err != nil {
		// Submissions are non-empty by construction.
		return
	}
	if s.OnResult != nil {
		s.OnResult(res.Name, res.Score, points)
	}
}

func tagStroke(points []geom.Point, id int) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X, Y: p.Y, StrokeID: id}
	}
	return out
}
