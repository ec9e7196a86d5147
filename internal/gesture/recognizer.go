package gesture

import (
	"errors"
	"math"

	"github.com/dmahajan/scrawl/internal/geom"
)

// Rotation search parameters: the candidate is rotated within
// [-angleRange, +angleRange] radians and the minimum path distance is
// located by golden-section search down to anglePrecision.
const (
	angleRange     = math.Pi / 4  // 45 degrees either way
	anglePrecision = math.Pi / 90 // 2 degrees
)

// goldenRatio is the golden-section interval split factor.
const goldenRatio = math.Phi - 1

// halfDiagonal is the half-diagonal of the reference square, the
// theoretical maximum mean point distance between two normalized shapes.
var halfDiagonal = 0.5 * math.Sqrt(2*ReferenceSize*ReferenceSize)

// ErrNoCandidate is returned when Recognize is called with an empty
// point sequence.
var ErrNoCandidate = errors.New("gesture: empty candidate")

// Result is the outcome of one recognition: the best-matching template
// name and a similarity score in [0,1], where 1 is a perfect match.
type Result struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Recognizer classifies candidate point sequences against a template
// store using a rotation-invariant point-cloud distance.
type Recognizer struct {
	store *Store
}

// NewRecognizer creates a Recognizer backed by the given store. The
// store may keep changing afterwards; recognitions always see its
// current contents.
func NewRecognizer(store *Store) *Recognizer {
	return &Recognizer{store: store}
}

// Recognize normalizes the candidate with the template pipeline and
// returns the best-matching template name with its score. Ties resolve
// to the template registered first. An empty store yields an empty name
// and score 0; callers must treat scores below their threshold as "no
// match" regardless of name.
func (r *Recognizer) Recognize(candidate []geom.Point) (Result, error) {
	if len(candidate) == 0 {
		return Result{}, ErrNoCandidate
	}

	normalized := Normalize(candidate)

	best := math.Inf(1)
	var bestName string
	for _, t := range r.store.Templates() {
		d := distanceAtBestAngle(normalized, t.Points, -angleRange, angleRange, anglePrecision)
		if d < best {
			best = d
			bestName = t.Name
		}
	}

	if math.IsInf(best, 1) {
		return Result{}, nil
	}

	score := 1 - best/halfDiagonal
	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	return Result{Name: bestName, Score: score}, nil
}

// distanceAtBestAngle finds the minimum path distance between the
// candidate and a template over rotations of the candidate in [a, b],
// using golden-section search until the bracket is narrower than delta.
func distanceAtBestAngle(candidate, template []geom.Point, a, b, delta float64) float64 {
	x1 := goldenRatio*a + (1-goldenRatio)*b
	f1 := distanceAtAngle(candidate, template, x1)
	x2 := (1-goldenRatio)*a + goldenRatio*b
	f2 := distanceAtAngle(candidate, template, x2)

	for math.Abs(b-a) > delta {
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = goldenRatio*a + (1-goldenRatio)*b
			f1 = distanceAtAngle(candidate, template, x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = (1-goldenRatio)*a + goldenRatio*b
			f2 = distanceAtAngle(candidate, template, x2)
		}
	}

	return math.Min(f1, f2)
}

func distanceAtAngle(candidate, template []geom.Point, theta float64) float64 {
	return geom.PathDistance(geom.RotateBy(candidate, theta), template)
}
