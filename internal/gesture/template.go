// Package gesture provides point-cloud gesture recognition: a store of
// named, pre-normalized templates and a rotation-invariant recognizer
// that classifies candidate strokes against them.
package gesture

import (
	"github.com/dmahajan/scrawl/internal/geom"
)

// Normalization parameters. Every template and every candidate goes
// through the same pipeline: resample, translate to centroid origin,
// scale to the reference square.
const (
	// ResampleCount is the number of points every shape is resampled to
	// before matching.
	ResampleCount = 64
	// ReferenceSize is the side length of the square all shapes are
	// scaled into.
	ReferenceSize = 250.0
)

// Template is a named, normalized reference point sequence.
type Template struct {
	Name   string
	Points []geom.Point
}

// Store holds gesture templates in insertion order. Multiple templates
// may share one name; the recognizer scores all of them and reports only
// the best name, which supports registering geometric variants of one
// symbol (for example the two drawing directions of a circle).
type Store struct {
	templates []*Template
}

// NewStore creates an empty template store.
func NewStore() *Store {
	return &Store{
		templates: make([]*Template, 0),
	}
}

// Add normalizes raw and stores it under name. Points keep whatever
// stroke ids they carry; a flat single-stroke list may leave them zero.
func (s *Store) Add(name string, raw []geom.Point) {
	if len(raw) == 0 {
		return
	}
	s.templates = append(s.templates, &Template{
		Name:   name,
		Points: Normalize(raw),
	})
}

// AddStrokes stores a multi-stroke template under name, assigning
// sequential 1-based stroke ids before normalization. Empty sub-lists
// are skipped and do not consume an id.
func (s *Store) AddStrokes(name string, strokes [][]geom.Point) {
	var flat []geom.Point
	id := 0
	for _, stroke := range strokes {
		if len(stroke) == 0 {
			continue
		}
		id++
		for _, p := range stroke {
			flat = append(flat, geom.Point{X: p.X, Y: p.Y, StrokeID: id})
		}
	}
	s.Add(name, flat)
}

// Remove deletes all templates with the given name. No-op if absent.
func (s *Store) Remove(name string) {
	kept := s.templates[:0]
	for _, t := range s.templates {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	s.templates = kept
}

// Templates returns the stored templates in insertion order.
func (s *Store) Templates() []*Template {
	return s.templates
}

// Len returns the number of stored templates, counting variants.
func (s *Store) Len() int {
	return len(s.templates)
}

// Normalize runs the shared normalization pipeline over a raw point
// sequence.
func Normalize(points []geom.Point) []geom.Point {
	out := geom.Resample(points, ResampleCount)
	out = geom.TranslateToOrigin(out)
	out = geom.ScaleTo(out, geom.Size{Width: ReferenceSize, Height: ReferenceSize})
	return out
}
