// Package app wires the scrawl gesture engine together: template store,
// recognizer, capture sessions, recognition history and metrics.
package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dmahajan/scrawl/internal/capture"
	"github.com/dmahajan/scrawl/internal/geom"
	"github.com/dmahajan/scrawl/internal/gesture"
	"github.com/dmahajan/scrawl/internal/store"
	"github.com/dmahajan/scrawl/pkg/metrics"
)

// Config holds configuration options for the engine.
type Config struct {
	Store           *store.Store // optional; nil disables attempt history
	ScoreThreshold  float64
	MinDragDistance float64
	GracePeriod     time.Duration
}

// Attempt is one recognition outcome as reported to session observers,
// with the acceptance decision already applied.
type Attempt struct {
	SessionID   string  `json:"session_id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Accepted    bool    `json:"accepted"`
	StrokeCount int     `json:"stroke_count"`
	PointCount  int     `json:"point_count"`
}

// Engine owns the template store and recognizer and hands out capture
// sessions bound to them.
type Engine struct {
	config     Config
	templates  *gesture.Store
	recognizer *gesture.Recognizer
}

// New creates an Engine with the given configuration and an empty
// template store.
func New(config Config) *Engine {
	templates := gesture.NewStore()
	return &Engine{
		config:     config,
		templates:  templates,
		recognizer: gesture.NewRecognizer(templates),
	}
}

// RegisterBuiltins loads the starter symbol set into the template store.
func (e *Engine) RegisterBuiltins() {
	gesture.RegisterBuiltins(e.templates)
	log.Printf("Registered %d built-in templates", e.templates.Len())
}

// Templates returns the engine's template store.
func (e *Engine) Templates() *gesture.Store {
	return e.templates
}

// Threshold returns the configured acceptance threshold.
func (e *Engine) Threshold() float64 {
	return e.config.ScoreThreshold
}

// Recognize classifies a candidate directly, outside any capture
// session. Used by the one-shot recognition API.
func (e *Engine) Recognize(points []geom.Point) (gesture.Result, error) {
	return e.recognizer.Recognize(points)
}

// NewSessionID returns a fresh session identifier.
func (e *Engine) NewSessionID() string {
	return uuid.New().String()
}

// NewSession creates a capture session whose submissions are thresholded,
// recorded in the attempt history, counted in metrics, and then passed to
// the observers. Either observer may be nil.
func (e *Engine) NewSession(sessionID string, onTap func(x, y float64), onResult func(Attempt)) *capture.Session {
	session := capture.NewSession(e.recognizer, capture.Config{
		MinDragDistance: e.config.MinDragDistance,
		GracePeriod:     e.config.GracePeriod,
	})

	session.OnTap = func(x, y float64) {
		metrics.RecordTap()
		if onTap != nil {
			onTap(x, y)
		}
	}

	session.OnResult = func(name string, score float64, points []geom.Point) {
		attempt := Attempt{
			SessionID:   sessionID,
			Name:        name,
			Score:       score,
			Accepted:    score >= e.config.ScoreThreshold,
			StrokeCount: strokeCount(points),
			PointCount:  len(points),
		}
		e.record(attempt)
		if onResult != nil {
			onResult(attempt)
		}
	}

	return session
}

// record persists an attempt and updates metrics.
func (e *Engine) record(a Attempt) {
	metrics.RecordRecognition(a.Score, a.Accepted)

	if e.config.Store == nil {
		return
	}
	err := e.config.Store.Attempts().Create(&store.Attempt{
		ID:          uuid.New().String(),
		SessionID:   a.SessionID,
		Name:        a.Name,
		Score:       a.Score,
		StrokeCount: a.StrokeCount,
		PointCount:  a.PointCount,
		Accepted:    a.Accepted,
	})
	if err != nil {
		log.Printf("Failed to record attempt: %v", err)
	}
}

// strokeCount returns the highest stroke id in the candidate.
func strokeCount(points []geom.Point) int {
	max := 0
	for _, p := range points {
		if p.StrokeID > max {
			max = p.StrokeID
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}
