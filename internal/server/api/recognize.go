package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmahajan/scrawl/internal/app"
	"github.com/dmahajan/scrawl/internal/geom"
	"github.com/dmahajan/scrawl/internal/gesture"
)

// RecognizeHandler handles one-shot recognition requests outside any
// drawing session.
type RecognizeHandler struct {
	engine *app.Engine
}

// NewRecognizeHandler creates a new RecognizeHandler with the given
// engine.
func NewRecognizeHandler(engine *app.Engine) *RecognizeHandler {
	return &RecognizeHandler{engine: engine}
}

type recognizeRequest struct {
	Points []geom.Point `json:"points"`
}

type recognizeResponse struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Accepted bool    `json:"accepted"`
}

// ServeHTTP handles POST /api/recognize.
func (h *RecognizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recognizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.engine.Recognize(req.Points)
	if err != nil {
		if errors.Is(err, gesture.ErrNoCandidate) {
			writeError(w, http.StatusBadRequest, "Points are required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Recognition failed")
		return
	}

	writeJSON(w, http.StatusOK, recognizeResponse{
		Name:     result.Name,
		Score:    result.Score,
		Accepted: result.Score >= h.engine.Threshold(),
	})
}
