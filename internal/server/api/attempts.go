package api

import (
	"net/http"
	"strconv"

	"github.com/dmahajan/scrawl/internal/store"
)

// DefaultAttemptLimit caps GET /api/attempts when no limit is given.
const DefaultAttemptLimit = 50

// AttemptsHandler serves the recognition attempt history.
type AttemptsHandler struct {
	store *store.Store
}

// NewAttemptsHandler creates a new AttemptsHandler with the given store.
func NewAttemptsHandler(s *store.Store) *AttemptsHandler {
	return &AttemptsHandler{store: s}
}

type listAttemptsResponse struct {
	Attempts []*store.Attempt `json:"attempts"`
}

// ServeHTTP handles GET /api/attempts with optional ?limit= and
// ?session= filters.
func (h *AttemptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if session := r.URL.Query().Get("session"); session != "" {
		attempts, err := h.store.Attempts().ListBySession(session)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list attempts")
			return
		}
		writeJSON(w, http.StatusOK, listAttemptsResponse{Attempts: emptyIfNil(attempts)})
		return
	}

	limit := DefaultAttemptLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	attempts, err := h.store.Attempts().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attempts")
		return
	}

	writeJSON(w, http.StatusOK, listAttemptsResponse{Attempts: emptyIfNil(attempts)})
}

func emptyIfNil(attempts []*store.Attempt) []*store.Attempt {
	if attempts == nil {
		return []*store.Attempt{}
	}
	return attempts
}
