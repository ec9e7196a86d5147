// Package api provides HTTP API handlers for the scrawl gesture
// recognition service.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmahajan/scrawl/internal/app"
	"github.com/dmahajan/scrawl/internal/geom"
)

// TemplateHandler handles HTTP requests for gesture template resources.
type TemplateHandler struct {
	engine *app.Engine
}

// NewTemplateHandler creates a new TemplateHandler with the given engine.
func NewTemplateHandler(engine *app.Engine) *TemplateHandler {
	return &TemplateHandler{engine: engine}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *TemplateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/templates or /api/templates/{name}
	path := strings.TrimPrefix(r.URL.Path, "/api/templates")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	name := path
	switch r.Method {
	case http.MethodDelete:
		h.delete(w, r, name)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createTemplateRequest struct {
	Name string `json:"name"`
	// Points is a flat single-stroke point list; Strokes is a list of
	// per-stroke point lists. Exactly one of the two must be set.
	Points  []geom.Point   `json:"points,omitempty"`
	Strokes [][]geom.Point `json:"strokes,omitempty"`
}

type templateResponse struct {
	Name       string `json:"name"`
	PointCount int    `json:"point_count"`
}

type listTemplatesResponse struct {
	Templates []templateResponse `json:"templates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/templates and returns all templates in
// registration order, variants included.
func (h *TemplateHandler) list(w http.ResponseWriter, r *http.Request) {
	templates := h.engine.Templates().Templates()

	response := listTemplatesResponse{
		Templates: make([]templateResponse, 0, len(templates)),
	}
	for _, t := range templates {
		response.Templates = append(response.Templates, templateResponse{
			Name:       t.Name,
			PointCount: len(t.Points),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/templates and registers a new template.
func (h *TemplateHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if len(req.Points) == 0 && len(req.Strokes) == 0 {
		writeError(w, http.StatusBadRequest, "Points or strokes are required")
		return
	}
	if len(req.Points) > 0 && len(req.Strokes) > 0 {
		writeError(w, http.StatusBadRequest, "Points and strokes are mutually exclusive")
		return
	}

	store := h.engine.Templates()
	if len(req.Strokes) > 0 {
		total := 0
		for _, stroke := range req.Strokes {
			total += len(stroke)
		}
		if total == 0 {
			writeError(w, http.StatusBadRequest, "Strokes must contain points")
			return
		}
		store.AddStrokes(req.Name, req.Strokes)
	} else {
		store.Add(req.Name, req.Points)
	}

	templates := store.Templates()
	created := templates[len(templates)-1]
	writeJSON(w, http.StatusCreated, templateResponse{
		Name:       created.Name,
		PointCount: len(created.Points),
	})
}

// delete handles DELETE /api/templates/{name} and removes all templates
// with that name. Removing an unknown name is a no-op.
func (h *TemplateHandler) delete(w http.ResponseWriter, r *http.Request, name string) {
	h.engine.Templates().Remove(name)
	w.WriteHeader(http.StatusNoContent)
}
