package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dmahajan/scrawl/internal/app"
	"github.com/dmahajan/scrawl/pkg/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// pointerEvent is one frame from the client: a raw pointer event on the
// drawing surface.
type pointerEvent struct {
	Type string  `json:"type"` // down, move, up, cancel
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// tapFrame notifies the client that a pointer sequence was a tap.
type tapFrame struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// resultFrame carries one recognition attempt back to the client.
type resultFrame struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Accepted bool    `json:"accepted"`
}

// DrawHandler runs one capture session per WebSocket connection. The
// client streams pointer events; taps and recognition attempts are
// pushed back on the same connection. All session mutation happens on
// the connection's read loop, so the capture state machine stays
// single-threaded.
type DrawHandler struct {
	engine *app.Engine
}

// NewDrawHandler creates a DrawHandler backed by the given engine.
func NewDrawHandler(engine *app.Engine) *DrawHandler {
	return &DrawHandler{engine: engine}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *DrawHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	metrics.SessionOpened()
	defer metrics.SessionClosed()

	sessionID := h.engine.NewSessionID()

	// Callbacks fire synchronously inside PointerUp on the read loop
	// below, so writing to the connection here needs no locking.
	session := h.engine.NewSession(sessionID,
		func(x, y float64) {
			if err := conn.WriteJSON(tapFrame{Type: "tap", X: x, Y: y}); err != nil {
				log.Printf("session %s: tap write error: %v", sessionID, err)
			}
		},
		func(a app.Attempt) {
			frame := resultFrame{
				Type:     "result",
				Name:     a.Name,
				Score:    a.Score,
				Accepted: a.Accepted,
			}
			if err := conn.WriteJSON(frame); err != nil {
				log.Printf("session %s: result write error: %v", sessionID, err)
			}
		},
	)

	for {
		var ev pointerEvent
		if err := conn.ReadJSON(&ev); err != nil {
			session.Cancel()
			return
		}

		switch ev.Type {
		case "down":
			session.PointerDown(ev.X, ev.Y)
		case "move":
			session.PointerMove(ev.X, ev.Y)
		case "up":
			session.PointerUp(ev.X, ev.Y)
		case "cancel":
			session.Cancel()
		default:
			log.Printf("session %s: unknown event type %q", sessionID, ev.Type)
		}
	}
}
