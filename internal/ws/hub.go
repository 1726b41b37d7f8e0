package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Event types broadcast to connected clients.
const (
	EventConnection      = "connection"
	EventNewOrder        = "new_order"
	EventOrderUpdated    = "order_updated"
	EventSettingsUpdated = "settings_updated"
)

// Event is the frame pushed to every connected client.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Hub tracks WebSocket clients and broadcasts events to all of them.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the storefront origin; access
			// control happens at the API layer, not the socket handshake.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With().Str("component", "ws").Logger(),
	}
}

// HandleWS upgrades the request and registers the client until it disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	// The welcome frame goes out before the client is registered: gorilla
	// connections allow a single writer, and once registered the connection
	// is written to by Broadcast under h.mu.
	if err := conn.WriteJSON(Event{Type: EventConnection, Data: map[string]string{"status": "connected"}}); err != nil {
		h.logger.Warn().Err(err).Msg("failed to send welcome frame")
		conn.Close()
		return
	}

	h.register(conn)
	h.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("client connected")

	// Drain incoming frames so pings and close frames are processed. The
	// protocol is push-only; client payloads are discarded.
	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("client disconnected")
				return
			}
		}
	}()
}

// Broadcast pushes an event to every connected client. Clients that fail the
// write are dropped.
func (h *Hub) Broadcast(eventType string, data any) {
	event := Event{Type: eventType, Data: data}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn().Err(err).Msg("dropping unresponsive client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
