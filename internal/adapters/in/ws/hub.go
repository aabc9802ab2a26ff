// Package ws pushes notifications to connected clients over WebSocket.
// The hub keys open connections by user id; the outbox dispatcher hands it
// notifications through the Notifier port and marks only the ones that
// actually reached a client.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/notification"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 5 * time.Second

// identifyMessage is the first frame a client must send after connecting.
type identifyMessage struct {
	UserID string `json:"userId"`
}

// pushMessage is the frame delivered to clients for each notification.
type pushMessage struct {
	ID        string    `json:"id"`
	ParcelID  *string   `json:"parcelId,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Hub tracks open WebSocket connections keyed by user id and implements
// the notifier port on top of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates an empty connection hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_hub"),
	}
}

// HandleConnection handles GET /ws - upgrades the request and keeps the
// connection registered until the client disconnects. The client's first
// frame must be an identify message naming the user id to subscribe as.
func (h *Hub) HandleConnection(ctx echo.Context) error {
	// Upgrade writes the handshake error response itself, so the request is
	// already answered on failure.
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.WarnContext(ctx.Request().Context(), "WebSocket upgrade failed", "error", err)
		return nil
	}

	var identify identifyMessage
	if err := conn.ReadJSON(&identify); err != nil || identify.UserID == "" {
		conn.Close()
		return nil
	}

	h.register(identify.UserID, conn)
	defer h.unregister(identify.UserID, conn)

	// Drain incoming frames until the peer closes; the hub is push-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Notify implements ports.Notifier. Returns true when at least one of the
// user's connections accepted the message; a user without connections is
// not an error.
func (h *Hub) Notify(ctx context.Context, n *notification.Notification) (bool, error) {
	message := pushMessage{
		ID:        n.ID().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		CreatedAt: n.CreatedAt(),
	}
	if parcelID := n.ParcelID(); parcelID != nil {
		value := parcelID.String()
		message.ParcelID = &value
	}

	userID := n.UserID().String()
	delivered := false
	for _, conn := range h.connections(userID) {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(message); err != nil {
			h.logger.WarnContext(ctx, "Dropping dead connection", "userId", userID, "error", err)
			h.unregister(userID, conn)
			conn.Close()
			continue
		}
		delivered = true
	}

	return delivered, nil
}

// ConnectedUsers returns the number of users with at least one open
// connection.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]struct{})
	}
	h.clients[userID][conn] = struct{}{}
}

func (h *Hub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients[userID], conn)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// connections returns a snapshot so writes happen outside the lock.
func (h *Hub) connections(userID string) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.clients[userID]))
	for conn := range h.clients[userID] {
		conns = append(conns, conn)
	}
	return conns
}
