// Package realtime fans refresh snapshots and notifications out to connected
// UI clients, one websocket per user.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Subscriber identifies a connected user, the role they hold, and the bearer
// token their connection presented. Server-initiated refreshes reuse the
// token so core API calls run with the user's own credentials.
type Subscriber struct {
	UserID string
	Role   string
	Token  string
}

// Hub manages UI websocket connections keyed by user id. A new connection
// from the same user replaces the old one.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu       sync.RWMutex
	conns    map[string]*websocket.Conn
	sessions map[string]Subscriber
	wmu      map[string]*sync.Mutex
}

// NewHub constructs the UI hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:   logger,
		conns:    make(map[string]*websocket.Conn),
		sessions: make(map[string]Subscriber),
		wmu:      make(map[string]*sync.Mutex),
	}
}

// ServeWS upgrades an authenticated request and registers the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID, role, token string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ui ws upgrade failed", zap.String("userId", userID), zap.Error(err))
		return
	}

	h.mu.Lock()
	if old, ok := h.conns[userID]; ok {
		_ = old.Close()
	}
	h.conns[userID] = conn
	h.sessions[userID] = Subscriber{UserID: userID, Role: role, Token: token}
	if _, ok := h.wmu[userID]; !ok {
		h.wmu[userID] = &sync.Mutex{}
	}
	h.mu.Unlock()

	go h.readLoop(userID, conn)
}

func (h *Hub) readLoop(userID string, conn *websocket.Conn) {
	defer func() {
		conn.Close()
		h.mu.Lock()
		if h.conns[userID] == conn {
			delete(h.conns, userID)
			delete(h.sessions, userID)
			delete(h.wmu, userID)
		}
		h.mu.Unlock()
	}()

	conn.SetReadLimit(1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// The UI channel is push-only; inbound frames only keep the connection
	// alive.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// SendToUser pushes a JSON payload to one user. Returns false when the user
// holds no open connection or the write fails.
func (h *Hub) SendToUser(userID string, payload any) bool {
	h.mu.RLock()
	conn, ok := h.conns[userID]
	lock := h.wmu[userID]
	h.mu.RUnlock()
	if !ok || lock == nil {
		return false
	}

	lock.Lock()
	defer lock.Unlock()
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(payload); err != nil {
		h.logger.Debug("ui ws write failed", zap.String("userId", userID), zap.Error(err))
		_ = conn.Close()
		return false
	}
	return true
}

// Connected lists the currently connected users.
func (h *Hub) Connected() []Subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	subs := make([]Subscriber, 0, len(h.conns))
	for id := range h.conns {
		subs = append(subs, h.sessions[id])
	}
	return subs
}

// Close tears down every connection, typically on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, id)
		delete(h.sessions, id)
		delete(h.wmu, id)
	}
}
