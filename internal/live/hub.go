// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/models"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
)

// SocketPath is where browsers connect for reload notifications.
const SocketPath = "/__live"

// Message types.
const (
	MessageConnected  = "connected"
	MessageReload     = "reload"
	MessageBuildError = "build-error"
)

const (
	sendBuffer   = 256
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
	readLimit    = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The development server is local and the page may be opened through
	// any host name.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Hub keeps the connected browsers and broadcasts messages to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	gauge  prometheus.Gauge
	logger *logger.Logger
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. gauge tracks the number of connected clients and
// may be nil.
func NewHub(gauge prometheus.Gauge, logger *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		gauge:   gauge,
		logger:  logger,
	}
}

// Reload tells every browser to reload the page.
func (h *Hub) Reload() {
	h.Broadcast(models.LiveMessage{Type: MessageReload})
}

// BuildError shows err in every browser's error overlay.
func (h *Hub) BuildError(err error) {
	h.Broadcast(models.LiveMessage{Type: MessageBuildError, Data: err.Error()})
}

// Broadcast sends msg to all clients. Clients whose buffer is full are
// dropped.
func (h *Hub) Broadcast(msg models.LiveMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Err(err).Msg("failed to marshal live message")
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.trySend(c, data)
	}
}

func (h *Hub) trySend(c *client, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	// send is closed once the client is removed.
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- data:
	default:
		go h.removeClient(c)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.removeClient(c)
	}
}

func (h *Hub) addClient(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if h.gauge != nil {
		h.gauge.Inc()
	}
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if ok && h.gauge != nil {
		h.gauge.Dec()
	}
}

// ServeHTTP upgrades the request to a websocket and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if welcome, err := json.Marshal(models.LiveMessage{Type: MessageConnected}); err == nil {
		c.send <- welcome
	}
	h.addClient(c)

	go c.writePump()
	go c.readPump()
}

// readPump discards incoming messages; reading is needed to notice
// disconnects and to process pongs.
func (c *client) readPump() {
	defer c.hub.removeClient(c)

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug().Err(err).Msg("websocket read error")
			}
			return
		}
	}
}

// writePump owns the connection and closes it on exit. Every message is a
// separate text frame.
func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
