// Package ws pushes stock and session events to connected browsers.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans out events to every registered connection. Run owns the
// connection set; other goroutines talk to it over channels.
type Hub struct {
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	log        *slog.Logger

	mu    sync.RWMutex
	conns map[Conn]struct{}
}

const queueSize = 256

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, queueSize),
		log:        log,
		conns:      make(map[Conn]struct{}),
	}
}

// Run serves the hub until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.conns {
				c.Close()
				delete(h.conns, c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.conns[c] = struct{}{}
			n := len(h.conns)
			h.mu.Unlock()
			h.log.Debug("ws client connected", "clients", n)

		case c := <-h.unregister:
			h.drop(c)

		case msg := <-h.broadcast:
			h.mu.RLock()
			var failed []Conn
			for c := range h.conns {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					failed = append(failed, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range failed {
				h.drop(c)
			}
		}
	}
}

func (h *Hub) drop(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; ok {
		delete(h.conns, c)
		c.Close()
	}
}

// Add and Remove block until Run picks the connection up.
func (h *Hub) Add(c Conn)    { h.register <- c }
func (h *Hub) Remove(c Conn) { h.unregister <- c }

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish queues an event for broadcast. It never blocks: when the queue is
// full the event is dropped and logged.
func (h *Hub) Publish(action string, data map[string]interface{}) {
	msg, err := Encode(action, data)
	if err != nil {
		h.log.Error("ws encode failed", "action", action, "error", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("ws queue full, event dropped", "action", action)
	}
}

// Encode wraps data in the stock_update envelope sent to clients.
func Encode(action string, data map[string]interface{}) ([]byte, error) {
	payload := make(map[string]interface{}, len(data)+3)
	for k, v := range data {
		payload[k] = v
	}
	payload["type"] = "stock_update"
	payload["action"] = action
	payload["at"] = time.Now().UTC()
	return json.Marshal(payload)
}
