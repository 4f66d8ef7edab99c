package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a websocket connection with a write lock; gorilla permits
// only one concurrent writer per connection. seat is the seat this
// connection plays, or 0 for a spectator.
type client struct {
	conn *websocket.Conn
	seat int
	mu   sync.Mutex
}

func newClient(conn *websocket.Conn, seat int) *client {
	return &client{conn: conn, seat: seat}
}

func (c *client) send(msg *Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

func (c *client) close() error {
	return c.conn.Close()
}

// hub is the set of connections subscribed to one table's broadcasts.
type hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*client]bool)}
}

func (h *hub) attach(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *hub) detach(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *hub) broadcast(msg *Message) {
	h.each(func(c *client) {
		_ = c.send(msg)
	})
}

// each visits every attached connection. Write errors inside fn are the
// caller's to drop; a dead connection surfaces in its own read loop, and
// ignoring the error keeps one slow client from stalling the table.
func (h *hub) each(fn func(*client)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		fn(c)
	}
}
