package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the change notice pushed to listing clients. Consumers treat
// any event as "re-fetch the published list"; no delta is carried.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

func TourEvent(action, id string) Event {
	return Event{Entity: "tour", Action: action, ID: id}
}

// Hub fans change events out to every connected listing client.
// Subscribers are anonymous; a connection is the subscription.
//
// Each connection carries its own write lock: gorilla/websocket allows
// one concurrent writer per connection, and two admin mutations may
// broadcast at the same time.
type Hub struct {
	connections map[*websocket.Conn]*sync.Mutex
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = &sync.Mutex{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast sends the event to every subscriber. Connections that fail
// to take the write are dropped.
func (h *Hub) Broadcast(event Event) {
	type subscriber struct {
		conn *websocket.Conn
		mu   *sync.Mutex
	}

	h.mutex.RLock()
	subs := make([]subscriber, 0, len(h.connections))
	for conn, mu := range h.connections {
		subs = append(subs, subscriber{conn: conn, mu: mu})
	}
	h.mutex.RUnlock()

	for _, sub := range subs {
		sub.mu.Lock()
		err := sub.conn.WriteJSON(event)
		sub.mu.Unlock()
		if err != nil {
			h.Unregister(sub.conn)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
