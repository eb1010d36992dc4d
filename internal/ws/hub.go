package ws

import (
	"encoding/json"
	"sync"
)

// Notification is a WebSocket message to be broadcast to a department room.
type Notification struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// departmentNotification routes a notification to one department's room.
type departmentNotification struct {
	Department   string
	Notification Notification
}

// Hub maintains the set of active clients grouped by department and
// broadcasts change notifications to them. Department screens (kitchen,
// logistics, sales) subscribe to their own room and receive the brief
// whenever an event they care about changes.
type Hub struct {
	// Registered clients by department
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	broadcast chan *departmentNotification

	mu sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *departmentNotification, 256),
	}
}

// Run starts the hub's main loop.
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.department] == nil {
				h.rooms[client.department] = make(map[*Client]bool)
			}
			h.rooms[client.department][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.department]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.department)
					}
				}
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[n.Department]

			message, err := json.Marshal(n.Notification)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[n.Department], client)
					if len(h.rooms[n.Department]) == 0 {
						delete(h.rooms, n.Department)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify sends a notification to all clients subscribed to a department.
// This is the public API for handlers to fan out change briefs.
func (h *Hub) Notify(department string, n Notification) {
	h.broadcast <- &departmentNotification{
		Department:   department,
		Notification: n,
	}
}
