package ws

import (
	"encoding/json"
	"log"
	"sync"

	"go-inventory-catalog/internal/model"

	"github.com/gofiber/contrib/websocket"
)

// broadcastBuffer bounds how many undelivered events may queue before new ones are dropped.
const broadcastBuffer = 64

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	quit       chan struct{}
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.quit:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every client connection.
func (h *Hub) Stop() {
	close(h.quit)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Publish queues a catalog event for every connected client. It never blocks;
// when the queue is full the event is dropped and clients catch up on their next fetch.
func (h *Hub) Publish(event model.CatalogEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal event %s: %v", event.Action, err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.Printf("ws: broadcast queue full, dropped %s event", event.Action)
	}
}

// Serve registers conn with the hub and blocks until the client disconnects.
func (h *Hub) Serve(conn *websocket.Conn) {
	if !h.register(conn) {
		return
	}
	defer h.unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// register hands conn to Run. It reports false once the hub is stopped.
func (h *Hub) register(conn *websocket.Conn) bool {
	select {
	case h.Register <- conn:
		return true
	case <-h.quit:
		return false
	}
}

// unregister is a no-op once the hub is stopped; Run already closed every client.
func (h *Hub) unregister(conn *websocket.Conn) {
	select {
	case h.Unregister <- conn:
	case <-h.quit:
	}
}
