package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// hub pushes catalog and settings change events to connected admin
// clients so open editing panels see mutations live.
type hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
}

func newHub() *hub {
	return &hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // Buffered channel to prevent blocking
	}
}

func (h *hub) run() {
	for message := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

// notify queues one event for broadcast. Dropped when the channel is full;
// the feed is advisory, clients re-fetch on reconnect.
func (h *hub) notify(event string, data interface{}) {
	message, err := json.Marshal(fiber.Map{"event": event, "data": data})
	if err != nil {
		log.Printf("WebSocket marshal error: %v", err)
		return
	}
	select {
	case h.broadcast <- message:
	default:
	}
}

func (h *hub) handler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				return
			}
		}
	})
}
