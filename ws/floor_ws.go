package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pippali-pos/pkg/logger"
)

// Event types pushed to connected POS terminals.
const (
	EventTablesJoined    = "tables_joined"
	EventTablesDisjoined = "tables_disjoined"
	EventTableUpdated    = "table_updated"
	EventOrderSplit      = "order_split"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// FloorHub fans floor-plan and split events out to every connected terminal.
// It only notifies; terminals re-fetch state themselves.
type FloorHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFloorHub() *FloorHub {
	return &FloorHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *FloorHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					logger.Log.Warn("ws write error: " + err.Error())
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast never blocks the caller; an event is dropped when the hub is
// backed up, terminals resync on the next fetch anyway.
func (h *FloorHub) Broadcast(eventType string, payload any) {
	select {
	case h.broadcast <- Event{Type: eventType, Payload: payload}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/floor
func (h *FloorHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("ws upgrade error: " + err.Error())
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains the connection; terminals do not send anything meaningful,
// the read loop just detects disconnects.
func (h *FloorHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
