package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"banglabet-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub *wsHub
}

type wsHub struct {
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan *wsMessage
}

type wsClient struct {
	conn *websocket.Conn

	// Guards writes: the read-loop ack path and the hub broadcast path
	// both write to the connection.
	mu sync.Mutex
}

type wsMessage struct {
	Type      string      `json:"type"`
	ID        string      `json:"id,omitempty"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

func NewWebSocketHandler() *WebSocketHandler {
	hub := &wsHub{
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan *wsMessage, 100),
	}

	go hub.run()

	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade to WebSocket")
		return
	}

	client := &wsClient{conn: conn}
	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	client.write(&wsMessage{
		Type:      "welcome",
		Message:   "Connected to live updates",
		Timestamp: time.Now().Unix(),
	})

	// Any inbound frame gets a generic acknowledgment with a fresh
	// correlation id; the content is not interpreted.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug().Err(err).Msg("WebSocket read error")
			}
			break
		}

		client.write(&wsMessage{
			Type:      "ack",
			ID:        uuid.NewString(),
			Timestamp: time.Now().Unix(),
		})
	}
}

// BroadcastLiveMatches implements services.Broadcaster. Best-effort: a
// client whose write fails is dropped and simply misses the update.
func (h *WebSocketHandler) BroadcastLiveMatches(snapshots []models.LiveMatchSnapshot) {
	h.hub.broadcast <- &wsMessage{
		Type:      "live_matches",
		Data:      snapshots,
		Timestamp: time.Now().Unix(),
	}
}

func (c *wsClient) write(msg *wsMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

func (hub *wsHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client] = true
			log.Debug().Int("clients", len(hub.clients)).Msg("WebSocket client connected")

		case client := <-hub.unregister:
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
				log.Debug().Int("clients", len(hub.clients)).Msg("WebSocket client disconnected")
			}

		case message := <-hub.broadcast:
			for client := range hub.clients {
				if err := client.write(message); err != nil {
					client.conn.Close()
					delete(hub.clients, client)
				}
			}
		}
	}
}
