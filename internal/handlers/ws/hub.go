package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/driftcase/rainpot/internal/logger"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	sendBufferSize = 256
)

// envelope is the wire frame for every event pushed to clients
type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// client is one websocket connection
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
}

// Hub fans events out to every connected client. It implements
// broadcast.Sink so the engine can publish through it.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	// inbound receives client action frames; set by the server before
	// the hub runs
	inbound func(c *client, data []byte)
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			logger.Debug("websocket client connected",
				zap.String("user_id", c.userID),
				zap.Int("total_clients", len(h.clients)))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				logger.Debug("websocket client disconnected",
					zap.String("user_id", c.userID),
					zap.Int("remaining_clients", len(h.clients)))
			}

		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow consumer, drop the connection rather
					// than stall the hub
					delete(h.clients, c)
					close(c.send)
				}
			}

		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

func (h *Hub) stop() {
	close(h.done)
}

// Deliver implements broadcast.Sink. Delivery is best effort: if the
// hub's queue is full the event is dropped.
func (h *Hub) Deliver(event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		logger.Error("failed to marshal broadcast event",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("broadcast queue full, event dropped",
			zap.String("event", event))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once the overlay domain is fixed
		return true
	},
}

// handleWS upgrades the request and starts the connection pumps
func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("failed to upgrade websocket", zap.Error(err))
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: r.URL.Query().Get("userId"),
	}

	h.register <- c

	go c.writePump()
	go c.readPump()
}

// reply sends a frame to this client only
func (c *client) reply(event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		logger.Error("failed to marshal reply", zap.Error(err))
		return
	}

	select {
	case c.send <- data:
	default:
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		if c.hub.inbound != nil {
			c.hub.inbound(c, data)
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.conn.WriteMessage(websocket.TextMessage, data)

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
