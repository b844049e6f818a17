package ws

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 8192

	// Outbound messages buffered per client.
	sendBufferSize = 256
)

// Client is one search session connection.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	RoomID    string
	SessionID string

	mu     sync.Mutex
	closed bool

	// searchSeq is the sequence number of the newest search request.
	searchSeq atomic.Uint64
}

// NewClient creates a client with a buffered Send channel.
func NewClient(hub *Hub, conn *websocket.Conn, roomID, sessionID string) *Client {
	return &Client{
		Hub:       hub,
		Conn:      conn,
		Send:      make(chan []byte, sendBufferSize),
		RoomID:    roomID,
		SessionID: sessionID,
	}
}

// Deliver queues msg without blocking. It reports false when the client is
// closed or its buffer is full.
func (c *Client) Deliver(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// nextSearch starts a new search and returns its sequence number.
func (c *Client) nextSearch() uint64 {
	return c.searchSeq.Add(1)
}

// isLatestSearch reports whether seq is still the newest search.
func (c *Client) isLatestSearch(seq uint64) bool {
	return c.searchSeq.Load() == seq
}

// Hub tracks session connections by room and fans server pushes out to them.
type Hub struct {
	Rooms      map[string]map[*Client]bool // roomID -> set of clients
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *RoomMessage
	mu         sync.RWMutex
}

// RoomMessage is a push for every client in RoomID except Sender.
type RoomMessage struct {
	RoomID  string
	Message []byte
	Sender  *Client // nil for system messages
}

// NewHub returns an empty hub. Start it with go hub.Run().
func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *RoomMessage, sendBufferSize),
	}
}

// ClientCount returns the number of clients in roomID.
func (h *Hub) ClientCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Rooms[roomID])
}

// Run owns the room map. Clients whose buffers are full during a broadcast
// are dropped once the broadcast finishes.
func (h *Hub) Run() {
	log := logger.Get()

	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.Rooms[client.RoomID] == nil {
				h.Rooms[client.RoomID] = make(map[*Client]bool)
			}
			h.Rooms[client.RoomID][client] = true
			h.mu.Unlock()

			log.Info("client registered",
				zap.String("room_id", client.RoomID),
				zap.String("session_id", client.SessionID),
			)

		case client := <-h.Unregister:
			h.remove(client)

			log.Info("client unregistered",
				zap.String("room_id", client.RoomID),
				zap.String("session_id", client.SessionID),
			)

		case msg := <-h.Broadcast:
			var slow []*Client
			h.mu.RLock()
			for client := range h.Rooms[msg.RoomID] {
				// Skip sender if present
				if msg.Sender != nil && client == msg.Sender {
					continue
				}
				if !client.Deliver(msg.Message) {
					slow = append(slow, client)
				}
			}
			h.mu.RUnlock()

			// Clients that cannot keep up are disconnected.
			for _, client := range slow {
				log.Warn("dropping slow client", zap.String("session_id", client.SessionID))
				h.remove(client)
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.Rooms[client.RoomID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			client.closeSend()
			if len(clients) == 0 {
				delete(h.Rooms, client.RoomID)
			}
		}
	}
}

// ReadPump hands every inbound frame to handler until the peer goes away,
// then unregisters the client.
func (c *Client) ReadPump(handler func(*Client, []byte)) {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				logger.Get().Warn("unexpected websocket close",
					zap.String("session_id", c.SessionID),
					zap.Error(err),
				)
			}
			break
		}
		handler(c, message)
	}
}

// WritePump drains Send onto the connection and pings on pingPeriod.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
