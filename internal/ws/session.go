package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// WebSocket message types for the search session protocol.
const (
	MsgTypeSearch           = "search"            // Client asks for a search
	MsgTypeSearchResults    = "search_results"    // Results of the newest search
	MsgTypeFavoritesChanged = "favorites_changed" // Favorites were modified
	MsgTypeError            = "error"             // Error message
	MsgTypeConnected        = "connected"         // Connection confirmed
)

// SessionRoom is the room every search session joins.
const SessionRoom = "sessions"

// searchTimeout bounds one search issued over a session.
const searchTimeout = 30 * time.Second

// WSMessage is the envelope for all messages sent over the session WebSocket.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SearchPayload is sent by the client to run a search.
type SearchPayload struct {
	Query string `json:"query"`
	To    int    `json:"to,omitempty"` // 0 means the service default
}

// SearchResultsPayload is sent by the server with the results of the newest
// search on the connection.
type SearchResultsPayload struct {
	Seq      uint64          `json:"seq"`
	Query    string          `json:"query"`
	Provider string          `json:"provider"`
	Results  []models.Recipe `json:"results"`
}

// FavoritesChangedPayload carries the full favorites list.
type FavoritesChangedPayload struct {
	Favorites []models.Recipe `json:"favorites"`
}

// ErrorPayload carries an error message to the client.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ConnectedPayload confirms a successful connection.
type ConnectedPayload struct {
	SessionID string `json:"session_id"`
	Provider  string `json:"provider"`
}

// SessionHandler manages WebSocket search sessions.
type SessionHandler struct {
	Hub      *Hub
	Search   *service.SearchService
	Guard    *service.QueryGuard
	upgrader websocket.Upgrader
}

// NewSessionHandler returns a new SessionHandler. Favorites changes are
// pushed to every open session.
func NewSessionHandler(hub *Hub, search *service.SearchService, guard *service.QueryGuard, favorites *service.FavoritesService, allowedOrigins []string) *SessionHandler {
	sh := &SessionHandler{
		Hub:    hub,
		Search: search,
		Guard:  guard,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if favorites != nil {
		favorites.OnChange(sh.broadcastFavorites)
	}
	return sh
}

// originChecker allows the configured origins, localhost, and clients that
// send no Origin header at all.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || set[origin] {
			return true
		}
		// Allow localhost for development
		return strings.HasPrefix(origin, "http://localhost:") || origin == "http://localhost"
	}
}

// HandleSession upgrades an HTTP request to a WebSocket search session.
func (sh *SessionHandler) HandleSession(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	conn, err := sh.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(sh.Hub, conn, SessionRoom, uuid.NewString())
	sh.Hub.Register <- client

	sh.send(client, MsgTypeConnected, ConnectedPayload{
		SessionID: client.SessionID,
		Provider:  sh.Search.ActiveProvider(),
	})

	log.Info("search session started", zap.String("session_id", client.SessionID))

	// Start read and write pumps
	go client.WritePump()
	go client.ReadPump(sh.handleMessage)
}

// handleMessage parses an incoming WebSocket message and routes it to the
// appropriate handler.
func (sh *SessionHandler) handleMessage(client *Client, data []byte) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		sh.sendError(client, "invalid message format")
		return
	}

	logger.Get().Debug("received ws message",
		zap.String("type", msg.Type),
		zap.String("session_id", client.SessionID),
	)

	switch msg.Type {
	case MsgTypeSearch:
		sh.handleSearch(client, msg.Payload)
	default:
		sh.sendError(client, "unknown message type: "+msg.Type)
	}
}

// handleSearch starts a search without blocking the read pump. Only the
// newest search on a connection delivers results; older ones finish and are
// discarded.
func (sh *SessionHandler) handleSearch(client *Client, payload json.RawMessage) {
	var req SearchPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		sh.sendError(client, "invalid search payload")
		return
	}
	query, err := sh.Guard.Check(req.Query)
	if err != nil {
		sh.sendError(client, err.Error())
		return
	}
	if req.To < 0 || req.To > service.MaxResultCount {
		sh.sendError(client, fmt.Sprintf("to must be between 1 and %d", service.MaxResultCount))
		return
	}

	seq := client.nextSearch()
	log := logger.With(zap.String("session_id", client.SessionID), zap.Uint64("seq", seq))

	go func() {
		ctx, cancel := context.WithTimeout(logger.NewContext(context.Background(), log), searchTimeout)
		defer cancel()

		results, err := sh.Search.Search(ctx, query, service.SearchOptions{To: req.To})
		if !client.isLatestSearch(seq) {
			log.Debug("discarding stale search results", zap.String("query", query))
			return
		}
		if err != nil {
			log.Error("session search failed", zap.String("query", query), zap.Error(err))
			sh.sendError(client, "failed to fetch recipes")
			return
		}

		sh.send(client, MsgTypeSearchResults, SearchResultsPayload{
			Seq:      seq,
			Query:    query,
			Provider: sh.Search.ActiveProvider(),
			Results:  results,
		})
	}()
}

func (sh *SessionHandler) broadcastFavorites(favorites []models.Recipe) {
	msg, err := encode(MsgTypeFavoritesChanged, FavoritesChangedPayload{Favorites: favorites})
	if err != nil {
		logger.Get().Error("failed to encode favorites", zap.Error(err))
		return
	}
	select {
	case sh.Hub.Broadcast <- &RoomMessage{RoomID: SessionRoom, Message: msg}:
	default:
		logger.Get().Warn("favorites broadcast dropped, hub is busy")
	}
}

func (sh *SessionHandler) send(client *Client, msgType string, payload interface{}) {
	msg, err := encode(msgType, payload)
	if err != nil {
		logger.Get().Error("failed to encode ws message", zap.String("type", msgType), zap.Error(err))
		return
	}
	if !client.Deliver(msg) {
		logger.Get().Warn("ws message dropped",
			zap.String("type", msgType),
			zap.String("session_id", client.SessionID),
		)
	}
}

func (sh *SessionHandler) sendError(client *Client, message string) {
	sh.send(client, MsgTypeError, ErrorPayload{Message: message})
}

func encode(msgType string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WSMessage{Type: msgType, Payload: raw})
}
