package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the websocket endpoint. Each connection gets its own
// Session so transcripts never leak between visitors.
type Handler struct {
	provider    ProviderFactory
	keys        KeyCapability
	model       string
	instruction string
}

// NewHandler creates the chat handler. keys may be nil when the host has
// no credential-selection facility; an empty instruction uses the
// built-in one.
func NewHandler(provider ProviderFactory, keys KeyCapability, model, instruction string) *Handler {
	return &Handler{provider: provider, keys: keys, model: model, instruction: instruction}
}

// RegisterRoutes mounts the chat websocket under the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat", h.handleWebSocket)
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type    string `json:"type"` // "open", "close", "select_key" or "message"
	Content string `json:"content,omitempty"`
}

// wsResponse mirrors the full widget state after each action so the
// client renders from scratch instead of diffing.
type wsResponse struct {
	Type      string    `json:"type"` // "state" or "error"
	SessionID string    `json:"session_id"`
	Open      bool      `json:"open"`
	KeyState  KeyState  `json:"key_state"`
	Sending   bool      `json:"sending"`
	Messages  []Message `json:"messages"`
	Error     string    `json:"error,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := NewSession(h.provider, h.keys, h.model, h.instruction)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendError(conn, sess, "invalid message format")
			continue
		}

		switch req.Type {
		case "open":
			sess.Open(r.Context())
		case "close":
			sess.Close()
		case "select_key":
			sess.SelectKey(r.Context())
		case "message":
			if req.Content == "" {
				h.sendError(conn, sess, "content is required")
				continue
			}
			sess.Send(r.Context(), req.Content)
		default:
			h.sendError(conn, sess, "unknown message type: "+req.Type)
			continue
		}

		h.sendState(conn, sess)
	}
}

func (h *Handler) sendState(conn *websocket.Conn, sess *Session) {
	resp := wsResponse{
		Type:      "state",
		SessionID: sess.ID(),
		Open:      sess.IsOpen(),
		KeyState:  sess.KeyState(),
		Sending:   sess.Sending(),
		Messages:  sess.Messages(),
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, sess *Session, message string) {
	resp := wsResponse{
		Type:      "error",
		SessionID: sess.ID(),
		Open:      sess.IsOpen(),
		KeyState:  sess.KeyState(),
		Sending:   sess.Sending(),
		Messages:  sess.Messages(),
		Error:     message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write error: %v", err)
	}
}
