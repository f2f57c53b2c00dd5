package webchat

import (
	"context"
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/sashakstudio/booking-assistant/internal/agent"
	"github.com/sashakstudio/booking-assistant/internal/intent"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

//go:embed widget.js
var widgetJS []byte

// transcriptLimit caps how many turns a session keeps. The agent re-derives
// everything from the transcript, so old turns beyond this add nothing.
const transcriptLimit = 100

// Handler manages web chat sessions. Each session accumulates its transcript
// server-side so the widget can reconnect and resume, and every inbound
// message is answered by the same agent that backs POST /agent.
type Handler struct {
	agent  *agent.Agent
	logger *logging.Logger

	mu       sync.RWMutex
	sessions map[string][]intent.Message
}

// NewHandler creates a web chat handler.
func NewHandler(a *agent.Agent, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		agent:    a,
		logger:   logger,
		sessions: make(map[string][]intent.Message),
	}
}

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type string `json:"type"` // "message", "ping"
	Text string `json:"text"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type      string           `json:"type"` // "message", "typing", "history", "session", "pong"
	Text      string           `json:"text,omitempty"`
	Role      string           `json:"role,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
	Messages  []intent.Message `json:"messages,omitempty"`
}

func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}

// HandleWebSocket upgrades to WebSocket and serves the chat session.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "session", SessionID: sessionID})

	if history := h.history(sessionID); len(history) > 0 {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: history})
	}

	h.logger.Info("webchat session opened", "session_id", sessionID)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("webchat session closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
			continue
		}
		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "typing"})

		reply := h.respond(r.Context(), sessionID, msg.Text)
		_ = websocket.JSON.Send(conn, OutboundMessage{
			Type:      "message",
			Role:      intent.RoleAssistant,
			Text:      reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// respond appends the user turn, runs the agent over the whole session
// transcript, and records the assistant's reply.
func (h *Handler) respond(ctx context.Context, sessionID, text string) string {
	h.mu.Lock()
	transcript := append(h.sessions[sessionID], intent.Message{Role: intent.RoleUser, Content: text})
	h.sessions[sessionID] = transcript
	h.mu.Unlock()

	resp := h.agent.Respond(ctx, transcript)

	h.mu.Lock()
	transcript = append(h.sessions[sessionID], intent.Message{Role: intent.RoleAssistant, Content: resp.Reply})
	if len(transcript) > transcriptLimit {
		transcript = transcript[len(transcript)-transcriptLimit:]
	}
	h.sessions[sessionID] = transcript
	h.mu.Unlock()

	return resp.Reply
}

func (h *Handler) history(sessionID string) []intent.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	transcript := h.sessions[sessionID]
	out := make([]intent.Message, len(transcript))
	copy(out, transcript)
	return out
}

// HandleWidgetJS serves the embeddable widget script.
func (h *Handler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(widgetJS)
}
