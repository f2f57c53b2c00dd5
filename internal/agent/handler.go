package agent

import (
	"encoding/json"
	"net/http"

	"github.com/sashakstudio/booking-assistant/internal/intent"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

// Handler exposes the agent over HTTP.
type Handler struct {
	agent  *Agent
	logger *logging.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(agent *Agent, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{agent: agent, logger: logger}
}

// ConverseRequest is the POST /agent body.
type ConverseRequest struct {
	Messages []intent.Message `json:"messages"`
}

// Converse handles POST /agent. It always answers 200: malformed input gets
// the fallback reply with a metadata reason instead of an error status.
func (h *Handler) Converse(w http.ResponseWriter, r *http.Request) {
	var req ConverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		h.logger.Debug("invalid agent payload", "error", err)
		writeJSON(w, Response{Reply: fallbackReply, Metadata: map[string]any{"reason": "invalid_payload"}})
		return
	}

	writeJSON(w, h.agent.Respond(r.Context(), req.Messages))
}

// Availability handles GET /availability.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	slots := h.agent.reservations.NextAvailable(availabilityCount)
	writeJSON(w, map[string]any{"slots": slots, "count": len(slots)})
}

// ListBookings handles GET /bookings.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.agent.reservations.List()
	writeJSON(w, map[string]any{"bookings": bookings, "count": len(bookings)})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
