package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

func newTestHandler() *Handler {
	a, _ := newTestAgent(nil)
	return NewHandler(a, logging.New("error"))
}

func postAgent(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/agent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Converse(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestConverseInvalidPayloadStillAnswers200(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing messages key", `{}`},
		{"null messages", `{"messages": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postAgent(t, h, tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "invalid_payload", resp.Metadata["reason"])
			assert.Contains(t, resp.Reply, "Sasha K's beauty booking assistant")
		})
	}
}

func TestConverseEmptyConversation(t *testing.T) {
	h := newTestHandler()

	w, resp := postAgent(t, h, `{"messages": []}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "empty_conversation", resp.Metadata["reason"])
}

func TestConverseBookingFlow(t *testing.T) {
	h := newTestHandler()

	body := `{"messages": [
		{"role": "user", "content": "I'm Jane Doe"},
		{"role": "user", "content": "jane@example.com"},
		{"role": "user", "content": "book the Event Glam this Friday at 2pm"}
	]}`

	w, resp := postAgent(t, h, body)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Booking, "reply was: %s", resp.Reply)
	assert.Equal(t, "event-glam", resp.Booking.ServiceID)
	assert.Equal(t, "booking.confirmed", resp.Metadata["intent"])
}

func TestAvailabilityEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	w := httptest.NewRecorder()
	h.Availability(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Slots []struct {
			Formatted string `json:"formatted"`
			StartsAt  string `json:"startsAt"`
		} `json:"slots"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	assert.NotEmpty(t, resp.Slots[0].Formatted)
}

func TestListBookingsEndpoint(t *testing.T) {
	h := newTestHandler()

	// Book through the conversational path, then list.
	_, resp := postAgent(t, h, `{"messages": [
		{"role": "user", "content": "I'm Jane Doe"},
		{"role": "user", "content": "jane@example.com"},
		{"role": "user", "content": "book the Event Glam this Friday at 2pm"}
	]}`)
	require.NotNil(t, resp.Booking)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	h.ListBookings(w, req)

	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
