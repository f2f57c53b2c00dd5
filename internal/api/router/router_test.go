package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashakstudio/booking-assistant/internal/agent"
	"github.com/sashakstudio/booking-assistant/internal/catalog"
	"github.com/sashakstudio/booking-assistant/internal/intent"
	"github.com/sashakstudio/booking-assistant/internal/schedule"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	cat := catalog.Default()
	clock := func() time.Time {
		return time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)
	}
	gen := schedule.NewGenerator(clock)
	store := schedule.NewMemoryStore()
	reservations := schedule.NewReservations(cat, store, gen, logger)
	a := agent.New(intent.NewRuleExtractor(cat), reservations, cat, nil, nil, logger, clock)

	cfg := &Config{
		Logger:             logger,
		AgentHandler:       agent.NewHandler(a, logger),
		CORSAllowedOrigins: []string{"*"},
	}

	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterAgentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": "How much is a soft glam?"},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/agent", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp agent.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode agent response: %v", err)
	}
	if !strings.Contains(resp.Reply, "Soft Glam Makeup") {
		t.Errorf("expected pricing reply to mention the service, got %q", resp.Reply)
	}
}

func TestRouterAvailabilityEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestRouterCORSHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/agent", nil)
	req.Header.Set("Origin", "https://sashakstudio.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected preflight status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://sashakstudio.com" {
		t.Errorf("expected origin echoed, got %q", got)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
