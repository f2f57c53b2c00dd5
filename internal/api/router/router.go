package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sashakstudio/booking-assistant/internal/agent"
	httpmiddleware "github.com/sashakstudio/booking-assistant/internal/http/middleware"
	"github.com/sashakstudio/booking-assistant/internal/webchat"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	AgentHandler       *agent.Handler
	ChatHandler        *webchat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.AgentHandler.HealthCheck)

	r.Post("/agent", cfg.AgentHandler.Converse)
	r.Get("/availability", cfg.AgentHandler.Availability)
	r.Get("/bookings", cfg.AgentHandler.ListBookings)

	if cfg.ChatHandler != nil {
		r.Route("/chat", func(r chi.Router) {
			r.Get("/ws", cfg.ChatHandler.HandleWebSocket)
			r.Get("/widget.js", cfg.ChatHandler.HandleWidgetJS)
		})
	}

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	return r
}
