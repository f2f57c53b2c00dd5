package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sashakstudio/booking-assistant/internal/agent"
	"github.com/sashakstudio/booking-assistant/internal/api/router"
	"github.com/sashakstudio/booking-assistant/internal/catalog"
	appconfig "github.com/sashakstudio/booking-assistant/internal/config"
	"github.com/sashakstudio/booking-assistant/internal/intent"
	"github.com/sashakstudio/booking-assistant/internal/notify"
	"github.com/sashakstudio/booking-assistant/internal/observability/metrics"
	"github.com/sashakstudio/booking-assistant/internal/schedule"
	"github.com/sashakstudio/booking-assistant/internal/webchat"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}
	clock := func() time.Time { return time.Now().In(loc) }

	// Domain services
	cat := catalog.Default()
	store := schedule.NewMemoryStore()
	generator := schedule.NewGenerator(clock)
	reservations := schedule.NewReservations(cat, store, generator, logger)
	extractor := intent.NewRuleExtractor(cat)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	agentMetrics := metrics.NewAgentMetrics(registry)

	// Email confirmations; falls back to log-only when SendGrid is not configured
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else {
		logger.Info("sendgrid not configured, booking confirmations will be logged only")
		emailSender = notify.NewStubEmailSender(logger)
	}
	confirmations := notify.NewConfirmations(emailSender, logger)

	bookingAgent := agent.New(extractor, reservations, cat, confirmations, agentMetrics, logger, clock)

	// Handlers
	agentHandler := agent.NewHandler(bookingAgent, logger)
	chatHandler := webchat.NewHandler(bookingAgent, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		AgentHandler:       agentHandler,
		ChatHandler:        chatHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
