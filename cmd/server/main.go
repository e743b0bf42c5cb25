package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickmove-ch/intake/internal"
	"github.com/quickmove-ch/intake/internal/email"
	"github.com/quickmove-ch/intake/internal/handler"
	"github.com/quickmove-ch/intake/internal/metrics"
	"github.com/quickmove-ch/intake/internal/middleware"
	"github.com/quickmove-ch/intake/internal/service"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize email delivery
	mailer, err := email.NewSMTPService(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}, cfg.StaffEmail, cfg.SiteURL, "web/templates/email", logger)
	if err != nil {
		return fmt.Errorf("email service initialization failed: %w", err)
	}
	logger.Info("Email service ready", "smtp_host", cfg.SMTPHost, "staff_email", cfg.StaffEmail)

	// Initialize services
	quoteService := service.NewQuoteService(mailer, logger)

	// Initialize middleware
	isSecure := cfg.Env != "development"
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	requestIDMw := middleware.NewRequestIDMiddleware()
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	// Initialize handlers
	quoteHandler := handler.NewQuoteHandler(quoteService, logger)
	i18nHandler := handler.NewI18nHandler(logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics (basic auth when credentials are configured)
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Quote intake API (public)
	quoteHandler.RegisterRoutes(mux)
	i18nHandler.RegisterRoutes(mux)

	// Outermost first: request ID, then security headers, then request
	// logging, then HTTP metrics.
	stack := middleware.Stack(
		requestIDMw.Handler,
		securityMw.Handler,
		loggingMw.Handler,
		metrics.Middleware,
	)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: stack(mux),
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
