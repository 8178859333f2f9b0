package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/questguild/quests-tracker/internal/api"
	v1 "github.com/questguild/quests-tracker/internal/api/v1"
	"github.com/questguild/quests-tracker/internal/config"
	"github.com/questguild/quests-tracker/internal/db"
	"github.com/questguild/quests-tracker/internal/hashing"
	"github.com/questguild/quests-tracker/internal/logger"
	"github.com/questguild/quests-tracker/internal/service"
	"github.com/questguild/quests-tracker/internal/store/postgres"
	"github.com/questguild/quests-tracker/internal/telemetry"
	"github.com/questguild/quests-tracker/internal/versions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quests tracker API server",
	Long: `Start the quests tracker API server.

The server requires a configuration file (--config) that specifies:
- HTTP listen address and timeouts
- Database connection parameters
- Telemetry settings

See examples/ directory for sample configurations.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second // Kubernetes-friendly shutdown time
	serverReadTimeout      = 10 * time.Second // Enough for headers and small requests
	serverWriteTimeout     = 15 * time.Second // Must be > request timeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second // Keep connections alive for reuse
)

func init() {
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")

	err := viper.BindPFlag("config", serveCmd.Flags().Lookup("config"))
	if err != nil {
		logger.Fatalf("Failed to bind config flag: %v", err)
	}

	// Mark config as required
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		logger.Fatalf("Failed to mark config flag as required: %v", err)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load and validate configuration
	configPath := viper.GetString("config")
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	address := cfg.Server.GetAddress()
	logger.Infof("Starting quests tracker API server on %s", address)

	// Initialize telemetry (no-op providers when disabled)
	telemetryCfg := cfg.Telemetry
	if telemetryCfg != nil && telemetryCfg.ServiceVersion == "" {
		telemetryCfg.ServiceVersion = versions.GetVersionInfo().Version
	}
	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(telemetryCfg))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Failed to shutdown telemetry: %v", err)
		}
	}()

	// Connect to the database
	conn, err := db.NewConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Errorf("Failed to close database connection: %v", err)
		}
	}()

	// Wire the store and services
	st := postgres.New(conn.DB)
	svc := v1.Services{
		Viewer:       service.NewQuestViewer(st),
		Crew:         service.NewCrewSwitchboard(st),
		Ledger:       service.NewJourneyLedger(st),
		Ops:          service.NewQuestOps(st),
		Registration: service.NewRegistration(st, hashing.NewBcryptHasher()),
	}

	// Build the telemetry middleware
	metricsMiddleware, err := telemetry.MetricsMiddleware(tel.MeterProvider())
	if err != nil {
		return fmt.Errorf("failed to create metrics middleware: %w", err)
	}

	// Create the API server with middleware
	router := api.NewServer(svc,
		api.WithMiddlewares(
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(cfg.Server.GetRequestTimeout()),
			telemetry.TracingMiddleware(tel.TracerProvider()),
			metricsMiddleware,
			api.LoggingMiddleware,
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server listening on %s", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}
