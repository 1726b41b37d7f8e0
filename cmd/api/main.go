package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecharge/internal/auth"
	"gamecharge/internal/config"
	"gamecharge/internal/database"
	"gamecharge/internal/handler"
	"gamecharge/internal/notifier"
	"gamecharge/internal/repository"
	"gamecharge/internal/router"
	"gamecharge/internal/service"
	"gamecharge/internal/ws"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting gamecharge API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repoOpts := repository.Options{CompletedAtSetOnce: cfg.Orders.CompletedAtSetOnce}

	// The memory store backs the catalog, accounts and settings. Orders and
	// notifications move to PostgreSQL when the postgres backend is selected.
	memory := repository.NewMemory(repoOpts, logger)
	if err := repository.Seed(memory); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	var orderRepo repository.OrderRepository = memory
	var notificationRepo repository.NotificationRepository = memory

	if cfg.Storage.Backend == config.StoragePostgres {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		orderRepo = repository.NewOrderRepository(pool, repoOpts, logger)
		notificationRepo = repository.NewNotificationRepository(pool, logger)
	}

	// Initialize sessions
	sessions := auth.NewSessionStore(time.Duration(cfg.Session.TTLHours)*time.Hour, logger)
	sessions.StartCleanup(ctx, 10*time.Minute)

	// Initialize live event hub and notification channels
	hub := ws.NewHub(logger)
	defer hub.Close()

	dispatcher := notifier.NewManager(cfg.Notify, logger)
	whatsapp := notifier.NewWhatsAppChannel(cfg.Notify, logger)

	// Initialize services
	catalogService := service.NewCatalogService(memory, memory, logger)
	orderService := service.NewOrderService(orderRepo, memory, memory, memory, notificationRepo, dispatcher, hub, logger)
	notificationService := service.NewNotificationService(notificationRepo, orderRepo, whatsapp, logger)
	settingsService := service.NewSettingsService(memory, hub, logger)
	authService := service.NewAuthService(memory, memory, logger)

	// Initialize HTTP handlers
	gameHandler := handler.NewGameHandler(catalogService, logger)
	priceOptionHandler := handler.NewPriceOptionHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	notificationHandler := handler.NewNotificationHandler(notificationService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	authHandler := handler.NewAuthHandler(authService, sessions, time.Duration(cfg.Session.TTLHours)*time.Hour, logger)

	// Initialize router
	mux := router.New(
		gameHandler,
		priceOptionHandler,
		orderHandler,
		notificationHandler,
		settingsHandler,
		authHandler,
		hub,
		sessions,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("storage_backend", cfg.Storage.Backend).
			Bool("notify_simulate", cfg.Notify.Simulate).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
