package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/api"
	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
	"github.com/izamghali/fastrac-take-home-test/internal/repository/postgres"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting checkout API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Initialize database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := postgres.RunMigrations(cfg.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db, logger)

	// Logistics provider client and checkout session store
	gateway := fastrac.NewClient(cfg.Fastrac, logger)
	sessions := checkout.NewStore(cfg.Checkout.SessionTTL, logger)

	// Initialize router
	router := api.NewRouter(cfg, gateway, repos, sessions, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Session janitor: prunes idle checkout sessions every 10 minutes
	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	go sessions.RunJanitor(janitorCtx)
	logger.Info("Checkout session janitor started", zap.Duration("ttl", cfg.Checkout.SessionTTL))

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
