package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oakframe-configurator/app"
	"oakframe-configurator/config"
	"oakframe-configurator/obs"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("LOG_MODE") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	cfg := config.Load()
	logger, err := obs.InitLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		zap.S().Fatalf("❌ %v", err)
	}
	defer application.Close()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: application.Handler,
	}

	go func() {
		zap.S().Infof("Server starting on %s (store=%s)", cfg.HTTPAddr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	zap.S().Infof("🔄 Shutting down, waiting up to %s", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorf("❌ Shutdown: %v", err)
	}
}
