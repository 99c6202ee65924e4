package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/config"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/database"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/routes"
)

func main() {
	// Load environment variables
	envLoaded := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ Invalid configuration: %v", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	if !envLoaded {
		logger.Infof("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		logger.Fatalf("❌ Error setting up database: %v", err)
	}

	app := routes.NewApp(db, cfg)

	// Start server
	go func() {
		logger.Infof("🚀 Server is running on %s (driver=%s)", cfg.Addr(), cfg.DBDriver)
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warnf("Shutdown did not complete cleanly: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
