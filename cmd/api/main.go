// server/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/api/routes"
	"fleet-maintenance-api-server/internal/auth"
	"fleet-maintenance-api-server/internal/database"
	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/logger"
	"fleet-maintenance-api-server/internal/scheduler"
	"fleet-maintenance-api-server/internal/socket"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load .env (optional) and configuration
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("Could not read .env file: %v", err)
	}
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		logrus.Fatalf("Could not load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	log := logger.New(cfg.Log)
	mainLog := logger.WithComponent(log, "main")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		mainLog.Fatalf("Invalid timezone %q: %v", cfg.App.Timezone, err)
	}

	// 2. Open the store and seed it
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	repo, err := database.Open(startCtx, cfg.Store, cfg.App.AnnualBudget)
	if err != nil {
		cancel()
		mainLog.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	seedLog := logger.WithComponent(log, "seeder")
	if err := database.SeedAdmin(startCtx, repo, cfg.Auth, seedLog); err != nil {
		cancel()
		mainLog.Fatalf("Failed to seed admin user: %v", err)
	}
	if cfg.Store.Seed {
		if err := database.SeedSampleData(startCtx, repo, seedLog); err != nil {
			cancel()
			mainLog.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	// 3. File storage for documents and receipts
	files, err := uploads.New(startCtx, cfg.Uploads)
	cancel()
	if err != nil {
		mainLog.Fatalf("Failed to initialize %s uploads: %v", cfg.Uploads.Driver, err)
	}

	// 4. Services
	hub := socket.NewHub(logger.WithComponent(log, "websocket"))
	fleetService := fleet.NewService(repo, files, hub, loc, logger.WithComponent(log, "fleet"))
	authService := auth.NewService(repo.Users, auth.NewSessionStore(), auth.NewTokenSigner(cfg.Auth.JWTSecret), logger.WithComponent(log, "auth"))

	sweep, err := scheduler.NewAlertSweep(cfg.Alerts.Schedule, loc, fleetService, hub, logger.WithComponent(log, "scheduler"))
	if err != nil {
		mainLog.Fatalf("Failed to schedule alert sweep: %v", err)
	}
	if sweep != nil {
		sweep.Start()
	}

	// 5. Router
	router := routes.SetupRouter(routes.Dependencies{
		Config: cfg,
		Fleet:  fleetService,
		Auth:   authService,
		Hub:    hub,
		Files:  files,
		Log:    log,
	})

	// 6. Start server and wait for a shutdown signal
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		mainLog.Infof("Starting API server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mainLog.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	mainLog.Info("Shutting down server...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		mainLog.Errorf("Server forced to shutdown: %v", err)
	}
	if sweep != nil {
		sweep.Stop(shutdownCtx)
	}
	if err := repo.Close(shutdownCtx); err != nil {
		mainLog.Errorf("Failed to close store: %v", err)
	}
	mainLog.Info("Server exited")
}
