package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/config"
	"github.com/username/fintrack/src/database"
	"github.com/username/fintrack/src/handlers"
	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/utils"
	"github.com/username/fintrack/src/web"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("FinTrack server starting...")

	if len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid. Must be at least 32 bytes.")
		os.Exit(1)
	}
	utils.ExposeErrorDetails = config.Cfg.IsDevelopment()
	decimal.MarshalJSONWithoutQuotes = true

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	defer database.DB.Close()
	logger.L.Info("Database initialized successfully.")

	authService := security.NewAuthService(config.Cfg.JWTSecret, config.Cfg.AccessTokenExpiry)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	user, err := model.EnsureUser(seedCtx, database.DB, config.Cfg.DefaultUserID,
		config.Cfg.DefaultUsername, config.Cfg.DefaultUserEmail, config.Cfg.DefaultUserPassword,
		authService.HashPassword)
	cancelSeed()
	if err != nil {
		logger.L.Error("Failed to ensure default user", "error", err)
		stdlog.Fatalf("Failed to ensure default user: %v", err)
	}
	logger.L.Info("Default user ready", "userID", user.ID, "username", user.Username)

	templates, err := web.Templates()
	if err != nil {
		logger.L.Error("Failed to parse dashboard templates", "error", err)
		stdlog.Fatalf("Failed to parse dashboard templates: %v", err)
	}

	logger.L.Info("Configuring routes...")
	router := handlers.NewRouter(database.DB, config.Cfg, templates)

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L.Info("Server starting", "address", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Error("Failed to start server", "error", err)
			stdlog.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.L.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("Graceful shutdown failed", "error", err)
		return
	}
	logger.L.Info("Server stopped gracefully.")
}
