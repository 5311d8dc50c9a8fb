package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/umairk/tripsplit/internal/auth"
	"github.com/umairk/tripsplit/internal/config"
	"github.com/umairk/tripsplit/internal/handlers"
	"github.com/umairk/tripsplit/internal/storage/sqlite"
	"github.com/umairk/tripsplit/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled() {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		slog.Info("Access-key authentication enabled", "token_ttl", cfg.TokenTTL)
	} else {
		slog.Warn("Authentication disabled; API is open (local mode)")
	}

	router := handlers.NewRouter(cfg, store, jwtManager)

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
