package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"Flicks/config"
	"Flicks/handlers"
	"Flicks/services"
	"Flicks/services/tmdb"
	"Flicks/shared/logger"
	"Flicks/shared/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Invalid configuration: %v", err)
	}

	logger.Init(cfg.Environment, cfg.Debug)
	slog.Info("Initializing Flicks components...")

	// TMDB client, favorites and flash sessions live as long as the process
	client := tmdb.NewClient(cfg, nil)
	favorites := services.NewFavoritesStore()
	sessions := services.NewSessionStore(cfg)

	h, err := handlers.New(client, favorites, sessions)
	if err != nil {
		slog.Error("Failed to initialize handlers", "error", err)
		os.Exit(1)
	}
	router := handlers.NewRouter(h, cfg)

	addr := ":" + cfg.ServerPort
	slog.Info("Flicks is starting",
		"addr", addr,
		"environment", cfg.Environment,
		"debug", cfg.Debug,
		"tmdb", cfg.TMDBBaseURL,
		"language", cfg.TMDBLanguage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := server.DefaultConfig(addr)
	if err := server.Run(ctx, srvCfg, server.CreateServer(srvCfg, router)); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
