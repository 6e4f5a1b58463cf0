package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"topologia/internal/catalog"
	"topologia/internal/diagram"
	"topologia/internal/server"
	"topologia/internal/storage"
	"topologia/src"
	"topologia/src/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := src.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := logger.InitLogger(cfg.LogConfig); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn().Err(envErr).Msg("Could not load .env file")
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("Failed to load catalog")
	}
	logger.Info().Int("spaces", len(cat.Spaces())).Msg("Catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		logger.Fatal().Err(err).Str("kind", cfg.StorageConfig.Kind).Msg("Failed to open attempt store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close attempt store")
		}
	}()
	logger.Info().Str("kind", cfg.StorageConfig.Kind).Msg("Attempt store ready")

	srv := server.New(cfg.ServerConfig, cat, diagram.NewRenderer(cfg.DiagramConfig.CacheTTL), store)
	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server stopped with error")
		return
	}

	logger.Info().Msg("Shutdown complete")
}
