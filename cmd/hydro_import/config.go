package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/hydro-api/internal/ingest"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/factory"
	"github.com/DjordjeVuckovic/hydro-api/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ImportConfig struct {
	SeedPath    string
	BulkOptions ingest.BulkOptions
	factory.StorageConfig
}

func (as *AppConfig) Load() (*ImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/hydro_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	if storageCfg.Type != storage.PG {
		return nil, fmt.Errorf("import requires STORAGE_TYPE=%s, got %s", storage.PG, storageCfg.Type)
	}

	seedPath := os.Getenv("SEED_FILE")
	if seedPath == "" {
		slog.Error("SEED_FILE environment variable is not set")
		return nil, fmt.Errorf("SEED_FILE environment variable is not set")
	}

	bulkSize, err := env.Int("BULK_SIZE", 1_000)
	if err != nil {
		return nil, err
	}

	return &ImportConfig{
		SeedPath: seedPath,
		BulkOptions: ingest.BulkOptions{
			Enabled: env.Bool("BULK_ENABLED"),
			Size:    bulkSize,
		},
		StorageConfig: *storageCfg,
	}, nil
}
