package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/hydro-api/internal/server"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/factory"
	"github.com/DjordjeVuckovic/hydro-api/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type HydroApiConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*HydroApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/hydro_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &HydroApiConfig{
		Server:        serverCfg,
		StorageConfig: *storageCfg,
	}, nil
}
