// Package main Hydro API
// @title Hydro API
// @version 1.0
// @description Paged access to water management data: catalogs, clobs, blobs, pools, location levels and time series
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	_ "github.com/DjordjeVuckovic/hydro-api/docs"
	"github.com/DjordjeVuckovic/hydro-api/internal/listing"
	"github.com/DjordjeVuckovic/hydro-api/internal/router"
	"github.com/DjordjeVuckovic/hydro-api/internal/server"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/hydro-api/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg.Server, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Hydro API is running")
	})

	stores, err := factory.NewStores(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	defer stores.Close()
	s.AddHealthCheckers(stores.Health...)

	svc := listing.NewService(stores.Store, listing.WithCatalog(stores.Catalog))
	router.NewHydroRouter(s.Echo, svc).Bind()

	slog.Info("Storage ready",
		"storageType", cfg.StorageConfig.Type,
		"catalogBackend", cfg.StorageConfig.Catalog)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		stores.Close()
		os.Exit(1)
	}
}
