package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	_ "time/tzdata"

	"github.com/DjordjeVuckovic/hydro-api/internal/ingest"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/es"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/pg"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *ImportConfig) error {
	seed, err := in_mem.LoadSeedFile(cfg.SeedPath)
	if err != nil {
		return err
	}

	pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
	if err != nil {
		return err
	}
	defer pool.Close()
	store := pg.NewStore(pool)

	var opts []ingest.SeedPipelineOption
	if cfg.BulkOptions.Enabled {
		opts = append(opts, ingest.WithBulk(cfg.BulkOptions.Size))
	}
	slog.Info("Creating pipeline", "seed", cfg.SeedPath, "bulk", cfg.BulkOptions.Enabled)
	pipelines := []ingest.Pipeline{ingest.NewSeedPipeline(seed, store, opts...)}

	if cfg.Catalog == storage.CatalogFromES {
		idx, err := es.NewCatalogIndex(ctx, *cfg.Es)
		if err != nil {
			return err
		}
		pipelines = append(pipelines, ingest.NewCatalogSync(store, idx, cfg.BulkOptions))
	}

	return ingest.RunAll(ctx, pipelines...)
}
