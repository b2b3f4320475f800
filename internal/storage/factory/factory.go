package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/hydro-api/internal/ingest"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/es"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/pg"
	"github.com/DjordjeVuckovic/hydro-api/pkg/server"
)

// Stores is the wired storage layer of the API.
type Stores struct {
	storage.Store
	// Catalog serves catalog listings; it is the Store itself unless the
	// catalog is offloaded to Elasticsearch.
	Catalog storage.CatalogReader
	Health  []server.HealthChecker

	closers []func()
}

func (s *Stores) Close() {
	for _, c := range s.closers {
		c()
	}
}

func NewStores(ctx context.Context, cfg StorageConfig) (*Stores, error) {
	stores := &Stores{}

	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		stores.Store = pg.NewStore(pool)
		stores.Health = append(stores.Health, pg.NewHealthChecker(pool))
		stores.closers = append(stores.closers, pool.Close)

	case storage.InMem:
		mem := in_mem.NewInMemStorer()
		if cfg.SeedFile != "" {
			seed, err := in_mem.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
			mem.Load(seed)
		}
		stores.Store = mem

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}

	switch cfg.Catalog {
	case "", storage.CatalogFromStore:
		stores.Catalog = stores.Store

	case storage.CatalogFromES:
		if cfg.Es == nil {
			stores.Close()
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		idx, err := es.NewCatalogIndex(ctx, *cfg.Es)
		if err != nil {
			stores.Close()
			return nil, fmt.Errorf("failed to create catalog index: %w", err)
		}
		if err := ingest.NewCatalogSync(stores.Store, idx, ingest.BulkOptions{}).Run(ctx); err != nil {
			stores.Close()
			return nil, err
		}
		stores.Store = ingest.NewCatalogMirror(stores.Store, idx)
		stores.Catalog = idx
		stores.Health = append(stores.Health, idx)

	default:
		stores.Close()
		return nil, fmt.Errorf(string(storage.ErrUnsupportedCatalog), cfg.Catalog)
	}

	return stores, nil
}
