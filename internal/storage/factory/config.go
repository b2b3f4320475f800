package factory

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/es"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/pg"
	"github.com/DjordjeVuckovic/hydro-api/pkg/config/env"
	"github.com/DjordjeVuckovic/hydro-api/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Catalog storage.CatalogBackend
	Pg      *pg.PoolConfig
	Es      *es.ClientConfig
	// SeedFile is a YAML fixture loaded into the in-memory store on startup.
	SeedFile string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.InMem
		slog.Info("STORAGE_TYPE is not set, using default", "type", storageType)
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	catalog := (storage.CatalogBackend)(os.Getenv("CATALOG_BACKEND"))
	if catalog == "" {
		catalog = storage.CatalogFromStore
	}
	if catalog != storage.CatalogFromStore && catalog != storage.CatalogFromES {
		slog.Error("Invalid CATALOG_BACKEND environment variable value", "value", catalog)
		return nil, fmt.Errorf(
			"invalid CATALOG_BACKEND environment variable value: %s, expected one of %v",
			catalog,
			[]storage.CatalogBackend{storage.CatalogFromStore, storage.CatalogFromES})
	}

	var esCfg *es.ClientConfig
	if catalog == storage.CatalogFromES {
		esCfg = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
			IndexName: env.String("ES_INDEX_NAME", "hydro-catalog"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		maxConns, err := env.Int("PG_MAX_CONNS", 0)
		if err != nil {
			return nil, err
		}
		if maxConns < 0 || maxConns > math.MaxInt32 {
			return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %d", maxConns)
		}
		pgCfg.MaxConns = int32(maxConns)

		if pgCfg.QueryTimeout, err = env.Duration("PG_QUERY_TIMEOUT", 0); err != nil {
			return nil, err
		}
	}

	return &StorageConfig{
		Type:     storageType,
		Catalog:  catalog,
		Pg:       pgCfg,
		Es:       esCfg,
		SeedFile: os.Getenv("SEED_FILE"),
	}, nil
}
