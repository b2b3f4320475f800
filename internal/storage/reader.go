package storage

import (
	"context"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
)

// Keyset readers return at most limit rows whose upper-cased key sorts after
// afterKey, ordered by that key. An empty afterKey starts from the beginning.
// Offset readers return at most limit rows starting at offset in a stable order.
// Count methods apply the same filter without paging.

type ClobReader interface {
	FetchClobs(ctx context.Context, f query.Clobs, afterKey string, limit int) ([]dto.Clob, error)
	CountClobs(ctx context.Context, f query.Clobs) (int, error)
	GetClob(ctx context.Context, office, id string) (*dto.Clob, error)
}

type BlobReader interface {
	FetchBlobs(ctx context.Context, f query.Blobs, afterKey string, limit int) ([]dto.Blob, error)
	CountBlobs(ctx context.Context, f query.Blobs) (int, error)
}

type PoolReader interface {
	FetchPools(ctx context.Context, f query.Pools, afterKey string, limit int) ([]dto.Pool, error)
	CountPools(ctx context.Context, f query.Pools) (int, error)
}

type LevelReader interface {
	FetchLevels(ctx context.Context, f query.Levels, offset int, limit int) ([]dto.LocationLevel, error)
	CountLevels(ctx context.Context, f query.Levels) (int, error)
}

type DescriptorReader interface {
	FetchDescriptors(ctx context.Context, f query.Descriptors, offset int, limit int) ([]dto.TimeSeriesIdentifierDescriptor, error)
	CountDescriptors(ctx context.Context, f query.Descriptors) (int, error)
}

// CatalogReader orders entries by dto.CatalogEntry.CursorKey.
type CatalogReader interface {
	FetchCatalog(ctx context.Context, ds query.Dataset, f query.Catalog, afterKey string, limit int) ([]dto.CatalogEntry, error)
	CountCatalog(ctx context.Context, ds query.Dataset, f query.Catalog) (int, error)
}

// TimeSeriesReader pages records by dto.RecordKey; keys are not case-folded.
type TimeSeriesReader interface {
	// GetSeries returns the series header without values.
	GetSeries(ctx context.Context, office, name string) (*dto.TimeSeries, error)
	FetchRecords(ctx context.Context, f query.TimeSeries, afterKey string, limit int) ([]dto.Record, error)
	CountRecords(ctx context.Context, f query.TimeSeries) (int, error)
}

type LocationReader interface {
	GetLocation(ctx context.Context, office, name string) (*dto.Location, error)
}
