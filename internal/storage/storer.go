package storage

import (
	"context"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
)

type ClobWriter interface {
	// SaveClob fails with *apperr.ConflictError when the clob exists.
	SaveClob(ctx context.Context, clob dto.Clob) error
}

type LevelWriter interface {
	// SaveLevel replaces a level with the same office, id and effective date.
	SaveLevel(ctx context.Context, level dto.LocationLevel) error
}

type LocationWriter interface {
	// SaveLocation fails with *apperr.ConflictError when the location exists.
	SaveLocation(ctx context.Context, loc dto.Location) error
	// UpdateLocation fails with *apperr.NotFoundError when the location is unknown.
	UpdateLocation(ctx context.Context, loc dto.Location) error
}

// Store is implemented by every primary backend.
type Store interface {
	ClobReader
	ClobWriter
	BlobReader
	PoolReader
	LevelReader
	LevelWriter
	DescriptorReader
	CatalogReader
	TimeSeriesReader
	LocationReader
	LocationWriter
}

// Importer bulk-loads fixtures. Every method replaces rows with the same key,
// except SaveClob and SaveLocation which keep their conflict semantics.
type Importer interface {
	ClobWriter
	LevelWriter
	LocationWriter
	SaveBlob(ctx context.Context, blob dto.Blob) error
	SavePool(ctx context.Context, pool dto.Pool) error
	SaveDescriptors(ctx context.Context, descriptors []dto.TimeSeriesIdentifierDescriptor) error
	SaveCatalogEntries(ctx context.Context, entries []dto.CatalogEntry) error
	SaveRecords(ctx context.Context, header dto.TimeSeries, values []dto.Record) error
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

// CatalogBackend selects where catalog listings are served from.
type CatalogBackend string

const (
	CatalogFromStore CatalogBackend = "store"
	CatalogFromES    CatalogBackend = "es"
)

type StorerError string

const (
	ErrUnsupportedStorer  StorerError = "unsupported storer type: %s"
	ErrUnsupportedCatalog StorerError = "unsupported catalog backend: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
