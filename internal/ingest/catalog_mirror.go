package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
)

// CatalogMirror is a Store whose location writes are copied into a catalog
// index once the store accepted them. The store stays the source of truth:
// a failed index write is logged and repaired by the next CatalogSync.
type CatalogMirror struct {
	storage.Store
	idx CatalogIndexer
}

func NewCatalogMirror(store storage.Store, idx CatalogIndexer) *CatalogMirror {
	return &CatalogMirror{Store: store, idx: idx}
}

func (m *CatalogMirror) SaveLocation(ctx context.Context, loc dto.Location) error {
	if err := m.Store.SaveLocation(ctx, loc); err != nil {
		return err
	}
	m.mirror(ctx, loc)
	return nil
}

func (m *CatalogMirror) UpdateLocation(ctx context.Context, loc dto.Location) error {
	if err := m.Store.UpdateLocation(ctx, loc); err != nil {
		return err
	}
	m.mirror(ctx, loc)
	return nil
}

func (m *CatalogMirror) mirror(ctx context.Context, loc dto.Location) {
	if err := m.indexLocation(ctx, loc); err != nil {
		slog.Warn("Catalog index is behind the store",
			"office", loc.OfficeID, "name", loc.Name, "error", err)
	}
}

// indexLocation reads the location's catalog entry back from the store, so
// the index gets the same row a full sync would copy.
func (m *CatalogMirror) indexLocation(ctx context.Context, loc dto.Location) error {
	f := query.Catalog{Office: loc.OfficeID, IDLike: "^" + regexp.QuoteMeta(loc.Name) + "$", IncludeExtents: true}
	entries, err := m.Store.FetchCatalog(ctx, query.DatasetLocations, f, "", 10)
	if err != nil {
		return fmt.Errorf("failed to read catalog entry: %w", err)
	}
	for _, e := range entries {
		if strings.EqualFold(e.Office, loc.OfficeID) && strings.EqualFold(e.Name, loc.Name) {
			return m.idx.Index(ctx, []dto.CatalogEntry{e})
		}
	}
	return fmt.Errorf("no catalog entry for %s/%s", loc.OfficeID, loc.Name)
}
