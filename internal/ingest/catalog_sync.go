package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
)

type CatalogIndexer interface {
	Index(ctx context.Context, entries []dto.CatalogEntry) error
}

// CatalogSync copies every catalog entry of a reader into an index, dataset by
// dataset, walking the source in cursor key order.
type CatalogSync struct {
	src       storage.CatalogReader
	dst       CatalogIndexer
	batchSize int
}

func NewCatalogSync(src storage.CatalogReader, dst CatalogIndexer, opts BulkOptions) *CatalogSync {
	size := opts.Size
	if !opts.Enabled || size <= 0 {
		size = defaultBatchSize
	}
	return &CatalogSync{src: src, dst: dst, batchSize: size}
}

func (s *CatalogSync) Run(ctx context.Context) error {
	all := query.Catalog{IncludeExtents: true}

	datasets := make([]query.Dataset, 0, len(query.SupportedDatasets))
	for ds := range query.SupportedDatasets {
		datasets = append(datasets, ds)
	}
	slices.Sort(datasets)

	for _, ds := range datasets {
		var afterKey string
		synced := 0
		for {
			batch, err := s.src.FetchCatalog(ctx, ds, all, afterKey, s.batchSize)
			if err != nil {
				return fmt.Errorf("failed to read %s catalog: %w", ds, err)
			}
			if err := s.dst.Index(ctx, batch); err != nil {
				return fmt.Errorf("failed to index %s catalog: %w", ds, err)
			}
			synced += len(batch)
			if len(batch) < s.batchSize {
				break
			}
			if afterKey, err = batch[len(batch)-1].CursorKey(); err != nil {
				return err
			}
		}
		slog.Info("Catalog synced", "dataset", ds, "entries", synced)
	}
	return nil
}
