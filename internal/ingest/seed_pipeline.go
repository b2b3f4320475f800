package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
)

const defaultBatchSize = 1000

// Stats counts what a run wrote and skipped.
type Stats struct {
	Saved   int
	Skipped int
}

// SeedPipeline writes a YAML seed into a store. Invalid resources are skipped
// and logged; existing clobs are kept and existing locations updated.
type SeedPipeline struct {
	seed *in_mem.Seed
	sink storage.Importer
	bulk BulkOptions

	stats Stats
}

type SeedPipelineOption func(*SeedPipeline)

func WithBulk(size int) SeedPipelineOption {
	return func(p *SeedPipeline) {
		p.bulk = BulkOptions{Enabled: true, Size: size}
	}
}

func NewSeedPipeline(seed *in_mem.Seed, sink storage.Importer, opts ...SeedPipelineOption) *SeedPipeline {
	p := &SeedPipeline{
		seed: seed,
		sink: sink,
		bulk: BulkOptions{Size: defaultBatchSize},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bulk.Size <= 0 {
		p.bulk.Size = defaultBatchSize
	}
	return p
}

func (p *SeedPipeline) Stats() Stats {
	return p.stats
}

func (p *SeedPipeline) Run(ctx context.Context) error {
	start := time.Now()

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"clobs", p.importClobs},
		{"blobs", p.importBlobs},
		{"pools", p.importPools},
		{"levels", p.importLevels},
		{"locations", p.importLocations},
		{"descriptors", p.importDescriptors},
		{"catalog", p.importCatalog},
		{"timeseries", p.importSeries},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			slog.Info("Pipeline context cancelled, stopping import")
			return err
		}
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("import %s: %w", step.name, err)
		}
	}

	slog.Info("SeedPipeline run completed",
		"saved", p.stats.Saved,
		"skipped", p.stats.Skipped,
		"duration", time.Since(start))
	return nil
}

// valid reports whether obj passes validation, logging and counting it otherwise.
func (p *SeedPipeline) valid(kind, key string, obj validation.Validatable) bool {
	if err := validation.Validate(obj); err != nil {
		slog.Warn("Skipping invalid seed resource", "kind", kind, "key", key, "error", err)
		p.stats.Skipped++
		return false
	}
	return true
}

func (p *SeedPipeline) importClobs(ctx context.Context) error {
	for _, c := range p.seed.Clobs {
		if !p.valid("clob", c.Key(), &c) {
			continue
		}
		err := p.sink.SaveClob(ctx, c)
		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			slog.Info("Clob already exists, keeping it", "key", c.Key())
			p.stats.Skipped++
			continue
		}
		if err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

func (p *SeedPipeline) importBlobs(ctx context.Context) error {
	for _, b := range p.seed.Blobs {
		if !p.valid("blob", b.Key(), &b) {
			continue
		}
		if err := p.sink.SaveBlob(ctx, b); err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

func (p *SeedPipeline) importPools(ctx context.Context) error {
	for _, pool := range p.seed.Pools {
		if !p.valid("pool", pool.Key(), &pool) {
			continue
		}
		if err := p.sink.SavePool(ctx, pool); err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

func (p *SeedPipeline) importLevels(ctx context.Context) error {
	for _, l := range p.seed.Levels {
		if !p.valid("level", l.Key(), &l) {
			continue
		}
		if err := p.sink.SaveLevel(ctx, l); err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

func (p *SeedPipeline) importLocations(ctx context.Context) error {
	for _, l := range p.seed.Locations {
		if !p.valid("location", l.Key(), &l) {
			continue
		}
		err := p.sink.SaveLocation(ctx, l)
		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			err = p.sink.UpdateLocation(ctx, l)
		}
		if err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

func (p *SeedPipeline) importDescriptors(ctx context.Context) error {
	return inBatches(p.seed.Descriptors, p.batchSize(), func(batch []dto.TimeSeriesIdentifierDescriptor) error {
		if err := p.sink.SaveDescriptors(ctx, batch); err != nil {
			return err
		}
		p.stats.Saved += len(batch)
		return nil
	})
}

func (p *SeedPipeline) importCatalog(ctx context.Context) error {
	return inBatches(p.seed.Catalog, p.batchSize(), func(batch []dto.CatalogEntry) error {
		if err := p.sink.SaveCatalogEntries(ctx, batch); err != nil {
			return err
		}
		p.stats.Saved += len(batch)
		return nil
	})
}

func (p *SeedPipeline) importSeries(ctx context.Context) error {
	for _, ts := range p.seed.TimeSeries {
		header := dto.TimeSeries{
			OfficeID: ts.OfficeID,
			Name:     ts.Name,
			Units:    ts.Units,
			Interval: ts.Interval,
		}
		err := inBatches(ts.Values, p.batchSize(), func(batch []dto.Record) error {
			return p.sink.SaveRecords(ctx, header, batch)
		})
		if err != nil {
			return err
		}
		p.stats.Saved++
	}
	return nil
}

// batchSize is one row per write unless bulk mode is on.
func (p *SeedPipeline) batchSize() int {
	if p.bulk.Enabled {
		return p.bulk.Size
	}
	return 1
}

func inBatches[T any](items []T, size int, save func([]T) error) error {
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		if err := save(items[start:end]); err != nil {
			return err
		}
	}
	return nil
}
