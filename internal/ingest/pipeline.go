package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pipeline defines the common interface for data ingestion pipelines
type Pipeline interface {
	// Run executes the pipeline with the given context
	Run(ctx context.Context) error
}

// BulkOptions defines common bulk processing options
type BulkOptions struct {
	Enabled bool
	Size    int
}

// RunAll runs pipelines in order and stops at the first failure.
func RunAll(ctx context.Context, pipelines ...Pipeline) error {
	for i, p := range pipelines {
		start := time.Now()
		if err := p.Run(ctx); err != nil {
			return fmt.Errorf("pipeline %d of %d failed: %w", i+1, len(pipelines), err)
		}
		slog.Info("Pipeline finished", "step", i+1, "of", len(pipelines), "took", time.Since(start))
	}
	return nil
}
