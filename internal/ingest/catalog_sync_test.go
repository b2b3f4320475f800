package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIndexer struct {
	batches [][]dto.CatalogEntry
	err     error
}

func (r *recordingIndexer) Index(_ context.Context, entries []dto.CatalogEntry) error {
	r.batches = append(r.batches, entries)
	return r.err
}

func catalogSource(t *testing.T) *in_mem.InMemStorer {
	t.Helper()
	store := in_mem.NewInMemStorer()
	require.NoError(t, store.SaveCatalogEntries(context.Background(), []dto.CatalogEntry{
		{Dataset: query.DatasetLocations, Office: "SPK", Name: "Folsom"},
		{Dataset: query.DatasetTimeSeries, Office: "SPK", Name: "C.Flow.Inst.1Hour.0.raw"},
		{Dataset: query.DatasetTimeSeries, Office: "SPK", Name: "A.Flow.Inst.1Hour.0.raw"},
		{Dataset: query.DatasetTimeSeries, Office: "SPK", Name: "B.Flow.Inst.1Hour.0.raw"},
	}))
	return store
}

func TestCatalogSync_Run(t *testing.T) {
	idx := &recordingIndexer{}
	sync := NewCatalogSync(catalogSource(t), idx, BulkOptions{Enabled: true, Size: 2})

	require.NoError(t, sync.Run(context.Background()))

	var sizes []int
	var names []string
	for _, batch := range idx.batches {
		sizes = append(sizes, len(batch))
		for _, e := range batch {
			names = append(names, e.Name)
		}
	}
	assert.Equal(t, []int{1, 2, 1}, sizes)
	assert.Equal(t, []string{
		"Folsom",
		"A.Flow.Inst.1Hour.0.raw", "B.Flow.Inst.1Hour.0.raw", "C.Flow.Inst.1Hour.0.raw",
	}, names)
}

func TestCatalogSync_IndexFailure(t *testing.T) {
	idx := &recordingIndexer{err: errors.New("index closed")}
	err := NewCatalogSync(catalogSource(t), idx, BulkOptions{}).Run(context.Background())
	assert.ErrorContains(t, err, "index closed")
}

func TestRunAll_StopsAtFirstFailure(t *testing.T) {
	ran := 0
	step := func(err error) Pipeline {
		return pipelineFunc(func(context.Context) error {
			ran++
			return err
		})
	}

	err := RunAll(context.Background(), step(nil), step(errors.New("boom")), step(nil))
	assert.ErrorContains(t, err, "pipeline 2 of 3 failed")
	assert.Equal(t, 2, ran)
}

type pipelineFunc func(context.Context) error

func (f pipelineFunc) Run(ctx context.Context) error { return f(ctx) }
