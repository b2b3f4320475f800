//go:build integration

package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/es"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/pg"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	pkgtesting "github.com/DjordjeVuckovic/hydro-api/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStores_PostgresWithESCatalog(t *testing.T) {
	ctx := context.Background()
	pgContainer := pkgtesting.NewPGContainerWithCleanup(ctx, t)
	esContainer := pkgtesting.NewESContainer(ctx, t)

	stores, err := NewStores(ctx, StorageConfig{
		Type:    storage.PG,
		Catalog: storage.CatalogFromES,
		Pg:      &pg.PoolConfig{ConnStr: pgContainer.ConnString},
		Es: &es.ClientConfig{
			Addresses: esContainer.Addresses(),
			IndexName: pkgtesting.IndexName(t),
		},
	})
	require.NoError(t, err)
	defer stores.Close()

	require.Len(t, stores.Health, 2)
	for _, hc := range stores.Health {
		assert.True(t, hc.Healthy(ctx), hc.Name())
	}

	total, err := stores.Catalog.CountCatalog(ctx, query.DatasetLocations, query.Catalog{})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, stores.SaveLocation(ctx, dto.Location{OfficeID: "SPK", Name: "Folsom.Dam"}))
	total, err = stores.Catalog.CountCatalog(ctx, query.DatasetLocations, query.Catalog{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
