//go:build integration

package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	pkgtesting "github.com/DjordjeVuckovic/hydro-api/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []dto.CatalogEntry {
	return []dto.CatalogEntry{
		{Dataset: query.DatasetLocations, Office: "SPK", Name: "Folsom", BoundingOffice: "SPK"},
		{Dataset: query.DatasetLocations, Office: "SPK", Name: "Nimbus", BoundingOffice: "SPK"},
		{Dataset: query.DatasetLocations, Office: "SWT", Name: "Keystone", BoundingOffice: "SWT"},
		{
			Dataset: query.DatasetTimeSeries, Office: "SPK", Name: "Folsom.Elev.Inst.1Hour.0.Ccp-Rev",
			Units: "ft", Interval: "1Hour",
			Groups:  []dto.GroupRef{{Category: "Agency Aliases", Group: "USGS"}},
			Extents: &dto.Extents{Earliest: "2024-01-01T00:00:00Z", Latest: "2024-01-01T03:00:00Z"},
		},
		{Dataset: query.DatasetTimeSeries, Office: "SPK", Name: "Folsom.Flow-Out.Ave.1Hour.1Hour.Ccp-Rev", Units: "cfs"},
	}
}

func TestCatalogIndex(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	idx, err := NewCatalogIndex(ctx, ClientConfig{
		Addresses: container.Addresses(),
		IndexName: pkgtesting.IndexName(t),
	})
	require.NoError(t, err)
	require.True(t, idx.Healthy(ctx))
	require.NoError(t, idx.Index(ctx, catalogFixture()))

	t.Run("walks pages with search_after", func(t *testing.T) {
		var names []string
		after := ""
		for {
			page, err := idx.FetchCatalog(ctx, query.DatasetLocations, query.Catalog{}, after, 2)
			require.NoError(t, err)
			for _, e := range page {
				names = append(names, e.Name)
			}
			if len(page) < 2 {
				break
			}
			after, err = page[len(page)-1].CursorKey()
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"Folsom", "Nimbus", "Keystone"}, names)
	})

	tests := []struct {
		name   string
		ds     query.Dataset
		filter query.Catalog
		want   int
	}{
		{name: "office is case insensitive", ds: query.DatasetLocations, filter: query.Catalog{Office: "spk"}, want: 2},
		{name: "name regex", ds: query.DatasetLocations, filter: query.Catalog{IDLike: "^fol"}, want: 1},
		{name: "bounding office", ds: query.DatasetLocations, filter: query.Catalog{BoundingOfficeLike: "swt"}, want: 1},
		{name: "group category", ds: query.DatasetTimeSeries, filter: query.Catalog{TsCategoryLike: "agency"}, want: 1},
		{name: "exclude empty", ds: query.DatasetTimeSeries, filter: query.Catalog{ExcludeEmpty: true}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := idx.CountCatalog(ctx, tt.ds, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)

			entries, err := idx.FetchCatalog(ctx, tt.ds, tt.filter, "", 10)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}

	t.Run("extents only when requested", func(t *testing.T) {
		entries, err := idx.FetchCatalog(ctx, query.DatasetTimeSeries, query.Catalog{IDLike: "elev"}, "", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Extents)

		entries, err = idx.FetchCatalog(ctx, query.DatasetTimeSeries, query.Catalog{IDLike: "elev", IncludeExtents: true}, "", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].Extents)
		assert.Equal(t, "2024-01-01T03:00:00Z", entries[0].Extents.Latest)
	})
}
