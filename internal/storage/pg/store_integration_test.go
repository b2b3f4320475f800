//go:build integration

package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/ingest"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	pkgtesting "github.com/DjordjeVuckovic/hydro-api/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *Store
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig)
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString, QueryTimeout: 5 * time.Second})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}
	testStore = NewStore(testPool)

	code := m.Run()
	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func seedStore(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx,
		"TRUNCATE clob, blob, pool, location_level, location, ts_descriptor, catalog_entry, ts, ts_value")
	require.NoError(t, err)

	seed, err := in_mem.LoadSeedFile("../in_mem/testdata/seed.yaml")
	require.NoError(t, err)
	require.NoError(t, ingest.NewSeedPipeline(seed, testStore, ingest.WithBulk(2)).Run(testCtx))
}

func TestStore_FetchClobs(t *testing.T) {
	seedStore(t)

	first, err := testStore.FetchClobs(testCtx, query.Clobs{}, "", 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "ALPHA", first[0].ID)
	assert.Equal(t, "README", first[1].ID)
	assert.Empty(t, first[0].Value)

	rest, err := testStore.FetchClobs(testCtx, query.Clobs{IncludeValues: true}, first[1].Key(), 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "KEYSTONE", rest[0].ID)
	assert.Equal(t, "ks", rest[0].Value)

	total, err := testStore.CountClobs(testCtx, query.Clobs{Office: "spk"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestStore_SaveClob_Conflict(t *testing.T) {
	seedStore(t)

	err := testStore.SaveClob(testCtx, dto.Clob{OfficeID: "SPK", ID: "README"})
	var conflict *apperr.ConflictError
	assert.ErrorAs(t, err, &conflict)

	clob, err := testStore.GetClob(testCtx, "spk", "readme")
	require.NoError(t, err)
	assert.Equal(t, "Folsom | Nimbus", clob.Value)
}

func TestStore_FetchCatalog(t *testing.T) {
	seedStore(t)

	tests := []struct {
		name   string
		ds     query.Dataset
		filter query.Catalog
		want   []string
	}{
		{
			name: "all time series",
			ds:   query.DatasetTimeSeries,
			want: []string{"Folsom.Elev.Inst.1Hour.0.Ccp-Rev", "Folsom.Flow-Out.Ave.1Hour.1Hour.Ccp-Rev"},
		},
		{
			name:   "exclude empty",
			ds:     query.DatasetTimeSeries,
			filter: query.Catalog{ExcludeEmpty: true},
			want:   []string{"Folsom.Elev.Inst.1Hour.0.Ccp-Rev"},
		},
		{
			name:   "group category",
			ds:     query.DatasetTimeSeries,
			filter: query.Catalog{TsCategoryLike: "agency.*"},
			want:   []string{"Folsom.Elev.Inst.1Hour.0.Ccp-Rev"},
		},
		{
			name: "locations mirrored from location writes",
			ds:   query.DatasetLocations,
			want: []string{"Folsom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := testStore.FetchCatalog(testCtx, tt.ds, tt.filter, "", 10)
			require.NoError(t, err)

			var names []string
			for _, e := range entries {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.want, names)

			total, err := testStore.CountCatalog(testCtx, tt.ds, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)
		})
	}
}

func TestStore_FetchCatalog_AfterKey(t *testing.T) {
	seedStore(t)

	first, err := testStore.FetchCatalog(testCtx, query.DatasetTimeSeries, query.Catalog{IncludeExtents: true}, "", 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, first[0].Extents)

	key, err := first[0].CursorKey()
	require.NoError(t, err)

	next, err := testStore.FetchCatalog(testCtx, query.DatasetTimeSeries, query.Catalog{}, key, 1)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "Folsom.Flow-Out.Ave.1Hour.1Hour.Ccp-Rev", next[0].Name)
	assert.Nil(t, next[0].Extents)
}

func TestStore_FetchRecords(t *testing.T) {
	seedStore(t)

	f := query.TimeSeries{
		Office: "SPK",
		Name:   "folsom.elev.inst.1hour.0.ccp-rev",
		Begin:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC),
	}

	page, err := testStore.FetchRecords(testCtx, f, "", 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, 420.0, *page[0].Value)
	assert.True(t, page[0].DateTime.Before(page[1].DateTime))

	rest, err := testStore.FetchRecords(testCtx, f, dto.RecordKey(page[2]), 3)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, 420.3, *rest[0].Value)

	total, err := testStore.CountRecords(testCtx, f)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestStore_UpdateLocation(t *testing.T) {
	seedStore(t)

	loc, err := testStore.GetLocation(testCtx, "SPK", "Folsom")
	require.NoError(t, err)
	loc.BoundingOfficeID = "SPK"
	require.NoError(t, testStore.UpdateLocation(testCtx, *loc))

	entries, err := testStore.FetchCatalog(testCtx, query.DatasetLocations, query.Catalog{BoundingOfficeLike: "spk"}, "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	err = testStore.UpdateLocation(testCtx, dto.Location{OfficeID: "SPK", Name: "Nimbus"})
	var notFound *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
