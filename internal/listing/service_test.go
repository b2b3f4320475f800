package listing

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	seed, err := in_mem.LoadSeedFile("../storage/in_mem/testdata/seed.yaml")
	require.NoError(t, err)

	store := in_mem.NewInMemStorer()
	store.Load(seed)

	clock := func() time.Time { return time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC) }
	return NewService(store, WithClock(clock))
}

func TestClobs_WalksAllPages(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Clobs(ctx, query.Clobs{}, pagination.CursorRequest{Size: 2})
	require.NoError(t, err)
	require.Len(t, first.Clobs, 2)
	assert.Equal(t, "ALPHA", first.Clobs[0].ID)
	assert.Equal(t, "README", first.Clobs[1].ID)
	require.NotNil(t, first.Total)
	assert.Equal(t, 3, *first.Total)
	require.True(t, first.HasNext())

	second, err := svc.Clobs(ctx, query.Clobs{}, pagination.CursorRequest{Cursor: first.NextPage, Size: 2})
	require.NoError(t, err)
	require.Len(t, second.Clobs, 1)
	assert.Equal(t, "KEYSTONE", second.Clobs[0].ID)
	assert.False(t, second.HasNext())
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.NextPage, second.Page)
}

func TestClobs_InvalidCursor(t *testing.T) {
	svc := newService(t)
	bad := "not-a-cursor"

	_, err := svc.Clobs(context.Background(), query.Clobs{}, pagination.CursorRequest{Cursor: &bad, Size: 2})
	assert.ErrorIs(t, err, pagination.ErrInvalidCursor)
}

func TestLevels_Offset(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Levels(ctx, query.Levels{}, pagination.CursorRequest{Size: 2})
	require.NoError(t, err)
	assert.Len(t, first.Levels, 2)
	require.True(t, first.HasNext())

	second, err := svc.Levels(ctx, query.Levels{}, pagination.CursorRequest{Cursor: first.NextPage, Size: 2})
	require.NoError(t, err)
	require.Len(t, second.Levels, 1)
	assert.Equal(t, "SWT", second.Levels[0].OfficeID)
	assert.False(t, second.HasNext())
}

func TestCatalog_CursorPinsFilters(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Catalog(ctx, query.DatasetTimeSeries, query.Catalog{Office: "spk"}, pagination.CursorRequest{Size: 1})
	require.NoError(t, err)
	require.Len(t, first.Entries, 1)
	assert.Equal(t, "Folsom.Elev.Inst.1Hour.0.Ccp-Rev", first.Entries[0].Name)
	require.NotNil(t, first.Total)
	assert.Equal(t, 2, *first.Total)
	require.True(t, first.HasNext())

	// A different office on the follow-up request is ignored.
	second, err := svc.Catalog(ctx, query.DatasetTimeSeries, query.Catalog{Office: "SWT"},
		pagination.CursorRequest{Cursor: first.NextPage, Size: 1})
	require.NoError(t, err)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, "Folsom.Flow-Out.Ave.1Hour.1Hour.Ccp-Rev", second.Entries[0].Name)
	assert.Equal(t, 2, *second.Total)
}

func TestCatalog_RejectsKeysetCursor(t *testing.T) {
	svc := newService(t)
	token, err := pagination.KeysetState{LastKey: "SPK/A", PageSize: 1}.Encode()
	require.NoError(t, err)

	_, err = svc.Catalog(context.Background(), query.DatasetLocations, query.Catalog{},
		pagination.CursorRequest{Cursor: &token, Size: 1})
	assert.ErrorIs(t, err, pagination.ErrInvalidCursor)
}

func TestTimeSeries(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	f := query.TimeSeries{Office: "SPK", Name: "Folsom.Elev.Inst.1Hour.0.Ccp-Rev"}

	first, err := svc.TimeSeries(ctx, f, pagination.CursorRequest{Size: 3})
	require.NoError(t, err)
	assert.Equal(t, "ft", first.Units)
	assert.Equal(t, time.Date(2023, 12, 31, 3, 0, 0, 0, time.UTC), first.Begin)
	require.Len(t, first.Values, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Values[0].DateTime)
	require.True(t, first.HasNext())
	assert.Equal(t, 4, *first.Total)

	second, err := svc.TimeSeries(ctx, f, pagination.CursorRequest{Cursor: first.NextPage, Size: 3})
	require.NoError(t, err)
	require.Len(t, second.Values, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC), second.Values[0].DateTime)
	assert.False(t, second.HasNext())
}

func TestTimeSeries_RejectsClobCursor(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	clobs, err := svc.Clobs(ctx, query.Clobs{}, pagination.CursorRequest{Size: 1})
	require.NoError(t, err)
	require.NotNil(t, clobs.NextPage)

	f := query.TimeSeries{Office: "SPK", Name: "Folsom.Elev.Inst.1Hour.0.Ccp-Rev"}
	_, err = svc.TimeSeries(ctx, f, pagination.CursorRequest{Cursor: clobs.NextPage, Size: 1})
	require.ErrorIs(t, err, pagination.ErrInvalidCursor)

	_, body := apperr.Render(err)
	assert.Equal(t, "invalid cursor", body.Title)
}

func TestTimeSeries_InvalidRequests(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	req := pagination.CursorRequest{Size: 10}

	_, err := svc.TimeSeries(ctx, query.TimeSeries{}, req)
	var rfe *apperr.RequiredFieldError
	require.ErrorAs(t, err, &rfe)
	assert.ElementsMatch(t, []string{"office", "name"}, rfe.Fields)

	_, err = svc.TimeSeries(ctx, query.TimeSeries{
		Office: "SPK",
		Name:   "Folsom.Elev.Inst.1Hour.0.Ccp-Rev",
		Begin:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, req)
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.TimeSeries(ctx, query.TimeSeries{Office: "SPK", Name: "Missing"}, req)
	var nf *apperr.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCreateClob(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	err := svc.CreateClob(ctx, dto.Clob{OfficeID: "SPK"})
	var rfe *apperr.RequiredFieldError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, []string{"id"}, rfe.Fields)

	require.NoError(t, svc.CreateClob(ctx, dto.Clob{OfficeID: "SPK", ID: "NEW", Value: "text"}))

	err = svc.CreateClob(ctx, dto.Clob{OfficeID: "spk", ID: "new"})
	var ce *apperr.ConflictError
	assert.ErrorAs(t, err, &ce)

	page, err := svc.Clobs(ctx, query.Clobs{}, pagination.CursorRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, *page.Total)
}

func TestCreateLevel_ReportsEveryViolation(t *testing.T) {
	svc := newService(t)
	one := 1.0

	_, err := svc.CreateLevel(context.Background(), dto.LocationLevelOptions{
		ConstantValue:  &one,
		SeasonalValues: []dto.SeasonalValue{{}},
	})
	require.Error(t, err)

	details := apperr.Details(err)
	assert.ElementsMatch(t, []string{"location-level-id", "office-id", "level-date", "value"}, details[apperr.MissingFieldsKey])
	assert.ElementsMatch(t, []string{"constant-value", "seasonal-values"}, details[apperr.ExclusiveFieldsKey])
}

func TestCreateLocation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	loc, err := svc.CreateLocation(ctx, dto.LocationOptions{OfficeID: "SWT", Name: "Keystone", LocationKind: "PROJECT"})
	require.NoError(t, err)
	require.NotNil(t, loc.Active)
	assert.True(t, *loc.Active)

	page, err := svc.Catalog(ctx, query.DatasetLocations, query.Catalog{Office: "SWT"}, pagination.CursorRequest{Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Keystone", page.Entries[0].Name)

	_, err = svc.CreateLocation(ctx, dto.LocationOptions{OfficeID: "SWT", Name: "KEYSTONE"})
	var ce *apperr.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestPatchLocation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	loc, err := svc.PatchLocation(ctx, "SPK", "Folsom", map[string]any{
		"latitude":    38.9,
		"public-name": "Folsom Dam",
	})
	require.NoError(t, err)
	assert.Equal(t, 38.9, *loc.Latitude)
	assert.Equal(t, "Folsom Dam", loc.PublicName)

	_, err = svc.PatchLocation(ctx, "SPK", "Folsom", map[string]any{"latitude": 91.0})
	var fe *apperr.FieldError
	require.ErrorAs(t, err, &fe)

	stored, err := svc.Location(ctx, "SPK", "Folsom")
	require.NoError(t, err)
	assert.Equal(t, 38.9, *stored.Latitude)

	_, err = svc.PatchLocation(ctx, "SPK", "Folsom", map[string]any{"name": "Other"})
	assert.Error(t, err)

	_, err = svc.PatchLocation(ctx, "SPK", "Nowhere", map[string]any{"latitude": 1.0})
	var nf *apperr.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
