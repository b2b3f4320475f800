package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/listing"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	seed, err := in_mem.LoadSeedFile("../storage/in_mem/testdata/seed.yaml")
	require.NoError(t, err)
	store := in_mem.NewInMemStorer()
	store.Load(seed)

	clock := func() time.Time { return time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC) }
	svc := listing.NewService(store, listing.WithClock(clock))

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewHydroRouter(e, svc).Bind()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestClobs_FollowsNextPage(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/clobs?page-size=2&include-values=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[dto.Clobs](t, rec)
	require.Len(t, first.Clobs, 2)
	assert.Equal(t, "first", first.Clobs[0].Value)
	require.NotNil(t, first.NextPage)

	rec = do(e, http.MethodGet, "/clobs?page-size=2&page="+url.QueryEscape(*first.NextPage), "")
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[dto.Clobs](t, rec)
	require.Len(t, second.Clobs, 1)
	assert.Nil(t, second.NextPage)
}

func TestPaging_BadRequests(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name      string
		target    string
		wantTitle string
	}{
		{name: "garbage cursor", target: "/clobs?page=%25%25", wantTitle: "invalid cursor"},
		{name: "page size too large", target: "/clobs?page-size=10001", wantTitle: "validation error"},
		{name: "bad pattern", target: "/clobs?like=%28", wantTitle: "validation error"},
		{name: "unknown dataset", target: "/catalog/projects", wantTitle: "validation error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantTitle, decode[apperr.Body](t, rec).Title)
		})
	}
}

func TestCatalog(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/catalog/TIMESERIES?office=spk&include-extents=true&exclude-empty=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[dto.Catalog](t, rec)
	require.Len(t, page.Entries, 1)
	require.NotNil(t, page.Entries[0].Extents)
	assert.Equal(t, "2024-01-01T00:00:00Z", page.Entries[0].Extents.Earliest)

	rec = do(e, http.MethodGet, "/catalog/locations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode[dto.Catalog](t, rec)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Folsom", page.Entries[0].Name)
}

func TestPools_IncludeFlagsDefaultTrue(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/pools", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.Pools](t, rec).Pools, 2)

	rec = do(e, http.MethodGet, "/pools?include-implicit=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pools := decode[dto.Pools](t, rec).Pools
	require.Len(t, pools, 1)
	assert.Equal(t, "Flood Control", pools[0].Name)
}

func TestTimeSeries(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet,
		"/timeseries?office=SPK&name=Folsom.Elev.Inst.1Hour.0.Ccp-Rev&begin=2024-01-01T01:00:00Z&end=2024-01-01T02:00:00Z", "")
	require.Equal(t, http.StatusOK, rec.Code)
	series := decode[dto.TimeSeries](t, rec)
	assert.Len(t, series.Values, 2)

	rec = do(e, http.MethodGet, "/timeseries?office=SPK&name=x&begin=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/timeseries", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.ElementsMatch(t, []string{"office", "name"}, decode[apperr.Body](t, rec).Details[apperr.MissingFieldsKey])
}

func TestCreateClob(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/clobs", `{"office-id":"SPK"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"id"}, decode[apperr.Body](t, rec).Details[apperr.MissingFieldsKey])

	rec = do(e, http.MethodPost, "/clobs", `{"office-id":"SPK","id":"NOTES","value":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPost, "/clobs", `{"office-id":"SPK","id":"notes"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/clobs/SPK/NOTES", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", decode[dto.Clob](t, rec).Value)
}

func TestCreateLevel(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/levels",
		`{"office-id":"SPK","location-level-id":"Folsom.Elev.Inst.0.Top of Dam","constant-value":480,"seasonal-time-series-id":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[apperr.Body](t, rec)
	assert.Equal(t, []string{"level-date"}, body.Details[apperr.MissingFieldsKey])
	assert.Equal(t, []string{"constant-value", "seasonal-time-series-id"}, body.Details[apperr.ExclusiveFieldsKey])

	rec = do(e, http.MethodPost, "/levels",
		`{"office-id":"SPK","location-level-id":"Folsom.Elev.Inst.0.Top of Dam","level-date":"2020-01-01T00:00:00Z","constant-value":480}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLocations(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/locations", `{"office-id":"SWT","name":"Keystone","latitude":36.15}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	loc := decode[dto.Location](t, rec)
	require.NotNil(t, loc.Active)
	assert.True(t, *loc.Active)

	rec = do(e, http.MethodPatch, "/locations/SWT/Keystone", `{"elevation": 754.5, "active": "false"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	loc = decode[dto.Location](t, rec)
	assert.Equal(t, 754.5, *loc.Elevation)
	assert.False(t, *loc.Active)

	rec = do(e, http.MethodPatch, "/locations/SWT/Keystone", `{"latitude": 100}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"latitude"}, decode[apperr.Body](t, rec).Details[apperr.InvalidFieldsKey])

	rec = do(e, http.MethodPatch, "/locations/SWT/Keystone", `{"colour": "blue", "active": "maybe"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"active", "colour"}, decode[apperr.Body](t, rec).Details[apperr.InvalidFieldsKey])

	rec = do(e, http.MethodPatch, "/locations/SWT/Nowhere", `{"elevation": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPatch, "/locations/SWT/Keystone", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfficeTypes(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/offices/types", "")
	require.Equal(t, http.StatusOK, rec.Code)
	types := decode[[]officeType](t, rec)
	require.Len(t, types, len(dto.OfficeTypes))
	assert.Equal(t, officeType{Code: "DIS", Description: "district"}, types[0])
}
