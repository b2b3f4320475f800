package in_mem

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// InMemStorer keeps every resource in maps keyed by its upper-cased natural key.
type InMemStorer struct {
	storageLock sync.RWMutex

	clobs       map[string]dto.Clob
	blobs       map[string]dto.Blob
	pools       map[string]dto.Pool
	levels      map[string]dto.LocationLevel
	descriptors map[string]dto.TimeSeriesIdentifierDescriptor
	locations   map[string]dto.Location
	catalog     map[string]dto.CatalogEntry
	series      map[string]*series
}

type series struct {
	header dto.TimeSeries
	values []dto.Record
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		clobs:       make(map[string]dto.Clob),
		blobs:       make(map[string]dto.Blob),
		pools:       make(map[string]dto.Pool),
		levels:      make(map[string]dto.LocationLevel),
		descriptors: make(map[string]dto.TimeSeriesIdentifierDescriptor),
		locations:   make(map[string]dto.Location),
		catalog:     make(map[string]dto.CatalogEntry),
		series:      make(map[string]*series),
	}
}

var _ storage.Store = (*InMemStorer)(nil)
var _ storage.Importer = (*InMemStorer)(nil)

func (s *InMemStorer) FetchClobs(_ context.Context, f query.Clobs, afterKey string, limit int) ([]dto.Clob, error) {
	keep, err := clobFilter(f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := keysetSlice(s.clobs, keep, afterKey, limit)
	if !f.IncludeValues {
		for i := range out {
			out[i].Value = ""
		}
	}
	return out, nil
}

func (s *InMemStorer) CountClobs(_ context.Context, f query.Clobs) (int, error) {
	keep, err := clobFilter(f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.clobs, keep), nil
}

func (s *InMemStorer) GetClob(_ context.Context, office, id string) (*dto.Clob, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	clob, ok := s.clobs[dto.Clob{OfficeID: office, ID: id}.Key()]
	if !ok {
		return nil, apperr.NewNotFound("clob", office+"/"+id)
	}
	return &clob, nil
}

func (s *InMemStorer) SaveClob(_ context.Context, clob dto.Clob) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	key := clob.Key()
	if _, ok := s.clobs[key]; ok {
		return apperr.NewConflict("clob", key)
	}
	s.clobs[key] = clob
	slog.Info("Saved clob to in-memory storage", "office", clob.OfficeID, "id", clob.ID)
	return nil
}

func (s *InMemStorer) FetchBlobs(_ context.Context, f query.Blobs, afterKey string, limit int) ([]dto.Blob, error) {
	keep, err := blobFilter(f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := keysetSlice(s.blobs, keep, afterKey, limit)
	for i := range out {
		out[i].Value = nil
	}
	return out, nil
}

func (s *InMemStorer) CountBlobs(_ context.Context, f query.Blobs) (int, error) {
	keep, err := blobFilter(f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.blobs, keep), nil
}

func (s *InMemStorer) FetchPools(_ context.Context, f query.Pools, afterKey string, limit int) ([]dto.Pool, error) {
	keep, err := poolFilter(f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return keysetSlice(s.pools, keep, afterKey, limit), nil
}

func (s *InMemStorer) CountPools(_ context.Context, f query.Pools) (int, error) {
	keep, err := poolFilter(f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.pools, keep), nil
}

func (s *InMemStorer) FetchLevels(_ context.Context, f query.Levels, offset int, limit int) ([]dto.LocationLevel, error) {
	keep, err := levelFilter(f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return offsetSlice(s.levels, keep, offset, limit), nil
}

func (s *InMemStorer) CountLevels(_ context.Context, f query.Levels) (int, error) {
	keep, err := levelFilter(f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.levels, keep), nil
}

func (s *InMemStorer) SaveLevel(_ context.Context, level dto.LocationLevel) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.levels[level.Key()] = level
	slog.Info("Saved location level to in-memory storage", "office", level.OfficeID, "id", level.LocationLevelID)
	return nil
}

func (s *InMemStorer) FetchDescriptors(_ context.Context, f query.Descriptors, offset int, limit int) ([]dto.TimeSeriesIdentifierDescriptor, error) {
	keep, err := descriptorFilter(f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return offsetSlice(s.descriptors, keep, offset, limit), nil
}

func (s *InMemStorer) CountDescriptors(_ context.Context, f query.Descriptors) (int, error) {
	keep, err := descriptorFilter(f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.descriptors, keep), nil
}

func (s *InMemStorer) FetchCatalog(_ context.Context, ds query.Dataset, f query.Catalog, afterKey string, limit int) ([]dto.CatalogEntry, error) {
	keep, err := catalogFilter(ds, f)
	if err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := keysetSlice(s.catalog, keep, afterKey, limit)
	if !f.IncludeExtents {
		for i := range out {
			out[i].Extents = nil
		}
	}
	return out, nil
}

func (s *InMemStorer) CountCatalog(_ context.Context, ds query.Dataset, f query.Catalog) (int, error) {
	keep, err := catalogFilter(ds, f)
	if err != nil {
		return 0, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return count(s.catalog, keep), nil
}

func (s *InMemStorer) GetSeries(_ context.Context, office, name string) (*dto.TimeSeries, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ts, ok := s.series[dto.CwmsID{OfficeID: office, Name: name}.Key()]
	if !ok {
		return nil, apperr.NewNotFound("time series", office+"/"+name)
	}
	header := ts.header
	return &header, nil
}

func (s *InMemStorer) FetchRecords(_ context.Context, f query.TimeSeries, afterKey string, limit int) ([]dto.Record, error) {
	var after time.Time
	if afterKey != "" {
		var err error
		if after, err = dto.ParseRecordKey(afterKey); err != nil {
			return nil, pagination.InvalidCursor("invalid record key", err)
		}
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ts, ok := s.series[dto.CwmsID{OfficeID: f.Office, Name: f.Name}.Key()]
	if !ok {
		return []dto.Record{}, nil
	}

	out := make([]dto.Record, 0, limit)
	for _, r := range ts.values {
		if len(out) == limit {
			break
		}
		if r.DateTime.Before(f.Begin) || r.DateTime.After(f.End) {
			continue
		}
		if afterKey != "" && !r.DateTime.After(after) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *InMemStorer) CountRecords(_ context.Context, f query.TimeSeries) (int, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ts, ok := s.series[dto.CwmsID{OfficeID: f.Office, Name: f.Name}.Key()]
	if !ok {
		return 0, nil
	}
	n := 0
	for _, r := range ts.values {
		if !r.DateTime.Before(f.Begin) && !r.DateTime.After(f.End) {
			n++
		}
	}
	return n, nil
}

func (s *InMemStorer) GetLocation(_ context.Context, office, name string) (*dto.Location, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	loc, ok := s.locations[dto.CwmsID{OfficeID: office, Name: name}.Key()]
	if !ok {
		return nil, apperr.NewNotFound("location", office+"/"+name)
	}
	return &loc, nil
}

func (s *InMemStorer) SaveLocation(_ context.Context, loc dto.Location) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	key := loc.Key()
	if _, ok := s.locations[key]; ok {
		return apperr.NewConflict("location", key)
	}
	s.putLocation(loc)
	slog.Info("Saved location to in-memory storage", "office", loc.OfficeID, "name", loc.Name)
	return nil
}

func (s *InMemStorer) UpdateLocation(_ context.Context, loc dto.Location) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	key := loc.Key()
	if _, ok := s.locations[key]; !ok {
		return apperr.NewNotFound("location", key)
	}
	s.putLocation(loc)
	return nil
}

func (s *InMemStorer) SaveBlob(_ context.Context, blob dto.Blob) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.blobs[blob.Key()] = blob
	return nil
}

func (s *InMemStorer) SavePool(_ context.Context, pool dto.Pool) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.pools[pool.Key()] = pool
	return nil
}

func (s *InMemStorer) SaveDescriptors(_ context.Context, descriptors []dto.TimeSeriesIdentifierDescriptor) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	for _, d := range descriptors {
		s.descriptors[d.Key()] = d
	}
	return nil
}

func (s *InMemStorer) SaveCatalogEntries(_ context.Context, entries []dto.CatalogEntry) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	for _, e := range entries {
		s.putCatalog(e)
	}
	return nil
}

// SaveRecords replaces the header of a series and merges values by date.
func (s *InMemStorer) SaveRecords(_ context.Context, header dto.TimeSeries, values []dto.Record) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	merged := make(map[int64]dto.Record)
	if existing, ok := s.series[dto.CwmsID{OfficeID: header.OfficeID, Name: header.Name}.Key()]; ok {
		for _, r := range existing.values {
			merged[r.DateTime.UnixMicro()] = r
		}
	}
	for _, r := range values {
		merged[r.DateTime.UnixMicro()] = r
	}

	header.Values = nil
	s.putSeries(header, slices.Collect(maps.Values(merged)))
	return nil
}

// putLocation stores loc and mirrors it into the locations catalog. Caller
// holds the write lock.
func (s *InMemStorer) putLocation(loc dto.Location) {
	key := loc.Key()
	s.locations[key] = loc

	entry := s.catalog[string(query.DatasetLocations)+"|"+key]
	entry.Dataset = query.DatasetLocations
	entry.Office = loc.OfficeID
	entry.Name = loc.Name
	entry.BoundingOffice = loc.BoundingOfficeID
	entry.LocationKind = loc.LocationKind
	entry.TimeZone = loc.TimezoneName
	entry.Active = loc.Active == nil || *loc.Active
	s.putCatalog(entry)
}

func (s *InMemStorer) putCatalog(e dto.CatalogEntry) {
	s.catalog[string(e.Dataset)+"|"+dto.CwmsID{OfficeID: e.Office, Name: e.Name}.Key()] = e
}

func (s *InMemStorer) putSeries(header dto.TimeSeries, values []dto.Record) {
	sorted := slices.Clone(values)
	for i := range sorted {
		sorted[i].DateTime = sorted[i].DateTime.Truncate(time.Microsecond)
	}
	slices.SortFunc(sorted, func(a, b dto.Record) int {
		return a.DateTime.Compare(b.DateTime)
	})
	s.series[dto.CwmsID{OfficeID: header.OfficeID, Name: header.Name}.Key()] = &series{
		header: header,
		values: sorted,
	}
}

type keyed interface {
	Key() string
}

// keysetSlice returns up to limit kept values whose key sorts after afterKey.
func keysetSlice[V keyed](m map[string]V, keep func(V) bool, afterKey string, limit int) []V {
	out := make([]V, 0, limit)
	for _, v := range sortedValues(m, keep) {
		if len(out) == limit {
			break
		}
		if afterKey != "" && v.Key() <= afterKey {
			continue
		}
		out = append(out, v)
	}
	return out
}

func offsetSlice[V keyed](m map[string]V, keep func(V) bool, offset, limit int) []V {
	all := sortedValues(m, keep)
	if offset >= len(all) {
		return []V{}
	}
	end := min(offset+limit, len(all))
	return slices.Clone(all[offset:end])
}

func count[V any](m map[string]V, keep func(V) bool) int {
	n := 0
	for _, v := range m {
		if keep(v) {
			n++
		}
	}
	return n
}

func sortedValues[V keyed](m map[string]V, keep func(V) bool) []V {
	var out []V
	for v := range maps.Values(m) {
		if keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b V) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return out
}
