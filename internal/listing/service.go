// Package listing serves paged listings and validated writes on top of the
// storage readers.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// DefaultWindow is the span of a time series request without a begin time.
const DefaultWindow = 24 * time.Hour

type Service struct {
	store   storage.Store
	catalog storage.CatalogReader
	now     func() time.Time
}

type Option func(*Service)

// WithCatalog serves catalog listings from reader instead of the store.
func WithCatalog(reader storage.CatalogReader) Option {
	return func(s *Service) {
		s.catalog = reader
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: store,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Clobs(ctx context.Context, f query.Clobs, req pagination.CursorRequest) (*dto.Clobs, error) {
	page, err := pagination.PaginateKeyset(ctx, pagination.KeysetFuncs[dto.Clob]{
		Fetch: func(ctx context.Context, afterKey string, limit int) ([]dto.Clob, error) {
			return s.store.FetchClobs(ctx, f, afterKey, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountClobs(ctx, f)
		},
	}, req, dto.Clob.Key)
	if err != nil {
		return nil, fmt.Errorf("list clobs: %w", err)
	}
	return dto.NewClobs(page), nil
}

func (s *Service) Clob(ctx context.Context, office, id string) (*dto.Clob, error) {
	return s.store.GetClob(ctx, office, id)
}

func (s *Service) Blobs(ctx context.Context, f query.Blobs, req pagination.CursorRequest) (*dto.Blobs, error) {
	page, err := pagination.PaginateKeyset(ctx, pagination.KeysetFuncs[dto.Blob]{
		Fetch: func(ctx context.Context, afterKey string, limit int) ([]dto.Blob, error) {
			return s.store.FetchBlobs(ctx, f, afterKey, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountBlobs(ctx, f)
		},
	}, req, dto.Blob.Key)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	return dto.NewBlobs(page), nil
}

func (s *Service) Pools(ctx context.Context, f query.Pools, req pagination.CursorRequest) (*dto.Pools, error) {
	page, err := pagination.PaginateKeyset(ctx, pagination.KeysetFuncs[dto.Pool]{
		Fetch: func(ctx context.Context, afterKey string, limit int) ([]dto.Pool, error) {
			return s.store.FetchPools(ctx, f, afterKey, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountPools(ctx, f)
		},
	}, req, dto.Pool.Key)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	return dto.NewPools(page), nil
}

func (s *Service) Levels(ctx context.Context, f query.Levels, req pagination.CursorRequest) (*dto.LocationLevels, error) {
	page, err := pagination.PaginateOffset(ctx, pagination.OffsetFuncs[dto.LocationLevel]{
		Fetch: func(ctx context.Context, offset int, limit int) ([]dto.LocationLevel, error) {
			return s.store.FetchLevels(ctx, f, offset, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountLevels(ctx, f)
		},
	}, req)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	return dto.NewLocationLevels(page), nil
}

func (s *Service) Descriptors(ctx context.Context, f query.Descriptors, req pagination.CursorRequest) (*dto.TimeSeriesIdentifierDescriptors, error) {
	page, err := pagination.PaginateOffset(ctx, pagination.OffsetFuncs[dto.TimeSeriesIdentifierDescriptor]{
		Fetch: func(ctx context.Context, offset int, limit int) ([]dto.TimeSeriesIdentifierDescriptor, error) {
			return s.store.FetchDescriptors(ctx, f, offset, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountDescriptors(ctx, f)
		},
	}, req)
	if err != nil {
		return nil, fmt.Errorf("list descriptors: %w", err)
	}
	return dto.NewTimeSeriesIdentifierDescriptors(page), nil
}

// Catalog lists one page of a dataset. Once a cursor is issued its filters
// replace whatever the request carries.
func (s *Service) Catalog(ctx context.Context, ds query.Dataset, f query.Catalog, req pagination.CursorRequest) (*dto.Catalog, error) {
	state := dto.CatalogPage{Filter: f, PageSize: req.Size}

	if req.First() {
		total, err := s.catalog.CountCatalog(ctx, ds, f)
		if err != nil {
			return nil, fmt.Errorf("count catalog: %w", err)
		}
		state.Total = &total
	} else {
		decoded, err := dto.DecodeCatalogPage(*req.Cursor)
		if err != nil {
			return nil, fmt.Errorf("list catalog: %w", err)
		}
		state = decoded
	}

	entries, err := s.catalog.FetchCatalog(ctx, ds, state.Filter, state.LastKey, state.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	page, err := pagination.NewBuilder(req.Cursor, state.PageSize, state.Total, dto.CatalogCursor(state.Filter)).
		AddAll(entries).
		Build()
	if err != nil {
		return nil, err
	}
	return dto.NewCatalog(page), nil
}

// TimeSeries returns one page of values of a series. End defaults to now and
// begin to DefaultWindow before end.
func (s *Service) TimeSeries(ctx context.Context, f query.TimeSeries, req pagination.CursorRequest) (*dto.TimeSeries, error) {
	v := validation.New()
	v.RequiredString(f.Office, "office")
	v.RequiredString(f.Name, "name")
	if err := v.Finish(); err != nil {
		return nil, err
	}

	if f.End.IsZero() {
		f.End = s.now().UTC()
	}
	if f.Begin.IsZero() {
		f.Begin = f.End.Add(-DefaultWindow)
	}
	if f.Begin.After(f.End) {
		return nil, apperr.NewValidation("begin must not be after end")
	}

	series, err := s.store.GetSeries(ctx, f.Office, f.Name)
	if err != nil {
		return nil, err
	}

	page, err := pagination.PaginateRawKeyset(ctx, pagination.KeysetFuncs[dto.Record]{
		Fetch: func(ctx context.Context, afterKey string, limit int) ([]dto.Record, error) {
			return s.store.FetchRecords(ctx, f, afterKey, limit)
		},
		Count: func(ctx context.Context) (int, error) {
			return s.store.CountRecords(ctx, f)
		},
		Check: dto.CheckRecordKey,
	}, req, dto.RecordKey)
	if err != nil {
		return nil, fmt.Errorf("list time series values: %w", err)
	}

	series.Meta = page.Meta
	series.Begin = f.Begin
	series.End = f.End
	series.Values = page.Items
	return series, nil
}

func (s *Service) CreateClob(ctx context.Context, clob dto.Clob) error {
	if err := validation.Validate(&clob); err != nil {
		return err
	}
	if err := s.store.SaveClob(ctx, clob); err != nil {
		return err
	}
	slog.Info("Clob created", "office", clob.OfficeID, "id", clob.ID)
	return nil
}

func (s *Service) CreateLevel(ctx context.Context, opts dto.LocationLevelOptions) (*dto.LocationLevel, error) {
	level, err := dto.NewLocationLevel(opts)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveLevel(ctx, *level); err != nil {
		return nil, err
	}
	slog.Info("Location level stored", "office", level.OfficeID, "id", level.LocationLevelID)
	return level, nil
}

func (s *Service) CreateLocation(ctx context.Context, opts dto.LocationOptions) (*dto.Location, error) {
	loc, err := dto.NewLocation(opts)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveLocation(ctx, *loc); err != nil {
		return nil, err
	}
	slog.Info("Location created", "office", loc.OfficeID, "name", loc.Name)
	return loc, nil
}

func (s *Service) Location(ctx context.Context, office, name string) (*dto.Location, error) {
	return s.store.GetLocation(ctx, office, name)
}

// PatchLocation applies named property values to a stored location. Identity
// fields are not properties and cannot be patched. Nothing is written unless
// every property applies and the result is valid.
func (s *Service) PatchLocation(ctx context.Context, office, name string, props map[string]any) (*dto.Location, error) {
	loc, err := s.store.GetLocation(ctx, office, name)
	if err != nil {
		return nil, err
	}

	if err := loc.ApplyProperties(props); err != nil {
		return nil, err
	}
	if err := validation.Validate(loc); err != nil {
		return nil, err
	}
	if err := s.store.UpdateLocation(ctx, *loc); err != nil {
		return nil, err
	}
	return loc, nil
}
