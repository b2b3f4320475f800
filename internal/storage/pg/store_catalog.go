package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

const catalogColumns = `dataset, office, name, bounding_office, kind, time_zone, units, ts_interval,
	interval_offset, active, groups, earliest_time, latest_time`

func catalogWhere(ds query.Dataset, f query.Catalog) (*where, error) {
	categoryLike, groupLike := f.LocCategoryLike, f.LocGroupLike
	if ds == query.DatasetTimeSeries {
		categoryLike, groupLike = f.TsCategoryLike, f.TsGroupLike
	}

	id, err := query.Compile("like", f.IDLike)
	if err != nil {
		return nil, err
	}
	bounding, err := query.Compile("bounding-office-like", f.BoundingOfficeLike)
	if err != nil {
		return nil, err
	}
	category, err := query.Compile("category-like", categoryLike)
	if err != nil {
		return nil, err
	}
	group, err := query.Compile("group-like", groupLike)
	if err != nil {
		return nil, err
	}

	w := &where{}
	w.add("dataset = " + w.arg(string(ds)))
	w.office("office", f.Office)
	w.regex("name", id.Regex())
	w.regex("bounding_office", bounding.Regex())
	if category.Regex() != "" || group.Regex() != "" {
		inner := &where{args: w.args}
		inner.regex("g->>'category'", category.Regex())
		inner.regex("g->>'group'", group.Regex())
		w.args = inner.args
		w.add("EXISTS (SELECT 1 FROM jsonb_array_elements(groups) g" + inner.String() + ")")
	}
	if f.ExcludeEmpty && ds == query.DatasetTimeSeries {
		w.add("earliest_time IS NOT NULL")
	}
	return w, nil
}

func (s *Store) FetchCatalog(ctx context.Context, ds query.Dataset, f query.Catalog, afterKey string, limit int) ([]dto.CatalogEntry, error) {
	w, err := catalogWhere(ds, f)
	if err != nil {
		return nil, err
	}
	w.after("cursor_key", afterKey)
	sql := "SELECT " + catalogColumns + " FROM catalog_entry" + w.String() +
		" ORDER BY cursor_key LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.CatalogEntry, error) {
		var e dto.CatalogEntry
		var dataset string
		var earliest, latest *string
		err := row.Scan(&dataset, &e.Office, &e.Name, &e.BoundingOffice, &e.LocationKind, &e.TimeZone,
			&e.Units, &e.Interval, &e.IntervalOffset, &e.Active, &e.Groups, &earliest, &latest)
		e.Dataset = query.Dataset(dataset)
		if f.IncludeExtents && earliest != nil && latest != nil {
			e.Extents = &dto.Extents{Earliest: *earliest, Latest: *latest}
		}
		return e, err
	})
}

func (s *Store) CountCatalog(ctx context.Context, ds query.Dataset, f query.Catalog) (int, error) {
	w, err := catalogWhere(ds, f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "catalog_entry", w)
}

// SaveCatalogEntries upserts entries in one batch.
func (s *Store) SaveCatalogEntries(ctx context.Context, entries []dto.CatalogEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		var earliest, latest *string
		if e.Extents != nil {
			earliest, latest = &e.Extents.Earliest, &e.Extents.Latest
		}
		groups := e.Groups
		if groups == nil {
			groups = []dto.GroupRef{}
		}
		batch.Queue(`
			INSERT INTO catalog_entry (`+catalogColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (dataset, office, name) DO UPDATE SET
				bounding_office = EXCLUDED.bounding_office, kind = EXCLUDED.kind,
				time_zone = EXCLUDED.time_zone, units = EXCLUDED.units, ts_interval = EXCLUDED.ts_interval,
				interval_offset = EXCLUDED.interval_offset, active = EXCLUDED.active, groups = EXCLUDED.groups,
				earliest_time = EXCLUDED.earliest_time, latest_time = EXCLUDED.latest_time`,
			string(e.Dataset), e.Office, e.Name, e.BoundingOffice, e.LocationKind, e.TimeZone,
			e.Units, e.Interval, e.IntervalOffset, e.Active, groups, earliest, latest)
	}

	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save catalog entries: %w", err)
	}
	slog.Info("Saved catalog entries", "count", len(entries))
	return nil
}

func (s *Store) GetSeries(ctx context.Context, office, name string) (*dto.TimeSeries, error) {
	w := &where{}
	w.office("office_id", office)
	w.add("upper(name) = upper(" + w.arg(name) + ")")

	series, err := collect(ctx, s, "SELECT office_id, name, units, ts_interval FROM ts"+w.String(), w.args,
		func(row pgx.CollectableRow) (dto.TimeSeries, error) {
			var ts dto.TimeSeries
			err := row.Scan(&ts.OfficeID, &ts.Name, &ts.Units, &ts.Interval)
			return ts, err
		})
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, apperr.NewNotFound("time series", office+"/"+name)
	}
	return &series[0], nil
}

func recordWhere(f query.TimeSeries) *where {
	w := &where{}
	w.office("office_id", f.Office)
	w.add("upper(name) = upper(" + w.arg(f.Name) + ")")
	w.add("date_time BETWEEN " + w.arg(f.Begin) + " AND " + w.arg(f.End))
	return w
}

func (s *Store) FetchRecords(ctx context.Context, f query.TimeSeries, afterKey string, limit int) ([]dto.Record, error) {
	w := recordWhere(f)
	if afterKey != "" {
		after, err := dto.ParseRecordKey(afterKey)
		if err != nil {
			return nil, pagination.InvalidCursor("invalid record key", err)
		}
		w.add("date_time > " + w.arg(after))
	}
	sql := "SELECT date_time, value, quality_code FROM ts_value" + w.String() +
		" ORDER BY date_time LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.Record, error) {
		var r dto.Record
		err := row.Scan(&r.DateTime, &r.Value, &r.QualityCode)
		r.DateTime = r.DateTime.UTC()
		return r, err
	})
}

func (s *Store) CountRecords(ctx context.Context, f query.TimeSeries) (int, error) {
	return s.count(ctx, "ts_value", recordWhere(f))
}

// SaveRecords stores the header of a series and upserts its values.
func (s *Store) SaveRecords(ctx context.Context, header dto.TimeSeries, values []dto.Record) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO ts (office_id, name, units, ts_interval) VALUES ($1, $2, $3, $4)
		ON CONFLICT (office_id, name) DO UPDATE SET units = EXCLUDED.units, ts_interval = EXCLUDED.ts_interval`,
		header.OfficeID, header.Name, header.Units, header.Interval)
	for _, r := range values {
		batch.Queue(`
			INSERT INTO ts_value (office_id, name, date_time, value, quality_code) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (office_id, name, date_time) DO UPDATE SET value = EXCLUDED.value, quality_code = EXCLUDED.quality_code`,
			header.OfficeID, header.Name, r.DateTime.Truncate(time.Microsecond), r.Value, r.QualityCode)
	}

	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}
