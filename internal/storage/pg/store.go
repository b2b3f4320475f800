package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/storage"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store serves every resource from PostgreSQL. Keyset pages compare and order
// by the generated cursor_key columns.
type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool, db: pool.GetConn()}
}

func collect[T any](ctx context.Context, s *Store, sql string, args []any, scan func(pgx.CollectableRow) (T, error)) ([]T, error) {
	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rows: %w", err)
	}
	return out, nil
}

func (s *Store) count(ctx context.Context, table string, w *where) (int, error) {
	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()

	var n int
	if err := s.db.QueryRow(ctx, "SELECT count(*) FROM "+table+w.String(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func (s *Store) exec(ctx context.Context, sql string, args ...any) (int64, error) {
	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func clobWhere(f query.Clobs) (*where, error) {
	like, err := query.Compile("like", f.IDLike)
	if err != nil {
		return nil, err
	}
	w := &where{}
	w.office("office_id", f.Office)
	w.regex("id", like.Regex())
	return w, nil
}

func (s *Store) FetchClobs(ctx context.Context, f query.Clobs, afterKey string, limit int) ([]dto.Clob, error) {
	w, err := clobWhere(f)
	if err != nil {
		return nil, err
	}
	w.after("cursor_key", afterKey)

	value := "''"
	if f.IncludeValues {
		value = "value"
	}
	sql := "SELECT office_id, id, description, " + value + " FROM clob" + w.String() +
		" ORDER BY cursor_key LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.Clob, error) {
		var c dto.Clob
		err := row.Scan(&c.OfficeID, &c.ID, &c.Description, &c.Value)
		return c, err
	})
}

func (s *Store) CountClobs(ctx context.Context, f query.Clobs) (int, error) {
	w, err := clobWhere(f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "clob", w)
}

func (s *Store) GetClob(ctx context.Context, office, id string) (*dto.Clob, error) {
	w := &where{}
	w.add("cursor_key = " + w.arg(dto.Clob{OfficeID: office, ID: id}.Key()))

	clobs, err := collect(ctx, s, "SELECT office_id, id, description, value FROM clob"+w.String(), w.args,
		func(row pgx.CollectableRow) (dto.Clob, error) {
			var c dto.Clob
			err := row.Scan(&c.OfficeID, &c.ID, &c.Description, &c.Value)
			return c, err
		})
	if err != nil {
		return nil, err
	}
	if len(clobs) == 0 {
		return nil, apperr.NewNotFound("clob", office+"/"+id)
	}
	return &clobs[0], nil
}

func (s *Store) SaveClob(ctx context.Context, clob dto.Clob) error {
	n, err := s.exec(ctx,
		`INSERT INTO clob (office_id, id, description, value) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		clob.OfficeID, clob.ID, clob.Description, clob.Value)
	if err != nil {
		return fmt.Errorf("failed to insert clob: %w", err)
	}
	if n == 0 {
		return apperr.NewConflict("clob", clob.Key())
	}
	slog.Info("Saved clob", "office", clob.OfficeID, "id", clob.ID)
	return nil
}

func blobWhere(f query.Blobs) (*where, error) {
	like, err := query.Compile("like", f.IDLike)
	if err != nil {
		return nil, err
	}
	w := &where{}
	w.office("office_id", f.Office)
	w.regex("id", like.Regex())
	return w, nil
}

func (s *Store) FetchBlobs(ctx context.Context, f query.Blobs, afterKey string, limit int) ([]dto.Blob, error) {
	w, err := blobWhere(f)
	if err != nil {
		return nil, err
	}
	w.after("cursor_key", afterKey)
	sql := "SELECT office_id, id, description, media_type_id FROM blob" + w.String() +
		" ORDER BY cursor_key LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.Blob, error) {
		var b dto.Blob
		err := row.Scan(&b.OfficeID, &b.ID, &b.Description, &b.MediaTypeID)
		return b, err
	})
}

func (s *Store) CountBlobs(ctx context.Context, f query.Blobs) (int, error) {
	w, err := blobWhere(f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "blob", w)
}

func poolWhere(f query.Pools) (*where, error) {
	masks := []struct {
		field, column, mask string
	}{
		{"project-id-mask", "project_id", f.ProjectIDMask},
		{"name-mask", "name", f.NameMask},
		{"bottom-level-mask", "bottom_level_id", f.BottomLevelMask},
		{"top-level-mask", "top_level_id", f.TopLevelMask},
	}

	w := &where{}
	w.office("office_id", f.Office)
	for _, m := range masks {
		p, err := query.CompileMask(m.field, m.mask)
		if err != nil {
			return nil, err
		}
		w.regex(m.column, p.Regex())
	}
	if !f.IncludeImplicit {
		w.add("NOT implicit")
	}
	if !f.IncludeExplicit {
		w.add("implicit")
	}
	return w, nil
}

func (s *Store) FetchPools(ctx context.Context, f query.Pools, afterKey string, limit int) ([]dto.Pool, error) {
	w, err := poolWhere(f)
	if err != nil {
		return nil, err
	}
	w.after("cursor_key", afterKey)
	sql := `SELECT office_id, project_id, name, bottom_level_id, top_level_id, implicit, attribute, description, clob_text
		FROM pool` + w.String() + " ORDER BY cursor_key LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.Pool, error) {
		var p dto.Pool
		err := row.Scan(&p.ProjectID.OfficeID, &p.ProjectID.Name, &p.Name, &p.BottomLevelID, &p.TopLevelID,
			&p.Implicit, &p.Attribute, &p.Description, &p.ClobText)
		return p, err
	})
}

func (s *Store) CountPools(ctx context.Context, f query.Pools) (int, error) {
	w, err := poolWhere(f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "pool", w)
}

func levelWhere(f query.Levels) (*where, error) {
	mask, err := query.CompileMask("level-id-mask", f.LevelIDMask)
	if err != nil {
		return nil, err
	}
	w := &where{}
	w.office("office_id", f.Office)
	w.regex("location_level_id", mask.Regex())
	return w, nil
}

func (s *Store) FetchLevels(ctx context.Context, f query.Levels, offset int, limit int) ([]dto.LocationLevel, error) {
	w, err := levelWhere(f)
	if err != nil {
		return nil, err
	}
	sql := "SELECT body FROM location_level" + w.String() +
		" ORDER BY upper(office_id), upper(location_level_id), level_date" +
		" OFFSET " + w.arg(offset) + " LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, scanJSON[dto.LocationLevel])
}

func (s *Store) CountLevels(ctx context.Context, f query.Levels) (int, error) {
	w, err := levelWhere(f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "location_level", w)
}

func (s *Store) SaveLevel(ctx context.Context, level dto.LocationLevel) error {
	if level.LevelDate == nil {
		return apperr.NewRequiredFields("level-date")
	}
	body, err := json.Marshal(level)
	if err != nil {
		return fmt.Errorf("failed to marshal location level: %w", err)
	}

	_, err = s.exec(ctx, `
		INSERT INTO location_level (office_id, location_level_id, level_date, body)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (office_id, location_level_id, level_date) DO UPDATE SET body = EXCLUDED.body`,
		level.OfficeID, level.LocationLevelID, *level.LevelDate, body)
	if err != nil {
		return fmt.Errorf("failed to save location level: %w", err)
	}
	slog.Info("Saved location level", "office", level.OfficeID, "id", level.LocationLevelID)
	return nil
}

func descriptorWhere(f query.Descriptors) (*where, error) {
	re, err := query.Compile("timeseries-id-regex", f.IDRegex)
	if err != nil {
		return nil, err
	}
	w := &where{}
	w.office("office_id", f.Office)
	w.regex("ts_id", re.Regex())
	return w, nil
}

func (s *Store) FetchDescriptors(ctx context.Context, f query.Descriptors, offset int, limit int) ([]dto.TimeSeriesIdentifierDescriptor, error) {
	w, err := descriptorWhere(f)
	if err != nil {
		return nil, err
	}
	sql := "SELECT office_id, ts_id, timezone_name, interval_offset_minutes, active FROM ts_descriptor" + w.String() +
		" ORDER BY upper(office_id), upper(ts_id) OFFSET " + w.arg(offset) + " LIMIT " + w.arg(limit)

	return collect(ctx, s, sql, w.args, func(row pgx.CollectableRow) (dto.TimeSeriesIdentifierDescriptor, error) {
		var d dto.TimeSeriesIdentifierDescriptor
		err := row.Scan(&d.OfficeID, &d.TimeSeriesID, &d.TimezoneName, &d.IntervalOffsetMinutes, &d.Active)
		return d, err
	})
}

func (s *Store) CountDescriptors(ctx context.Context, f query.Descriptors) (int, error) {
	w, err := descriptorWhere(f)
	if err != nil {
		return 0, err
	}
	return s.count(ctx, "ts_descriptor", w)
}

func (s *Store) GetLocation(ctx context.Context, office, name string) (*dto.Location, error) {
	w := &where{}
	w.office("office_id", office)
	w.add("upper(name) = upper(" + w.arg(name) + ")")

	locs, err := collect(ctx, s, "SELECT body FROM location"+w.String(), w.args, scanJSON[dto.Location])
	if err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		return nil, apperr.NewNotFound("location", office+"/"+name)
	}
	return &locs[0], nil
}

// SaveLocation inserts loc and its locations catalog entry in one transaction.
func (s *Store) SaveLocation(ctx context.Context, loc dto.Location) error {
	body, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()

	err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO location (office_id, name, body) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			loc.OfficeID, loc.Name, body)
		if err != nil {
			return fmt.Errorf("failed to insert location: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.NewConflict("location", loc.Key())
		}
		return upsertLocationEntry(ctx, tx, loc)
	})
	if err != nil {
		return err
	}
	slog.Info("Saved location", "office", loc.OfficeID, "name", loc.Name)
	return nil
}

func (s *Store) UpdateLocation(ctx context.Context, loc dto.Location) error {
	body, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE location SET body = $3 WHERE upper(office_id) = upper($1) AND upper(name) = upper($2)`,
			loc.OfficeID, loc.Name, body)
		if err != nil {
			return fmt.Errorf("failed to update location: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperr.NewNotFound("location", loc.Key())
		}
		return upsertLocationEntry(ctx, tx, loc)
	})
}

// upsertLocationEntry mirrors the catalog columns of loc, keeping its groups.
func upsertLocationEntry(ctx context.Context, tx pgx.Tx, loc dto.Location) error {
	active := loc.Active == nil || *loc.Active
	_, err := tx.Exec(ctx, `
		INSERT INTO catalog_entry (dataset, office, name, bounding_office, kind, time_zone, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (dataset, office, name) DO UPDATE SET
			bounding_office = EXCLUDED.bounding_office, kind = EXCLUDED.kind,
			time_zone = EXCLUDED.time_zone, active = EXCLUDED.active`,
		string(query.DatasetLocations), loc.OfficeID, loc.Name, loc.BoundingOfficeID,
		loc.LocationKind, loc.TimezoneName, active)
	if err != nil {
		return fmt.Errorf("failed to update location catalog: %w", err)
	}
	return nil
}

func (s *Store) SaveBlob(ctx context.Context, blob dto.Blob) error {
	_, err := s.exec(ctx, `
		INSERT INTO blob (office_id, id, description, media_type_id, value) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (office_id, id) DO UPDATE SET
			description = EXCLUDED.description, media_type_id = EXCLUDED.media_type_id, value = EXCLUDED.value`,
		blob.OfficeID, blob.ID, blob.Description, blob.MediaTypeID, blob.Value)
	if err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}
	return nil
}

func (s *Store) SavePool(ctx context.Context, pool dto.Pool) error {
	_, err := s.exec(ctx, `
		INSERT INTO pool (office_id, project_id, name, bottom_level_id, top_level_id, implicit, attribute, description, clob_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (office_id, project_id, name) DO UPDATE SET
			bottom_level_id = EXCLUDED.bottom_level_id, top_level_id = EXCLUDED.top_level_id,
			implicit = EXCLUDED.implicit, attribute = EXCLUDED.attribute,
			description = EXCLUDED.description, clob_text = EXCLUDED.clob_text`,
		pool.ProjectID.OfficeID, pool.ProjectID.Name, pool.Name, pool.BottomLevelID, pool.TopLevelID,
		pool.Implicit, pool.Attribute, pool.Description, pool.ClobText)
	if err != nil {
		return fmt.Errorf("failed to save pool: %w", err)
	}
	return nil
}

func (s *Store) SaveDescriptors(ctx context.Context, descriptors []dto.TimeSeriesIdentifierDescriptor) error {
	batch := &pgx.Batch{}
	for _, d := range descriptors {
		batch.Queue(`
			INSERT INTO ts_descriptor (office_id, ts_id, timezone_name, interval_offset_minutes, active)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (office_id, ts_id) DO UPDATE SET
				timezone_name = EXCLUDED.timezone_name,
				interval_offset_minutes = EXCLUDED.interval_offset_minutes, active = EXCLUDED.active`,
			d.OfficeID, d.TimeSeriesID, d.TimezoneName, d.IntervalOffsetMinutes, d.Active)
	}

	ctx, cancel := s.pool.queryCtx(ctx)
	defer cancel()
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save descriptors: %w", err)
	}
	return nil
}

func scanJSON[T any](row pgx.CollectableRow) (T, error) {
	var v T
	var body []byte
	if err := row.Scan(&body); err != nil {
		return v, err
	}
	err := json.Unmarshal(body, &v)
	return v, err
}

var _ storage.Store = (*Store)(nil)
var _ storage.Importer = (*Store)(nil)
