package dto

import (
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

const catalogPageArity = 12

// CatalogPage is the state of a catalog listing between pages. It pins the
// filters of the first request so every later page searches the same set.
type CatalogPage struct {
	LastKey  string
	Filter   query.Catalog
	Total    *int
	PageSize int
}

func (p CatalogPage) Encode() (string, error) {
	f := p.Filter
	return pagination.NewCursorWriter().
		String(p.LastKey).
		OptString(nonEmpty(f.Office)).
		OptString(nonEmpty(f.IDLike)).
		OptString(nonEmpty(f.LocCategoryLike)).
		OptString(nonEmpty(f.LocGroupLike)).
		OptString(nonEmpty(f.TsCategoryLike)).
		OptString(nonEmpty(f.TsGroupLike)).
		OptString(nonEmpty(f.BoundingOfficeLike)).
		Bool(f.IncludeExtents).
		Bool(f.ExcludeEmpty).
		OptInt(p.Total).
		Int(p.PageSize).
		Encode()
}

func DecodeCatalogPage(token string) (CatalogPage, error) {
	r, err := pagination.NewCursorReader(token, catalogPageArity)
	if err != nil {
		return CatalogPage{}, err
	}

	p := CatalogPage{LastKey: r.String()}
	p.Filter = query.Catalog{
		Office:             deref(r.OptString()),
		IDLike:             deref(r.OptString()),
		LocCategoryLike:    deref(r.OptString()),
		LocGroupLike:       deref(r.OptString()),
		TsCategoryLike:     deref(r.OptString()),
		TsGroupLike:        deref(r.OptString()),
		BoundingOfficeLike: deref(r.OptString()),
		IncludeExtents:     r.Bool(),
		ExcludeEmpty:       r.Bool(),
	}
	p.Total = r.OptInt()
	p.PageSize = r.Int()
	if err := r.Err(); err != nil {
		return CatalogPage{}, err
	}

	if _, _, err := pagination.SplitKey(p.LastKey); err != nil {
		return CatalogPage{}, err
	}
	if err := pagination.CheckPageSize(p.PageSize); err != nil {
		return CatalogPage{}, err
	}
	return p, nil
}

// CatalogCursor derives the next catalog page cursor from the last entry.
func CatalogCursor(filter query.Catalog) pagination.NextFunc[CatalogEntry] {
	return func(last CatalogEntry, meta pagination.Meta, _ int) (string, error) {
		key, err := last.CursorKey()
		if err != nil {
			return "", err
		}
		return CatalogPage{
			LastKey:  key,
			Filter:   filter,
			Total:    meta.Total,
			PageSize: meta.PageSize,
		}.Encode()
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
