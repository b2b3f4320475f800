package in_mem

import (
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
)

func officeMatches(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

func clobFilter(f query.Clobs) (func(dto.Clob) bool, error) {
	like, err := query.Compile("like", f.IDLike)
	if err != nil {
		return nil, err
	}
	return func(c dto.Clob) bool {
		return officeMatches(f.Office, c.OfficeID) && like.Match(c.ID)
	}, nil
}

func blobFilter(f query.Blobs) (func(dto.Blob) bool, error) {
	like, err := query.Compile("like", f.IDLike)
	if err != nil {
		return nil, err
	}
	return func(b dto.Blob) bool {
		return officeMatches(f.Office, b.OfficeID) && like.Match(b.ID)
	}, nil
}

func poolFilter(f query.Pools) (func(dto.Pool) bool, error) {
	project, err := query.CompileMask("project-id-mask", f.ProjectIDMask)
	if err != nil {
		return nil, err
	}
	name, err := query.CompileMask("name-mask", f.NameMask)
	if err != nil {
		return nil, err
	}
	bottom, err := query.CompileMask("bottom-level-mask", f.BottomLevelMask)
	if err != nil {
		return nil, err
	}
	top, err := query.CompileMask("top-level-mask", f.TopLevelMask)
	if err != nil {
		return nil, err
	}
	return func(p dto.Pool) bool {
		if p.Implicit && !f.IncludeImplicit || !p.Implicit && !f.IncludeExplicit {
			return false
		}
		return officeMatches(f.Office, p.ProjectID.OfficeID) &&
			project.Match(p.ProjectID.Name) &&
			name.Match(p.Name) &&
			bottom.Match(p.BottomLevelID) &&
			top.Match(p.TopLevelID)
	}, nil
}

func levelFilter(f query.Levels) (func(dto.LocationLevel) bool, error) {
	mask, err := query.CompileMask("level-id-mask", f.LevelIDMask)
	if err != nil {
		return nil, err
	}
	return func(l dto.LocationLevel) bool {
		return officeMatches(f.Office, l.OfficeID) && mask.Match(l.LocationLevelID)
	}, nil
}

func descriptorFilter(f query.Descriptors) (func(dto.TimeSeriesIdentifierDescriptor) bool, error) {
	re, err := query.Compile("timeseries-id-regex", f.IDRegex)
	if err != nil {
		return nil, err
	}
	return func(d dto.TimeSeriesIdentifierDescriptor) bool {
		return officeMatches(f.Office, d.OfficeID) && re.Match(d.TimeSeriesID)
	}, nil
}

func catalogFilter(ds query.Dataset, f query.Catalog) (func(dto.CatalogEntry) bool, error) {
	m, err := newCatalogMatcher(ds, f)
	if err != nil {
		return nil, err
	}
	return m.match, nil
}

type catalogMatcher struct {
	dataset      query.Dataset
	office       string
	excludeEmpty bool

	id, bounding, category, group query.Pattern
}

func newCatalogMatcher(ds query.Dataset, f query.Catalog) (*catalogMatcher, error) {
	categoryLike, groupLike := f.LocCategoryLike, f.LocGroupLike
	if ds == query.DatasetTimeSeries {
		categoryLike, groupLike = f.TsCategoryLike, f.TsGroupLike
	}

	m := &catalogMatcher{dataset: ds, office: f.Office, excludeEmpty: f.ExcludeEmpty}
	var err error
	if m.id, err = query.Compile("like", f.IDLike); err != nil {
		return nil, err
	}
	if m.bounding, err = query.Compile("bounding-office-like", f.BoundingOfficeLike); err != nil {
		return nil, err
	}
	if m.category, err = query.Compile("category-like", categoryLike); err != nil {
		return nil, err
	}
	if m.group, err = query.Compile("group-like", groupLike); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *catalogMatcher) match(e dto.CatalogEntry) bool {
	if e.Dataset != m.dataset || !officeMatches(m.office, e.Office) {
		return false
	}
	if m.excludeEmpty && e.Empty() {
		return false
	}
	if !m.id.Match(e.Name) || !m.bounding.Match(e.BoundingOffice) {
		return false
	}
	if m.category.Regex() == "" && m.group.Regex() == "" {
		return true
	}
	for _, g := range e.Groups {
		if m.category.Match(g.Category) && m.group.Match(g.Group) {
			return true
		}
	}
	return false
}
