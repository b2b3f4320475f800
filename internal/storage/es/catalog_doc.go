package es

import (
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
)

// CatalogDocument is the indexed form of a catalog entry. Group categories and
// names are flattened so each can be filtered with a keyword regexp.
type CatalogDocument struct {
	CursorKey       string   `json:"cursor_key"`
	Dataset         string   `json:"dataset"`
	Office          string   `json:"office"`
	Name            string   `json:"name"`
	BoundingOffice  string   `json:"bounding_office"`
	Kind            string   `json:"kind"`
	TimeZone        string   `json:"time_zone"`
	Units           string   `json:"units"`
	Interval        string   `json:"interval"`
	IntervalOffset  *int64   `json:"interval_offset,omitempty"`
	Active          bool     `json:"active"`
	GroupCategories []string `json:"group_categories"`
	GroupNames      []string `json:"group_names"`
	EarliestTime    *string  `json:"earliest_time,omitempty"`
	LatestTime      *string  `json:"latest_time,omitempty"`
}

func toDocument(e dto.CatalogEntry) CatalogDocument {
	doc := CatalogDocument{
		CursorKey:      e.Key(),
		Dataset:        string(e.Dataset),
		Office:         e.Office,
		Name:           e.Name,
		BoundingOffice: e.BoundingOffice,
		Kind:           e.LocationKind,
		TimeZone:       e.TimeZone,
		Units:          e.Units,
		Interval:       e.Interval,
		IntervalOffset: e.IntervalOffset,
		Active:         e.Active,
	}
	for _, g := range e.Groups {
		doc.GroupCategories = append(doc.GroupCategories, g.Category)
		doc.GroupNames = append(doc.GroupNames, g.Group)
	}
	if e.Extents != nil {
		doc.EarliestTime = &e.Extents.Earliest
		doc.LatestTime = &e.Extents.Latest
	}
	return doc
}

func (d CatalogDocument) toEntry(includeExtents bool) dto.CatalogEntry {
	e := dto.CatalogEntry{
		Dataset:        query.Dataset(d.Dataset),
		Office:         d.Office,
		Name:           d.Name,
		BoundingOffice: d.BoundingOffice,
		LocationKind:   d.Kind,
		TimeZone:       d.TimeZone,
		Units:          d.Units,
		Interval:       d.Interval,
		IntervalOffset: d.IntervalOffset,
		Active:         d.Active,
	}
	for i := range min(len(d.GroupCategories), len(d.GroupNames)) {
		e.Groups = append(e.Groups, dto.GroupRef{Category: d.GroupCategories[i], Group: d.GroupNames[i]})
	}
	if includeExtents && d.EarliestTime != nil && d.LatestTime != nil {
		e.Extents = &dto.Extents{Earliest: *d.EarliestTime, Latest: *d.LatestTime}
	}
	return e
}

// documentID is unique per dataset.
func documentID(e dto.CatalogEntry) string {
	return string(e.Dataset) + ":" + e.Key()
}

// luceneRegexp adapts an unanchored regular expression to Lucene regexp syntax,
// which always matches the whole term. A leading "^" or trailing "$" turns into
// the implicit anchor; otherwise that side is padded with ".*".
func luceneRegexp(expr string) string {
	prefix, suffix := ".*(", ").*"
	if strings.HasPrefix(expr, "^") {
		expr, prefix = expr[1:], "("
	}
	if strings.HasSuffix(expr, "$") && !strings.HasSuffix(expr, `\$`) {
		expr, suffix = expr[:len(expr)-1], ")"
	}
	return prefix + expr + suffix
}
