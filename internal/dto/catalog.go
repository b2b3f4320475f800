package dto

import (
	"strings"

	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// GroupRef names a group within a category.
type GroupRef struct {
	Category string `json:"category" yaml:"category"`
	Group    string `json:"group" yaml:"group"`
}

// Extents is the time span covered by a time series.
type Extents struct {
	Earliest string `json:"earliest-time" yaml:"earliest-time"`
	Latest   string `json:"latest-time" yaml:"latest-time"`
}

// CatalogEntry is one location or time series in a catalog listing.
type CatalogEntry struct {
	Dataset        query.Dataset `json:"-" yaml:"dataset"`
	Office         string        `json:"office" yaml:"office"`
	Name           string        `json:"name" yaml:"name"`
	BoundingOffice string        `json:"bounding-office,omitempty" yaml:"bounding-office"`
	LocationKind   string        `json:"kind,omitempty" yaml:"kind"`
	TimeZone       string        `json:"time-zone,omitempty" yaml:"time-zone"`
	Units          string        `json:"units,omitempty" yaml:"units"`
	Interval       string        `json:"interval,omitempty" yaml:"interval"`
	IntervalOffset *int64        `json:"interval-offset,omitempty" yaml:"interval-offset"`
	Active         bool          `json:"active" yaml:"active"`
	Groups         []GroupRef    `json:"groups,omitempty" yaml:"groups"`
	Extents        *Extents      `json:"extents,omitempty" yaml:"extents"`
}

// Key is the upper-cased "OFFICE/NAME" ordering key.
func (e CatalogEntry) Key() string {
	return CwmsID{OfficeID: e.Office, Name: e.Name}.Key()
}

// CursorKey is Key, rejecting offices that would make the key ambiguous.
func (e CatalogEntry) CursorKey() (string, error) {
	return pagination.JoinKey(strings.ToUpper(e.Office), strings.ToUpper(e.Name))
}

// Empty reports whether a time series entry has no stored values.
func (e CatalogEntry) Empty() bool {
	return e.Dataset == query.DatasetTimeSeries && e.Extents == nil
}
