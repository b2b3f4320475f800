package dto

import (
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// TimeSeriesIdentifierDescriptor describes a stored time series identifier.
type TimeSeriesIdentifierDescriptor struct {
	OfficeID              string `json:"office-id" yaml:"office-id"`
	TimeSeriesID          string `json:"time-series-id" yaml:"time-series-id"`
	TimezoneName          string `json:"timezone-name,omitempty" yaml:"timezone-name"`
	IntervalOffsetMinutes *int64 `json:"interval-offset-minutes,omitempty" yaml:"interval-offset-minutes"`
	Active                bool   `json:"active" yaml:"active"`
}

func (d TimeSeriesIdentifierDescriptor) Key() string {
	return CwmsID{OfficeID: d.OfficeID, Name: d.TimeSeriesID}.Key()
}

// Record is one value of a time series.
type Record struct {
	DateTime    time.Time `json:"date-time" yaml:"date-time"`
	Value       *float64  `json:"value" yaml:"value"`
	QualityCode int       `json:"quality-code" yaml:"quality-code"`
}

// RecordKey is the keyset key of a record: its epoch microseconds, the
// precision PostgreSQL keeps for timestamps.
func RecordKey(r Record) string {
	return strconv.FormatInt(r.DateTime.UnixMicro(), 10)
}

// ParseRecordKey inverts RecordKey.
func ParseRecordKey(key string) (time.Time, error) {
	us, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(us).UTC(), nil
}

// CheckRecordKey reports whether key is a record key.
func CheckRecordKey(key string) error {
	_, err := ParseRecordKey(key)
	return err
}

// TimeSeries is one page of the values of a series between Begin and End.
type TimeSeries struct {
	pagination.Meta
	Name     string    `json:"name"`
	OfficeID string    `json:"office-id"`
	Begin    time.Time `json:"begin"`
	End      time.Time `json:"end"`
	Units    string    `json:"units,omitempty"`
	Interval string    `json:"interval,omitempty"`
	Values   []Record  `json:"values"`
}
