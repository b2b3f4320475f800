package dto

import (
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
	"github.com/DjordjeVuckovic/hydro-api/pkg/pagination"
)

// LocationLevel is a named level at a location, given either as a constant, as
// seasonal values repeating over an interval, or by a time series.
type LocationLevel struct {
	OfficeID             string          `json:"office-id" yaml:"office-id"`
	LocationLevelID      string          `json:"location-level-id" yaml:"location-level-id"`
	LevelDate            *time.Time      `json:"level-date,omitempty" yaml:"level-date"`
	SpecifiedLevelID     string          `json:"specified-level-id,omitempty" yaml:"specified-level-id"`
	ParameterTypeID      string          `json:"parameter-type-id,omitempty" yaml:"parameter-type-id"`
	ParameterID          string          `json:"parameter-id,omitempty" yaml:"parameter-id"`
	LevelUnitsID         string          `json:"level-units-id,omitempty" yaml:"level-units-id"`
	LevelComment         string          `json:"level-comment,omitempty" yaml:"level-comment"`
	DurationID           string          `json:"duration-id,omitempty" yaml:"duration-id"`
	InterpolateString    string          `json:"interpolate-string,omitempty" yaml:"interpolate-string"`
	ConstantValue        *float64        `json:"constant-value,omitempty" yaml:"constant-value"`
	SeasonalValues       []SeasonalValue `json:"seasonal-values,omitempty" yaml:"seasonal-values"`
	SeasonalTimeSeriesID string          `json:"seasonal-time-series-id,omitempty" yaml:"seasonal-time-series-id"`
	IntervalOrigin       *time.Time      `json:"interval-origin,omitempty" yaml:"interval-origin"`
	IntervalMonths       *int            `json:"interval-months,omitempty" yaml:"interval-months"`
	IntervalMinutes      *int            `json:"interval-minutes,omitempty" yaml:"interval-minutes"`
}

// SeasonalValue is one value of a seasonal level, offset from the interval origin.
type SeasonalValue struct {
	Value         *float64 `json:"value" yaml:"value"`
	OffsetMonths  *int     `json:"offset-months,omitempty" yaml:"offset-months"`
	OffsetMinutes *int     `json:"offset-minutes,omitempty" yaml:"offset-minutes"`
}

func (s *SeasonalValue) ValidateFields(v *validation.Validator) {
	v.Required(s.Value, "value")
}

type LocationLevelOptions LocationLevel

func NewLocationLevel(opts LocationLevelOptions) (*LocationLevel, error) {
	level := LocationLevel(opts)
	if err := validation.Validate(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

func (l *LocationLevel) ValidateFields(v *validation.Validator) {
	v.RequiredString(l.LocationLevelID, "location-level-id")
	v.RequiredString(l.OfficeID, "office-id")
	v.Required(l.LevelDate, "level-date")

	v.RequireOneOf(
		validation.Field{Name: "constant-value", Value: l.ConstantValue},
		validation.Field{Name: "seasonal-values", Value: l.SeasonalValues},
		validation.Field{Name: "seasonal-time-series-id", Value: l.SeasonalTimeSeriesID},
	)
	validation.Collection(v, seasonalRefs(l.SeasonalValues))
}

// Key orders levels by office, level id and effective date.
func (l LocationLevel) Key() string {
	key := CwmsID{OfficeID: l.OfficeID, Name: l.LocationLevelID}.Key()
	if l.LevelDate != nil {
		key += pagination.KeyDelimiter + l.LevelDate.UTC().Format(time.RFC3339)
	}
	return key
}

func seasonalRefs(values []SeasonalValue) []*SeasonalValue {
	if values == nil {
		return nil
	}
	refs := make([]*SeasonalValue, len(values))
	for i := range values {
		refs[i] = &values[i]
	}
	return refs
}
