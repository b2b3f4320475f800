package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/validation"
)

// Location is a geographic point that data is recorded against.
type Location struct {
	OfficeID           string   `json:"office-id" yaml:"office-id"`
	Name               string   `json:"name" yaml:"name"`
	Latitude           *float64 `json:"latitude,omitempty" yaml:"latitude"`
	Longitude          *float64 `json:"longitude,omitempty" yaml:"longitude"`
	Active             *bool    `json:"active,omitempty" yaml:"active"`
	PublicName         string   `json:"public-name,omitempty" yaml:"public-name"`
	LongName           string   `json:"long-name,omitempty" yaml:"long-name"`
	Description        string   `json:"description,omitempty" yaml:"description"`
	TimezoneName       string   `json:"timezone-name,omitempty" yaml:"timezone-name"`
	LocationType       string   `json:"location-type,omitempty" yaml:"location-type"`
	LocationKind       string   `json:"location-kind,omitempty" yaml:"location-kind"`
	Nation             string   `json:"nation,omitempty" yaml:"nation"`
	StateInitial       string   `json:"state-initial,omitempty" yaml:"state-initial"`
	CountyName         string   `json:"county-name,omitempty" yaml:"county-name"`
	NearestCity        string   `json:"nearest-city,omitempty" yaml:"nearest-city"`
	HorizontalDatum    string   `json:"horizontal-datum,omitempty" yaml:"horizontal-datum"`
	PublishedLongitude *float64 `json:"published-longitude,omitempty" yaml:"published-longitude"`
	PublishedLatitude  *float64 `json:"published-latitude,omitempty" yaml:"published-latitude"`
	VerticalDatum      string   `json:"vertical-datum,omitempty" yaml:"vertical-datum"`
	Elevation          *float64 `json:"elevation,omitempty" yaml:"elevation"`
	ElevationUnits     string   `json:"elevation-units,omitempty" yaml:"elevation-units"`
	MapLabel           string   `json:"map-label,omitempty" yaml:"map-label"`
	BoundingOfficeID   string   `json:"bounding-office-id,omitempty" yaml:"bounding-office-id"`
}

// LocationOptions carries the fields of a location under construction.
type LocationOptions Location

// NewLocation builds a location, defaulting it to active, and fails with every
// violated field when the options are incomplete.
func NewLocation(opts LocationOptions) (*Location, error) {
	loc := Location(opts)
	if loc.Active == nil {
		active := true
		loc.Active = &active
	}
	if err := validation.Validate(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (l *Location) ValidateFields(v *validation.Validator) {
	v.RequiredString(l.OfficeID, "office-id")
	v.RequiredString(l.Name, "name")
	v.Check("latitude", inRange(l.Latitude, -90, 90))
	v.Check("longitude", inRange(l.Longitude, -180, 180))
	if l.TimezoneName != "" {
		_, err := time.LoadLocation(l.TimezoneName)
		v.Check("timezone-name", err)
	}
}

func (l *Location) ID() CwmsID {
	return CwmsID{OfficeID: l.OfficeID, Name: l.Name}
}

func (l *Location) Key() string {
	return l.ID().Key()
}

func inRange(value *float64, lo, hi float64) error {
	if value == nil || (*value >= lo && *value <= hi) {
		return nil
	}
	return fmt.Errorf("%v is outside [%v, %v]", *value, lo, hi)
}

// LocationProperty names a location field that can be patched by name.
type LocationProperty int

const (
	PropertyLatitude LocationProperty = iota + 1
	PropertyLongitude
	PropertyActive
	PropertyPublicName
	PropertyLongName
	PropertyDescription
	PropertyTimezoneName
	PropertyLocationType
	PropertyLocationKind
	PropertyNation
	PropertyStateInitial
	PropertyCountyName
	PropertyNearestCity
	PropertyHorizontalDatum
	PropertyPublishedLongitude
	PropertyPublishedLatitude
	PropertyVerticalDatum
	PropertyElevation
	PropertyElevationUnits
	PropertyMapLabel
	PropertyBoundingOfficeID
)

var locationPropertyNames = map[LocationProperty]string{
	PropertyLatitude:           "latitude",
	PropertyLongitude:          "longitude",
	PropertyActive:             "active",
	PropertyPublicName:         "public-name",
	PropertyLongName:           "long-name",
	PropertyDescription:        "description",
	PropertyTimezoneName:       "timezone-name",
	PropertyLocationType:       "location-type",
	PropertyLocationKind:       "location-kind",
	PropertyNation:             "nation",
	PropertyStateInitial:       "state-initial",
	PropertyCountyName:         "county-name",
	PropertyNearestCity:        "nearest-city",
	PropertyHorizontalDatum:    "horizontal-datum",
	PropertyPublishedLongitude: "published-longitude",
	PropertyPublishedLatitude:  "published-latitude",
	PropertyVerticalDatum:      "vertical-datum",
	PropertyElevation:          "elevation",
	PropertyElevationUnits:     "elevation-units",
	PropertyMapLabel:           "map-label",
	PropertyBoundingOfficeID:   "bounding-office-id",
}

var locationPropertiesByName = func() map[string]LocationProperty {
	m := make(map[string]LocationProperty, len(locationPropertyNames))
	for p, name := range locationPropertyNames {
		m[name] = p
	}
	return m
}()

func (p LocationProperty) String() string {
	if name, ok := locationPropertyNames[p]; ok {
		return name
	}
	return "LocationProperty(" + strconv.Itoa(int(p)) + ")"
}

func ParseLocationProperty(name string) (LocationProperty, error) {
	p, ok := locationPropertiesByName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown location property: %s", name)
	}
	return p, nil
}

// SetProperty assigns value to the field named by prop. Values decoded from
// JSON (float64, bool, string, json.Number) are accepted; numeric and boolean
// fields also accept their string forms.
func (l *Location) SetProperty(prop LocationProperty, value any) error {
	var err error
	switch prop {
	case PropertyLatitude:
		l.Latitude, err = asFloat(value)
	case PropertyLongitude:
		l.Longitude, err = asFloat(value)
	case PropertyPublishedLatitude:
		l.PublishedLatitude, err = asFloat(value)
	case PropertyPublishedLongitude:
		l.PublishedLongitude, err = asFloat(value)
	case PropertyElevation:
		l.Elevation, err = asFloat(value)
	case PropertyActive:
		l.Active, err = asBool(value)
	case PropertyPublicName:
		l.PublicName, err = asString(value)
	case PropertyLongName:
		l.LongName, err = asString(value)
	case PropertyDescription:
		l.Description, err = asString(value)
	case PropertyTimezoneName:
		l.TimezoneName, err = asString(value)
	case PropertyLocationType:
		l.LocationType, err = asString(value)
	case PropertyLocationKind:
		l.LocationKind, err = asString(value)
	case PropertyNation:
		l.Nation, err = asString(value)
	case PropertyStateInitial:
		l.StateInitial, err = asString(value)
	case PropertyCountyName:
		l.CountyName, err = asString(value)
	case PropertyNearestCity:
		l.NearestCity, err = asString(value)
	case PropertyHorizontalDatum:
		l.HorizontalDatum, err = asString(value)
	case PropertyVerticalDatum:
		l.VerticalDatum, err = asString(value)
	case PropertyElevationUnits:
		l.ElevationUnits, err = asString(value)
	case PropertyMapLabel:
		l.MapLabel, err = asString(value)
	case PropertyBoundingOfficeID:
		l.BoundingOfficeID, err = asString(value)
	default:
		return fmt.Errorf("unknown location property: %v", prop)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", prop, err)
	}
	return nil
}

// ApplyProperties patches every named property, collecting per-field failures.
func (l *Location) ApplyProperties(props map[string]any) error {
	v := validation.New()
	for name, value := range props {
		prop, err := ParseLocationProperty(name)
		if err != nil {
			v.Check(name, err)
			continue
		}
		v.Check(name, l.SetProperty(prop, value))
	}
	return v.Finish()
}

// A nil value clears the field.
func asFloat(value any) (*float64, error) {
	switch x := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return &x, nil
	case int:
		f := float64(x)
		return &f, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return &f, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}
	return nil, fmt.Errorf("expected a number, got %T", value)
}

func asBool(value any) (*bool, error) {
	switch x := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return &x, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return nil, err
		}
		return &b, nil
	}
	return nil, fmt.Errorf("expected a boolean, got %T", value)
}

func asString(value any) (string, error) {
	switch x := value.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	return "", fmt.Errorf("expected a string, got %T", value)
}
