package dto

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation(LocationOptions{OfficeID: "SPK", Name: "Folsom", TimezoneName: "UTC"})
	require.NoError(t, err)
	require.NotNil(t, loc.Active)
	assert.True(t, *loc.Active)
	assert.Equal(t, CwmsID{OfficeID: "SPK", Name: "Folsom"}, loc.ID())
}

func TestNewLocation_ReportsEveryViolation(t *testing.T) {
	lat := 91.0
	_, err := NewLocation(LocationOptions{Latitude: &lat, TimezoneName: "Not/AZone"})

	details := apperr.Details(err)
	assert.Equal(t, []string{"name", "office-id"}, details[apperr.MissingFieldsKey])
	assert.Equal(t, []string{"latitude", "timezone-name"}, details[apperr.InvalidFieldsKey])
}

func TestParseLocationProperty(t *testing.T) {
	p, err := ParseLocationProperty("Public-Name")
	require.NoError(t, err)
	assert.Equal(t, PropertyPublicName, p)
	assert.Equal(t, "public-name", p.String())

	_, err = ParseLocationProperty("office-id")
	assert.Error(t, err)
}

func TestLocation_SetProperty(t *testing.T) {
	tests := []struct {
		name    string
		prop    LocationProperty
		value   any
		check   func(t *testing.T, l *Location)
		wantErr bool
	}{
		{
			name:  "float from json",
			prop:  PropertyLatitude,
			value: 38.7,
			check: func(t *testing.T, l *Location) { assert.Equal(t, 38.7, *l.Latitude) },
		},
		{
			name:  "float from json number",
			prop:  PropertyElevation,
			value: json.Number("123.5"),
			check: func(t *testing.T, l *Location) { assert.Equal(t, 123.5, *l.Elevation) },
		},
		{
			name:  "float from string",
			prop:  PropertyLongitude,
			value: "-121.1",
			check: func(t *testing.T, l *Location) { assert.Equal(t, -121.1, *l.Longitude) },
		},
		{
			name:  "nil clears",
			prop:  PropertyPublishedLatitude,
			value: nil,
			check: func(t *testing.T, l *Location) { assert.Nil(t, l.PublishedLatitude) },
		},
		{
			name:  "bool",
			prop:  PropertyActive,
			value: false,
			check: func(t *testing.T, l *Location) { assert.False(t, *l.Active) },
		},
		{
			name:  "string",
			prop:  PropertyNearestCity,
			value: "Folsom",
			check: func(t *testing.T, l *Location) { assert.Equal(t, "Folsom", l.NearestCity) },
		},
		{name: "number as string field", prop: PropertyNation, value: 1.0, wantErr: true},
		{name: "unparsable float", prop: PropertyLatitude, value: "north", wantErr: true},
		{name: "unknown property", prop: LocationProperty(999), value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat := 1.0
			l := &Location{PublishedLatitude: &lat}
			err := l.SetProperty(tt.prop, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, l)
		})
	}
}

func TestLocation_ApplyProperties(t *testing.T) {
	l := &Location{OfficeID: "SPK", Name: "Folsom"}

	err := l.ApplyProperties(map[string]any{
		"long-name": "Folsom Dam",
		"latitude":  "x",
		"owner":     "me",
	})

	assert.Equal(t, "Folsom Dam", l.LongName)
	assert.Equal(t, []string{"latitude", "owner"}, apperr.Details(err)[apperr.InvalidFieldsKey])
}
