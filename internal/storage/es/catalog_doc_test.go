package es

import (
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/dto"
	"github.com/DjordjeVuckovic/hydro-api/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuceneRegexp(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "Folsom", want: ".*(Folsom).*"},
		{in: "^Black", want: "(Black).*"},
		{in: "Rev$", want: ".*(Rev)"},
		{in: "^A|B$", want: "(A|B)"},
		{in: `cost\$`, want: `.*(cost\$).*`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, luceneRegexp(tt.in))
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	offset := int64(15)
	entry := dto.CatalogEntry{
		Dataset:        query.DatasetTimeSeries,
		Office:         "SPK",
		Name:           "Folsom.Elev.Inst.1Hour.0.Ccp-Rev",
		Units:          "ft",
		Interval:       "1Hour",
		IntervalOffset: &offset,
		Active:         true,
		Groups:         []dto.GroupRef{{Category: "Agency Aliases", Group: "USGS"}},
		Extents:        &dto.Extents{Earliest: "2024-01-01T00:00:00Z", Latest: "2024-02-01T00:00:00Z"},
	}

	doc := toDocument(entry)
	assert.Equal(t, "SPK/FOLSOM.ELEV.INST.1HOUR.0.CCP-REV", doc.CursorKey)
	assert.Equal(t, "timeseries:SPK/FOLSOM.ELEV.INST.1HOUR.0.CCP-REV", documentID(entry))

	assert.Equal(t, entry, doc.toEntry(true))

	withoutExtents := doc.toEntry(false)
	assert.Nil(t, withoutExtents.Extents)
}

func TestCatalogQuery(t *testing.T) {
	q, err := catalogQuery(query.DatasetLocations, query.Catalog{
		Office:       "spk",
		IDLike:       "^Fol",
		LocGroupLike: "Sacramento",
		TsGroupLike:  "ignored",
		ExcludeEmpty: true,
	})
	require.NoError(t, err)
	require.NotNil(t, q.Bool)

	// dataset, office, name regexp and location group regexp; exclude-empty
	// only applies to time series.
	assert.Len(t, q.Bool.Filter, 4)
	assert.Equal(t, "(Fol).*", q.Bool.Filter[2].Regexp["name"].Value)
	assert.Equal(t, ".*(Sacramento).*", q.Bool.Filter[3].Regexp["group_names"].Value)

	_, err = catalogQuery(query.DatasetLocations, query.Catalog{IDLike: "(["})
	assert.Error(t, err)
}
