package query

import (
	"testing"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	tests := []struct {
		in      string
		want    Dataset
		wantErr bool
	}{
		{in: "locations", want: DatasetLocations},
		{in: "TimeSeries", want: DatasetTimeSeries},
		{in: "", wantErr: true},
		{in: "ratings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataset(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPattern(t *testing.T) {
	p, err := Compile("like", "^black.*|folsom")
	require.NoError(t, err)

	assert.True(t, p.Match("BLACK BUTTE"))
	assert.True(t, p.Match("Folsom"))
	assert.False(t, p.Match("Oroville"))

	var zero Pattern
	assert.True(t, zero.Match("anything"))
}

func TestPattern_Invalid(t *testing.T) {
	_, err := Compile("like", "([")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid like pattern", ve.Message)
}

func TestCompileMask(t *testing.T) {
	p, err := CompileMask("name-mask", "Flood*")
	require.NoError(t, err)

	assert.True(t, p.Match("flood control"))
	assert.False(t, p.Match("Conservation Flood"))
	assert.Equal(t, "^Flood.*$", p.Regex())

	p, err = CompileMask("name-mask", "Top.?")
	require.NoError(t, err)
	assert.True(t, p.Match("TOP.1"))
	assert.False(t, p.Match("TOPX1"))
}
