package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKey_KeepsMicroseconds(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC)

	key := RecordKey(Record{DateTime: at})
	assert.Equal(t, "1704067200123456", key)

	parsed, err := ParseRecordKey(key)
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))
	assert.NotEqual(t, key, RecordKey(Record{DateTime: at.Add(time.Microsecond)}))
}

func TestCheckRecordKey(t *testing.T) {
	assert.NoError(t, CheckRecordKey("1704067200000000"))
	assert.Error(t, CheckRecordKey("SPK/README"))
	assert.Error(t, CheckRecordKey(""))
}
