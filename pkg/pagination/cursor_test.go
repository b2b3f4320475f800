package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestKeysetState_Roundtrip(t *testing.T) {
	state := KeysetState{LastKey: "ABC", PageSize: 5, Total: intPtr(42)}

	token, err := state.Encode()
	require.NoError(t, err)

	decoded, err := DecodeKeyset(token)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestKeysetState_NullTotal(t *testing.T) {
	token, err := KeysetState{LastKey: "ABC", PageSize: 5}.Encode()
	require.NoError(t, err)

	decoded, err := DecodeKeyset(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.Total)
}

func TestOffsetState_Roundtrip(t *testing.T) {
	tests := []OffsetState{
		{Offset: 0, PageSize: 100, Total: intPtr(1234)},
		{Offset: 500, PageSize: 500},
	}

	for _, state := range tests {
		token, err := state.Encode()
		require.NoError(t, err)

		decoded, err := DecodeOffset(token)
		require.NoError(t, err)
		assert.Equal(t, state, decoded)
	}
}

func TestDecodeOffset_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{name: "non numeric offset", fields: []string{"ABC", "5", "42"}},
		{name: "non numeric total", fields: []string{"0", "5", "4x2"}},
		{name: "negative offset", fields: []string{"-5", "5", "42"}},
		{name: "zero page size", fields: []string{"0", "0", "42"}},
		{name: "page size too large", fields: []string{"0", "10001", "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := EncodeCursor(tt.fields...)
			require.NoError(t, err)

			_, err = DecodeOffset(token)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestDecodeKeyset_NullKeyRejected(t *testing.T) {
	token, err := EncodeCursor(NullField, "5", "42")
	require.NoError(t, err)

	_, err = DecodeKeyset(token)
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestCursorReader_StickyError(t *testing.T) {
	token, err := NewCursorWriter().String("x").String("maybe").Int(3).Encode()
	require.NoError(t, err)

	r, err := NewCursorReader(token, 3)
	require.NoError(t, err)

	assert.Equal(t, "x", r.String())
	assert.False(t, r.Bool())
	assert.Equal(t, 0, r.Int())
	assert.ErrorIs(t, r.Err(), ErrInvalidCursor)
}

func TestCursorWriter_NullSentinel(t *testing.T) {
	token, err := NewCursorWriter().
		OptString(nil).
		OptString(strPtr("null")).
		OptString(strPtr("SWT")).
		OptInt(nil).
		Int64(1_700_000_000_000).
		Bool(true).
		Encode()
	require.NoError(t, err)

	r, err := NewCursorReader(token, 6)
	require.NoError(t, err)

	assert.Nil(t, r.OptString())
	assert.Nil(t, r.OptString(), "literal null decodes as absent")
	assert.Equal(t, strPtr("SWT"), r.OptString())
	assert.Nil(t, r.OptInt())
	assert.Equal(t, int64(1_700_000_000_000), r.Int64())
	assert.True(t, r.Bool())
	assert.NoError(t, r.Err())
}
