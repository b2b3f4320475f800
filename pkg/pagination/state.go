package pagination

import (
	"fmt"
)

const stateArity = 3

// KeysetState is the page state of a resource ordered by its natural key.
// Tuple: (last key, page size, total).
type KeysetState struct {
	LastKey  string
	PageSize int
	Total    *int
}

// Encode returns the cursor token of s.
func (s KeysetState) Encode() (string, error) {
	return NewCursorWriter().
		String(s.LastKey).
		Int(s.PageSize).
		OptInt(s.Total).
		Encode()
}

// DecodeKeyset parses a token written by KeysetState.Encode. A token of another
// arity is an invalid cursor.
func DecodeKeyset(token string) (KeysetState, error) {
	r, err := NewCursorReader(token, stateArity)
	if err != nil {
		return KeysetState{}, err
	}

	s := KeysetState{
		LastKey:  r.String(),
		PageSize: r.Int(),
		Total:    r.OptInt(),
	}
	if err := r.Err(); err != nil {
		return KeysetState{}, err
	}
	if err := CheckPageSize(s.PageSize); err != nil {
		return KeysetState{}, err
	}
	return s, nil
}

// OffsetState is the page state of a resource paged by row offset.
// Tuple: (offset, page size, total).
type OffsetState struct {
	Offset   int
	PageSize int
	Total    *int
}

// Encode returns the cursor token of s.
func (s OffsetState) Encode() (string, error) {
	return NewCursorWriter().
		Int(s.Offset).
		Int(s.PageSize).
		OptInt(s.Total).
		Encode()
}

// DecodeOffset parses a token written by OffsetState.Encode. Negative offsets
// are an invalid cursor.
func DecodeOffset(token string) (OffsetState, error) {
	r, err := NewCursorReader(token, stateArity)
	if err != nil {
		return OffsetState{}, err
	}

	s := OffsetState{
		Offset:   r.Int(),
		PageSize: r.Int(),
		Total:    r.OptInt(),
	}
	if err := r.Err(); err != nil {
		return OffsetState{}, err
	}
	if s.Offset < 0 {
		return OffsetState{}, invalidCursor(fmt.Sprintf("negative offset %d", s.Offset), nil)
	}
	if err := CheckPageSize(s.PageSize); err != nil {
		return OffsetState{}, err
	}
	return s, nil
}

// CheckPageSize rejects page sizes a cursor can never carry.
func CheckPageSize(size int) error {
	if size <= 0 || size > PageMaxSize {
		return invalidCursor(fmt.Sprintf("page size %d out of range", size), nil)
	}
	return nil
}
