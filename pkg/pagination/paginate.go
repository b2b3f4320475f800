package pagination

import (
	"context"
	"errors"
	"fmt"
)

// KeysetSource is the query layer of a resource ordered by natural key.
// FetchAfter returns at most limit items whose key sorts after afterKey
// (empty afterKey means from the start).
type KeysetSource[T any] interface {
	FetchAfter(ctx context.Context, afterKey string, limit int) ([]T, error)
	CountMatching(ctx context.Context) (int, error)
}

// OffsetSource is the query layer of a resource paged by row offset.
type OffsetSource[T any] interface {
	FetchAt(ctx context.Context, offset int, limit int) ([]T, error)
	CountMatching(ctx context.Context) (int, error)
}

// KeyChecker is implemented by keyset sources whose keys have a fixed shape.
// A cursor carrying a key that fails CheckKey is an invalid cursor.
type KeyChecker interface {
	CheckKey(key string) error
}

// KeysetFuncs adapts plain functions to KeysetSource. Check is optional.
type KeysetFuncs[T any] struct {
	Fetch func(ctx context.Context, afterKey string, limit int) ([]T, error)
	Count func(ctx context.Context) (int, error)
	Check func(key string) error
}

func (f KeysetFuncs[T]) CheckKey(key string) error {
	if f.Check == nil {
		return nil
	}
	return f.Check(key)
}

func (f KeysetFuncs[T]) FetchAfter(ctx context.Context, afterKey string, limit int) ([]T, error) {
	return f.Fetch(ctx, afterKey, limit)
}

func (f KeysetFuncs[T]) CountMatching(ctx context.Context) (int, error) {
	if f.Count == nil {
		return 0, errCountUnsupported
	}
	return f.Count(ctx)
}

// OffsetFuncs adapts plain functions to OffsetSource.
type OffsetFuncs[T any] struct {
	Fetch func(ctx context.Context, offset int, limit int) ([]T, error)
	Count func(ctx context.Context) (int, error)
}

func (f OffsetFuncs[T]) FetchAt(ctx context.Context, offset int, limit int) ([]T, error) {
	return f.Fetch(ctx, offset, limit)
}

func (f OffsetFuncs[T]) CountMatching(ctx context.Context) (int, error) {
	if f.Count == nil {
		return 0, errCountUnsupported
	}
	return f.Count(ctx)
}

var errCountUnsupported = errors.New("count not supported")

// countTotal returns nil when the source cannot count; the total is best-effort.
func countTotal(ctx context.Context, count func(context.Context) (int, error)) (*int, error) {
	total, err := count(ctx)
	if errors.Is(err, errCountUnsupported) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to count matching items: %w", err)
	}
	return &total, nil
}

// PaginateKeyset serves one page of a keyset-ordered resource. On the first page
// the total is counted; later pages reuse page size and total from the cursor.
func PaginateKeyset[T any](ctx context.Context, src KeysetSource[T], req CursorRequest, key func(T) string) (*Page[T], error) {
	return paginateKeyset(ctx, src, req, Keyset(key))
}

// PaginateRawKeyset is PaginateKeyset without case folding of the key.
func PaginateRawKeyset[T any](ctx context.Context, src KeysetSource[T], req CursorRequest, key func(T) string) (*Page[T], error) {
	return paginateKeyset(ctx, src, req, RawKeyset(key))
}

func paginateKeyset[T any](ctx context.Context, src KeysetSource[T], req CursorRequest, next NextFunc[T]) (*Page[T], error) {
	state := KeysetState{PageSize: req.Size}

	if req.First() {
		total, err := countTotal(ctx, src.CountMatching)
		if err != nil {
			return nil, err
		}
		state.Total = total
	} else {
		decoded, err := DecodeKeyset(*req.Cursor)
		if err != nil {
			return nil, err
		}
		if kc, ok := src.(KeyChecker); ok {
			if err := kc.CheckKey(decoded.LastKey); err != nil {
				return nil, invalidCursor(fmt.Sprintf("last key %q", decoded.LastKey), err)
			}
		}
		state = decoded
	}

	items, err := src.FetchAfter(ctx, state.LastKey, state.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	return NewBuilder(req.Cursor, state.PageSize, state.Total, next).
		AddAll(items).
		Build()
}

// PaginateOffset serves one page of an offset-paged resource.
func PaginateOffset[T any](ctx context.Context, src OffsetSource[T], req CursorRequest) (*Page[T], error) {
	state := OffsetState{PageSize: req.Size}

	if req.First() {
		total, err := countTotal(ctx, src.CountMatching)
		if err != nil {
			return nil, err
		}
		state.Total = total
	} else {
		decoded, err := DecodeOffset(*req.Cursor)
		if err != nil {
			return nil, err
		}
		state = decoded
	}

	items, err := src.FetchAt(ctx, state.Offset, state.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	return NewBuilder(req.Cursor, state.PageSize, state.Total, Offset[T](state.Offset)).
		AddAll(items).
		Build()
}
