package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPageBuilt is returned when items are added to a builder after Build.
var ErrPageBuilt = errors.New("page already built")

// Meta is the pagination envelope shared by every paged resource.
type Meta struct {
	// Page is the cursor of the current page; nil on the first page.
	Page *string `json:"page" xml:"page,omitempty"`
	// NextPage is the cursor of the following page; nil when this is the last page.
	NextPage *string `json:"next-page" xml:"next-page,omitempty"`
	// PageSize is the requested page size, which may exceed the number of items returned.
	PageSize int `json:"page-size" xml:"page-size"`
	// Total is a best-effort count of all matching items; nil when unknown.
	Total *int `json:"total,omitempty" xml:"total,omitempty"`
}

// HasNext reports whether the client should ask for another page.
func (m Meta) HasNext() bool {
	return m.NextPage != nil
}

// Page is one bounded slice of an ordered result sequence.
type Page[T any] struct {
	Meta
	Items []T `json:"items"`
}

// NextFunc derives the next-page cursor from the last item of a full page.
type NextFunc[T any] func(last T, meta Meta, count int) (string, error)

// Builder accumulates the items of one page and finalizes its metadata once.
type Builder[T any] struct {
	meta  Meta
	items []T
	next  NextFunc[T]

	page *Page[T]
	err  error
}

// NewBuilder starts a page. current is the cursor the client sent (nil for the
// first page); the inputs are stored verbatim.
func NewBuilder[T any](current *string, pageSize int, total *int, next NextFunc[T]) *Builder[T] {
	return &Builder[T]{
		meta: Meta{
			Page:     current,
			PageSize: pageSize,
			Total:    total,
		},
		items: make([]T, 0, max(pageSize, 0)),
		next:  next,
	}
}

// Add appends one item. The builder does not cap the item count; the query layer
// is expected to fetch at most pageSize rows.
func (b *Builder[T]) Add(item T) *Builder[T] {
	if b.page != nil {
		b.err = ErrPageBuilt
		return b
	}
	b.items = append(b.items, item)
	return b
}

func (b *Builder[T]) AddAll(items []T) *Builder[T] {
	if b.page != nil {
		b.err = ErrPageBuilt
		return b
	}
	b.items = append(b.items, items...)
	return b
}

// Build finalizes the page. A next-page cursor exists iff the page is full.
// Repeated calls return the same page.
func (b *Builder[T]) Build() (*Page[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.page != nil {
		return b.page, nil
	}

	meta := b.meta
	if meta.PageSize > 0 && len(b.items) == meta.PageSize && b.next != nil {
		last := b.items[len(b.items)-1]
		cursor, err := b.next(last, meta, len(b.items))
		if err != nil {
			b.err = fmt.Errorf("failed to encode next page cursor: %w", err)
			return nil, b.err
		}
		meta.NextPage = &cursor
	}

	b.page = &Page[T]{Meta: meta, Items: b.items}
	return b.page, nil
}

// Keyset encodes the upper-cased natural key of the last item.
func Keyset[T any](key func(T) string) NextFunc[T] {
	return func(last T, meta Meta, _ int) (string, error) {
		return KeysetState{
			LastKey:  strings.ToUpper(key(last)),
			PageSize: meta.PageSize,
			Total:    meta.Total,
		}.Encode()
	}
}

// RawKeyset encodes the natural key of the last item unchanged, for keys that
// are not case-folded (timestamps, numeric ids).
func RawKeyset[T any](key func(T) string) NextFunc[T] {
	return func(last T, meta Meta, _ int) (string, error) {
		return KeysetState{
			LastKey:  key(last),
			PageSize: meta.PageSize,
			Total:    meta.Total,
		}.Encode()
	}
}

// Offset encodes the row offset following this page, given the offset the page
// started at. Concurrent inserts or deletes may shift rows across pages.
func Offset[T any](offset int) NextFunc[T] {
	return func(_ T, meta Meta, count int) (string, error) {
		return OffsetState{
			Offset:   offset + count,
			PageSize: meta.PageSize,
			Total:    meta.Total,
		}.Encode()
	}
}
