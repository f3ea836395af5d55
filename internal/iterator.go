package internal

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by Next once every page has been consumed.
var ErrNoMoreItems = errors.New("no more items available")

// PageFunc fetches one page. An empty cursor asks for the first page; the
// returned next cursor is empty on the last page.
type PageFunc[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// PageIterator walks items across pages, fetching a page only when the
// previous one is exhausted.
type PageIterator[T any] struct {
	ctx       context.Context
	fetch     PageFunc[T]
	buffer    []T
	bufferIdx int
	cursor    string
	started   bool
	hasMore   bool
	err       error
	pages     int
}

// NewPageIterator creates a new iterator over fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		hasMore: true,
	}
}

// HasNext returns true if another item is available. It fetches the next page
// when the buffered one is used up, skipping empty pages.
func (it *PageIterator[T]) HasNext() bool {
	for it.err == nil && it.bufferIdx >= len(it.buffer) && it.hasMore {
		it.fill()
	}
	return it.err == nil && it.bufferIdx < len(it.buffer)
}

func (it *PageIterator[T]) fill() {
	if it.started && it.cursor == "" {
		it.hasMore = false
		return
	}

	items, next, err := it.fetch(it.ctx, it.cursor)
	if err != nil {
		it.err = err
		return
	}
	it.started = true
	it.pages++
	it.buffer = items
	it.bufferIdx = 0
	it.cursor = next
	if next == "" {
		it.hasMore = false
	}
}

// Next returns the next item in the iteration.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.bufferIdx]
	it.bufferIdx++
	return item, nil
}

// Err returns any error encountered during iteration.
func (it *PageIterator[T]) Err() error {
	return it.err
}

// Pages returns how many pages have been fetched so far.
func (it *PageIterator[T]) Pages() int {
	return it.pages
}

// Collect fetches all remaining items up to maxItems; maxItems <= 0 means no limit.
func (it *PageIterator[T]) Collect(maxItems int) ([]T, error) {
	var items []T
	for (maxItems <= 0 || len(items) < maxItems) && it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, it.err
}
