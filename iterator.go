package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
)

// ErrNoMoreItems is returned by Iterator.Next once every page has been consumed.
var ErrNoMoreItems = internal.ErrNoMoreItems

// Iterator walks the items of a list connection, following next cursors.
// Pages are fetched synchronously and only when the current one is used up.
//
// Example:
//
//	first, err := client.GetFriends(ctx, "", nil)
//	if err != nil {
//		return err
//	}
//	it := graph.NewIterator(ctx, client, first)
//	for it.HasNext() {
//		friend, err := it.Next()
//		if err != nil {
//			return err
//		}
//		fmt.Println(friend.Name)
//	}
//	return it.Err()
type Iterator[T any] struct {
	*internal.PageIterator[T]
}

// NewIterator creates an iterator starting at first. The first page is
// consumed as-is; later pages are requested with FetchNext.
func NewIterator[T any](ctx context.Context, c *Client, first *Page[T]) *Iterator[T] {
	current := first
	fetch := func(ctx context.Context, cursor string) ([]T, string, error) {
		if cursor != "" {
			next, err := FetchNext(ctx, c, current)
			if err != nil {
				return nil, "", err
			}
			current = next
		}
		if current == nil {
			return nil, "", nil
		}
		return current.Data, current.Paging.Next, nil
	}
	return &Iterator[T]{PageIterator: internal.NewPageIterator(ctx, fetch)}
}
