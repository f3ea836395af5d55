package graph

import (
	"context"
	"encoding/json"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// Page is one page of a list connection.
// A Page is never modified after it is returned; fetching another page
// produces a new value.
type Page[T any] struct {
	Data   []T
	Paging types.Paging
	// Raw is the undecoded response envelope.
	Raw json.RawMessage

	decode internal.Decoder[T]
}

func newPage[T any](body []byte, decode internal.Decoder[T]) (*Page[T], error) {
	list, err := internal.DecodeList(body, decode)
	if err != nil {
		return nil, err
	}
	return &Page[T]{
		Data:   list.Items,
		Paging: list.Paging,
		Raw:    list.Raw,
		decode: decode,
	}, nil
}

// HasNext reports whether the page carries a next cursor.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.Paging.Next != ""
}

// HasPrevious reports whether the page carries a previous cursor.
func (p *Page[T]) HasPrevious() bool {
	return p != nil && p.Paging.Previous != ""
}

// FetchNext retrieves the page after page. It returns (nil, nil) without a
// network call when there is no next cursor.
func FetchNext[T any](ctx context.Context, c *Client, page *Page[T]) (*Page[T], error) {
	return fetchCursor(ctx, c, "FetchNext", page, func(p *Page[T]) string { return p.Paging.Next })
}

// FetchPrevious retrieves the page before page. It returns (nil, nil) without a
// network call when there is no previous cursor.
func FetchPrevious[T any](ctx context.Context, c *Client, page *Page[T]) (*Page[T], error) {
	return fetchCursor(ctx, c, "FetchPrevious", page, func(p *Page[T]) string { return p.Paging.Previous })
}

// fetchCursor follows the literal cursor URL. A cursor that carries its own
// access_token needs no client credential.
func fetchCursor[T any](ctx context.Context, c *Client, op string, page *Page[T], cursor func(*Page[T]) string) (*Page[T], error) {
	if page == nil || cursor(page) == "" {
		return nil, nil
	}
	next := cursor(page)

	decode := page.decode
	if decode == nil {
		decode = internal.JSONDecoder[T]()
	}
	return fetchListAs(ctx, c, op, internal.HasAccessToken(next), next, nil, decode)
}
