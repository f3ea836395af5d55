package graph

import (
	"context"
	"encoding/json"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
)

// ExecuteFQL runs a single FQL query and returns its rows undecoded.
func (c *Client) ExecuteFQL(ctx context.Context, query string) (rows []json.RawMessage, err error) {
	err = c.call(ctx, "ExecuteFQL", false, func(ctx context.Context) error {
		resp, err := c.http.Get(ctx, c.urls.FQL(query), nil)
		if err != nil {
			return err
		}
		rows, err = internal.DecodeFQL(resp.Body)
		return err
	})
	return rows, err
}

// ExecuteMultiFQL runs named FQL queries in one request. Later queries may
// refer to earlier ones as #name. The result maps each name to its rows.
func (c *Client) ExecuteMultiFQL(ctx context.Context, queries map[string]string) (results map[string][]json.RawMessage, err error) {
	err = c.call(ctx, "ExecuteMultiFQL", false, func(ctx context.Context) error {
		rawURL, err := c.urls.MultiFQL(queries)
		if err != nil {
			return pkgerrs.New(pkgerrs.KindEncoding, "", "failed to encode queries", err)
		}
		resp, err := c.http.Get(ctx, rawURL, nil)
		if err != nil {
			return err
		}
		results, err = internal.DecodeMultiFQL(resp.Body)
		return err
	})
	return results, err
}
