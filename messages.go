package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetInbox returns the message threads in a user's inbox.
func (c *Client) GetInbox(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Message], error) {
	return fetchList[types.Message](ctx, c, "GetInbox", c.build(orMe(userID), "inbox", r), nil)
}

// GetOutbox returns the messages a user sent.
func (c *Client) GetOutbox(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Message], error) {
	return fetchList[types.Message](ctx, c, "GetOutbox", c.build(orMe(userID), "outbox", r), nil)
}

// GetUpdates returns the updates a user received from pages.
func (c *Client) GetUpdates(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Message], error) {
	return fetchList[types.Message](ctx, c, "GetUpdates", c.build(orMe(userID), "updates", r), nil)
}

// GetMessage returns a message, or nil if it is not visible.
func (c *Client) GetMessage(ctx context.Context, messageID string, r *reading.Reading) (*types.Message, error) {
	return fetchOne[types.Message](ctx, c, "GetMessage", c.build(messageID, "", r), nil)
}
