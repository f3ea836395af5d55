package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetCheckins returns the places a user checked in to.
func (c *Client) GetCheckins(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Checkin], error) {
	return fetchList[types.Checkin](ctx, c, "GetCheckins", c.build(orMe(userID), "checkins", r), nil)
}

// GetCheckin returns a single checkin, or nil if it is not visible.
func (c *Client) GetCheckin(ctx context.Context, checkinID string, r *reading.Reading) (*types.Checkin, error) {
	return fetchOne[types.Checkin](ctx, c, "GetCheckin", c.build(checkinID, "", r), nil)
}

// Checkin checks the user in to a place and returns the checkin id.
func (c *Client) Checkin(ctx context.Context, userID string, checkin *types.CheckinCreate) (string, error) {
	params, err := c.encodeRequest("Checkin", checkin)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "Checkin", c.build(orMe(userID), "checkins", nil), params)
}
