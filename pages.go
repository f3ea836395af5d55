package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetPage returns a page, or nil if it is not visible.
func (c *Client) GetPage(ctx context.Context, pageID string, r *reading.Reading) (*types.Page, error) {
	return fetchOne[types.Page](ctx, c, "GetPage", c.build(pageID, "", r), nil)
}

// GetLikedPage returns pageID if userID likes it, and nil otherwise.
func (c *Client) GetLikedPage(ctx context.Context, userID, pageID string, r *reading.Reading) (*types.Page, error) {
	page, err := fetchList[types.Page](ctx, c, "GetLikedPage", c.build(orMe(userID), "likes/"+pageID, r), nil)
	if err != nil || len(page.Data) == 0 {
		return nil, err
	}
	return &page.Data[0], nil
}

// GetPermissions returns the permissions the user granted to the application.
func (c *Client) GetPermissions(ctx context.Context, userID string) ([]types.Permission, error) {
	page, err := fetchList[types.Permission](ctx, c, "GetPermissions", c.build(orMe(userID), "permissions", nil), nil)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// RevokePermission takes back a single permission.
func (c *Client) RevokePermission(ctx context.Context, userID, permission string) (bool, error) {
	return c.deleteAck(ctx, "RevokePermission", c.build(orMe(userID), "permissions/"+permission, nil), nil)
}
