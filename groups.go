package graph

import (
	"context"
	"net/url"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetGroups returns the groups a user belongs to.
func (c *Client) GetGroups(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Group], error) {
	return fetchList[types.Group](ctx, c, "GetGroups", c.build(orMe(userID), "groups", r), nil)
}

// GetGroup returns a group, or nil if it is not visible.
func (c *Client) GetGroup(ctx context.Context, groupID string, r *reading.Reading) (*types.Group, error) {
	return fetchOne[types.Group](ctx, c, "GetGroup", c.build(groupID, "", r), nil)
}

// GetGroupFeed returns the wall of a group.
func (c *Client) GetGroupFeed(ctx context.Context, groupID string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetGroupFeed", c.build(groupID, "feed", r), nil)
}

// PostGroupFeed posts to the wall of a group.
func (c *Client) PostGroupFeed(ctx context.Context, groupID string, post *types.PostUpdate) (string, error) {
	return c.postFeedUpdate(ctx, "PostGroupFeed", groupID, post)
}

// PostGroupLink shares a link in a group.
func (c *Client) PostGroupLink(ctx context.Context, groupID, link, message string) (string, error) {
	return c.postID(ctx, "PostGroupLink", c.build(groupID, "feed", nil), linkParams(link, message))
}

// PostGroupStatusMessage posts a plain message in a group.
func (c *Client) PostGroupStatusMessage(ctx context.Context, groupID, message string) (string, error) {
	return c.postID(ctx, "PostGroupStatusMessage", c.build(groupID, "feed", nil), types.P("message", message))
}

// GetGroupMembers returns the members of a group.
func (c *Client) GetGroupMembers(ctx context.Context, groupID string, r *reading.Reading) (*Page[types.GroupMember], error) {
	return fetchList[types.GroupMember](ctx, c, "GetGroupMembers", c.build(groupID, "members", r), nil)
}

// GetGroupDocs returns the documents of a group.
func (c *Client) GetGroupDocs(ctx context.Context, groupID string, r *reading.Reading) (*Page[types.GroupDoc], error) {
	return fetchList[types.GroupDoc](ctx, c, "GetGroupDocs", c.build(groupID, "docs", r), nil)
}

// GetGroupPictureURL returns where a group's picture is served from.
func (c *Client) GetGroupPictureURL(ctx context.Context, groupID string) (*url.URL, error) {
	return c.pictureURL(ctx, "GetGroupPictureURL", c.build(groupID, "picture", nil), "")
}
