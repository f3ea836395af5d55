package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetFeed returns the wall of a user, page or group: their own posts and
// posts by others.
func (c *Client) GetFeed(ctx context.Context, id string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetFeed", c.build(orMe(id), "feed", r), nil)
}

// GetHome returns the current user's news feed.
func (c *Client) GetHome(ctx context.Context, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetHome", c.build(me, "home", r), nil)
}

// GetPosts returns only the posts made by the owner of id.
func (c *Client) GetPosts(ctx context.Context, id string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetPosts", c.build(orMe(id), "posts", r), nil)
}

// GetStatuses returns the status updates of a user or page.
func (c *Client) GetStatuses(ctx context.Context, id string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetStatuses", c.build(orMe(id), "statuses", r), nil)
}

// GetTagged returns the posts a user or page is tagged in.
func (c *Client) GetTagged(ctx context.Context, id string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetTagged", c.build(orMe(id), "tagged", r), nil)
}

// GetPost returns a post, or nil if it is not visible.
func (c *Client) GetPost(ctx context.Context, postID string, r *reading.Reading) (*types.Post, error) {
	return fetchOne[types.Post](ctx, c, "GetPost", c.build(postID, "", r), nil)
}

// PostFeed publishes a post on a wall and returns the post id.
func (c *Client) PostFeed(ctx context.Context, id string, post *types.PostUpdate) (string, error) {
	return c.postFeedUpdate(ctx, "PostFeed", orMe(id), post)
}

// PostLink shares a link on a wall. message is optional.
func (c *Client) PostLink(ctx context.Context, id, link, message string) (string, error) {
	return c.postID(ctx, "PostLink", c.build(orMe(id), "feed", nil), linkParams(link, message))
}

// PostStatusMessage posts a plain status message on a wall.
func (c *Client) PostStatusMessage(ctx context.Context, id, message string) (string, error) {
	return c.postID(ctx, "PostStatusMessage", c.build(orMe(id), "feed", nil), types.P("message", message))
}

// DeletePost deletes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) (bool, error) {
	return c.deleteAck(ctx, "DeletePost", c.build(postID, "", nil), nil)
}

// GetPostInsights returns the metrics of a page post.
func (c *Client) GetPostInsights(ctx context.Context, postID string, r *reading.Reading) (*Page[types.Insight], error) {
	return fetchList[types.Insight](ctx, c, "GetPostInsights", c.build(postID, "insights", r), nil)
}

// postFeedUpdate validates a PostUpdate and posts it to id's feed.
func (c *Client) postFeedUpdate(ctx context.Context, op, id string, post *types.PostUpdate) (string, error) {
	params, err := c.encodeRequest(op, post)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, op, c.build(id, "feed", nil), params)
}

func linkParams(link, message string) types.Params {
	params := types.P("link", link)
	if message != "" {
		params = params.Add("message", message)
	}
	return params
}
