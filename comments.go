package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// Comments and likes hang off posts, photos, albums, checkins, links, notes
// and videos alike, so these take the id of any such object.

// GetComments returns the comments on an object. Request the nested
// "comments" field to receive replies; NewCommentThread walks them.
func (c *Client) GetComments(ctx context.Context, objectID string, r *reading.Reading) (*Page[types.Comment], error) {
	return fetchList[types.Comment](ctx, c, "GetComments", c.build(objectID, "comments", r), nil)
}

// Comment posts a comment on an object and returns the comment id.
func (c *Client) Comment(ctx context.Context, objectID, message string) (string, error) {
	return c.postID(ctx, "Comment", c.build(objectID, "comments", nil), types.P("message", message))
}

// GetComment returns a single comment, or nil if it is not visible.
func (c *Client) GetComment(ctx context.Context, commentID string, r *reading.Reading) (*types.Comment, error) {
	return fetchOne[types.Comment](ctx, c, "GetComment", c.build(commentID, "", r), nil)
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteComment", c.build(commentID, "", nil), nil)
}

// GetLikes returns who likes an object. For a user id it returns what the
// user likes.
func (c *Client) GetLikes(ctx context.Context, objectID string, r *reading.Reading) (*Page[types.Like], error) {
	return fetchList[types.Like](ctx, c, "GetLikes", c.build(orMe(objectID), "likes", r), nil)
}

// Like likes an object as the current user.
func (c *Client) Like(ctx context.Context, objectID string) (bool, error) {
	return c.postAck(ctx, "Like", c.build(objectID, "likes", nil), nil)
}

// Unlike removes the current user's like from an object.
func (c *Client) Unlike(ctx context.Context, objectID string) (bool, error) {
	return c.deleteAck(ctx, "Unlike", c.build(objectID, "likes", nil), nil)
}
