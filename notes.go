package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetLinks returns the links a user shared.
func (c *Client) GetLinks(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Link], error) {
	return fetchList[types.Link](ctx, c, "GetLinks", c.build(orMe(userID), "links", r), nil)
}

// GetLink returns a shared link, or nil if it is not visible.
func (c *Client) GetLink(ctx context.Context, linkID string, r *reading.Reading) (*types.Link, error) {
	return fetchOne[types.Link](ctx, c, "GetLink", c.build(linkID, "", r), nil)
}

// GetLocations returns the places a user was tagged at or checked in to.
func (c *Client) GetLocations(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Location], error) {
	return fetchList[types.Location](ctx, c, "GetLocations", c.build(orMe(userID), "locations", r), nil)
}

// GetNotes returns a user's notes.
func (c *Client) GetNotes(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Note], error) {
	return fetchList[types.Note](ctx, c, "GetNotes", c.build(orMe(userID), "notes", r), nil)
}

// CreateNote writes a note and returns its id.
func (c *Client) CreateNote(ctx context.Context, userID, subject, message string) (string, error) {
	return c.postID(ctx, "CreateNote", c.build(orMe(userID), "notes", nil), types.P("subject", subject, "message", message))
}

// GetNote returns a note, or nil if it is not visible.
func (c *Client) GetNote(ctx context.Context, noteID string, r *reading.Reading) (*types.Note, error) {
	return fetchOne[types.Note](ctx, c, "GetNote", c.build(noteID, "", r), nil)
}

// GetNotifications returns a user's unread notifications, or all of them when
// includeRead is set.
func (c *Client) GetNotifications(ctx context.Context, userID string, includeRead bool, r *reading.Reading) (*Page[types.Notification], error) {
	var params types.Params
	if includeRead {
		params = types.P("include_read", "1")
	}
	return fetchList[types.Notification](ctx, c, "GetNotifications", c.build(orMe(userID), "notifications", r), params)
}

// MarkNotificationAsRead marks a notification as read.
func (c *Client) MarkNotificationAsRead(ctx context.Context, notificationID string) (bool, error) {
	return c.postAck(ctx, "MarkNotificationAsRead", c.build(notificationID, "", nil), types.P("unread", "0"))
}
