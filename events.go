package graph

import (
	"context"
	"net/url"
	"strings"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// attendingList is the connection that lists every attendee of an event. The
// service spells it this way; "attending/{user}" is used for a single user.
const attendingList = "attnding"

// GetEvents returns the events a user is invited to.
func (c *Client) GetEvents(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Event], error) {
	return fetchList[types.Event](ctx, c, "GetEvents", c.build(orMe(userID), "events", r), nil)
}

// CreateEvent creates an event owned by ownerID and returns its id.
func (c *Client) CreateEvent(ctx context.Context, ownerID string, event *types.EventUpdate) (string, error) {
	params, err := c.encodeRequest("CreateEvent", event)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "CreateEvent", c.build(orMe(ownerID), "events", nil), params)
}

// GetEvent returns an event, or nil if it does not exist or is not visible.
func (c *Client) GetEvent(ctx context.Context, eventID string, r *reading.Reading) (*types.Event, error) {
	return fetchOne[types.Event](ctx, c, "GetEvent", c.build(eventID, "", r), nil)
}

// EditEvent replaces the editable fields of an event.
func (c *Client) EditEvent(ctx context.Context, eventID string, event *types.EventUpdate) (bool, error) {
	params, err := c.encodeRequest("EditEvent", event)
	if err != nil {
		return false, err
	}
	return c.postAck(ctx, "EditEvent", c.build(eventID, "", nil), params)
}

// DeleteEvent deletes an event.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteEvent", c.build(eventID, "", nil), nil)
}

// GetEventFeed returns the wall of an event.
func (c *Client) GetEventFeed(ctx context.Context, eventID string, r *reading.Reading) (*Page[types.Post], error) {
	return fetchList[types.Post](ctx, c, "GetEventFeed", c.build(eventID, "feed", r), nil)
}

// PostEventFeed posts to the wall of an event and returns the post id.
func (c *Client) PostEventFeed(ctx context.Context, eventID string, post *types.PostUpdate) (string, error) {
	return c.postFeedUpdate(ctx, "PostEventFeed", eventID, post)
}

// PostEventLink shares a link on the wall of an event.
func (c *Client) PostEventLink(ctx context.Context, eventID, link, message string) (string, error) {
	return c.postID(ctx, "PostEventLink", c.build(eventID, "feed", nil), linkParams(link, message))
}

// PostEventStatusMessage posts a plain message on the wall of an event.
func (c *Client) PostEventStatusMessage(ctx context.Context, eventID, message string) (string, error) {
	return c.postID(ctx, "PostEventStatusMessage", c.build(eventID, "feed", nil), types.P("message", message))
}

// rsvpConnection maps an RSVP status, optionally narrowed to one user, to its
// event connection.
func rsvpConnection(status, userID string) (string, bool) {
	switch status {
	case types.RSVPNoReply, types.RSVPInvited, types.RSVPMaybe, types.RSVPDeclined:
	case types.RSVPAttending:
		if userID == "" {
			return attendingList, true
		}
	default:
		return "", false
	}
	if userID == "" {
		return status, true
	}
	return status + "/" + userID, true
}

// GetRSVPStatus lists the people with the given RSVP status for an event.
// With a userID the list holds at most that user, which tells whether they
// answered that way.
func (c *Client) GetRSVPStatus(ctx context.Context, eventID, status, userID string, r *reading.Reading) (*Page[types.RSVPStatus], error) {
	connection, ok := rsvpConnection(status, userID)
	if !ok {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, "GetRSVPStatus", "unknown RSVP status "+status, nil)
	}
	return fetchList[types.RSVPStatus](ctx, c, "GetRSVPStatus", c.build(eventID, connection, r), nil)
}

// InviteToEvent invites one or more users to an event.
func (c *Client) InviteToEvent(ctx context.Context, eventID string, userIDs ...string) (bool, error) {
	switch len(userIDs) {
	case 0:
		return false, pkgerrs.New(pkgerrs.KindEncoding, "InviteToEvent", "at least one user id is required", nil)
	case 1:
		return c.postAck(ctx, "InviteToEvent", c.build(eventID, "invited/"+userIDs[0], nil), nil)
	default:
		return c.postAck(ctx, "InviteToEvent", c.build(eventID, "invited", nil), types.P("users", strings.Join(userIDs, ",")))
	}
}

// UninviteFromEvent withdraws a user's invitation.
func (c *Client) UninviteFromEvent(ctx context.Context, eventID, userID string) (bool, error) {
	return c.deleteAck(ctx, "UninviteFromEvent", c.build(eventID, "invited/"+userID, nil), nil)
}

// RSVPEvent answers an invitation as the current user. status must be
// attending, maybe or declined.
func (c *Client) RSVPEvent(ctx context.Context, eventID, status string) (bool, error) {
	switch status {
	case types.RSVPAttending, types.RSVPMaybe, types.RSVPDeclined:
	default:
		return false, pkgerrs.New(pkgerrs.KindEncoding, "RSVPEvent", "cannot answer an invitation with "+status, nil)
	}
	return c.postAck(ctx, "RSVPEvent", c.build(eventID, status, nil), nil)
}

// GetEventPictureURL returns where an event's picture is served from.
func (c *Client) GetEventPictureURL(ctx context.Context, eventID string, size types.PictureSize) (*url.URL, error) {
	return c.pictureURL(ctx, "GetEventPictureURL", c.build(eventID, "picture", nil), size)
}

// UpdateEventPicture replaces an event's picture.
func (c *Client) UpdateEventPicture(ctx context.Context, eventID string, source *types.Media) (bool, error) {
	params, err := uploadParams("UpdateEventPicture", source)
	if err != nil {
		return false, err
	}
	return c.postAck(ctx, "UpdateEventPicture", c.build(eventID, "picture", nil), params)
}

// DeleteEventPicture removes an event's picture.
func (c *Client) DeleteEventPicture(ctx context.Context, eventID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteEventPicture", c.build(eventID, "picture", nil), nil)
}

// GetEventPhotos returns the photos posted to an event.
func (c *Client) GetEventPhotos(ctx context.Context, eventID string, r *reading.Reading) (*Page[types.Photo], error) {
	return fetchList[types.Photo](ctx, c, "GetEventPhotos", c.build(eventID, "photos", r), nil)
}

// PostEventPhoto uploads a photo to an event and returns the photo id.
func (c *Client) PostEventPhoto(ctx context.Context, eventID string, source *types.Media, message string) (string, error) {
	params, err := uploadParams("PostEventPhoto", source)
	if err != nil {
		return "", err
	}
	if message != "" {
		params = params.Add("message", message)
	}
	return c.postID(ctx, "PostEventPhoto", c.build(eventID, "photos", nil), params)
}

// GetEventVideos returns the videos posted to an event.
func (c *Client) GetEventVideos(ctx context.Context, eventID string, r *reading.Reading) (*Page[types.Video], error) {
	return fetchList[types.Video](ctx, c, "GetEventVideos", c.build(eventID, "videos", r), nil)
}

// PostEventVideo uploads a video to an event through the video host and
// returns the video id.
func (c *Client) PostEventVideo(ctx context.Context, eventID string, source *types.Media, title, description string) (string, error) {
	params, err := videoParams("PostEventVideo", source, title, description)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "PostEventVideo", c.urls.Video(eventID, "videos", nil), params)
}
