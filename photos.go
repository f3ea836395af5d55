package graph

import (
	"context"
	"encoding/json"
	"net/url"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetPhotos returns the photos a user or page is tagged in.
func (c *Client) GetPhotos(ctx context.Context, id string, r *reading.Reading) (*Page[types.Photo], error) {
	return fetchList[types.Photo](ctx, c, "GetPhotos", c.build(orMe(id), "photos", r), nil)
}

// GetPhoto returns a photo, or nil if it is not visible.
func (c *Client) GetPhoto(ctx context.Context, photoID string, r *reading.Reading) (*types.Photo, error) {
	return fetchOne[types.Photo](ctx, c, "GetPhoto", c.build(photoID, "", r), nil)
}

// PostPhoto uploads a photo to the owner's default album and returns the
// photo id. message and place are optional; noStory suppresses the feed story.
func (c *Client) PostPhoto(ctx context.Context, ownerID string, source *types.Media, message, place string, noStory bool) (string, error) {
	params, err := uploadParams("PostPhoto", source)
	if err != nil {
		return "", err
	}
	if message != "" {
		params = params.Add("message", message)
	}
	if place != "" {
		params = params.Add("place", place)
	}
	if noStory {
		params = params.Add("no_story", "1")
	}
	return c.postID(ctx, "PostPhoto", c.build(orMe(ownerID), "photos", nil), params)
}

// DeletePhoto deletes a photo.
func (c *Client) DeletePhoto(ctx context.Context, photoID string) (bool, error) {
	return c.deleteAck(ctx, "DeletePhoto", c.build(photoID, "", nil), nil)
}

// GetPhotoURL returns where the image of a photo is served from.
func (c *Client) GetPhotoURL(ctx context.Context, photoID string) (*url.URL, error) {
	return c.pictureURL(ctx, "GetPhotoURL", c.build(photoID, "picture", nil), "")
}

// GetTagsOnPhoto returns the people tagged on a photo.
func (c *Client) GetTagsOnPhoto(ctx context.Context, photoID string, r *reading.Reading) (*Page[types.Tag], error) {
	return fetchList[types.Tag](ctx, c, "GetTagsOnPhoto", c.build(photoID, "tags", r), nil)
}

// AddTagToPhoto tags a user on a photo. Tagging an already tagged user
// updates the tag.
func (c *Client) AddTagToPhoto(ctx context.Context, photoID, userID string) (bool, error) {
	return c.postAck(ctx, "AddTagToPhoto", c.build(photoID, "tags", nil), types.P("to", userID))
}

// UpdateTagOnPhoto tags a user on a photo with a caption or position.
func (c *Client) UpdateTagOnPhoto(ctx context.Context, photoID string, tag *types.TagUpdate) (bool, error) {
	params, err := c.encodeRequest("UpdateTagOnPhoto", tag)
	if err != nil {
		return false, err
	}
	return c.postAck(ctx, "UpdateTagOnPhoto", c.build(photoID, "tags", nil), params)
}

// AddTagsToPhoto tags several users on a photo in one request.
func (c *Client) AddTagsToPhoto(ctx context.Context, photoID string, userIDs ...string) (bool, error) {
	tags, err := json.Marshal(userIDs)
	if err != nil {
		return false, pkgerrs.New(pkgerrs.KindEncoding, "AddTagsToPhoto", "failed to encode user ids", err)
	}
	return c.postAck(ctx, "AddTagsToPhoto", c.build(photoID, "tags", nil), types.P("tags", string(tags)))
}
