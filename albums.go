package graph

import (
	"context"
	"net/url"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetAlbums returns the photo albums of a user or page.
func (c *Client) GetAlbums(ctx context.Context, ownerID string, r *reading.Reading) (*Page[types.Album], error) {
	return fetchList[types.Album](ctx, c, "GetAlbums", c.build(orMe(ownerID), "albums", r), nil)
}

// GetAlbum returns a single album, or nil if it is not visible.
func (c *Client) GetAlbum(ctx context.Context, albumID string, r *reading.Reading) (*types.Album, error) {
	return fetchOne[types.Album](ctx, c, "GetAlbum", c.build(albumID, "", r), nil)
}

// CreateAlbum creates an album owned by ownerID and returns its id.
func (c *Client) CreateAlbum(ctx context.Context, ownerID string, album *types.AlbumCreate) (string, error) {
	params, err := c.encodeRequest("CreateAlbum", album)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "CreateAlbum", c.build(orMe(ownerID), "albums", nil), params)
}

// GetAlbumPhotos returns the photos in an album.
func (c *Client) GetAlbumPhotos(ctx context.Context, albumID string, r *reading.Reading) (*Page[types.Photo], error) {
	return fetchList[types.Photo](ctx, c, "GetAlbumPhotos", c.build(albumID, "photos", r), nil)
}

// AddAlbumPhoto uploads a photo into an album and returns the new photo id.
// message is optional.
func (c *Client) AddAlbumPhoto(ctx context.Context, albumID string, source *types.Media, message string) (string, error) {
	params, err := uploadParams("AddAlbumPhoto", source)
	if err != nil {
		return "", err
	}
	if message != "" {
		params = params.Add("message", message)
	}
	return c.postID(ctx, "AddAlbumPhoto", c.build(albumID, "photos", nil), params)
}

// GetAlbumCoverPhoto returns where an album's cover photo is served from.
func (c *Client) GetAlbumCoverPhoto(ctx context.Context, albumID string) (*url.URL, error) {
	return c.pictureURL(ctx, "GetAlbumCoverPhoto", c.build(albumID, "picture", nil), "")
}
