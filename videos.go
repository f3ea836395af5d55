package graph

import (
	"context"
	"net/url"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetVideos returns the videos a user or page is tagged in or uploaded.
func (c *Client) GetVideos(ctx context.Context, id string, r *reading.Reading) (*Page[types.Video], error) {
	return fetchList[types.Video](ctx, c, "GetVideos", c.build(orMe(id), "videos", r), nil)
}

// GetVideo returns a video, or nil if it is not visible.
func (c *Client) GetVideo(ctx context.Context, videoID string, r *reading.Reading) (*types.Video, error) {
	return fetchOne[types.Video](ctx, c, "GetVideo", c.build(videoID, "", r), nil)
}

// PostVideo uploads a video through the video host and returns its id.
// title and description are optional.
func (c *Client) PostVideo(ctx context.Context, ownerID string, source *types.Media, title, description string) (string, error) {
	params, err := videoParams("PostVideo", source, title, description)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "PostVideo", c.urls.Video(orMe(ownerID), "videos", nil), params)
}

// GetVideoCover returns where a video's cover image is served from.
func (c *Client) GetVideoCover(ctx context.Context, videoID string) (*url.URL, error) {
	return c.pictureURL(ctx, "GetVideoCover", c.build(videoID, "picture", nil), "")
}

// GetInsights returns one metric of a page or application.
func (c *Client) GetInsights(ctx context.Context, objectID, metric string, r *reading.Reading) (*Page[types.Insight], error) {
	return fetchList[types.Insight](ctx, c, "GetInsights", c.build(objectID, "insights/"+metric, r), nil)
}

func videoParams(op string, source *types.Media, title, description string) (types.Params, error) {
	params, err := uploadParams(op, source)
	if err != nil {
		return nil, err
	}
	if title != "" {
		params = params.Add("title", title)
	}
	if description != "" {
		params = params.Add("description", description)
	}
	return params, nil
}
