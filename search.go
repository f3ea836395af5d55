package graph

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// Search methods work without credentials. When the client has a token it is
// still sent, which widens what the service returns.

// SearchPosts searches public posts.
func (c *Client) SearchPosts(ctx context.Context, query string, r *reading.Reading) (*Page[types.Post], error) {
	return searchList[types.Post](ctx, c, "SearchPosts", c.urls.Search(query, "post", nil, r))
}

// SearchUsers searches people by name.
func (c *Client) SearchUsers(ctx context.Context, query string, r *reading.Reading) (*Page[types.User], error) {
	return searchList[types.User](ctx, c, "SearchUsers", c.urls.Search(query, "user", nil, r))
}

// SearchEvents searches events by name.
func (c *Client) SearchEvents(ctx context.Context, query string, r *reading.Reading) (*Page[types.Event], error) {
	return searchList[types.Event](ctx, c, "SearchEvents", c.urls.Search(query, "event", nil, r))
}

// SearchGroups searches groups by name.
func (c *Client) SearchGroups(ctx context.Context, query string, r *reading.Reading) (*Page[types.Group], error) {
	return searchList[types.Group](ctx, c, "SearchGroups", c.urls.Search(query, "group", nil, r))
}

// SearchPlaces searches places by name within distance meters of center.
func (c *Client) SearchPlaces(ctx context.Context, query string, center types.GeoLocation, distance int, r *reading.Reading) (*Page[types.Place], error) {
	return searchList[types.Place](ctx, c, "SearchPlaces", c.urls.Search(query, "place", nearParams(center, distance), r))
}

// SearchCheckins returns recent checkins of the current user and their friends.
func (c *Client) SearchCheckins(ctx context.Context, r *reading.Reading) (*Page[types.Checkin], error) {
	return searchList[types.Checkin](ctx, c, "SearchCheckins", c.urls.Search("", "checkin", nil, r))
}

// SearchLocations returns tagged locations within distance meters of center.
func (c *Client) SearchLocations(ctx context.Context, center types.GeoLocation, distance int, r *reading.Reading) (*Page[types.Location], error) {
	return searchList[types.Location](ctx, c, "SearchLocations", c.urls.Search("", "location", nearParams(center, distance), r))
}

// SearchLocationsAt returns tagged locations at a place.
func (c *Client) SearchLocationsAt(ctx context.Context, placeID string, r *reading.Reading) (*Page[types.Location], error) {
	return searchList[types.Location](ctx, c, "SearchLocationsAt", c.urls.Search("", "location", types.P("place", placeID), r))
}

// SearchPages searches pages by name.
func (c *Client) SearchPages(ctx context.Context, query string, r *reading.Reading) (*Page[types.Page], error) {
	return searchList[types.Page](ctx, c, "SearchPages", c.urls.Search(query, "page", nil, r))
}

// Search runs an untyped search. Elements are returned undecoded.
func (c *Client) Search(ctx context.Context, query string, r *reading.Reading) (*Page[json.RawMessage], error) {
	return searchList[json.RawMessage](ctx, c, "Search", c.urls.Search(query, "", nil, r))
}

func nearParams(center types.GeoLocation, distance int) types.Params {
	return types.P("center", center.String(), "distance", strconv.Itoa(distance))
}
