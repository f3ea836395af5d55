package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetGames returns the games a user lists.
func (c *Client) GetGames(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Game], error) {
	return fetchList[types.Game](ctx, c, "GetGames", c.build(orMe(userID), "games", r), nil)
}

// GetMovies returns the movies a user lists.
func (c *Client) GetMovies(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Movie], error) {
	return fetchList[types.Movie](ctx, c, "GetMovies", c.build(orMe(userID), "movies", r), nil)
}

// GetMusic returns the musicians and bands a user lists.
func (c *Client) GetMusic(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Music], error) {
	return fetchList[types.Music](ctx, c, "GetMusic", c.build(orMe(userID), "music", r), nil)
}

// GetTelevision returns the shows a user lists.
func (c *Client) GetTelevision(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Television], error) {
	return fetchList[types.Television](ctx, c, "GetTelevision", c.build(orMe(userID), "television", r), nil)
}

// GetInterests returns the interests a user lists.
func (c *Client) GetInterests(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Interest], error) {
	return fetchList[types.Interest](ctx, c, "GetInterests", c.build(orMe(userID), "interests", r), nil)
}
