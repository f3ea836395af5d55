package graph

import (
	"context"
	"net/url"
	"strings"

	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetMe returns the profile of the user the access token belongs to.
func (c *Client) GetMe(ctx context.Context, r *reading.Reading) (*types.User, error) {
	return c.GetUser(ctx, me, r)
}

// GetUser returns the profile of a user. It returns (nil, nil) when the user
// is not visible to the caller.
func (c *Client) GetUser(ctx context.Context, userID string, r *reading.Reading) (*types.User, error) {
	return fetchOne[types.User](ctx, c, "GetUser", c.build(orMe(userID), "", r), nil)
}

// GetUsers looks up several users in one request. Users that are not visible
// are left out; the rest keep the order of ids.
func (c *Client) GetUsers(ctx context.Context, ids []string, r *reading.Reading) ([]types.User, error) {
	if len(ids) == 0 {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, "GetUsers", "at least one id is required", nil)
	}

	byID, err := fetchOne[map[string]types.User](ctx, c, "GetUsers", c.build("", "", r), types.P("ids", strings.Join(ids, ",")))
	if err != nil || byID == nil {
		return nil, err
	}

	users := make([]types.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := (*byID)[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// GetPictureURL returns where a user's profile picture is served from.
// size may be empty for the default rendition.
func (c *Client) GetPictureURL(ctx context.Context, userID string, size types.PictureSize) (*url.URL, error) {
	return c.pictureURL(ctx, "GetPictureURL", c.build(orMe(userID), "picture", nil), size)
}

// GetAccounts returns the pages and applications the user administers.
func (c *Client) GetAccounts(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Account], error) {
	return fetchList[types.Account](ctx, c, "GetAccounts", c.build(orMe(userID), "accounts", r), nil)
}

// GetAchievements returns the application achievements the user earned.
func (c *Client) GetAchievements(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Achievement], error) {
	return fetchList[types.Achievement](ctx, c, "GetAchievements", c.build(orMe(userID), "achievements", r), nil)
}

// PostAchievement records that the user earned the achievement described at
// achievementURL and returns the new achievement instance id.
func (c *Client) PostAchievement(ctx context.Context, userID, achievementURL string) (string, error) {
	return c.postID(ctx, "PostAchievement", c.build(orMe(userID), "achievements", nil), types.P("achievement", achievementURL))
}

// DeleteAchievement removes an achievement from the user.
func (c *Client) DeleteAchievement(ctx context.Context, userID, achievementURL string) (bool, error) {
	return c.deleteAck(ctx, "DeleteAchievement", c.build(orMe(userID), "achievements", nil), types.P("achievement", achievementURL))
}

// GetActivities returns the activities listed on the user's profile.
func (c *Client) GetActivities(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Activity], error) {
	return fetchList[types.Activity](ctx, c, "GetActivities", c.build(orMe(userID), "activities", r), nil)
}

// GetBooks returns the books the user likes.
func (c *Client) GetBooks(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Book], error) {
	return fetchList[types.Book](ctx, c, "GetBooks", c.build(orMe(userID), "books", r), nil)
}

// GetFamily returns the relatives listed on the user's profile.
func (c *Client) GetFamily(ctx context.Context, userID string, r *reading.Reading) (*Page[types.FamilyMember], error) {
	return fetchList[types.FamilyMember](ctx, c, "GetFamily", c.build(orMe(userID), "family", r), nil)
}
