package graph

import (
	"context"
	"net/url"
	"strings"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// DefaultTestUserLocale is used by CreateTestUser when no locale is given.
const DefaultTestUserLocale = "en_US"

// CreateTestUser creates a test account for an application that has already
// installed it. name and locale are optional; permissions are granted up front.
// Requires an app access token.
func (c *Client) CreateTestUser(ctx context.Context, appID, name, locale string, permissions ...string) (user *types.TestUser, err error) {
	if locale == "" {
		locale = DefaultTestUserLocale
	}
	query := []string{"installed=true"}
	if name != "" {
		query = append(query, "name="+url.QueryEscape(name))
	}
	query = append(query, "locale="+url.QueryEscape(locale))
	if len(permissions) > 0 {
		query = append(query, "permissions="+url.QueryEscape(strings.Join(permissions, ",")))
	}
	rawURL := c.build(appID, "accounts/test-users", nil) + "?" + strings.Join(query, "&")

	err = c.call(ctx, "CreateTestUser", false, func(ctx context.Context) error {
		resp, err := c.http.Post(ctx, rawURL, nil)
		if err != nil {
			return err
		}
		created, found, err := internal.DecodeEntity(resp.Body, internal.JSONDecoder[types.TestUser]())
		if err != nil {
			return err
		}
		if !found {
			return pkgerrs.New(pkgerrs.KindMalformedResponse, "", "test user was not created", nil)
		}
		user = &created
		return nil
	})
	return user, err
}

// GetTestUsers returns the test accounts of an application.
func (c *Client) GetTestUsers(ctx context.Context, appID string) ([]types.TestUser, error) {
	page, err := fetchList[types.TestUser](ctx, c, "GetTestUsers", c.build(appID, "accounts/test-users", nil), nil)
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// DeleteTestUser deletes a test account.
func (c *Client) DeleteTestUser(ctx context.Context, testUserID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteTestUser", c.build(testUserID, "", nil), nil)
}

// MakeFriendTestUser makes two test users friends. Each side of the request
// is sent with that user's own access token instead of the client's.
func (c *Client) MakeFriendTestUser(ctx context.Context, user1, user2 *types.TestUser) (bool, error) {
	if user1 == nil || user2 == nil {
		return false, pkgerrs.New(pkgerrs.KindEncoding, "MakeFriendTestUser", "both test users are required", nil)
	}

	ok, err := c.postAck(ctx, "MakeFriendTestUser", c.build(user1.ID, "friends/"+user2.ID, nil), types.P("access_token", user1.AccessToken))
	if err != nil || !ok {
		return false, err
	}
	return c.postAck(ctx, "MakeFriendTestUser", c.build(user2.ID, "friends/"+user1.ID, nil), types.P("access_token", user2.AccessToken))
}
