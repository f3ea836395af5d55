package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetFriends returns a user's friends.
func (c *Client) GetFriends(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Friend], error) {
	return fetchList[types.Friend](ctx, c, "GetFriends", c.build(orMe(userID), "friends", r), nil)
}

// GetFriend reports whether friendID is a friend of userID. The page is
// empty when they are not friends.
func (c *Client) GetFriend(ctx context.Context, userID, friendID string, r *reading.Reading) (*Page[types.Friend], error) {
	return fetchList[types.Friend](ctx, c, "GetFriend", c.build(orMe(userID), "friends/"+friendID, r), nil)
}

// GetMutualFriends returns the friends userID and otherID have in common.
func (c *Client) GetMutualFriends(ctx context.Context, userID, otherID string, r *reading.Reading) (*Page[types.Friend], error) {
	return fetchList[types.Friend](ctx, c, "GetMutualFriends", c.build(orMe(userID), "mutualfriends/"+otherID, r), nil)
}

// GetFriendlists returns a user's friend lists.
func (c *Client) GetFriendlists(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Friendlist], error) {
	return fetchList[types.Friendlist](ctx, c, "GetFriendlists", c.build(orMe(userID), "friendlists", r), nil)
}

// GetFriendlist returns a single friend list, or nil if it is not visible.
func (c *Client) GetFriendlist(ctx context.Context, friendlistID string, r *reading.Reading) (*types.Friendlist, error) {
	return fetchOne[types.Friendlist](ctx, c, "GetFriendlist", c.build(friendlistID, "", r), nil)
}

// CreateFriendlist creates a friend list and returns its id.
func (c *Client) CreateFriendlist(ctx context.Context, userID, name string) (string, error) {
	return c.postID(ctx, "CreateFriendlist", c.build(orMe(userID), "friendlists", nil), types.P("name", name))
}

// DeleteFriendlist deletes a friend list.
func (c *Client) DeleteFriendlist(ctx context.Context, friendlistID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteFriendlist", c.build(friendlistID, "", nil), nil)
}

// AddFriendlistMember adds a friend to a friend list.
func (c *Client) AddFriendlistMember(ctx context.Context, friendlistID, userID string) (bool, error) {
	return c.postAck(ctx, "AddFriendlistMember", c.build(friendlistID, "members/"+userID, nil), nil)
}

// RemoveFriendlistMember removes a friend from a friend list.
func (c *Client) RemoveFriendlistMember(ctx context.Context, friendlistID, userID string) (bool, error) {
	return c.deleteAck(ctx, "RemoveFriendlistMember", c.build(friendlistID, "members/"+userID, nil), nil)
}

// GetFriendlistMembers returns the members of a friend list.
func (c *Client) GetFriendlistMembers(ctx context.Context, friendlistID string, r *reading.Reading) (*Page[types.Friend], error) {
	return fetchList[types.Friend](ctx, c, "GetFriendlistMembers", c.build(friendlistID, "members", r), nil)
}

// GetFriendRequests returns the pending friend requests of a user.
func (c *Client) GetFriendRequests(ctx context.Context, userID string, r *reading.Reading) (*Page[types.FriendRequest], error) {
	return fetchList[types.FriendRequest](ctx, c, "GetFriendRequests", c.build(orMe(userID), "friendrequests", r), nil)
}
