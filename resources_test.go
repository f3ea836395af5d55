package graph_test

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/nsf/jsondiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graph "github.com/jamesprial/go-graph-api-wrapper"
	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
	"github.com/jamesprial/go-graph-api-wrapper/test_generators"
	"github.com/jamesprial/go-graph-api-wrapper/test_helpers"
)

// assertJSONSuperset checks that actual contains every key and value of expected.
func assertJSONSuperset(t *testing.T, actual []byte, expected string) {
	t.Helper()
	result, diff := jsondiff.Compare(actual, []byte(expected), &jsondiff.Options{})
	assert.Contains(t, []jsondiff.Difference{jsondiff.FullMatch, jsondiff.SupersetMatch}, result, diff)
}

func setup(t *testing.T) (*test_helpers.TestClient, *test_helpers.MockServer) {
	t.Helper()
	tc := test_helpers.NewTestClient(nil)
	t.Cleanup(tc.Close)
	return tc, tc.MockServer()
}

func lastRequest(t *testing.T, ms *test_helpers.MockServer, path string) *test_helpers.RequestEntry {
	t.Helper()
	entry, err := ms.GetLastRequest(path)
	require.NoError(t, err)
	return entry
}

func TestGetMe(t *testing.T) {
	tc, ms := setup(t)
	name := faker.Name()
	ms.PutObject("me", map[string]any{"id": "100", "name": name, "updated_time": "2013-01-12T08:23:45+0000"})

	user, err := tc.GetMe(context.Background(), reading.New().Fields("id", "name"))
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "100", user.ID)
	assert.Equal(t, name, user.Name)
	assert.Equal(t, 2013, user.UpdatedTime.Year())

	req := lastRequest(t, ms, "/me")
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "fields=id,name", req.Query)
	assert.Equal(t, "Bearer "+test_helpers.TestAccessToken, req.Headers.Get("Authorization"))
}

func TestGetUser_NotVisible(t *testing.T) {
	tc, _ := setup(t)

	user, err := tc.GetUser(context.Background(), "404", nil)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUsers_KeepsOrder(t *testing.T) {
	tc, ms := setup(t)
	ms.PutObject("1", map[string]any{"id": "1", "name": "One"})
	ms.PutObject("3", map[string]any{"id": "3", "name": "Three"})

	users, err := tc.GetUsers(context.Background(), []string{"3", "2", "1"}, nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Three", users[0].Name)
	assert.Equal(t, "One", users[1].Name)

	q, err := url.ParseQuery(lastRequest(t, ms, "/").Query)
	require.NoError(t, err)
	assert.Equal(t, "3,2,1", q.Get("ids"))
}

func TestGetDomains(t *testing.T) {
	tc, ms := setup(t)
	ms.PutObject("example.com", map[string]any{"id": "55", "name": "example.com"})
	ctx := context.Background()

	d, err := tc.GetDomainByName(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "55", d.ID)

	ds, err := tc.GetDomainsByName(ctx, "nope.org", "example.com")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, "example.com", ds[0].Name)
}

func TestPictureURL(t *testing.T) {
	tc, ms := setup(t)
	ms.PutPicture("me", "https://cdn.example.com/me.jpg")
	ms.PutPicture("album1", "https://cdn.example.com/cover.jpg")
	ctx := context.Background()

	u, err := tc.GetPictureURL(ctx, "", types.PictureLarge)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/me.jpg?type=large", u.String())
	assert.Equal(t, "type=large", lastRequest(t, ms, "/me/picture").Query)

	u, err = tc.GetAlbumCoverPhoto(ctx, "album1")
	require.NoError(t, err)
	assert.Equal(t, "cdn.example.com", u.Host)
	assert.Empty(t, lastRequest(t, ms, "/album1/picture").Query)
}

func TestPictureURL_NotFound(t *testing.T) {
	tc, _ := setup(t)

	_, err := tc.GetGroupPictureURL(context.Background(), "missing")
	require.Error(t, err)
}

func TestPictureURL_RejectsRelativeLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
	}{
		{name: "path only", location: "/pictures/me.jpg"},
		{name: "no scheme", location: "cdn.example.com/me.jpg"},
		{name: "no host", location: "mailto:someone@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ms := setup(t)
			ms.PutPicture("me", tt.location)

			u, err := tc.GetPictureURL(context.Background(), "", "")
			require.Error(t, err)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, pkgerrs.ErrMalformedResponse)
		})
	}
}

func TestFeedPublishing(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	message := faker.Sentence()

	id, err := tc.PostStatusMessage(ctx, "", message)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	raw, ok := ms.Object(id)
	require.True(t, ok)
	assertJSONSuperset(t, raw, `{"message":`+mustQuote(message)+`}`)

	linkID, err := tc.PostLink(ctx, "", "https://example.com/a", "")
	require.NoError(t, err)
	raw, _ = ms.Object(linkID)
	assertJSONSuperset(t, raw, `{"link":"https://example.com/a"}`)
	assert.NotContains(t, string(raw), `"message"`)

	postID, err := tc.PostFeed(ctx, "", &types.PostUpdate{Message: "hello", Link: "https://example.com/b", Name: "B"})
	require.NoError(t, err)
	raw, _ = ms.Object(postID)
	assertJSONSuperset(t, raw, `{"message":"hello","link":"https://example.com/b","name":"B"}`)

	feed, err := tc.GetFeed(ctx, "", nil)
	require.NoError(t, err)
	assert.Len(t, feed.Data, 3)

	ok, err = tc.DeletePost(ctx, postID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tc.DeletePost(ctx, postID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeneratedFeedRoundTrip(t *testing.T) {
	tc, ms := setup(t)
	posts := test_generators.NewPostGenerator(7).GeneratePostsWithOptions(12, test_generators.PostOptions{LinkRatio: 0.5, MaxComments: 3})
	items := make([]any, 0, len(posts))
	for _, p := range posts {
		items = append(items, p)
	}
	ms.PutConnection("g9", "feed", items...)

	page, err := tc.GetGroupFeed(context.Background(), "g9", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, len(posts))
	for i, got := range page.Data {
		assert.Equal(t, posts[i].ID, got.ID)
		assert.Equal(t, posts[i].Link, got.Link)
		assert.True(t, posts[i].CreatedTime.Equal(got.CreatedTime.Time))
		if posts[i].Comments != nil {
			require.NotNil(t, got.Comments)
			assert.Len(t, got.Comments.Data, len(posts[i].Comments.Data))
		}
	}
}

func TestGroupPosting(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	_, err := tc.PostGroupStatusMessage(ctx, "g1", "status")
	require.NoError(t, err)
	_, err = tc.PostGroupLink(ctx, "g1", "https://example.com", "look")
	require.NoError(t, err)
	_, err = tc.PostGroupFeed(ctx, "g1", &types.PostUpdate{Message: "feed"})
	require.NoError(t, err)

	assert.Len(t, ms.Connection("g1", "feed"), 3)
	assert.NoError(t, ms.AssertRequestCount("/g1/feed", 3))
}

func TestEvents(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	id, err := tc.CreateEvent(ctx, "", &types.EventUpdate{Name: "Launch", StartTime: mustTime(t, "2030-05-01T18:00:00Z")})
	require.NoError(t, err)
	raw, _ := ms.Object(id)
	assertJSONSuperset(t, raw, `{"name":"Launch","start_time":"1903888800"}`)

	ok, err := tc.EditEvent(ctx, id, &types.EventUpdate{Name: "Launch party", StartTime: mustTime(t, "2030-05-01T19:00:00Z")})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = tc.GetRSVPStatus(ctx, id, types.RSVPAttending, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", lastRequest(t, ms, "/"+id+"/attnding").Method)

	_, err = tc.GetRSVPStatus(ctx, id, types.RSVPAttending, "42", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", lastRequest(t, ms, "/"+id+"/attending/42").Method)

	ok, err = tc.InviteToEvent(ctx, id, "7")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "POST", lastRequest(t, ms, "/"+id+"/invited/7").Method)

	_, err = tc.InviteToEvent(ctx, id, "7", "8")
	require.NoError(t, err)
	assert.Equal(t, "users=7%2C8", lastRequest(t, ms, "/"+id+"/invited").Body)

	_, err = tc.RSVPEvent(ctx, id, types.RSVPMaybe)
	require.NoError(t, err)
	assert.Equal(t, "POST", lastRequest(t, ms, "/"+id+"/maybe").Method)

	_, err = tc.GetEventFeed(ctx, id, nil)
	require.NoError(t, err)
	assert.NoError(t, ms.AssertRequestCount("/"+id+"/feed", 1))

	ok, err = tc.DeleteEvent(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	event, err := tc.GetEvent(ctx, id, nil)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestUploads(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	img := types.NewMedia("cat.jpg", []byte("\xff\xd8\xff"))

	photoID, err := tc.PostPhoto(ctx, "", img, "caption", "", true)
	require.NoError(t, err)
	raw, _ := ms.Object(photoID)
	assertJSONSuperset(t, raw, `{"source":"cat.jpg","message":"caption","no_story":"1"}`)

	req := lastRequest(t, ms, "/me/photos")
	assert.Contains(t, req.Headers.Get("Content-Type"), "multipart/form-data")

	videoID, err := tc.PostVideo(ctx, "", types.NewMedia("clip.mp4", []byte("video")), "Clip", "")
	require.NoError(t, err)
	raw, _ = ms.Object(videoID)
	assertJSONSuperset(t, raw, `{"source":"clip.mp4","title":"Clip"}`)

	albumPhoto, err := tc.AddAlbumPhoto(ctx, "a1", img, "")
	require.NoError(t, err)
	assert.NotEmpty(t, albumPhoto)
}

func TestComments(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.PutConnection("post1", "comments",
		map[string]any{"id": "c1", "message": "first", "from": map[string]string{"id": "u1", "name": "Ann"},
			"comments": map[string]any{"data": []any{map[string]any{"id": "c1r1", "message": "reply"}}}},
		map[string]any{"id": "c2", "message": "second"},
	)

	page, err := tc.GetComments(ctx, "post1", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	thread := graph.NewCommentThread(page.Data)
	assert.Equal(t, 3, thread.Count())
	assert.Equal(t, 1, thread.GetDepth())
	assert.Equal(t, "reply", thread.GetByID("c1r1").Message)

	id, err := tc.Comment(ctx, "post1", "third")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, ms.Connection("post1", "comments"), 3)

	ok, err := tc.Like(ctx, "post1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tc.Unlike(ctx, "post1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFriendlists(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	id, err := tc.CreateFriendlist(ctx, "", "Close friends")
	require.NoError(t, err)

	ok, err := tc.AddFriendlistMember(ctx, id, "u9")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "POST", lastRequest(t, ms, "/"+id+"/members/u9").Method)

	_, err = tc.GetFriendlistMembers(ctx, id, nil)
	require.NoError(t, err)
	assert.NoError(t, ms.AssertRequestCount("/"+id+"/members", 1))

	ok, err = tc.RemoveFriendlistMember(ctx, id, "u9")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "DELETE", lastRequest(t, ms, "/"+id+"/members/u9").Method)

	_, err = tc.GetMutualFriends(ctx, "", "u2", nil)
	require.NoError(t, err)
	assert.NoError(t, ms.AssertRequestCount("/me/mutualfriends/u2", 1))
}

func TestPhotoTags(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.PutConnection("p1", "tags", map[string]any{"id": "u1", "name": "Ann", "x": 10.5, "y": 20})

	tags, err := tc.GetTagsOnPhoto(ctx, "p1", nil)
	require.NoError(t, err)
	require.Len(t, tags.Data, 1)
	require.NotNil(t, tags.Data[0].X)
	assert.InDelta(t, 10.5, *tags.Data[0].X, 0.001)

	_, err = tc.AddTagToPhoto(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "to=u2", lastRequest(t, ms, "/p1/tags").Body)

	_, err = tc.AddTagsToPhoto(ctx, "p1", "u3", "u4")
	require.NoError(t, err)
	assert.Equal(t, "tags=%5B%22u3%22%2C%22u4%22%5D", lastRequest(t, ms, "/p1/tags").Body)

	_, err = tc.UpdateTagOnPhoto(ctx, "p1", &types.TagUpdate{To: "u5", X: 50, Y: 25})
	require.NoError(t, err)
	form, err := url.ParseQuery(lastRequest(t, ms, "/p1/tags").Body)
	require.NoError(t, err)
	assert.Equal(t, "u5", form.Get("to"))
	x, err := strconv.ParseFloat(form.Get("x"), 64)
	require.NoError(t, err)
	assert.InDelta(t, 50, x, 0.001)
	assert.False(t, form.Has("tag_text"))
}

func TestNotifications(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	_, err := tc.GetNotifications(ctx, "", true, nil)
	require.NoError(t, err)
	assert.Equal(t, "include_read=1", lastRequest(t, ms, "/me/notifications").Query)

	_, err = tc.GetNotifications(ctx, "", false, nil)
	require.NoError(t, err)
	assert.Empty(t, lastRequest(t, ms, "/me/notifications").Query)

	ms.PutObject("n1", map[string]any{"id": "n1"})
	ok, err := tc.MarkNotificationAsRead(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "unread=0", lastRequest(t, ms, "/n1").Body)
}

func TestQuestions(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	id, err := tc.CreateQuestion(ctx, "", &types.QuestionCreate{
		Question: "Tabs or spaces?",
		Options:  types.JSONList{"tabs", "spaces"},
	})
	require.NoError(t, err)
	raw, _ := ms.Object(id)
	assertJSONSuperset(t, raw, `{"question":"Tabs or spaces?","options":"[\"tabs\",\"spaces\"]","allow_new_options":"false"}`)

	optionID, err := tc.AddQuestionOption(ctx, id, "both")
	require.NoError(t, err)
	assert.NotEmpty(t, optionID)

	_, err = tc.GetQuestionOptionVotes(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "fields=votes", lastRequest(t, ms, "/"+id+"/options").Query)
}

func TestScoresAndPermissions(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	ok, err := tc.PostScore(ctx, "", 1200)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "score=1200", lastRequest(t, ms, "/me/scores").Body)

	ok, err = tc.DeleteScores(ctx, "")
	require.NoError(t, err)
	assert.True(t, ok)

	ms.PutConnection("me", "permissions",
		map[string]string{"permission": "public_profile", "status": "granted"},
		map[string]string{"permission": "email", "status": "declined"},
	)
	perms, err := tc.GetPermissions(ctx, "")
	require.NoError(t, err)
	require.Len(t, perms, 2)
	assert.Equal(t, "email", perms[1].GetID())

	ms.PutConnection("me", "permissions/email")
	ok, err = tc.RevokePermission(ctx, "", "email")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetLikedPage(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.PutConnection("me", "likes/p1", map[string]any{"id": "p1", "name": "Gophers", "category": "Community"})

	page, err := tc.GetLikedPage(ctx, "", "p1", nil)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "Gophers", page.Name)

	page, err = tc.GetLikedPage(ctx, "", "p2", nil)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestSearch(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.PutObject("1", map[string]any{"id": "1", "name": "Blue Bottle Coffee"})
	ms.PutObject("2", map[string]any{"id": "2", "name": "Tea House"})

	places, err := tc.SearchPlaces(ctx, "coffee", types.GeoLocation{Latitude: 37.76, Longitude: -122.427}, 1000, nil)
	require.NoError(t, err)
	require.Len(t, places.Data, 1)
	assert.Equal(t, "1", places.Data[0].ID)
	assert.Equal(t, "type=place&q=coffee&center=37.76%2C-122.427&distance=1000", lastRequest(t, ms, "/search").Query)

	raw, err := tc.Search(ctx, "tea", reading.New().Limit(5))
	require.NoError(t, err)
	require.Len(t, raw.Data, 1)
	assertJSONSuperset(t, raw.Data[0], `{"id":"2"}`)
	assert.Equal(t, "q=tea&limit=5", lastRequest(t, ms, "/search").Query)

	_, err = tc.SearchCheckins(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "type=checkin", lastRequest(t, ms, "/search").Query)

	_, err = tc.SearchLocationsAt(ctx, "99", nil)
	require.NoError(t, err)
	assert.Equal(t, "type=location&place=99", lastRequest(t, ms, "/search").Query)
}

func TestAnonymousSearch(t *testing.T) {
	tc := test_helpers.NewAnonymousTestClient()
	defer tc.Close()
	tc.MockServer().PutObject("1", map[string]any{"id": "1", "name": "Gopher Group"})

	groups, err := tc.SearchGroups(context.Background(), "gopher", nil)
	require.NoError(t, err)
	assert.Len(t, groups.Data, 1)

	req, err := tc.MockServer().GetLastRequest("/search")
	require.NoError(t, err)
	assert.Empty(t, req.Headers.Get("Authorization"))
}

func TestFQL(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.SetResponse("GET", "/fql", &test_helpers.MockResponse{
		Body:     `{"data":[{"uid":1},{"uid":2}]}`,
		MaxCalls: 1,
	})

	rows, err := tc.ExecuteFQL(ctx, "SELECT uid FROM user WHERE uid = me()")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assertJSONSuperset(t, rows[1], `{"uid":2}`)
	assert.Equal(t, "q=SELECT+uid+FROM+user+WHERE+uid+%3D+me%28%29", lastRequest(t, ms, "/fql").Query)

	ms.SetResponse("GET", "/fql", &test_helpers.MockResponse{
		Body: `{"data":[{"name":"friends","fql_result_set":[{"uid2":"5"}]},{"name":"names","fql_result_set":[]}]}`,
	})
	results, err := tc.ExecuteMultiFQL(ctx, map[string]string{
		"friends": "SELECT uid2 FROM friend WHERE uid1 = me()",
		"names":   "SELECT name FROM user WHERE uid IN (SELECT uid2 FROM #friends)",
	})
	require.NoError(t, err)
	assert.Len(t, results["friends"], 1)
	assert.Empty(t, results["names"])
}

func TestTestUsers(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()

	u1, err := tc.CreateTestUser(ctx, "app1", "Ann Test", "", "email", "user_likes")
	require.NoError(t, err)
	require.NotNil(t, u1)
	assert.NotEmpty(t, u1.AccessToken)

	req := lastRequest(t, ms, "/app1/accounts/test-users")
	assert.Equal(t, "installed=true&name=Ann+Test&locale=en_US&permissions=email%2Cuser_likes", req.Query)

	u2, err := tc.CreateTestUser(ctx, "app1", "", "fr_FR")
	require.NoError(t, err)

	ok, err := tc.MakeFriendTestUser(ctx, u1, u2)
	require.NoError(t, err)
	assert.True(t, ok)

	first := lastRequest(t, ms, "/"+u1.ID+"/friends/"+u2.ID)
	assert.Empty(t, first.Headers.Get("Authorization"))
	assert.Equal(t, "access_token="+u1.AccessToken, first.Body)
	second := lastRequest(t, ms, "/"+u2.ID+"/friends/"+u1.ID)
	assert.Equal(t, "access_token="+u2.AccessToken, second.Body)

	users, err := tc.GetTestUsers(ctx, "app1")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	ok, err = tc.DeleteTestUser(ctx, u2.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMakeFriendTestUser_StopsOnFailure(t *testing.T) {
	tc, ms := setup(t)
	u1 := &types.TestUser{Object: types.Object{ID: "a"}, AccessToken: "ta"}
	u2 := &types.TestUser{Object: types.Object{ID: "b"}, AccessToken: "tb"}
	ms.SetResponse("POST", "/a/friends/b", &test_helpers.MockResponse{Body: "false"})

	ok, err := tc.MakeFriendTestUser(context.Background(), u1, u2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, ms.GetCallCount("/b/friends/a"))
}

func TestGetObjectByKind(t *testing.T) {
	tc, ms := setup(t)
	ctx := context.Background()
	ms.PutObject("ph1", map[string]any{"id": "ph1", "name": "Sunset", "width": 800, "height": 600})

	entity, err := tc.GetObject(ctx, "photo", "ph1", nil)
	require.NoError(t, err)
	photo, ok := entity.(types.Photo)
	require.True(t, ok)
	assert.Equal(t, 800, photo.Width)
	assert.Equal(t, "ph1", entity.GetID())

	entity, err = tc.GetObject(ctx, "", "ph1", nil)
	require.NoError(t, err)
	assert.IsType(t, types.IdNameEntity{}, entity)

	entity, err = tc.GetObject(ctx, "photo", "missing", nil)
	require.NoError(t, err)
	assert.Nil(t, entity)

	_, err = tc.GetObject(ctx, "spaceship", "ph1", nil)
	require.Error(t, err)

	ms.PutConnection("me", "books", map[string]any{"id": "b1", "name": "Go Programming"})
	page, err := tc.GetConnection(ctx, "book", "", "books", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.IsType(t, types.Book{}, page.Data[0])
}

func TestKinds(t *testing.T) {
	kinds := graph.Kinds()
	assert.IsNonDecreasing(t, kinds)
	assert.Contains(t, kinds, "user")
	assert.Contains(t, kinds, "testuser")
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
