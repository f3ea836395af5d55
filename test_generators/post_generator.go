package test_generators

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/go-faker/faker/v4"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// PostOptions shapes generated posts.
type PostOptions struct {
	// From is the author; a generated one is used when nil
	From *types.IdNameEntity
	// LinkRatio is the share of posts that carry a link, between 0 and 1
	LinkRatio float64
	// MaxComments caps the embedded comments per post
	MaxComments int
}

// PostGenerator generates feed posts for testing.
type PostGenerator struct {
	rand     *rand.Rand
	nextID   int
	comments *CommentGenerator
}

// NewPostGenerator creates a new post generator. A zero seed uses the clock.
func NewPostGenerator(seed int64) *PostGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PostGenerator{
		rand:     rand.New(rand.NewSource(seed)),
		comments: NewCommentGenerator(seed + 1),
	}
}

// GeneratePost creates a status post.
func (pg *PostGenerator) GeneratePost() types.Post {
	return pg.GeneratePostWithOptions(PostOptions{})
}

// GeneratePosts creates count status posts, newest first.
func (pg *PostGenerator) GeneratePosts(count int) []types.Post {
	return pg.GeneratePostsWithOptions(count, PostOptions{})
}

// GeneratePostsWithOptions creates count posts, newest first.
func (pg *PostGenerator) GeneratePostsWithOptions(count int, opts PostOptions) []types.Post {
	posts := make([]types.Post, 0, count)
	created := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < count; i++ {
		post := pg.GeneratePostWithOptions(opts)
		created = created.Add(-time.Duration(pg.rand.Intn(3600)+1) * time.Second)
		post.CreatedTime = types.Time{Time: created}
		post.UpdatedTime = post.CreatedTime
		posts = append(posts, post)
	}
	return posts
}

// GeneratePostWithOptions creates one post.
func (pg *PostGenerator) GeneratePostWithOptions(opts PostOptions) types.Post {
	pg.nextID++
	from := opts.From
	if from == nil {
		users := pg.comments.Users()
		from = &users[pg.rand.Intn(len(users))]
	}

	post := types.Post{
		Object:      types.Object{ID: from.ID + "_" + strconv.Itoa(pg.nextID)},
		From:        from,
		Message:     faker.Sentence(),
		Type:        "status",
		CreatedTime: types.Time{Time: time.Now().UTC().Truncate(time.Second)},
	}
	post.UpdatedTime = post.CreatedTime

	if pg.rand.Float64() < opts.LinkRatio {
		post.Type = "link"
		post.Link = faker.URL()
		post.Name = faker.Word()
	}
	if opts.MaxComments > 0 {
		n := pg.rand.Intn(opts.MaxComments + 1)
		if n > 0 {
			post.Comments = &types.List[types.Comment]{Data: pg.comments.GenerateFlatComments(n)}
		}
	}
	return post
}
