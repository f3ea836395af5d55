package test_generators

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/go-faker/faker/v4"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// CommentGenerator generates comment threads for testing. The thread shape
// depends only on the seed; message text and author names come from faker.
type CommentGenerator struct {
	rand   *rand.Rand
	nextID int
	users  []types.IdNameEntity
}

// NewCommentGenerator creates a new comment generator. A zero seed uses the clock.
func NewCommentGenerator(seed int64) *CommentGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cg := &CommentGenerator{rand: rand.New(rand.NewSource(seed))}
	for i := 0; i < 8; i++ {
		cg.users = append(cg.users, types.IdNameEntity{
			Object: types.Object{ID: "u" + strconv.Itoa(i+1)},
			Name:   faker.Name(),
		})
	}
	return cg
}

// Users returns the authors comments are attributed to.
func (cg *CommentGenerator) Users() []types.IdNameEntity {
	return append([]types.IdNameEntity(nil), cg.users...)
}

// GenerateComment creates a single comment without replies.
func (cg *CommentGenerator) GenerateComment() types.Comment {
	cg.nextID++
	author := cg.users[cg.rand.Intn(len(cg.users))]
	return types.Comment{
		Object:      types.Object{ID: "c" + strconv.Itoa(cg.nextID)},
		From:        &author,
		Message:     faker.Sentence(),
		CreatedTime: types.Time{Time: time.Now().Add(-time.Duration(cg.rand.Intn(86400)) * time.Second).UTC().Truncate(time.Second)},
		LikeCount:   cg.rand.Intn(50),
	}
}

// GenerateFlatComments creates count comments without replies.
func (cg *CommentGenerator) GenerateFlatComments(count int) []types.Comment {
	comments := make([]types.Comment, 0, count)
	for i := 0; i < count; i++ {
		comments = append(comments, cg.GenerateComment())
	}
	return comments
}

// GenerateCommentThread creates one top-level comment with nested replies.
// The thread holds at most maxComments comments and is at most maxDepth deep,
// counting the top-level comment as depth 1.
func (cg *CommentGenerator) GenerateCommentThread(maxDepth, maxComments int) []types.Comment {
	if maxDepth <= 0 || maxComments <= 0 {
		return []types.Comment{}
	}
	budget := maxComments
	root := cg.generateTree(1, maxDepth, &budget)
	return []types.Comment{root}
}

func (cg *CommentGenerator) generateTree(depth, maxDepth int, budget *int) types.Comment {
	comment := cg.GenerateComment()
	*budget--
	if depth >= maxDepth || *budget <= 0 {
		return comment
	}

	replyCount := cg.rand.Intn(3) + 1
	var replies []types.Comment
	for i := 0; i < replyCount && *budget > 0; i++ {
		replies = append(replies, cg.generateTree(depth+1, maxDepth, budget))
	}
	if len(replies) > 0 {
		comment.Comments = &types.List[types.Comment]{Data: replies}
	}
	return comment
}

// CountComments returns the number of comments including nested replies.
func CountComments(comments []types.Comment) int {
	n := 0
	for _, c := range comments {
		n++
		if c.Comments != nil {
			n += CountComments(c.Comments.Data)
		}
	}
	return n
}

// GetMaxDepth returns the nesting depth of a thread; top-level comments are depth 1.
func GetMaxDepth(comments []types.Comment) int {
	depth := 0
	for _, c := range comments {
		d := 1
		if c.Comments != nil {
			d += GetMaxDepth(c.Comments.Data)
		}
		depth = max(depth, d)
	}
	return depth
}
