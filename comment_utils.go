package graph

import (
	"github.com/jamesprial/go-graph-api-wrapper/internal"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// CommentThread provides utility methods for working with comments and the
// replies embedded in them.
type CommentThread interface {
	Flatten() []*types.Comment
	Filter(func(*types.Comment) bool) []*types.Comment
	Find(func(*types.Comment) bool) *types.Comment
	GetByID(string) *types.Comment
	GetByAuthor(string) []*types.Comment
	GetTopLevel() []*types.Comment
	GetDepth() int
	Count() int
	Walk(func(*types.Comment))
}

// NewCommentThread creates a CommentThread from top-level comments, such as
// the Data of a GetComments page. Replies are only present when the nested
// "comments" field was requested:
//
//	r := reading.New().Fields("id", "message", "from", "comments{id,message,from}")
//	page, err := client.GetComments(ctx, postID, r)
//	thread := graph.NewCommentThread(page.Data)
func NewCommentThread(comments []types.Comment) CommentThread {
	return internal.NewCommentThread(comments)
}
