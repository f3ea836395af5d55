package internal

import (
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// CommentThread provides utility methods for working with nested comment replies.
type CommentThread struct {
	Comments []*types.Comment
}

// NewCommentThread creates a new CommentThread from top-level comments.
func NewCommentThread(comments []types.Comment) *CommentThread {
	roots := make([]*types.Comment, 0, len(comments))
	for i := range comments {
		roots = append(roots, &comments[i])
	}
	return &CommentThread{Comments: roots}
}

// Flatten returns all comments in the thread as a flat slice, parents before replies.
func (ct *CommentThread) Flatten() []*types.Comment {
	var result []*types.Comment
	ct.Walk(func(c *types.Comment) {
		result = append(result, c)
	})
	return result
}

// Filter returns comments that match the given filter function.
func (ct *CommentThread) Filter(filterFunc func(*types.Comment) bool) []*types.Comment {
	var result []*types.Comment
	ct.Walk(func(c *types.Comment) {
		if filterFunc(c) {
			result = append(result, c)
		}
	})
	return result
}

// Find returns the first comment that matches the given condition.
func (ct *CommentThread) Find(condition func(*types.Comment) bool) *types.Comment {
	return findRecursive(ct.Comments, condition)
}

func findRecursive(comments []*types.Comment, condition func(*types.Comment) bool) *types.Comment {
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		if condition(comment) {
			return comment
		}
		if found := findRecursive(Replies(comment), condition); found != nil {
			return found
		}
	}
	return nil
}

// GetByID returns a comment by its ID.
func (ct *CommentThread) GetByID(id string) *types.Comment {
	return ct.Find(func(c *types.Comment) bool {
		return c.ID == id
	})
}

// GetByAuthor returns all comments written by the given user or page id.
func (ct *CommentThread) GetByAuthor(authorID string) []*types.Comment {
	return ct.Filter(func(c *types.Comment) bool {
		return c.From != nil && c.From.ID == authorID
	})
}

// GetTopLevel returns only the top-level comments.
func (ct *CommentThread) GetTopLevel() []*types.Comment {
	return ct.Comments
}

// GetDepth returns the maximum reply depth; a thread without replies has depth 0.
func (ct *CommentThread) GetDepth() int {
	return depthRecursive(ct.Comments, 0)
}

func depthRecursive(comments []*types.Comment, currentDepth int) int {
	maxDepth := currentDepth
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		if replies := Replies(comment); len(replies) > 0 {
			maxDepth = max(maxDepth, depthRecursive(replies, currentDepth+1))
		}
	}
	return maxDepth
}

// Count returns the total number of comments in the thread.
func (ct *CommentThread) Count() int {
	n := 0
	ct.Walk(func(*types.Comment) { n++ })
	return n
}

// Walk applies a function to each comment in the thread, depth first.
func (ct *CommentThread) Walk(fn func(*types.Comment)) {
	walkRecursive(ct.Comments, fn)
}

func walkRecursive(comments []*types.Comment, fn func(*types.Comment)) {
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		fn(comment)
		walkRecursive(Replies(comment), fn)
	}
}

// Replies returns the replies embedded in a comment, if they were requested.
func Replies(comment *types.Comment) []*types.Comment {
	if comment == nil || comment.Comments == nil {
		return nil
	}
	result := make([]*types.Comment, 0, len(comment.Comments.Data))
	for i := range comment.Comments.Data {
		result = append(result, &comment.Comments.Data[i])
	}
	return result
}
