package graph

import (
	"context"

	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// GetPokes returns the pokes a user received.
func (c *Client) GetPokes(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Poke], error) {
	return fetchList[types.Poke](ctx, c, "GetPokes", c.build(orMe(userID), "pokes", r), nil)
}

// GetQuestions returns the questions a user asked.
func (c *Client) GetQuestions(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Question], error) {
	return fetchList[types.Question](ctx, c, "GetQuestions", c.build(orMe(userID), "questions", r), nil)
}

// GetQuestion returns a question, or nil if it is not visible.
func (c *Client) GetQuestion(ctx context.Context, questionID string, r *reading.Reading) (*types.Question, error) {
	return fetchOne[types.Question](ctx, c, "GetQuestion", c.build(questionID, "", r), nil)
}

// CreateQuestion asks a question and returns its id.
func (c *Client) CreateQuestion(ctx context.Context, userID string, question *types.QuestionCreate) (string, error) {
	params, err := c.encodeRequest("CreateQuestion", question)
	if err != nil {
		return "", err
	}
	return c.postID(ctx, "CreateQuestion", c.build(orMe(userID), "questions", nil), params)
}

// DeleteQuestion deletes a question.
func (c *Client) DeleteQuestion(ctx context.Context, questionID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteQuestion", c.build(questionID, "", nil), nil)
}

// GetQuestionOptions returns the answers of a question.
func (c *Client) GetQuestionOptions(ctx context.Context, questionID string, r *reading.Reading) (*Page[types.QuestionOption], error) {
	return fetchList[types.QuestionOption](ctx, c, "GetQuestionOptions", c.build(questionID, "options", r), nil)
}

// AddQuestionOption adds an answer to a question and returns the option id.
func (c *Client) AddQuestionOption(ctx context.Context, questionID, option string) (string, error) {
	return c.postID(ctx, "AddQuestionOption", c.build(questionID, "options", nil), types.P("option", option))
}

// GetQuestionOptionVotes returns every answer of a question with its voters.
func (c *Client) GetQuestionOptionVotes(ctx context.Context, questionID string) (*Page[types.QuestionVotes], error) {
	return fetchList[types.QuestionVotes](ctx, c, "GetQuestionOptionVotes", c.build(questionID, "options", reading.New().Fields("votes")), nil)
}

// GetScores returns a user's game scores.
func (c *Client) GetScores(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Score], error) {
	return fetchList[types.Score](ctx, c, "GetScores", c.build(orMe(userID), "scores", r), nil)
}

// PostScore records a score for the user in the calling application.
func (c *Client) PostScore(ctx context.Context, userID string, score int) (bool, error) {
	return c.postAck(ctx, "PostScore", c.build(orMe(userID), "scores", nil), types.P("score", score))
}

// DeleteScores removes the user's scores in the calling application.
func (c *Client) DeleteScores(ctx context.Context, userID string) (bool, error) {
	return c.deleteAck(ctx, "DeleteScores", c.build(orMe(userID), "scores", nil), nil)
}

// GetSubscribedTo returns the people a user follows.
func (c *Client) GetSubscribedTo(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Subscription], error) {
	return fetchList[types.Subscription](ctx, c, "GetSubscribedTo", c.build(orMe(userID), "subscribedto", r), nil)
}

// GetSubscribers returns the people following a user.
func (c *Client) GetSubscribers(ctx context.Context, userID string, r *reading.Reading) (*Page[types.Subscription], error) {
	return fetchList[types.Subscription](ctx, c, "GetSubscribers", c.build(orMe(userID), "subscribers", r), nil)
}
