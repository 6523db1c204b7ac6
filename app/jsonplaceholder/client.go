// Package jsonplaceholder is a client for the JSONPlaceholder fake REST API
// (https://jsonplaceholder.typicode.com) and for any server that speaks the
// same posts/comments dialect, such as the stub started by "placeholder serve".
//
// Every accessor returns either a value or an error, never both. Errors that
// come from the wire are *requestapi.RequestError values; use
// requestapi.KindOf or errors.Is with requestapi.ErrNetwork, ErrHTTPStatus and
// ErrDecode to tell them apart.
package jsonplaceholder

import (
	"context"
	"errors"
	"fmt"

	"placeholder/app/models"
	"placeholder/app/requestapi"
)

// DefaultBaseURL is the public JSONPlaceholder service.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

var (
	// ErrFieldNotFound is returned by GetPostField when the post lacks the field.
	ErrFieldNotFound = errors.New("jsonplaceholder: field not found")
	// ErrInvalidPost is returned before any request is made when a post to be
	// written fails validation.
	ErrInvalidPost = errors.New("jsonplaceholder: invalid post")
)

// Client exposes the posts and comments resources.
type Client struct {
	requester *requestapi.Requester
}

// New wraps an existing Requester.
func New(r *requestapi.Requester) *Client {
	return &Client{requester: r}
}

// NewDefault creates a Client for DefaultBaseURL.
func NewDefault(opts ...requestapi.Option) (*Client, error) {
	r, err := requestapi.New(DefaultBaseURL, opts...)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

// Requester returns the underlying Requester.
func (c *Client) Requester() *requestapi.Requester {
	return c.requester
}

func postPath(id int) string {
	return fmt.Sprintf("/posts/%d", id)
}

func commentPath(id int) string {
	return fmt.Sprintf("/comments/%d", id)
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, id int) (*models.Post, error) {
	resp, err := c.requester.Get(ctx, postPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Post](resp)
}

// GetPostRecord fetches a single post as an untyped record.
func (c *Client) GetPostRecord(ctx context.Context, id int) (models.Record, error) {
	resp, err := c.requester.Get(ctx, postPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var rec models.Record
	if err := resp.Decode(&rec); err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, resp.DecodeError(errors.New("empty object"))
	}
	return rec, nil
}

// ListPosts fetches every post.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := c.requester.Get(ctx, "/posts", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Post](resp)
}

// GetPostComments fetches the comments attached to a post. A post without
// comments yields an empty slice.
func (c *Client) GetPostComments(ctx context.Context, postID int) ([]models.Comment, error) {
	resp, err := c.requester.Get(ctx, postPath(postID)+"/comments", nil, nil)
	if err != nil {
		return nil, err
	}
	comments, err := decodeList[models.Comment](resp)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if !comments[i].BelongsTo(postID) {
			return nil, resp.DecodeError(fmt.Errorf("comment %d belongs to post %d", comments[i].ID, comments[i].PostID))
		}
	}
	return comments, nil
}

// GetComment fetches a single comment.
func (c *Client) GetComment(ctx context.Context, id int) (*models.Comment, error) {
	resp, err := c.requester.Get(ctx, commentPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Comment](resp)
}

// GetPostField returns one field of a post.
func (c *Client) GetPostField(ctx context.Context, id int, field string) (any, error) {
	rec, err := c.GetPostRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	v, ok := rec.Field(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q on post %d", ErrFieldNotFound, field, id)
	}
	return v, nil
}

// InsertField fetches a post and returns it with key set to value. Only the
// returned copy changes; nothing is written back to the server.
func (c *Client) InsertField(ctx context.Context, id int, key string, value any) (models.Record, error) {
	rec, err := c.GetPostRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.With(key, value), nil
}

// CreatePost sends a new post and returns the server's copy, which carries
// the assigned ID.
func (c *Client) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := post.ValidateNew(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}
	resp, err := c.requester.Post(ctx, "/posts", post, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Post](resp)
}

// UpdatePost replaces a post.
func (c *Client) UpdatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}
	resp, err := c.requester.Put(ctx, postPath(post.ID), post, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Post](resp)
}

// PatchPost updates the given fields of a post.
func (c *Client) PatchPost(ctx context.Context, id int, fields models.Record) (*models.Post, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to patch", ErrInvalidPost)
	}
	resp, err := c.requester.Patch(ctx, postPath(id), fields, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Post](resp)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	_, err := c.requester.Delete(ctx, postPath(id), nil, nil)
	return err
}
