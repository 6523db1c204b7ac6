package models

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Post represents a JSONPlaceholder post.
type Post struct {
	UserID int    `json:"userId" validate:"gte=0"`
	ID     int    `json:"id,omitempty" validate:"required,gt=0"`
	Title  string `json:"title" validate:"required,max=500"`
	Body   string `json:"body" validate:"required"`
}

// Comment represents a comment attached to a post.
type Comment struct {
	PostID int    `json:"postId" validate:"required,gt=0"`
	ID     int    `json:"id,omitempty" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=500"`
	Email  string `json:"email" validate:"required,email"`
	Body   string `json:"body" validate:"required"`
}

// Record is an untyped JSON object as returned by the API.
type Record map[string]any
