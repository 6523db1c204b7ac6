package models

import "fmt"

// Validate checks that the post looks like a stored resource.
func (p *Post) Validate() error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}
	return validate.Struct(p)
}

// ValidateNew checks the fields a client must provide when creating a post.
// The ID is assigned by the server and is not checked.
func (p *Post) ValidateNew() error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}
	return validate.StructExcept(p, "ID")
}

// ValidateShape checks only that a post read from an API has an id.
func (p *Post) ValidateShape() error {
	if p == nil {
		return fmt.Errorf("post is nil")
	}
	return validate.StructPartial(p, "ID")
}

// Record converts the post into its untyped representation.
func (p *Post) Record() Record {
	return Record{
		"userId": p.UserID,
		"id":     p.ID,
		"title":  p.Title,
		"body":   p.Body,
	}
}
