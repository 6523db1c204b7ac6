package models

import "fmt"

// Validate checks that the comment looks like a stored resource.
func (c *Comment) Validate() error {
	if c == nil {
		return fmt.Errorf("comment is nil")
	}
	return validate.Struct(c)
}

// ValidateNew checks the fields required to create a comment.
func (c *Comment) ValidateNew() error {
	if c == nil {
		return fmt.Errorf("comment is nil")
	}
	return validate.StructExcept(c, "ID")
}

// ValidateShape checks only what a comment read from an API must carry: its
// own id and the id of its post. Content is not checked.
func (c *Comment) ValidateShape() error {
	if c == nil {
		return fmt.Errorf("comment is nil")
	}
	return validate.StructPartial(c, "ID", "PostID")
}

// BelongsTo reports whether the comment is attached to the given post.
func (c *Comment) BelongsTo(postID int) bool {
	return c.PostID == postID
}
