package services

import (
	"fmt"

	"placeholder/app/models"
	"placeholder/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates and stores a comment on an existing post
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.ValidateNew(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return fmt.Errorf("%w: post %d: %v", ErrInvalid, comment.PostID, err)
	}
	return s.commentRepo.Create(comment)
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListComments retrieves all comments, or only those of postID when it is set
func (s *CommentService) ListComments(postID int) ([]*models.Comment, error) {
	if postID > 0 {
		return s.commentRepo.ListByPost(postID)
	}
	return s.commentRepo.List()
}

// ListPostComments retrieves the comments of a post. An unknown post has no
// comments rather than being an error, matching the public API.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}
