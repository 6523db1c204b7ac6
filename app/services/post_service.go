package services

import (
	"errors"
	"fmt"

	"placeholder/app/models"
	"placeholder/app/repositories"

	"github.com/goccy/go-json"
)

// ErrInvalid wraps every validation failure reported by the services.
var ErrInvalid = errors.New("invalid input")

// PostService handles business logic for posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// PostFilter narrows ListPosts. Zero values disable the corresponding filter;
// Page starts at 1 and only applies when Limit is set.
type PostFilter struct {
	UserID int
	Page   int
	Limit  int
}

// CreatePost validates and stores a new post
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.ValidateNew(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves posts matching the filter
func (s *PostService) ListPosts(f PostFilter) ([]*models.Post, error) {
	if f.UserID == 0 {
		return s.postRepo.List(f.Limit, pageOffset(f.Page, f.Limit))
	}

	all, err := s.postRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	matched := []*models.Post{}
	for _, p := range all {
		if p.UserID == f.UserID {
			matched = append(matched, p)
		}
	}
	return paginate(matched, f.Page, f.Limit), nil
}

// UpdatePost replaces an existing post
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := s.postRepo.GetByID(post.ID); err != nil {
		return err
	}
	return s.postRepo.Update(post)
}

// PatchPost applies a partial JSON document to an existing post. The ID in
// the document, if any, is ignored.
func (s *PostService) PatchPost(id int, patch []byte) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(patch, post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	post.ID = id
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(id int) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %d: %w", comment.ID, err)
		}
	}

	return s.postRepo.Delete(id)
}

func pageOffset(page, limit int) int {
	if limit <= 0 || page <= 1 {
		return 0
	}
	return (page - 1) * limit
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	start := pageOffset(page, limit)
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
