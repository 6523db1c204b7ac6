package services

import (
	"context"
	"fmt"

	"placeholder/app/models"
	"placeholder/app/repositories"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Source is a read-only posts/comments API. *jsonplaceholder.Client
// satisfies it.
type Source interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPostComments(ctx context.Context, postID int) ([]models.Comment, error)
}

// MirrorStats counts what a mirror run stored.
type MirrorStats struct {
	Posts    int
	Comments int
}

// MirrorService copies posts and their comments from a Source into the local
// repositories, keeping the remote IDs.
type MirrorService struct {
	source      Source
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	logger      log.Logger
}

// NewMirrorService creates a new MirrorService
func NewMirrorService(source Source, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, logger log.Logger) *MirrorService {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &MirrorService{
		source:      source,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Mirror copies at most limit posts (all when limit <= 0) with their
// comments. Stats reflect what was stored before any error.
func (s *MirrorService) Mirror(ctx context.Context, limit int) (MirrorStats, error) {
	var stats MirrorStats

	posts, err := s.source.ListPosts(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list posts: %w", err)
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	for i := range posts {
		post := posts[i]
		if err := s.postRepo.Put(&post); err != nil {
			return stats, fmt.Errorf("failed to store post %d: %w", post.ID, err)
		}
		stats.Posts++

		comments, err := s.source.GetPostComments(ctx, post.ID)
		if err != nil {
			return stats, fmt.Errorf("failed to list comments of post %d: %w", post.ID, err)
		}
		for j := range comments {
			if err := s.commentRepo.Put(&comments[j]); err != nil {
				return stats, fmt.Errorf("failed to store comment %d: %w", comments[j].ID, err)
			}
			stats.Comments++
		}
		level.Debug(s.logger).Log("msg", "mirrored post", "post_id", post.ID, "comments", len(comments))
	}

	level.Info(s.logger).Log("msg", "mirror complete", "posts", stats.Posts, "comments", stats.Comments)
	return stats, nil
}
