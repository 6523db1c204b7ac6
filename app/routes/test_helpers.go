package routes

import (
	"fmt"
	"testing"

	"placeholder/app/models"
	"placeholder/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// seedTestData stores posts 1..posts, each with perPost comments.
func seedTestData(t *testing.T, db *badger.DB, posts, perPost int) {
	t.Helper()
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	commentID := 1
	for i := 1; i <= posts; i++ {
		require.NoError(t, postRepo.Put(&models.Post{
			UserID: (i-1)/10 + 1,
			ID:     i,
			Title:  fmt.Sprintf("post %d", i),
			Body:   fmt.Sprintf("body of post %d", i),
		}))
		for j := 0; j < perPost; j++ {
			require.NoError(t, commentRepo.Put(&models.Comment{
				PostID: i,
				ID:     commentID,
				Name:   fmt.Sprintf("comment %d", commentID),
				Email:  fmt.Sprintf("user%d@example.com", commentID),
				Body:   "comment body",
			}))
			commentID++
		}
	}
}
