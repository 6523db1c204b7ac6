package repositories

import (
	"testing"

	"placeholder/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(title string) *models.Post {
	return &models.Post{UserID: 1, Title: title, Body: "body of " + title}
}

func TestPostRepository(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	t.Run("create and get post", func(t *testing.T) {
		post := newPost("first")
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 1, post.ID)

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update post", func(t *testing.T) {
		post := newPost("original")
		require.NoError(t, repo.Create(post))

		post.Title = "updated"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Title)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 999, Title: "x", Body: "y"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete post", func(t *testing.T) {
		post := newPost("doomed")
		require.NoError(t, repo.Create(post))
		require.NoError(t, repo.Delete(post.ID))

		_, err := repo.GetByID(post.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(post.ID), ErrNotFound)
	})
}

func TestPostRepositoryPut(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	require.NoError(t, repo.Put(&models.Post{UserID: 1, ID: 100, Title: "t", Body: "b"}))

	post := newPost("after put")
	require.NoError(t, repo.Create(post))
	assert.Equal(t, 101, post.ID)

	assert.Error(t, repo.Put(&models.Post{Title: "no id"}))
}

func TestPostRepositoryList(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	for i := 1; i <= 12; i++ {
		require.NoError(t, repo.Create(newPost("post")))
	}

	all, err := repo.List(0, 0)
	require.NoError(t, err)
	require.Len(t, all, 12)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID, "posts must come back in id order")
	}

	page, err := repo.List(5, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 11, page[0].ID)

	empty, err := repo.List(5, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}
