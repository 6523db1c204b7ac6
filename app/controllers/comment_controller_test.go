package controllers

import (
	"net/http"
	"testing"

	"placeholder/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentController(t *testing.T) {
	router, postRepo, _ := setupTestControllers(t)
	require.NoError(t, postRepo.Put(&models.Post{UserID: 1, ID: 1, Title: "t", Body: "b"}))
	require.NoError(t, postRepo.Put(&models.Post{UserID: 1, ID: 2, Title: "t", Body: "b"}))

	t.Run("create comment", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/comments", `{"postId": 1, "name": "n", "email": "a@b.io", "body": "first"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		assert.Equal(t, 1, comment.ID)
		assert.Equal(t, 1, comment.PostID)
	})

	t.Run("create on missing post", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/comments", `{"postId": 99, "name": "n", "email": "a@b.io", "body": "x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create malformed", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/comments", `[`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get comment", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/comments/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		for _, key := range []string{"postId", "id", "name", "email", "body"} {
			assert.Contains(t, rec, key)
		}

		w = serve(router, http.MethodGet, "/comments/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list comments", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/comments", `{"postId": 2, "name": "n", "email": "a@b.io", "body": "second"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var comments []models.Comment
		w = serve(router, http.MethodGet, "/comments", "")
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
		assert.Len(t, comments, 2)

		w = serve(router, http.MethodGet, "/comments?postId=2", "")
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, "second", comments[0].Body)

		w = serve(router, http.MethodGet, "/comments?postId=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
