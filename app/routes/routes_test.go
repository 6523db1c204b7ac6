package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placeholder/app/middleware"
	"placeholder/app/models"

	"github.com/go-kit/log"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db, 12, 2)
	router := SetupRoutes(db, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"list posts", "GET", "/posts", "", http.StatusOK},
		{"show post", "GET", "/posts/1", "", http.StatusOK},
		{"missing post", "GET", "/posts/999", "", http.StatusNotFound},
		{"post comments", "GET", "/posts/1/comments", "", http.StatusOK},
		{"list comments", "GET", "/comments?postId=2", "", http.StatusOK},
		{"show comment", "GET", "/comments/3", "", http.StatusOK},
		{"create post", "POST", "/posts", `{"userId":1,"title":"t","body":"b"}`, http.StatusCreated},
		{"create comment", "POST", "/comments", `{"postId":1,"name":"n","email":"a@b.io","body":"b"}`, http.StatusCreated},
		{"update post", "PUT", "/posts/2", `{"userId":1,"title":"t","body":"b"}`, http.StatusOK},
		{"patch post", "PATCH", "/posts/2", `{"title":"p"}`, http.StatusOK},
		{"delete post", "DELETE", "/posts/3", "", http.StatusOK},
		{"non-numeric id", "GET", "/posts/abc", "", http.StatusNotFound},
		{"unknown resource", "GET", "/albums", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestRoutesPagination(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db, 25, 0)
	router := SetupRoutes(db, nil)

	req := httptest.NewRequest("GET", "/posts?userId=2&_page=2&_limit=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, []int{14, 15, 16}, []int{posts[0].ID, posts[1].ID, posts[2].ID})
	for _, p := range posts {
		assert.Equal(t, 2, p.UserID)
	}
}

func TestRoutesDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db, 2, 3)
	router := SetupRoutes(db, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/posts/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/comments", nil))
	var comments []models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 3)
	for _, c := range comments {
		assert.Equal(t, 2, c.PostID)
	}
}

func TestRoutesLoggingAndRequestID(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db, 1, 0)

	var buf bytes.Buffer
	router := SetupRoutes(db, log.NewLogfmtLogger(&buf))

	req := httptest.NewRequest("GET", "/posts/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), "path=/posts/1")
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestUnmatchedRequestsKeepHeaders(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db, 1, 1)

	var buf bytes.Buffer
	router := SetupRoutes(db, log.NewLogfmtLogger(&buf))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"unknown resource", "GET", "/users", http.StatusNotFound, `{}`},
		{"non-numeric id", "GET", "/posts/abc", http.StatusNotFound, `{}`},
		{"method not allowed", "PUT", "/comments/1", http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
		{"delete a comment", "DELETE", "/comments/1", http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "placeholder", w.Header().Get("X-Powered-By"))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
			assert.Contains(t, buf.String(), "path="+tt.path)
		})
	}
}
