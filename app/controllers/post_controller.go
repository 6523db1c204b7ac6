package controllers

import (
	"io"
	"net/http"

	"placeholder/app/models"
	"placeholder/app/services"

	"github.com/go-kit/log"
	"github.com/goccy/go-json"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	logger         log.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, commentService *services.CommentService, logger log.Logger) *PostController {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &PostController{
		postService:    postService,
		commentService: commentService,
		logger:         logger,
	}
}

// Index lists posts, optionally filtered by ?userId= and paged with
// ?_page= and ?_limit=
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	var f services.PostFilter
	var ok bool
	if f.UserID, ok = queryInt(r, "userId"); !ok {
		sendError(w, http.StatusBadRequest, "invalid userId")
		return
	}
	if f.Page, ok = queryInt(r, "_page"); !ok {
		sendError(w, http.StatusBadRequest, "invalid _page")
		return
	}
	if f.Limit, ok = queryInt(r, "_limit"); !ok {
		sendError(w, http.StatusBadRequest, "invalid _limit")
		return
	}

	posts, err := pc.postService.ListPosts(f)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show returns a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Comments returns the comments of a post
func (pc *PostController) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	comments, err := pc.commentService.ListPostComments(id)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create stores a new post and echoes it with its ID
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	post.ID = 0

	if err := pc.postService.CreatePost(&post); err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update replaces a post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	post.ID = id

	if err := pc.postService.UpdatePost(&post); err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Patch updates the fields present in the request body
func (pc *PostController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	post, err := pc.postService.PatchPost(id, body)
	if err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete removes a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendServiceError(w, r, pc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, struct{}{})
}
