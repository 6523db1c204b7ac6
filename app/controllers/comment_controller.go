package controllers

import (
	"net/http"

	"placeholder/app/models"
	"placeholder/app/services"

	"github.com/go-kit/log"
	"github.com/goccy/go-json"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         log.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger log.Logger) *CommentController {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

// Index lists comments, optionally only those of ?postId=
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, ok := queryInt(r, "postId")
	if !ok {
		sendError(w, http.StatusBadRequest, "invalid postId")
		return
	}

	comments, err := cc.commentService.ListComments(postID)
	if err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Show returns a single comment
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		NotFound(w, r)
		return
	}

	comment, err := cc.commentService.GetComment(id)
	if err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Create stores a new comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	comment.ID = 0

	if err := cc.commentService.CreateComment(&comment); err != nil {
		sendServiceError(w, r, cc.logger, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}
