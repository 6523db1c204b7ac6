// Package routes wires the stub JSONPlaceholder API onto a gorilla/mux router.
package routes

import (
	"net/http"

	"placeholder/app/controllers"
	"placeholder/app/middleware"
	"placeholder/app/repositories"
	"placeholder/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
)

// SetupRoutes builds the stub API over a Badger database.
func SetupRoutes(db *badger.DB, logger log.Logger) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return NewRouter(postService, commentService, logger)
}

// NewRouter defines the stub API routes on top of the given services.
func NewRouter(postService *services.PostService, commentService *services.CommentService, logger log.Logger) *mux.Router {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	router := mux.NewRouter()

	// Apply global middleware
	stack := []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.PoweredBy("placeholder"),
		middleware.Logger(logger),
		middleware.Recoverer(logger),
		middleware.ContentTypeJSON,
	}
	router.Use(stack...)

	postController := controllers.NewPostController(postService, commentService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Patch).Methods("PATCH")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id:[0-9]+}/comments", postController.Comments).Methods("GET")

	// Comments endpoints
	comments := router.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("", commentController.Index).Methods("GET")
	comments.HandleFunc("", commentController.Create).Methods("POST")
	comments.HandleFunc("/{id:[0-9]+}", commentController.Show).Methods("GET")

	// mux skips middleware for unmatched requests, so these carry their own.
	router.NotFoundHandler = wrap(http.HandlerFunc(controllers.NotFound), stack)
	router.MethodNotAllowedHandler = wrap(http.HandlerFunc(controllers.MethodNotAllowed), stack)

	return router
}

func wrap(h http.Handler, stack []mux.MiddlewareFunc) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}
