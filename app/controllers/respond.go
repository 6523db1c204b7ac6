package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"placeholder/app/repositories"
	"placeholder/app/services"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// Helpers for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// NotFound answers like the public API does for unknown resources: 404 with
// an empty object.
func NotFound(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusNotFound, struct{}{})
}

// MethodNotAllowed answers requests whose path exists but whose method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	sendError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// sendServiceError maps service errors onto status codes.
func sendServiceError(w http.ResponseWriter, r *http.Request, logger log.Logger, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		NotFound(w, r)
	case errors.Is(err, services.ErrInvalid):
		sendError(w, http.StatusBadRequest, err.Error())
	default:
		level.Error(logger).Log("msg", "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		sendError(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID reads a numeric route variable. Routes constrain it to digits, so a
// failure means the value overflowed.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
