package requestapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes why a request produced no usable data.
type Kind int

const (
	// KindNetwork covers failures before a response was read: dial errors,
	// timeouts, cancelled contexts and truncated bodies.
	KindNetwork Kind = iota + 1
	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP
	// KindDecode means the body could not be decoded into the requested shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *RequestError of the same kind.
var (
	ErrNetwork    = errors.New("requestapi: network error")
	ErrHTTPStatus = errors.New("requestapi: unexpected http status")
	ErrDecode     = errors.New("requestapi: decode error")
)

// RequestError describes a failed request.
type RequestError struct {
	Kind       Kind
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("requestapi: %s %s: status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("requestapi: %s %s: %s error: %v", e.Method, e.URL, e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is lets callers test the category with errors.Is(err, ErrNetwork) and friends.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrHTTPStatus:
		return e.Kind == KindHTTP
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// KindOf returns the category of err, or 0 if err is not a *RequestError.
func KindOf(err error) Kind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return 0
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == KindHTTP {
		return reqErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
