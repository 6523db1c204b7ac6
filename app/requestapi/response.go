package requestapi

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
)

var errEmptyBody = errors.New("empty body")

// Response is a fully read 2xx response.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty or malformed body is a
// KindDecode error.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return r.decodeError(errEmptyBody)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return r.decodeError(err)
	}
	return nil
}

// DecodeError wraps err as a KindDecode failure of this response, for
// callers that reject a body after it decoded.
func (r *Response) DecodeError(err error) error {
	return r.decodeError(err)
}

func (r *Response) decodeError(err error) *RequestError {
	return &RequestError{Kind: KindDecode, Method: r.Method, URL: r.URL, StatusCode: r.StatusCode, Err: err}
}
