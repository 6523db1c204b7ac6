// Package requestapi issues JSON requests against a base URL and reports
// failures as categorized *RequestError values.
package requestapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	// DefaultTimeout bounds a single attempt when no client is supplied.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent unless WithUserAgent overrides it.
	DefaultUserAgent = "placeholder/1.0"

	// RequestIDHeader carries a per-call id, repeated on every attempt.
	RequestIDHeader = "X-Request-Id"

	jsonContentType = "application/json; charset=UTF-8"
)

// HTTPClient abstracts the transport. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester sends requests to paths below a fixed base URL.
type Requester struct {
	baseURL   string
	client    HTTPClient
	logger    log.Logger
	userAgent string
	headers   http.Header
	retry     retryPolicy
}

// New creates a Requester for baseURL, which must be an absolute http(s) URL.
func New(baseURL string, opts ...Option) (*Requester, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ConfigError{fmt.Sprintf("invalid base url: %v", err)}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &ConfigError{fmt.Sprintf("base url must be absolute http(s): %q", baseURL)}
	}

	r := &Requester{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    defaultHTTPClient(),
		logger:    log.NewNopLogger(),
		userAgent: DefaultUserAgent,
		headers:   make(http.Header),
		retry:     retryPolicy{attempts: 1, initialWait: 500 * time.Millisecond, backoff: 2},
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// BaseURL returns the base URL without a trailing slash.
func (r *Requester) BaseURL() string {
	return r.baseURL
}

// Get issues a GET request.
func (r *Requester) Get(ctx context.Context, path string, payload any, headers http.Header) (*Response, error) {
	return r.Do(ctx, http.MethodGet, path, payload, headers)
}

// Post issues a POST request.
func (r *Requester) Post(ctx context.Context, path string, payload any, headers http.Header) (*Response, error) {
	return r.Do(ctx, http.MethodPost, path, payload, headers)
}

// Put issues a PUT request.
func (r *Requester) Put(ctx context.Context, path string, payload any, headers http.Header) (*Response, error) {
	return r.Do(ctx, http.MethodPut, path, payload, headers)
}

// Patch issues a PATCH request.
func (r *Requester) Patch(ctx context.Context, path string, payload any, headers http.Header) (*Response, error) {
	return r.Do(ctx, http.MethodPatch, path, payload, headers)
}

// Delete issues a DELETE request.
func (r *Requester) Delete(ctx context.Context, path string, payload any, headers http.Header) (*Response, error) {
	return r.Do(ctx, http.MethodDelete, path, payload, headers)
}

// GetJSON issues a GET and decodes the body into v.
func (r *Requester) GetJSON(ctx context.Context, path string, v any) error {
	resp, err := r.Get(ctx, path, nil, nil)
	if err != nil {
		return err
	}
	return resp.Decode(v)
}

// Do sends method to path and returns the response when the status is 2xx.
// A non-nil payload is sent as a JSON body. headers are added after the
// defaults and may override them.
//
// Either the response or the error is nil, never both.
func (r *Requester) Do(ctx context.Context, method, path string, payload any, headers http.Header) (*Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := r.baseURL + path

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("requestapi: encode %s %s payload: %w", method, target, err)
		}
	}

	reqID := uuid.NewString()
	logger := log.With(r.logger, "method", method, "url", target, "request_id", reqID)

	var (
		resp    *Response
		attempt int
	)
	op := func() error {
		attempt++
		res, reqErr := r.send(ctx, method, target, body, headers, reqID)
		if reqErr != nil {
			if !r.retry.retryable(ctx, reqErr) {
				return backoff.Permanent(reqErr)
			}
			return reqErr
		}
		resp = res
		return nil
	}
	notify := func(err error, wait time.Duration) {
		level.Warn(logger).Log("msg", "request failed, retrying", "attempt", attempt, "wait", wait, "err", err)
	}

	err := backoff.RetryNotify(op, r.retry.schedule(ctx), notify)
	if err == nil {
		level.Debug(logger).Log("msg", "request succeeded", "status", resp.StatusCode, "attempt", attempt)
		return resp, nil
	}

	// A context that ends while waiting surfaces as the bare context error.
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		reqErr = &RequestError{Kind: KindNetwork, Method: method, URL: target, Err: err}
	}
	if r.retry.attempts > 1 && r.retry.retryable(ctx, reqErr) {
		level.Error(logger).Log("msg", "request failed after all attempts", "attempts", attempt, "err", reqErr)
	} else {
		level.Debug(logger).Log("msg", "request failed", "attempt", attempt, "err", reqErr)
	}
	return nil, reqErr
}

func (r *Requester) send(ctx context.Context, method, target string, body []byte, headers http.Header, reqID string) (*Response, *RequestError) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, &RequestError{Kind: KindNetwork, Method: method, URL: target, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}
	for k, vs := range r.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, &RequestError{Kind: KindNetwork, Method: method, URL: target, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{Kind: KindNetwork, Method: method, URL: target, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{
			Kind:       KindHTTP,
			Method:     method,
			URL:        target,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("status %d", res.StatusCode),
		}
	}

	return &Response{
		Method:     method,
		URL:        target,
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       data,
	}, nil
}
