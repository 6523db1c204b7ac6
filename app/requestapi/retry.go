package requestapi

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type retryPolicy struct {
	attempts    int
	initialWait time.Duration
	backoff     float64
}

func (p retryPolicy) retryable(ctx context.Context, err *RequestError) bool {
	if ctx.Err() != nil {
		return false
	}
	switch err.Kind {
	case KindNetwork:
		return true
	case KindHTTP:
		return err.StatusCode >= 500 || err.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// schedule waits initialWait * backoff^n before retry n+1, allows at most
// attempts-1 retries and stops once ctx is done.
func (p retryPolicy) schedule(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialWait
	b.Multiplier = p.backoff
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.attempts-1)), ctx)
}
