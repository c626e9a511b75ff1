package sleeper

import (
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy controls how network calls are retried: a fixed number of
// attempts with a fixed delay between them. The zero value never retries.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryPolicy mirrors the historical behavior for Sleeper calls:
// three attempts, 600ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: 600 * time.Millisecond}
}

func (p RetryPolicy) backoff() retry.Backoff {
	delay := p.Delay
	if delay <= 0 {
		delay = time.Nanosecond
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(delay))
}

// Retryable statuses are rate limiting and server-side failures; anything
// else fails the call immediately.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
