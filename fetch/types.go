package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrEmptyURL indicates an empty URL.
	ErrEmptyURL = errors.New("fetch: url is empty")

	// ErrBodyTooLarge indicates a response body above MaxBodyBytes.
	ErrBodyTooLarge = errors.New("fetch: response body too large")
)

// retryable lists statuses worth another attempt.
var retryable = map[int]bool{
	http.StatusConflict:            true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// StatusError reports a response with status >= 400.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Retryable reports whether the status is one Fetch retries.
func (e *StatusError) Retryable() bool { return retryable[e.Code] }

// Options configures a Fetcher.
type Options struct {
	Timeout       time.Duration // per attempt
	Retries       int           // extra attempts after the first
	BackoffFactor time.Duration // first retry delay
	MaxBodyBytes  int64

	// Client replaces the pooled default when set.
	Client *http.Client
	// OnRetry observes each failed attempt before its wait.
	OnRetry func(err error, wait time.Duration)
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions: 5s timeout, 3 retries, 300ms initial backoff, 10 MiB body.
func DefaultOptions() Options {
	return Options{
		Timeout:       5 * time.Second,
		Retries:       3,
		BackoffFactor: 300 * time.Millisecond,
		MaxBodyBytes:  10 << 20,
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }

// WithRetries sets the number of extra attempts. Negative values mean zero.
func WithRetries(n int) Option { return func(o *Options) { o.Retries = max(n, 0) } }

// WithBackoff sets the first retry delay.
func WithBackoff(d time.Duration) Option { return func(o *Options) { o.BackoffFactor = d } }

// WithMaxBodyBytes caps the accepted response size.
func WithMaxBodyBytes(n int64) Option { return func(o *Options) { o.MaxBodyBytes = n } }

// WithHTTPClient uses c instead of the pooled default; its Timeout is kept.
func WithHTTPClient(c *http.Client) Option { return func(o *Options) { o.Client = c } }

// WithOnRetry registers fn to observe each failed attempt before its wait.
func WithOnRetry(fn func(err error, wait time.Duration)) Option {
	return func(o *Options) { o.OnRetry = fn }
}
