package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Fetcher is safe for concurrent use; connections are reused across calls.
type Fetcher struct {
	opts   Options
	client *http.Client
}

// New builds a Fetcher.
func New(opts ...Option) *Fetcher {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	client := cfg.Client
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = 16
		transport.IdleConnTimeout = 90 * time.Second
		client = &http.Client{Transport: transport, Timeout: cfg.Timeout}
	}

	return &Fetcher{opts: cfg, client: client}
}

// policy builds a fresh backoff schedule for one Fetch.
func (f *Fetcher) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = f.opts.BackoffFactor
	exp.Multiplier = 2
	exp.RandomizationFactor = 0.1
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0 // bounded by Retries instead
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(f.opts.Retries)), ctx)
}

// Fetch GETs url and returns its body as a string.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", ErrEmptyURL
	}

	var body string
	op := func() error {
		b, err := f.once(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	if err := backoff.RetryNotify(op, f.policy(ctx), f.opts.OnRetry); err != nil {
		return "", err
	}
	return body, nil
}

// once performs a single attempt. Errors that must not be retried come
// back wrapped in backoff.Permanent.
func (f *Fetcher) once(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("fetch: build request: %w", err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		return "", fmt.Errorf("fetch: %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		se := &StatusError{URL: url, Code: resp.StatusCode}
		if se.Retryable() {
			return "", se
		}
		return "", backoff.Permanent(se)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("fetch: read %s: %w", url, err)
	}
	if int64(len(data)) > f.opts.MaxBodyBytes {
		return "", backoff.Permanent(fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, url, f.opts.MaxBodyBytes))
	}
	return string(data), nil
}

// IsStatus reports whether err carries an HTTP status code equal to code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
