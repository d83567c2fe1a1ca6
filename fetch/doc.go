// Package fetch downloads URL bodies over a pooled HTTP client with a
// per-attempt timeout and exponential-backoff retries.
//
// A GET is retried when the transport fails or the server answers 409,
// 500, 502, 503 or 504, up to Retries extra attempts. Any other status
// of 400 or above fails at once with a *StatusError. The wait before
// retry n is roughly BackoffFactor·2^(n-1), and every wait is cut short
// when the caller's context is done.
package fetch
