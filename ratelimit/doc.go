// Package ratelimit implements a sliding-window-log rate limiter.
//
// For each key the limiter keeps the timestamps of the requests it allowed.
// A new request at time now first evicts every timestamp ts with
// now - ts > Window; it is allowed, and its timestamp recorded, only if
// fewer than Max timestamps remain. A timestamp exactly Window old still
// counts.
//
// Three implementations share these semantics:
//
//   - NaiveLimiter keeps one map with no locking. Cleanup, count and append
//     are separate steps, so two goroutines can both pass the check and the
//     key ends up over its limit. It exists as the contrast case.
//   - Limiter guards lazy per-key creation with a global mutex and runs the
//     whole cleanup/check/append sequence under a per-key mutex, so
//     different keys never contend.
//   - RedisLimiter stores each key's log in a Redis sorted set and performs
//     the sequence inside one MULTI/EXEC transaction, so several processes
//     can share a budget.
//
// Per request cost is O(1) amortized; memory is O(requests in window).
package ratelimit
