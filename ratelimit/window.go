package ratelimit

import "time"

// log is the per-key queue of allowed request times, oldest first.
type log struct {
	stamps []time.Time
}

// evict drops timestamps more than window older than now.
func (l *log) evict(now time.Time, window time.Duration) {
	i := 0
	for i < len(l.stamps) && now.Sub(l.stamps[i]) > window {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

// admit records now if fewer than max timestamps are in the window.
func (l *log) admit(now time.Time, window time.Duration, max int) bool {
	l.evict(now, window)
	if len(l.stamps) >= max {
		return false
	}
	l.stamps = append(l.stamps, now)
	return true
}
