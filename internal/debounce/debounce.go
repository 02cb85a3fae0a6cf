// Package debounce provides time-based filters for noisy per-frame signals.
//
// Both filters take the current time as an argument instead of reading the clock, so
// the frame loop decides what "now" is and tests can step time explicitly.
package debounce

import "time"

// Hold confirms a value only once it has been observed continuously for a minimum
// duration. It tracks a single candidate: a different value restarts the timer and a
// gap clears it.
type Hold[T comparable] struct {
	duration  time.Duration
	candidate T
	since     time.Time
	active    bool
}

// NewHold creates a Hold that confirms after d.
func NewHold[T comparable](d time.Duration) *Hold[T] {
	return &Hold[T]{duration: d}
}

// Duration returns the hold time.
func (h *Hold[T]) Duration() time.Duration {
	return h.duration
}

// Observe records this frame's value and reports whether it is now confirmed.
// Confirmation happens at or after the hold duration and is emitted once; the filter
// is empty afterwards.
func (h *Hold[T]) Observe(v T, now time.Time) bool {
	if !h.active || h.candidate != v {
		h.candidate = v
		h.since = now
		h.active = true
		return false
	}

	if now.Sub(h.since) >= h.duration {
		h.Clear()
		return true
	}
	return false
}

// Clear drops the current candidate, e.g. on a frame where nothing was recognised.
func (h *Hold[T]) Clear() {
	var zero T
	h.candidate = zero
	h.since = time.Time{}
	h.active = false
}

// Candidate returns the value being timed, if any.
func (h *Hold[T]) Candidate() (T, bool) {
	return h.candidate, h.active
}

// Progress returns how far the candidate is towards confirmation, in [0,1].
func (h *Hold[T]) Progress(now time.Time) float64 {
	if !h.active {
		return 0
	}
	if h.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(h.since)) / float64(h.duration)
	return min(max(p, 0), 1)
}

// Cooldown suppresses repeats of a transition for a fixed period after it fires.
// Each key has its own period; keys without one are never suppressed.
type Cooldown[K comparable] struct {
	periods map[K]time.Duration
	until   map[K]time.Time
}

// NewCooldown creates a Cooldown with the given period per key.
func NewCooldown[K comparable](periods map[K]time.Duration) *Cooldown[K] {
	return &Cooldown[K]{
		periods: periods,
		until:   make(map[K]time.Time),
	}
}

// Ready reports whether k may fire at now.
func (c *Cooldown[K]) Ready(k K, now time.Time) bool {
	until, ok := c.until[k]
	return !ok || !now.Before(until)
}

// Fire records that k fired at now, starting its cooldown.
func (c *Cooldown[K]) Fire(k K, now time.Time) {
	if p, ok := c.periods[k]; ok && p > 0 {
		c.until[k] = now.Add(p)
	}
}

// Clear ends the cooldown of k.
func (c *Cooldown[K]) Clear(k K) {
	delete(c.until, k)
}

// Reset ends every running cooldown.
func (c *Cooldown[K]) Reset() {
	clear(c.until)
}
