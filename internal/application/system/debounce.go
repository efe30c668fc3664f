package system

import "time"

// Debouncer rejects inputs that arrive within a window of the last accepted one
type Debouncer struct {
	window time.Duration
	last   time.Time
	primed bool
}

// NewDebouncer creates a debouncer with the given window
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Allow reports whether an input at now passes the gate.
// A passing input restarts the window.
func (d *Debouncer) Allow(now time.Time) bool {
	if d.primed && now.Sub(d.last) < d.window {
		return false
	}
	d.last = now
	d.primed = true
	return true
}

// Reset forgets the last accepted input
func (d *Debouncer) Reset() {
	d.primed = false
	d.last = time.Time{}
}
