package system

import "time"

// Ticker releases fixed-period ticks from elapsed wall time.
//
// Frontends call Advance with the time since their last frame; the ticker
// accumulates it and reports how many whole periods have passed. A stopped
// ticker drops elapsed time so a restart begins a fresh period.
type Ticker struct {
	period  time.Duration
	acc     time.Duration
	running bool
}

// NewTicker creates a stopped ticker with the given period
func NewTicker(period time.Duration) *Ticker {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Ticker{period: period}
}

// Start begins ticking from a fresh period
func (t *Ticker) Start() {
	t.acc = 0
	t.running = true
}

// Stop halts ticking and discards any partial period
func (t *Ticker) Stop() {
	t.acc = 0
	t.running = false
}

// Running reports whether the ticker is started
func (t *Ticker) Running() bool {
	return t.running
}

// Period returns the tick period
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Advance accumulates elapsed time and returns the number of ticks due
func (t *Ticker) Advance(elapsed time.Duration) int {
	if !t.running || elapsed <= 0 {
		return 0
	}

	t.acc += elapsed
	n := int(t.acc / t.period)
	t.acc -= time.Duration(n) * t.period
	return n
}
