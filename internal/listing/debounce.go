package listing

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of inputs into one commit. Two timers: a quiet
// timer reset on every input, and a ceiling timer armed on the first input of
// a burst and never reset, so a burst of inputs arriving faster than the
// quiet period still commits at least once per maxWait. Whichever timer fires
// first runs the most recent function and clears both.
type Debouncer struct {
	wait    time.Duration
	maxWait time.Duration

	mu      sync.Mutex
	pending func()
	quiet   *time.Timer
	ceiling *time.Timer
}

// NewDebouncer builds a debouncer with the given quiet period and ceiling.
// The search box uses 500ms/1s.
func NewDebouncer(wait, maxWait time.Duration) *Debouncer {
	return &Debouncer{wait: wait, maxWait: maxWait}
}

// Call schedules fn, replacing any previously scheduled function. fn runs on
// a timer goroutine.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn

	if d.quiet == nil {
		d.quiet = time.AfterFunc(d.wait, d.fire)
	} else {
		d.quiet.Reset(d.wait)
	}

	// The ceiling is armed once per burst and left alone until it fires or
	// the burst commits.
	if d.ceiling == nil {
		d.ceiling = time.AfterFunc(d.maxWait, d.fire)
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.stopTimers()
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop drops any pending commit, for teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
	d.stopTimers()
}

// stopTimers must be called with d.mu held.
func (d *Debouncer) stopTimers() {
	if d.quiet != nil {
		d.quiet.Stop()
		d.quiet = nil
	}
	if d.ceiling != nil {
		d.ceiling.Stop()
		d.ceiling = nil
	}
}
