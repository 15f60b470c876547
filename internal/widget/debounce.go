package widget

import (
	"sync"
	"time"
)

// DefaultDelay is the pause after the last keystroke before a search runs.
const DefaultDelay = 300 * time.Millisecond

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs the most recently triggered function once input has been
// quiet for delay. At most one timer is pending; each Trigger replaces it.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	afterFunc AfterFunc
	timer     Timer
	seq       uint64
}

// NewDebouncer returns a debouncer using the wall clock.
func NewDebouncer(delay time.Duration) *Debouncer {
	return NewDebouncerWithClock(delay, realAfterFunc)
}

// NewDebouncerWithClock returns a debouncer scheduling through afterFunc.
func NewDebouncerWithClock(delay time.Duration, afterFunc AfterFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, afterFunc: afterFunc}
}

// Trigger cancels any pending call and schedules f.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.afterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that already fired cannot be stopped; drop it if superseded.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			f()
		}
	})
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
