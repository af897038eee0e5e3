package refresh

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of change events into a single trailing-edge
// callback per category. A new event within the window resets the timer, so
// rapid-fire events from the core API cost one refetch instead of many.
type Debouncer struct {
	window time.Duration
	fn     func(category string)

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewDebouncer builds a debouncer invoking fn after the window elapses with
// no further events for the category.
func NewDebouncer(window time.Duration, fn func(category string)) *Debouncer {
	return &Debouncer{
		window: window,
		fn:     fn,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger records an event for the category.
func (d *Debouncer) Trigger(category string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if timer, ok := d.timers[category]; ok {
		timer.Reset(d.window)
		return
	}
	d.timers[category] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, category)
		closed := d.closed
		d.mu.Unlock()
		if !closed {
			d.fn(category)
		}
	})
}

// Stop cancels all pending timers. Pending callbacks are dropped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	for category, timer := range d.timers {
		timer.Stop()
		delete(d.timers, category)
	}
}
