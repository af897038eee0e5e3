package refresh

import (
	"sync"
	"testing"
	"time"
)

// counter records callback invocations per category.
type counter struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCounter() *counter {
	return &counter{calls: make(map[string]int)}
}

func (c *counter) hit(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[category]++
}

func (c *counter) count(category string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[category]
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	c := newCounter()
	d := NewDebouncer(30*time.Millisecond, c.hit)
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("booking")
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := c.count("booking"); got != 1 {
		t.Fatalf("burst of 10 events produced %d callbacks, want 1", got)
	}
}

func TestDebouncerPerCategory(t *testing.T) {
	c := newCounter()
	d := NewDebouncer(20*time.Millisecond, c.hit)
	defer d.Stop()

	d.Trigger("booking")
	d.Trigger("message")
	d.Trigger("booking")

	time.Sleep(100 * time.Millisecond)
	if got := c.count("booking"); got != 1 {
		t.Fatalf("booking callbacks = %d, want 1", got)
	}
	if got := c.count("message"); got != 1 {
		t.Fatalf("message callbacks = %d, want 1", got)
	}
}

func TestDebouncerFiresAgainAfterQuiet(t *testing.T) {
	c := newCounter()
	d := NewDebouncer(15*time.Millisecond, c.hit)
	defer d.Stop()

	d.Trigger("booking")
	time.Sleep(60 * time.Millisecond)
	d.Trigger("booking")
	time.Sleep(60 * time.Millisecond)

	if got := c.count("booking"); got != 2 {
		t.Fatalf("separated events produced %d callbacks, want 2", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	c := newCounter()
	d := NewDebouncer(30*time.Millisecond, c.hit)

	d.Trigger("booking")
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if got := c.count("booking"); got != 0 {
		t.Fatalf("stopped debouncer fired %d callbacks, want 0", got)
	}

	// Triggers after Stop are ignored.
	d.Trigger("booking")
	time.Sleep(100 * time.Millisecond)
	if got := c.count("booking"); got != 0 {
		t.Fatalf("trigger after stop fired %d callbacks, want 0", got)
	}
}
