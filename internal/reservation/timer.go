// Package reservation implements the countdown that bounds how long a buyer
// may sit on the selection, checkout and payment pages.
package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type State int

const (
	StateRunning State = iota
	StateExpired
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Timer counts whole seconds down to zero. Reaching zero moves it to
// StateExpired and fires the expiry callback once; later ticks are ignored.
type Timer struct {
	mu        sync.Mutex
	remaining int
	state     State
	interval  time.Duration
	onExpire  func()

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTimer returns a running timer with the given budget in seconds.
func NewTimer(seconds int, onExpire func()) *Timer {
	if seconds < 0 {
		seconds = 0
	}
	return &Timer{
		remaining: seconds,
		state:     StateRunning,
		interval:  time.Second,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// WithInterval changes the wall-clock length of one tick. Only meant to be
// called before Run.
func (t *Timer) WithInterval(d time.Duration) *Timer {
	if d > 0 {
		t.interval = d
	}
	return t
}

// Tick advances the countdown by one second. It reports whether this tick
// expired the timer.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	if t.state != StateRunning {
		t.mu.Unlock()
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}
	t.state = StateExpired
	cb := t.onExpire
	t.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Run drives the timer from a ticker until it expires, is stopped or ctx is
// done. A zero budget expires immediately.
func (t *Timer) Run(ctx context.Context) {
	t.mu.Lock()
	zero := t.state == StateRunning && t.remaining == 0
	t.mu.Unlock()
	if zero {
		t.Tick()
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stop:
			return
		case <-ticker.C:
			if t.Tick() {
				return
			}
			if t.State() != StateRunning {
				return
			}
		}
	}
}

// Stop tears the timer down. A stopped timer never expires.
func (t *Timer) Stop() {
	t.mu.Lock()
	if t.state == StateRunning {
		t.state = StateStopped
	}
	t.mu.Unlock()
	t.stopOnce.Do(func() { close(t.stop) })
}

func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) Expired() bool {
	return t.State() == StateExpired
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
