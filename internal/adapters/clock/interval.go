// Package clock provides the wall-clock ticker backing the countdown.
package clock

import (
	"sync"
	"time"

	"github.com/rvelden/tomat/internal/ports"
)

// Interval runs a single repeating task on a time.Ticker. Starting a
// new task cancels the previous one first, so only one decrement
// stream exists at a time.
type Interval struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// NewInterval creates an idle Interval.
func NewInterval() *Interval {
	return &Interval{}
}

// Start schedules fn to fire once per interval until Stop.
func (iv *Interval) Start(interval time.Duration, fn func()) {
	iv.mu.Lock()
	if iv.stopCh != nil {
		close(iv.stopCh)
	}
	stopCh := make(chan struct{})
	iv.stopCh = stopCh
	iv.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// Stop cancels the pending task. Safe to call repeatedly or when no
// task is running, including from within the task itself.
func (iv *Interval) Stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	if iv.stopCh != nil {
		close(iv.stopCh)
		iv.stopCh = nil
	}
}

var _ ports.Ticker = (*Interval)(nil)
