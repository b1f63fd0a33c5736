// Package ports defines the capability interfaces between the timer
// controller and the platform adapters: the repeating clock, the audio
// engine and the system notifier. Each has a no-op implementation for
// headless environments and tests.
package ports

import "time"

// Ticker is a cancellable repeating task. At most one task runs at a
// time; Start cancels any prior task before scheduling the new one,
// so decrement streams never stack.
type Ticker interface {
	// Start schedules fn to fire once per interval until Stop.
	Start(interval time.Duration, fn func())

	// Stop cancels the pending task. Safe to call when idle.
	Stop()
}

// NoopTicker never fires. It stands in where no clock should run,
// such as view-only tests.
type NoopTicker struct{}

func (NoopTicker) Start(time.Duration, func()) {}
func (NoopTicker) Stop()                       {}

var _ Ticker = NoopTicker{}
