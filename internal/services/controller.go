// Package services contains the timer controller, the single owner of
// the session state. All mutations go through it; the TUI only reads
// snapshots and forwards user input.
package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/rvelden/tomat/internal/domain"
	"github.com/rvelden/tomat/internal/ports"
)

// Notification content for completed sessions.
const (
	completeTitle = "Timer Complete!"
	completeBody  = "Your %s session is done."
)

// Controller drives the countdown and runs the completion sequence.
// The ticker fires on its own goroutine, so every state access goes
// through the mutex.
type Controller struct {
	mu       sync.Mutex
	session  *domain.Session
	ticker   ports.Ticker
	audio    ports.AudioEngine
	notifier ports.Notifier

	muted   bool // suppress notifications, toggled from the TUI
	lastErr error
}

// New creates a controller around the given session and capabilities.
func New(session *domain.Session, ticker ports.Ticker, audio ports.AudioEngine, notifier ports.Notifier) *Controller {
	return &Controller{
		session:  session,
		ticker:   ticker,
		audio:    audio,
		notifier: notifier,
	}
}

// Snapshot returns a copy of the session state for rendering.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Snapshot()
}

// Start arms the countdown and schedules the per-second tick. A
// countdown already at zero completes on this evaluation instead of
// waiting a full tick.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.session.Running {
		c.mu.Unlock()
		return
	}
	c.session.Start()
	if c.session.Remaining <= 0 {
		c.completeLocked()
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// Warm the audio device while the countdown runs so the chime is
	// not delayed by device acquisition at the zero-crossing.
	go func() { _ = c.audio.EnsureReady() }()

	c.ticker.Start(time.Second, c.tick)
}

// Pause stops the countdown, keeping the remaining time.
func (c *Controller) Pause() {
	c.mu.Lock()
	c.session.Pause()
	c.mu.Unlock()
	c.ticker.Stop()
}

// Toggle starts a paused countdown or pauses a running one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	running := c.session.Running
	c.mu.Unlock()
	if running {
		c.Pause()
	} else {
		c.Start()
	}
}

// Reset stops the countdown and reloads the active preset's duration.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.session.Reset()
	c.mu.Unlock()
	c.ticker.Stop()
}

// AddPreset appends a new preset without touching selection or the
// countdown.
func (c *Controller) AddPreset() domain.Preset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.session.AddPreset()
}

// SelectPreset switches the active preset and stops any running
// countdown. An unknown id is a no-op.
func (c *Controller) SelectPreset(id string) {
	c.mu.Lock()
	err := c.session.SelectPreset(id)
	c.mu.Unlock()
	if err != nil {
		return
	}
	c.ticker.Stop()
}

// BeginEdit opens a draft for the given preset. A running countdown is
// not interrupted. An unknown id is a no-op.
func (c *Controller) BeginEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.session.BeginEdit(id)
}

// UpdateDraftName replaces the draft's name.
func (c *Controller) UpdateDraftName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.session.UpdateDraftName(name)
}

// UpdateDraftMinutes updates the draft's duration from a minutes
// string. Invalid input is rejected silently; the draft keeps its
// previous valid value.
func (c *Controller) UpdateDraftMinutes(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.session.UpdateDraftMinutes(text)
}

// CommitEdit writes the draft back onto its preset. If the active
// preset was edited the countdown snaps to the new duration, even
// mid-countdown.
func (c *Controller) CommitEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.session.CommitEdit()
}

// CancelEdit discards the draft.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.CancelEdit()
}

// ToggleNotifications flips notification delivery for this session.
func (c *Controller) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return !c.muted
}

// NotificationsEnabled reports whether completion notifications are
// currently delivered.
func (c *Controller) NotificationsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.muted
}

// LastError returns the most recent capability failure, if any. These
// are diagnostic only and never interrupt the timer.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Shutdown cancels the pending tick and releases the audio device.
func (c *Controller) Shutdown() {
	c.ticker.Stop()
	if err := c.audio.Close(); err != nil {
		c.mu.Lock()
		c.lastErr = fmt.Errorf("audio close: %w", err)
		c.mu.Unlock()
	}
}

// tick fires once per second while the countdown runs.
func (c *Controller) tick() {
	c.mu.Lock()
	completed := c.session.Tick()
	if completed {
		c.completeLocked()
	}
	c.mu.Unlock()

	if completed {
		c.ticker.Stop()
	}
}

// completeLocked runs the completion sequence for a zero-crossing:
// chime, notification, then bookkeeping. The bookkeeping never
// depends on the chime or the notification succeeding.
func (c *Controller) completeLocked() {
	if err := c.audio.PlayChime(); err != nil {
		c.lastErr = fmt.Errorf("completion chime: %w", err)
	}

	if !c.muted {
		switch c.notifier.Permission() {
		case ports.PermissionGranted:
			body := fmt.Sprintf(completeBody, c.session.ActivePreset().Name)
			if err := c.notifier.Notify(completeTitle, body); err != nil {
				c.lastErr = fmt.Errorf("notification: %w", err)
			}
		case ports.PermissionUnset:
			go c.notifier.RequestPermission()
		}
	}

	c.session.Complete()
}
