// Package domain contains the core entities for Tomat.
// These entities represent the timer session, its presets and the pure
// state transitions between them, independent of any UI framework or
// platform capability.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrNoDraft         = errors.New("no edit in progress")
)

// Defaults for the initial preset and for newly added presets.
const (
	DefaultPresetName     = "Work"
	DefaultPresetDuration = 25 * time.Minute
	NewPresetName         = "New Timer"
)

// Preset is a named, reusable countdown duration.
// The ID is assigned at creation and never changes; Name and Duration
// are editable through the draft workflow on Session.
type Preset struct {
	ID       string
	Name     string
	Duration time.Duration
}

// NewPreset creates a preset with a fresh unique id.
func NewPreset(name string, duration time.Duration) *Preset {
	return &Preset{
		ID:       generateID(),
		Name:     name,
		Duration: duration,
	}
}
