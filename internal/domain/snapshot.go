package domain

import "time"

// Snapshot is a copy of the session state safe to render from another
// goroutine while the clock driver keeps mutating the live session.
type Snapshot struct {
	Presets   []Preset
	ActiveID  string
	Remaining time.Duration
	Running   bool
	Completed int
	Draft     *Draft
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Presets:   make([]Preset, len(s.Presets)),
		ActiveID:  s.ActiveID,
		Remaining: s.Remaining,
		Running:   s.Running,
		Completed: s.Completed,
	}
	for i, p := range s.Presets {
		snap.Presets[i] = *p
	}
	if s.Draft != nil {
		draft := *s.Draft
		snap.Draft = &draft
	}
	return snap
}

// ActivePreset returns the snapshot's active preset.
func (snap Snapshot) ActivePreset() Preset {
	for _, p := range snap.Presets {
		if p.ID == snap.ActiveID {
			return p
		}
	}
	return snap.Presets[0]
}
