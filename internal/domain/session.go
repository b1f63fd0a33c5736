package domain

import "time"

// Session holds the in-memory state for one timer lifetime.
// Nothing here is persisted; a restart returns to the defaults.
//
// Draft doubles as the view mode: a nil Draft means the session is in
// the normal timer view, a non-nil Draft means an edit is in progress.
// There is no separate editing flag to fall out of sync with it.
type Session struct {
	Presets   []*Preset
	ActiveID  string
	Remaining time.Duration
	Running   bool
	Completed int
	Draft     *Draft
}

// NewSession creates a session seeded with a single selected preset.
func NewSession(name string, duration time.Duration) *Session {
	p := NewPreset(name, duration)
	return &Session{
		Presets:   []*Preset{p},
		ActiveID:  p.ID,
		Remaining: p.Duration,
	}
}

// DefaultSession returns a session with the standard "Work" preset.
func DefaultSession() *Session {
	return NewSession(DefaultPresetName, DefaultPresetDuration)
}

// ActivePreset returns the preset the countdown resets to.
// The active id always resolves; the collection is never empty and
// presets are never removed.
func (s *Session) ActivePreset() *Preset {
	for _, p := range s.Presets {
		if p.ID == s.ActiveID {
			return p
		}
	}
	return s.Presets[0]
}

// FindPreset looks a preset up by id.
func (s *Session) FindPreset(id string) (*Preset, error) {
	for _, p := range s.Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPresetNotFound
}

// AddPreset appends a new preset with default name and duration.
// Selection, countdown and running state are untouched.
func (s *Session) AddPreset() *Preset {
	p := NewPreset(NewPresetName, DefaultPresetDuration)
	s.Presets = append(s.Presets, p)
	return p
}

// SeedPreset appends a preset with the given fields, used to load
// configured presets at startup. Selection is untouched.
func (s *Session) SeedPreset(name string, duration time.Duration) *Preset {
	p := NewPreset(name, duration)
	s.Presets = append(s.Presets, p)
	return p
}

// SelectPreset makes the given preset active, loads its duration into
// the countdown and stops any running countdown. An unknown id leaves
// the session unchanged.
func (s *Session) SelectPreset(id string) error {
	p, err := s.FindPreset(id)
	if err != nil {
		return err
	}
	s.ActiveID = p.ID
	s.Remaining = p.Duration
	s.Running = false
	return nil
}

// Start arms the countdown.
func (s *Session) Start() {
	s.Running = true
}

// Pause stops the countdown without touching the remaining time.
func (s *Session) Pause() {
	s.Running = false
}

// Reset stops the countdown and reloads the active preset's duration.
func (s *Session) Reset() {
	s.Running = false
	s.Remaining = s.ActivePreset().Duration
}

// Tick advances the countdown by one second and reports whether this
// tick crossed zero. It only reports the crossing once: after a
// crossing the caller runs the completion sequence, which stops the
// session, so a dormant or already-finished session never re-fires.
func (s *Session) Tick() (completed bool) {
	if !s.Running {
		return false
	}
	if s.Remaining <= 0 {
		// Zero-duration preset armed at 0: complete on the first
		// evaluation instead of after a full tick.
		return true
	}
	s.Remaining -= time.Second
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	return s.Remaining == 0
}

// Complete applies the bookkeeping steps of the completion sequence:
// stop the countdown, count the session, and reload the active
// preset's current duration. The duration is re-read here so an edit
// committed between completions is honored.
func (s *Session) Complete() {
	s.Running = false
	s.Completed++
	s.Remaining = s.ActivePreset().Duration
}
