package domain

import (
	"strconv"
	"strings"
	"time"
)

// Draft is the uncommitted copy of a preset's editable fields.
// It exists only while an edit is in progress.
type Draft struct {
	PresetID string
	Name     string
	Duration time.Duration
}

// Editing reports whether an edit is in progress.
func (s *Session) Editing() bool {
	return s.Draft != nil
}

// BeginEdit copies the preset's fields into a fresh draft and enters
// the editing view. A running countdown is not interrupted.
func (s *Session) BeginEdit(id string) error {
	p, err := s.FindPreset(id)
	if err != nil {
		return err
	}
	s.Draft = &Draft{
		PresetID: p.ID,
		Name:     p.Name,
		Duration: p.Duration,
	}
	return nil
}

// UpdateDraftName replaces the draft's name.
func (s *Session) UpdateDraftName(name string) error {
	if s.Draft == nil {
		return ErrNoDraft
	}
	s.Draft.Name = name
	return nil
}

// UpdateDraftMinutes interprets the input as a whole number of minutes
// and stores it on the draft as a duration. Non-numeric or
// non-positive input is rejected and the draft keeps its previous
// valid value.
func (s *Session) UpdateDraftMinutes(text string) error {
	if s.Draft == nil {
		return ErrNoDraft
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || minutes <= 0 {
		return ErrInvalidDuration
	}
	s.Draft.Duration = time.Duration(minutes) * time.Minute
	return nil
}

// CommitEdit writes the draft back onto its preset and leaves the
// editing view. If the edited preset is the active one, the countdown
// snaps to the new duration immediately, even mid-countdown; the
// running state itself is not altered.
func (s *Session) CommitEdit() error {
	if s.Draft == nil {
		return ErrNoDraft
	}
	draft := s.Draft
	s.Draft = nil

	p, err := s.FindPreset(draft.PresetID)
	if err != nil {
		return err
	}
	p.Name = draft.Name
	p.Duration = draft.Duration
	if p.ID == s.ActiveID {
		s.Remaining = p.Duration
	}
	return nil
}

// CancelEdit discards the draft and leaves the editing view. The
// preset collection is unchanged.
func (s *Session) CancelEdit() {
	s.Draft = nil
}
