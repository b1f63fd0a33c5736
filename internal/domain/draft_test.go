package domain

import (
	"testing"
	"time"
)

func TestSession_BeginEdit(t *testing.T) {
	s := DefaultSession()
	p := s.Presets[0]

	if err := s.BeginEdit(p.ID); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}

	if !s.Editing() {
		t.Fatal("Editing() = false after BeginEdit")
	}
	if s.Draft.PresetID != p.ID {
		t.Errorf("Draft.PresetID = %q, want %q", s.Draft.PresetID, p.ID)
	}
	if s.Draft.Name != p.Name {
		t.Errorf("Draft.Name = %q, want %q", s.Draft.Name, p.Name)
	}
	if s.Draft.Duration != p.Duration {
		t.Errorf("Draft.Duration = %v, want %v", s.Draft.Duration, p.Duration)
	}
}

func TestSession_BeginEdit_UnknownID(t *testing.T) {
	s := DefaultSession()

	if err := s.BeginEdit("nope"); err != ErrPresetNotFound {
		t.Errorf("error = %v, want ErrPresetNotFound", err)
	}
	if s.Editing() {
		t.Error("failed BeginEdit must not open a draft")
	}
}

func TestSession_BeginEdit_KeepsCountdownRunning(t *testing.T) {
	s := DefaultSession()
	s.Start()

	if err := s.BeginEdit(s.Presets[0].ID); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}
	if !s.Running {
		t.Error("BeginEdit must not stop a running countdown")
	}
}

func TestSession_UpdateDraftMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"valid", "10", 10 * time.Minute, false},
		{"valid with spaces", " 45 ", 45 * time.Minute, false},
		{"zero", "0", 25 * time.Minute, true},
		{"negative", "-5", 25 * time.Minute, true},
		{"non-numeric", "abc", 25 * time.Minute, true},
		{"empty", "", 25 * time.Minute, true},
		{"fractional", "2.5", 25 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSession()
			if err := s.BeginEdit(s.Presets[0].ID); err != nil {
				t.Fatalf("BeginEdit() error = %v", err)
			}

			err := s.UpdateDraftMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateDraftMinutes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if s.Draft.Duration != tt.want {
				t.Errorf("Draft.Duration = %v, want %v", s.Draft.Duration, tt.want)
			}
		})
	}
}

func TestSession_UpdateDraft_NoDraft(t *testing.T) {
	s := DefaultSession()

	if err := s.UpdateDraftName("x"); err != ErrNoDraft {
		t.Errorf("UpdateDraftName error = %v, want ErrNoDraft", err)
	}
	if err := s.UpdateDraftMinutes("5"); err != ErrNoDraft {
		t.Errorf("UpdateDraftMinutes error = %v, want ErrNoDraft", err)
	}
}

func TestSession_CommitEdit_ActivePreset(t *testing.T) {
	s := DefaultSession()
	s.Start()

	if err := s.BeginEdit(s.Presets[0].ID); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}
	if err := s.UpdateDraftName("Focus"); err != nil {
		t.Fatalf("UpdateDraftName() error = %v", err)
	}
	if err := s.UpdateDraftMinutes("10"); err != nil {
		t.Fatalf("UpdateDraftMinutes() error = %v", err)
	}
	if err := s.CommitEdit(); err != nil {
		t.Fatalf("CommitEdit() error = %v", err)
	}

	p := s.Presets[0]
	if p.Name != "Focus" {
		t.Errorf("Name = %q, want %q", p.Name, "Focus")
	}
	if p.Duration != 10*time.Minute {
		t.Errorf("Duration = %v, want %v", p.Duration, 10*time.Minute)
	}

	// The countdown snaps to the new duration even mid-countdown.
	if s.Remaining != 10*time.Minute {
		t.Errorf("Remaining = %v, want %v", s.Remaining, 10*time.Minute)
	}
	if !s.Running {
		t.Error("CommitEdit must not alter the running state")
	}
	if s.Editing() {
		t.Error("Editing() = true after commit")
	}
}

func TestSession_CommitEdit_InactivePreset(t *testing.T) {
	s := DefaultSession()
	p := s.AddPreset()
	before := s.Remaining

	if err := s.BeginEdit(p.ID); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}
	if err := s.UpdateDraftMinutes("5"); err != nil {
		t.Fatalf("UpdateDraftMinutes() error = %v", err)
	}
	if err := s.CommitEdit(); err != nil {
		t.Fatalf("CommitEdit() error = %v", err)
	}

	if p.Duration != 5*time.Minute {
		t.Errorf("Duration = %v, want %v", p.Duration, 5*time.Minute)
	}
	if s.Remaining != before {
		t.Error("editing an inactive preset must not touch the countdown")
	}
}

func TestSession_CancelEdit(t *testing.T) {
	s := DefaultSession()
	if err := s.BeginEdit(s.Presets[0].ID); err != nil {
		t.Fatalf("BeginEdit() error = %v", err)
	}
	if err := s.UpdateDraftName("Changed"); err != nil {
		t.Fatalf("UpdateDraftName() error = %v", err)
	}

	s.CancelEdit()

	if s.Editing() {
		t.Error("Editing() = true after cancel")
	}
	if s.Presets[0].Name != "Work" {
		t.Errorf("Name = %q, want untouched %q", s.Presets[0].Name, "Work")
	}
}

func TestSession_CommitEdit_NoDraft(t *testing.T) {
	s := DefaultSession()
	if err := s.CommitEdit(); err != ErrNoDraft {
		t.Errorf("error = %v, want ErrNoDraft", err)
	}
}
