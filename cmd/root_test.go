package cmd

import (
	"testing"
	"time"

	"github.com/rvelden/tomat/internal/config"
	"github.com/rvelden/tomat/internal/domain"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"presets", "config"} {
		if !names[want] {
			t.Errorf("root command is missing subcommand %q", want)
		}
	}
}

func TestNewSession_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timer.Preset1Name = "Deep"
	cfg.Timer.Preset1Duration = config.Duration(50 * time.Minute)

	session := newSession(cfg)

	if len(session.Presets) != 2 {
		t.Fatalf("len(Presets) = %d, want 2", len(session.Presets))
	}
	if session.ActivePreset().Name != "Work" {
		t.Errorf("active preset = %q, want the default", session.ActivePreset().Name)
	}
	if session.Presets[1].Name != "Deep" || session.Presets[1].Duration != 50*time.Minute {
		t.Errorf("seeded preset = %+v, want Deep/50m", session.Presets[1])
	}
}

func TestNewSession_EmptyConfigFallsBack(t *testing.T) {
	cfg := &config.Config{}

	session := newSession(cfg)

	if session.ActivePreset().Name != domain.DefaultPresetName {
		t.Errorf("name = %q, want %q", session.ActivePreset().Name, domain.DefaultPresetName)
	}
	if session.ActivePreset().Duration != domain.DefaultPresetDuration {
		t.Errorf("duration = %v, want %v", session.ActivePreset().Duration, domain.DefaultPresetDuration)
	}
}

func TestFormatPresetDuration(t *testing.T) {
	if got := formatPresetDuration(25 * time.Minute); got != "25:00" {
		t.Errorf("formatPresetDuration = %q, want 25:00", got)
	}
}
