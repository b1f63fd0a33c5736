// Package cmd provides the CLI commands for the Tomat application.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/rvelden/tomat/internal/adapters/audio"
	"github.com/rvelden/tomat/internal/adapters/clock"
	"github.com/rvelden/tomat/internal/adapters/notification"
	"github.com/rvelden/tomat/internal/adapters/tui"
	"github.com/rvelden/tomat/internal/config"
	"github.com/rvelden/tomat/internal/domain"
	"github.com/rvelden/tomat/internal/ports"
	"github.com/rvelden/tomat/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	muteFlag     bool
	noNotifyFlag bool

	// appConfig is loaded once before any command runs.
	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tomat",
	Short: "Tomat - a preset-based countdown timer for the terminal",
	Long: `Tomat is a Pomodoro-style countdown timer with named presets,
an audible completion chime and desktop notifications.

Run "tomat" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load()
		if err != nil {
			// A broken config file should not keep the timer from
			// starting; fall back to defaults.
			fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
			appConfig = config.DefaultConfig()
		}
		return nil
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&muteFlag, "mute", false, "Disable the completion chime")
	rootCmd.PersistentFlags().BoolVar(&noNotifyFlag, "no-notify", false, "Disable desktop notifications")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Tomat\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// runTimer wires the session, capabilities and TUI together and runs
// until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tomat needs an interactive terminal")
	}

	session := newSession(appConfig)
	ctrl := services.New(session, clock.NewInterval(), newAudioEngine(appConfig), newNotifier(appConfig))
	defer ctrl.Shutdown()

	model := tui.NewModel(ctrl, &appConfig.Theme)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// newSession builds the initial session from the configured default
// preset plus any configured extras.
func newSession(cfg *config.Config) *domain.Session {
	name := cfg.Timer.DefaultName
	if name == "" {
		name = domain.DefaultPresetName
	}
	duration := cfg.Timer.DefaultDuration
	if duration <= 0 {
		duration = config.Duration(domain.DefaultPresetDuration)
	}

	session := domain.NewSession(name, duration.AsDuration())
	for _, seed := range cfg.Timer.SeedPresets() {
		session.SeedPreset(seed.Name, seed.Duration)
	}
	return session
}

func newAudioEngine(cfg *config.Config) ports.AudioEngine {
	if muteFlag || !cfg.Notifications.Sound {
		return ports.NoopAudio{}
	}
	return audio.NewEngine()
}

func newNotifier(cfg *config.Config) ports.Notifier {
	if noNotifyFlag {
		return ports.NoopNotifier{}
	}
	return notification.New(&cfg.Notifications)
}
