// Package config provides configuration management for Tomat.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Tomat application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds the default preset and up to three extra presets
// seeded into the session at startup.
type TimerConfig struct {
	DefaultName     string   `mapstructure:"default_name"`
	DefaultDuration Duration `mapstructure:"default_duration"`
	Preset1Name     string   `mapstructure:"preset1_name"`
	Preset1Duration Duration `mapstructure:"preset1_duration"`
	Preset2Name     string   `mapstructure:"preset2_name"`
	Preset2Duration Duration `mapstructure:"preset2_duration"`
	Preset3Name     string   `mapstructure:"preset3_name"`
	Preset3Duration Duration `mapstructure:"preset3_duration"`
}

// SeedPreset is a named session duration preset from the config file.
type SeedPreset struct {
	Name     string
	Duration time.Duration
}

// SeedPresets returns the configured extra presets, skipping empty
// slots and non-positive durations.
func (c *TimerConfig) SeedPresets() []SeedPreset {
	slots := []SeedPreset{
		{Name: c.Preset1Name, Duration: time.Duration(c.Preset1Duration)},
		{Name: c.Preset2Name, Duration: time.Duration(c.Preset2Duration)},
		{Name: c.Preset3Name, Duration: time.Duration(c.Preset3Duration)},
	}
	var presets []SeedPreset
	for _, s := range slots {
		if s.Name != "" && s.Duration > 0 {
			presets = append(presets, s)
		}
	}
	return presets
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorActive        string `mapstructure:"color_active"`
	ColorPaused        string `mapstructure:"color_paused"`
	ColorTitle         string `mapstructure:"color_title"`
	ColorHelp          string `mapstructure:"color_help"`
	ColorError         string `mapstructure:"color_error"`
	TimerGradientStart string `mapstructure:"timer_gradient_start"`
	TimerGradientEnd   string `mapstructure:"timer_gradient_end"`
	IconApp            string `mapstructure:"icon_app"`
	IconDone           string `mapstructure:"icon_done"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorActive:        "#7C6FE0",
		ColorPaused:        "#6B7280",
		ColorTitle:         "#6B7280",
		ColorHelp:          "#95A5A6",
		ColorError:         "#E06C75",
		TimerGradientStart: "#7C6FE0",
		TimerGradientEnd:   "#A78BFA",
		IconApp:            "🍅",
		IconDone:           "✔",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// AsDuration converts to a time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			DefaultName:     "Work",
			DefaultDuration: Duration(25 * time.Minute),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomat", "config.toml"), nil
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("timer.default_name", cfg.Timer.DefaultName)
	v.Set("timer.default_duration", cfg.Timer.DefaultDuration.String())
	v.Set("timer.preset1_name", cfg.Timer.Preset1Name)
	v.Set("timer.preset1_duration", cfg.Timer.Preset1Duration.String())
	v.Set("timer.preset2_name", cfg.Timer.Preset2Name)
	v.Set("timer.preset2_duration", cfg.Timer.Preset2Duration.String())
	v.Set("timer.preset3_name", cfg.Timer.Preset3Name)
	v.Set("timer.preset3_duration", cfg.Timer.Preset3Duration.String())
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("theme.color_active", cfg.Theme.ColorActive)
	v.Set("theme.color_paused", cfg.Theme.ColorPaused)
	v.Set("theme.color_title", cfg.Theme.ColorTitle)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.color_error", cfg.Theme.ColorError)
	v.Set("theme.timer_gradient_start", cfg.Theme.TimerGradientStart)
	v.Set("theme.timer_gradient_end", cfg.Theme.TimerGradientEnd)
	v.Set("theme.icon_app", cfg.Theme.IconApp)
	v.Set("theme.icon_done", cfg.Theme.IconDone)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// setDefaults registers default values so a sparse config file still
// resolves every key.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("timer.default_name", def.Timer.DefaultName)
	v.SetDefault("timer.default_duration", def.Timer.DefaultDuration.String())
	v.SetDefault("notifications.enabled", def.Notifications.Enabled)
	v.SetDefault("notifications.sound", def.Notifications.Sound)
	v.SetDefault("theme.color_active", def.Theme.ColorActive)
	v.SetDefault("theme.color_paused", def.Theme.ColorPaused)
	v.SetDefault("theme.color_title", def.Theme.ColorTitle)
	v.SetDefault("theme.color_help", def.Theme.ColorHelp)
	v.SetDefault("theme.color_error", def.Theme.ColorError)
	v.SetDefault("theme.timer_gradient_start", def.Theme.TimerGradientStart)
	v.SetDefault("theme.timer_gradient_end", def.Theme.TimerGradientEnd)
	v.SetDefault("theme.icon_app", def.Theme.IconApp)
	v.SetDefault("theme.icon_done", def.Theme.IconDone)
}
