package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// presetsCmd lists the presets seeded into a new session.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the configured timer presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		fmt.Println("  Configured presets:")
		fmt.Println()
		fmt.Printf("    %-14s %s  (default)\n", appConfig.Timer.DefaultName, formatPresetDuration(appConfig.Timer.DefaultDuration.AsDuration()))
		for _, p := range appConfig.Timer.SeedPresets() {
			fmt.Printf("    %-14s %s\n", p.Name, formatPresetDuration(p.Duration))
		}
		fmt.Println()
		return nil
	},
}

func formatPresetDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
