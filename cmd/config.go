package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvelden/tomat/internal/config"
)

// configCmd shows the resolved configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long:  `Print the config file location and the resolved timer, notification and theme settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		notifStatus := "off"
		if appConfig.Notifications.Enabled {
			notifStatus = "on"
			if appConfig.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("  Config file:    %s\n", path)
		fmt.Printf("  Default preset: %s (%s)\n", appConfig.Timer.DefaultName, formatPresetDuration(appConfig.Timer.DefaultDuration.AsDuration()))
		for i, p := range appConfig.Timer.SeedPresets() {
			fmt.Printf("  Extra preset %d: %s (%s)\n", i+1, p.Name, formatPresetDuration(p.Duration))
		}
		fmt.Printf("  Notifications:  %s\n", notifStatus)
		fmt.Println()
		return nil
	},
}
