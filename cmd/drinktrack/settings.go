package drinktrack

import (
	"database/sql"
	"fmt"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage app settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s := service.GetAppSettings(sqldb)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Theme: %s\n", s.Theme)
			fmt.Fprintf(out, "Units system: %s\n", s.Units)
			fmt.Fprintf(out, "Notifications: %t\n", s.Notifications)
			fmt.Fprintf(out, "Data sharing: %t\n", s.DataSharing)
			fmt.Fprintf(out, "Analytics: %t\n", s.Analytics)
			return nil
		})
	},
}

var (
	settingsTheme         string
	settingsUnits         string
	settingsNotifications bool
	settingsDataSharing   bool
	settingsAnalytics     bool
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s := service.GetAppSettings(sqldb)
			if cmd.Flags().Changed("theme") {
				s.Theme = settingsTheme
			}
			if cmd.Flags().Changed("units") {
				s.Units = settingsUnits
			}
			if cmd.Flags().Changed("notifications") {
				s.Notifications = settingsNotifications
			}
			if cmd.Flags().Changed("data-sharing") {
				s.DataSharing = settingsDataSharing
			}
			if cmd.Flags().Changed("analytics") {
				s.Analytics = settingsAnalytics
			}
			if err := service.SaveAppSettings(sqldb, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)

	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "system", "Theme: light, dark, or system")
	settingsSetCmd.Flags().StringVar(&settingsUnits, "units", "uk", "Units system: uk or us")
	settingsSetCmd.Flags().BoolVar(&settingsNotifications, "notifications", true, "Notifications master toggle")
	settingsSetCmd.Flags().BoolVar(&settingsDataSharing, "data-sharing", false, "Data sharing opt-in")
	settingsSetCmd.Flags().BoolVar(&settingsAnalytics, "analytics", false, "Analytics opt-in")
}
