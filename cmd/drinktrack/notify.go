package drinktrack

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/notify"
	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

func updateNotificationSettings(cmd *cobra.Command, apply func(*model.NotificationSettings)) error {
	return withDB(func(sqldb *sql.DB) error {
		s := service.GetNotificationSettings(sqldb)
		apply(&s)
		if err := service.SaveNotificationSettings(sqldb, s); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Notification settings saved")
		return nil
	})
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage reminders and notifications",
}

var notifyRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reminder scheduler until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scheduler := notify.NewScheduler(sqldb, notify.NewDesktopNotifier())
			scheduler.Start(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Reminder scheduler running, press Ctrl+C to stop")
			<-ctx.Done()
			scheduler.Stop()
			return nil
		})
	},
}

var notifyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show notification settings and permission",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s := service.GetNotificationSettings(sqldb)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Permission: %s\n", service.GetPermission(sqldb))
			fmt.Fprintf(out, "Enabled: %t\n", s.Enabled)
			fmt.Fprintf(out, "Daily reminder: enabled=%t time=%s\n", s.DailyReminder.Enabled, s.DailyReminder.Time)
			fmt.Fprintf(out, "Weekly report: enabled=%t day=%s time=%s\n", s.WeeklyReport.Enabled, s.WeeklyReport.Day, s.WeeklyReport.Time)
			fmt.Fprintf(out, "Goal reminders: enabled=%t frequency=%s\n", s.GoalReminders.Enabled, s.GoalReminders.Frequency)
			fmt.Fprintf(out, "Encouragement: enabled=%t frequency=%s\n", s.Encouragement.Enabled, s.Encouragement.Frequency)
			fmt.Fprintf(out, "Streak celebration: enabled=%t milestones=%v\n", s.StreakCelebration.Enabled, s.StreakCelebration.Milestones)
			fmt.Fprintf(out, "Warning alerts: enabled=%t daily=%.1f weekly=%.1f\n", s.WarningAlerts.Enabled, s.WarningAlerts.DailyThreshold, s.WarningAlerts.WeeklyThreshold)
			return nil
		})
	},
}

var notifyPermissionCmd = &cobra.Command{
	Use:   "permission <grant|deny|reset|status>",
	Short: "Query or change notification permission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			switch strings.ToLower(args[0]) {
			case "status":
				fmt.Fprintln(cmd.OutOrStdout(), service.GetPermission(sqldb))
				return nil
			case "grant":
				return service.SetPermission(sqldb, service.PermissionGranted)
			case "deny":
				return service.SetPermission(sqldb, service.PermissionDenied)
			case "reset":
				return service.SetPermission(sqldb, service.PermissionDefault)
			default:
				return fmt.Errorf("unknown permission action %q", args[0])
			}
		})
	},
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if service.GetPermission(sqldb) != service.PermissionGranted {
				return fmt.Errorf("notification permission not granted (run: drinktrack notify permission grant)")
			}
			return notify.NewDesktopNotifier().Send("drinktrack", "Notifications are working.")
		})
	},
}

var notifyConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure notification features",
}

// Each feature gets a typed subcommand instead of a string-path updater,
// so every field change is validated against its own section.

var notifyGlobalEnabled bool

var notifyConfigGlobalCmd = &cobra.Command{
	Use:   "global",
	Short: "Toggle the global notification flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.Enabled = notifyGlobalEnabled
			}
		})
	},
}

var (
	dailyEnabled bool
	dailyTime    string
	dailyMessage string
)

var notifyConfigDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Configure the daily logging reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.DailyReminder.Enabled = dailyEnabled
			}
			if cmd.Flags().Changed("time") {
				s.DailyReminder.Time = dailyTime
			}
			if cmd.Flags().Changed("message") {
				s.DailyReminder.Message = dailyMessage
			}
		})
	},
}

var (
	reportEnabled bool
	reportDay     string
	reportTime    string
)

var notifyConfigReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Configure the weekly report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.WeeklyReport.Enabled = reportEnabled
			}
			if cmd.Flags().Changed("day") {
				s.WeeklyReport.Day = strings.ToLower(reportDay)
			}
			if cmd.Flags().Changed("time") {
				s.WeeklyReport.Time = reportTime
			}
		})
	},
}

var (
	goalRemindersEnabled   bool
	goalRemindersFrequency string
)

var notifyConfigGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Configure goal reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.GoalReminders.Enabled = goalRemindersEnabled
			}
			if cmd.Flags().Changed("frequency") {
				s.GoalReminders.Frequency = goalRemindersFrequency
			}
		})
	},
}

var (
	encouragementEnabled   bool
	encouragementFrequency string
)

var notifyConfigEncouragementCmd = &cobra.Command{
	Use:   "encouragement",
	Short: "Configure encouragement messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.Encouragement.Enabled = encouragementEnabled
			}
			if cmd.Flags().Changed("frequency") {
				s.Encouragement.Frequency = encouragementFrequency
			}
		})
	},
}

var (
	streaksEnabled   bool
	streakMilestones []int
)

var notifyConfigStreaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Configure streak celebrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.StreakCelebration.Enabled = streaksEnabled
			}
			if cmd.Flags().Changed("milestones") {
				s.StreakCelebration.Milestones = streakMilestones
			}
		})
	},
}

var (
	warningsEnabled bool
	warningsDaily   float64
	warningsWeekly  float64
)

var notifyConfigWarningsCmd = &cobra.Command{
	Use:   "warnings",
	Short: "Configure warning alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateNotificationSettings(cmd, func(s *model.NotificationSettings) {
			if cmd.Flags().Changed("enabled") {
				s.WarningAlerts.Enabled = warningsEnabled
			}
			if cmd.Flags().Changed("daily-threshold") {
				s.WarningAlerts.DailyThreshold = warningsDaily
			}
			if cmd.Flags().Changed("weekly-threshold") {
				s.WarningAlerts.WeeklyThreshold = warningsWeekly
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyRunCmd, notifyStatusCmd, notifyPermissionCmd, notifyTestCmd, notifyConfigCmd)
	notifyConfigCmd.AddCommand(
		notifyConfigGlobalCmd,
		notifyConfigDailyCmd,
		notifyConfigReportCmd,
		notifyConfigGoalsCmd,
		notifyConfigEncouragementCmd,
		notifyConfigStreaksCmd,
		notifyConfigWarningsCmd,
	)

	notifyConfigGlobalCmd.Flags().BoolVar(&notifyGlobalEnabled, "enabled", true, "Enable notifications globally")

	notifyConfigDailyCmd.Flags().BoolVar(&dailyEnabled, "enabled", true, "Enable the daily reminder")
	notifyConfigDailyCmd.Flags().StringVar(&dailyTime, "time", "20:00", "Reminder time HH:MM")
	notifyConfigDailyCmd.Flags().StringVar(&dailyMessage, "message", "", "Reminder message")

	notifyConfigReportCmd.Flags().BoolVar(&reportEnabled, "enabled", true, "Enable the weekly report")
	notifyConfigReportCmd.Flags().StringVar(&reportDay, "day", "sunday", "Report weekday")
	notifyConfigReportCmd.Flags().StringVar(&reportTime, "time", "18:00", "Report time HH:MM")

	notifyConfigGoalsCmd.Flags().BoolVar(&goalRemindersEnabled, "enabled", true, "Enable goal reminders")
	notifyConfigGoalsCmd.Flags().StringVar(&goalRemindersFrequency, "frequency", "weekly", "Check frequency: daily or weekly")

	notifyConfigEncouragementCmd.Flags().BoolVar(&encouragementEnabled, "enabled", true, "Enable encouragement messages")
	notifyConfigEncouragementCmd.Flags().StringVar(&encouragementFrequency, "frequency", "medium", "Frequency: high, medium, or low")

	notifyConfigStreaksCmd.Flags().BoolVar(&streaksEnabled, "enabled", true, "Enable streak celebrations")
	notifyConfigStreaksCmd.Flags().IntSliceVar(&streakMilestones, "milestones", nil, "Milestone day counts, e.g. 3,7,14")

	notifyConfigWarningsCmd.Flags().BoolVar(&warningsEnabled, "enabled", true, "Enable warning alerts")
	notifyConfigWarningsCmd.Flags().Float64Var(&warningsDaily, "daily-threshold", 4, "Daily unit threshold (inclusive)")
	notifyConfigWarningsCmd.Flags().Float64Var(&warningsWeekly, "weekly-threshold", 14, "Weekly unit threshold (inclusive)")
}
