package drinktrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your within-goal streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			goals := service.GetGoals(sqldb)
			streak := service.Streak(entries, goals, time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "%d consecutive days within your daily limit\n", streak)

			milestones := service.GetNotificationSettings(sqldb).StreakCelebration.Milestones
			if service.ReachedMilestone(streak, milestones) {
				fmt.Fprintf(cmd.OutOrStdout(), "Milestone reached: %d days!\n", streak)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
