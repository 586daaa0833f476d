package drinktrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			now := time.Now()
			goals := service.GetGoals(sqldb)

			todayIntake := service.SumUnits(service.TodaysEntries(entries, now))
			weeklyIntake := service.SumUnits(service.WeeklyEntries(entries, now))
			dailyLimit := service.DailyLimit(goals)
			streak := service.Streak(entries, goals, now)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today: %.1f/%.1f units\n", todayIntake, dailyLimit)
			if service.IsOverDailyLimit(todayIntake, goals) {
				fmt.Fprintln(out, "Over your daily limit")
			}
			fmt.Fprintf(out, "This week: %.1f/%.1f units\n", weeklyIntake, goals.WeeklyLimit)
			if service.IsOverWeeklyLimit(weeklyIntake, goals) {
				fmt.Fprintln(out, "Over your weekly limit")
			}
			fmt.Fprintf(out, "Streak: %d days within goal\n", streak)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
