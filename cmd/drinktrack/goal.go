package drinktrack

import (
	"database/sql"
	"fmt"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage your weekly goal",
}

var (
	goalWeeklyLimit     float64
	goalReductionTarget float64
	goalMotivation      string
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the active goal configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			current := service.GetGoals(sqldb)
			g := model.Goals{
				WeeklyLimit:     goalWeeklyLimit,
				ReductionTarget: goalReductionTarget,
				Motivation:      goalMotivation,
			}
			if !cmd.Flags().Changed("weekly-limit") {
				g.WeeklyLimit = current.WeeklyLimit
			}
			if !cmd.Flags().Changed("reduction-target") {
				g.ReductionTarget = current.ReductionTarget
			}
			if !cmd.Flags().Changed("motivation") {
				g.Motivation = current.Motivation
			}
			if err := service.SaveGoals(sqldb, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal saved: %.1f units/week (daily limit %.1f)\n", g.WeeklyLimit, service.DailyLimit(g))
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			g := service.GetGoals(sqldb)
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly limit: %.1f units\n", g.WeeklyLimit)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily limit: %.1f units (derived)\n", service.DailyLimit(g))
			fmt.Fprintf(cmd.OutOrStdout(), "Reduction target: %.0f%%\n", g.ReductionTarget)
			fmt.Fprintf(cmd.OutOrStdout(), "Motivation: %s\n", g.Motivation)
			if service.IsWithinGuidelines(g) {
				fmt.Fprintln(cmd.OutOrStdout(), "Within national guidelines (14 units/week)")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Above national guidelines (14 units/week)")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)

	goalSetCmd.Flags().Float64Var(&goalWeeklyLimit, "weekly-limit", 14, "Weekly unit limit")
	goalSetCmd.Flags().Float64Var(&goalReductionTarget, "reduction-target", 10, "Advisory reduction target percentage")
	goalSetCmd.Flags().StringVar(&goalMotivation, "motivation", "", "Motivation text")
}
