package drinktrack

import (
	"database/sql"
	"fmt"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data store for problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.CheckIntegrity(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Entries: %d\n", report.Entries)
			fmt.Fprintf(out, "Registered users: %d\n", report.RegisteredUser)
			if report.Healthy() {
				fmt.Fprintln(out, "No problems found")
				return nil
			}
			fmt.Fprintf(out, "Problems (%d):\n", len(report.Problems))
			for _, p := range report.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
