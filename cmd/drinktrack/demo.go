package drinktrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed sample drinks and goals for trying things out",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SeedDemoData(sqldb, time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data seeded")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
