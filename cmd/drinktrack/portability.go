package drinktrack

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			data, err := service.ExportJSON(sqldb)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export, replacing current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ImportJSON(sqldb, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Import complete")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
