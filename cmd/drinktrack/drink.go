package drinktrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/notify"
	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var drinkCmd = &cobra.Command{
	Use:   "drink",
	Short: "Manage drink entries",
}

var (
	drinkType     string
	drinkUnits    float64
	drinkQuantity int
	drinkTime     string
	drinkDate     string
)

var drinkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a drink",
	Long:  "Log a drink from the catalog (--type, units per serving times --quantity) or with custom --units.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(drinkDate)
		if err != nil {
			return err
		}
		in := service.AddDrinkInput{
			Type:     drinkType,
			Units:    drinkUnits,
			Quantity: drinkQuantity,
			Time:     drinkTime,
			Date:     date,
		}
		if !cmd.Flags().Changed("units") {
			catalog, ok := model.CatalogDrink(drinkType)
			if !ok {
				return fmt.Errorf("unknown drink type %q: pass --units for a custom drink, or use one of the catalog names (drink types)", drinkType)
			}
			qty := drinkQuantity
			if qty <= 0 {
				qty = 1
			}
			// Units are pre-multiplied by serving count before storage.
			in.Units = catalog.Units * float64(qty)
		}
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.AddDrink(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.1f units) on %s\n", entry.Type, entry.Units, entry.Date)
			fireEntryChecks(sqldb)
			return nil
		})
	},
}

// fireEntryChecks runs the event-triggered notifications right after a
// new entry is logged.
func fireEntryChecks(sqldb *sql.DB) {
	if !service.GetAppSettings(sqldb).Notifications {
		return
	}
	if service.GetPermission(sqldb) != service.PermissionGranted {
		return
	}
	scheduler := notify.NewScheduler(sqldb, notify.NewDesktopNotifier())
	now := time.Now()
	scheduler.CheckStreakMilestones(now)
	scheduler.CheckWarningAlerts(now)
}

var drinkListDate string

var drinkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drink entries in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			if drinkListDate != "" {
				date, err := parseDateOrToday(drinkListDate)
				if err != nil {
					return err
				}
				filtered := make([]model.DrinkEntry, 0, len(entries))
				for _, e := range entries {
					if e.Date == date {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTIME\tTYPE\tUNITS\tQTY")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.1f\t%d\n", e.ID, e.Date, e.Time, e.Type, e.Units, e.Quantity)
			}
			return nil
		})
	},
}

var drinkRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a drink entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.RemoveDrink(sqldb, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		})
	},
}

var drinkUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a drink entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in service.UpdateDrinkInput
		if cmd.Flags().Changed("type") {
			in.Type = &drinkType
		}
		if cmd.Flags().Changed("units") {
			in.Units = &drinkUnits
		}
		if cmd.Flags().Changed("quantity") {
			in.Quantity = &drinkQuantity
		}
		if cmd.Flags().Changed("time") {
			in.Time = &drinkTime
		}
		if cmd.Flags().Changed("date") {
			in.Date = &drinkDate
		}
		return withDB(func(sqldb *sql.DB) error {
			updated, err := service.UpdateDrink(sqldb, args[0], in)
			if err != nil {
				return err
			}
			if !updated {
				return fmt.Errorf("entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", args[0])
			return nil
		})
	},
}

var drinkClearYes bool

var drinkClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all persisted data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !drinkClearYes {
			return fmt.Errorf("refusing to clear without --yes")
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearAll(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all data")
			return nil
		})
	},
}

var drinkTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the drink catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tUNITS")
		for _, d := range model.DrinkCatalog {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", d.Name, d.Units)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drinkCmd)
	drinkCmd.AddCommand(drinkAddCmd, drinkListCmd, drinkRemoveCmd, drinkUpdateCmd, drinkClearCmd, drinkTypesCmd)

	drinkAddCmd.Flags().StringVar(&drinkType, "type", "", "Drink type (catalog name or free text with --units)")
	drinkAddCmd.Flags().Float64Var(&drinkUnits, "units", 0, "Total units for a custom drink")
	drinkAddCmd.Flags().IntVar(&drinkQuantity, "quantity", 1, "Number of servings")
	drinkAddCmd.Flags().StringVar(&drinkTime, "time", "", "Time of day, e.g. 19:30")
	drinkAddCmd.Flags().StringVar(&drinkDate, "date", "", "Date in YYYY-MM-DD (default today)")
	_ = drinkAddCmd.MarkFlagRequired("type")

	drinkListCmd.Flags().StringVar(&drinkListDate, "date", "", "Filter by date YYYY-MM-DD")

	drinkUpdateCmd.Flags().StringVar(&drinkType, "type", "", "Drink type")
	drinkUpdateCmd.Flags().Float64Var(&drinkUnits, "units", 0, "Total units")
	drinkUpdateCmd.Flags().IntVar(&drinkQuantity, "quantity", 0, "Number of servings")
	drinkUpdateCmd.Flags().StringVar(&drinkTime, "time", "", "Time of day")
	drinkUpdateCmd.Flags().StringVar(&drinkDate, "date", "", "Date in YYYY-MM-DD")

	drinkClearCmd.Flags().BoolVar(&drinkClearYes, "yes", false, "Confirm deletion")
}
