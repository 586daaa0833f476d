package drinktrack

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show consumption statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			now := time.Now()
			out := cmd.OutOrStdout()

			avgDaily := service.AverageDailyIntake(entries, 30, now)
			fmt.Fprintf(out, "Average daily intake (30 days): %.1f units\n", avgDaily)
			fmt.Fprintf(out, "Average weekly intake (30 days): %.1f units\n", avgDaily*7)

			trend := service.WeeklyTrend(entries, now)
			switch {
			case trend < 0:
				fmt.Fprintf(out, "Trend: down %.1f units from previous weeks\n", -trend)
			case trend > 0:
				fmt.Fprintf(out, "Trend: up %.1f units from previous weeks\n", trend)
			default:
				fmt.Fprintln(out, "Trend: steady")
			}

			fmt.Fprintln(out, "\nLast 4 weeks:")
			for _, w := range service.WeeklyTotals(entries, now, 4) {
				fmt.Fprintf(out, "  week of %s\t%.1f units\n", w.WeekStart, w.Units)
			}

			fmt.Fprintln(out, "\nLast 7 days:")
			for _, d := range service.DailyTotals(entries, now, 7) {
				fmt.Fprintf(out, "  %s\t%.1f units\n", d.Date, d.Units)
			}

			stats := service.TypeStats(entries)
			if len(stats) > 0 {
				fmt.Fprintln(out, "\nBy drink type:")
				types := make([]string, 0, len(stats))
				for name := range stats {
					types = append(types, name)
				}
				sort.Strings(types)
				for _, name := range types {
					s := stats[name]
					fmt.Fprintf(out, "  %s\t%d servings\t%.1f units\n", name, s.Count, s.Units)
				}
			}
			return nil
		})
	},
}

var (
	rangeFrom string
	rangeTo   string
)

var statsRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Sum intake over a date range (inclusive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateArg("--from", rangeFrom)
		if err != nil {
			return err
		}
		end, err := parseDateArg("--to", rangeTo)
		if err != nil {
			return err
		}
		if end.Before(start) {
			return fmt.Errorf("--to must not be before --from")
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			window := service.DrinksByDateRange(entries, start, end)
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries, %.1f units between %s and %s\n",
				len(window), service.SumUnits(window), rangeFrom, rangeTo)
			return nil
		})
	},
}

var calendarMonth string

var statsCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show per-day intake for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := time.Now()
		if calendarMonth != "" {
			t, err := time.Parse("2006-01", calendarMonth)
			if err != nil {
				return fmt.Errorf("invalid --month %q, expected YYYY-MM", calendarMonth)
			}
			ref = t
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListDrinks(sqldb)
			if err != nil {
				return err
			}
			intake := service.MonthIntake(entries, ref.Year(), ref.Month())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", ref.Month(), ref.Year())
			days := make([]int, 0, len(intake))
			for d := range intake {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, d := range days {
				fmt.Fprintf(cmd.OutOrStdout(), "  %02d\t%.1f units\n", d, intake[d])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsRangeCmd, statsCalendarCmd)

	statsRangeCmd.Flags().StringVar(&rangeFrom, "from", "", "Start date YYYY-MM-DD")
	statsRangeCmd.Flags().StringVar(&rangeTo, "to", "", "End date YYYY-MM-DD")
	_ = statsRangeCmd.MarkFlagRequired("from")
	_ = statsRangeCmd.MarkFlagRequired("to")

	statsCalendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month in YYYY-MM (default current)")
}
