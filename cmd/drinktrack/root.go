package drinktrack

import (
	"fmt"
	"os"

	"github.com/Madhacks12/drinktrack/internal/logging"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "drinktrack",
	Short: "drinktrack records alcohol units against your goals from your terminal",
	Long:  "drinktrack is a local-first alcohol-consumption tracker with drink logging, weekly goals, streaks, statistics, and reminders.",
}

func Execute() {
	logging.Setup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
