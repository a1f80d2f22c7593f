package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harulog",
	Short: "Daily routine and set tracker",
	Long: `harulog tracks one day of personal routine sessions.

Start an action, complete it, rest, and finish sets; the timeline groups
work into numbered sets automatically. Changes sync to the day-session
API in the background and survive offline in a local cache.`,
}

// Flags
var flagDate string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Day to operate on (YYYY-MM-DD, default today)")
}
