package cli

import (
	"context"

	"github.com/spf13/cobra"

	"harulog/internal/app/tui"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Open the interactive day page",
	Long: `Open the interactive day page.

The day page shows the timeline with set labels and drives the session
state machine with single keys. Changes sync in the background.`,
	RunE: runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// The TUI collects action text itself, so no prompter here.
	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(svc)
}
