package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/util"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the day's timeline with set labels",
	RunE:  runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("%s (%s)\n\n", util.FormatDateKorean(svc.Date()), svc.Date())
	printTimeline(svc.Sessions())

	if msg := svc.Err(); msg != "" {
		fmt.Printf("\n%s\n", msg)
	}
	return nil
}
