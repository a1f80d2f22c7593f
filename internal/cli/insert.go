package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"harulog/internal/domain"
)

var insertCmd = &cobra.Command{
	Use:   "insert <activity> <minutes>",
	Short: "Record an activity done outside the tracker",
	Long: `Record an activity done outside the tracker.

The activity is inserted as an already finished session ending now and
lasting the given number of minutes. By default it lands at the end of
the timeline; --at places it before the given 1-based position.

Examples:
  harulog insert 독서 30        # 30 minutes of reading, at the end
  harulog insert 산책 20 --at 3 # before the third session`,
	Args: cobra.ExactArgs(2),
	RunE: runInsert,
}

var insertAt int

func init() {
	rootCmd.AddCommand(insertCmd)
	insertCmd.Flags().IntVar(&insertAt, "at", -1, "1-based position to insert before (default: end)")
}

func runInsert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	activity, ok := domain.FindActivity(domain.DefaultActivities(), args[0])
	if !ok {
		return fmt.Errorf("unknown activity %q, see: harulog activities", args[0])
	}

	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return fmt.Errorf("invalid minutes %q, expected a positive number", args[1])
	}

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	// --at counts the positions "harulog timeline" prints
	target := len(svc.Sessions())
	if insertAt >= 1 {
		eligible := domain.EligibleSessions(svc.Sessions())
		if insertAt <= len(eligible) {
			id := eligible[insertAt-1].ID
			for i, s := range svc.Sessions() {
				if s.ID == id {
					target = i
					break
				}
			}
		}
	}
	svc.Insert(ctx, activity, minutes, target)

	fmt.Printf("%s %d분 기록 완료\n", activity.Name, minutes)
	return nil
}
