package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/domain"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the current session",
	RunE:  runTransition(domain.ActionStart),
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the current session",
	Long: `Complete the current session.

If the session has no action text yet, you are asked what you finished.`,
	RunE: runTransition(domain.ActionComplete),
}

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Finish the current session and start a rest",
	RunE:  runTransition(domain.ActionRest),
}

var restEndCmd = &cobra.Command{
	Use:   "rest-end",
	Short: "End the current rest",
	RunE:  runTransition(domain.ActionRestEnd),
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Close the current set and open the next one",
	Long: `Close the current set and open the next one.

Every open session is marked finished and a fresh session is appended,
numbered one past the highest set of the day.`,
	RunE: runTransition(domain.ActionFinish),
}

var continueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Continue the interrupted set after a rest",
	RunE:  runTransition(domain.ActionContinue),
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new action inside the current set",
	RunE:  runTransition(domain.ActionNewAction),
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(restEndCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(newCmd)
}

func runTransition(action domain.TransitionAction) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		svc, cleanup, err := buildService(ctx, true)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := svc.Do(ctx, action); err != nil {
			return err
		}

		if current, ok := svc.Current(); ok {
			fmt.Printf("현재 세션: %s\n", formatSession(current))
		}
		return nil
	}
}
