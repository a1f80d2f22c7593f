package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/domain"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List the activities available to insert",
	RunE:  runActivities,
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(cmd *cobra.Command, args []string) error {
	for _, a := range domain.DefaultActivities() {
		fmt.Printf("  %-12s (%s)\n", a.Name, a.ID)
	}
	return nil
}
