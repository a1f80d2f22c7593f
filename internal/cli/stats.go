package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/util"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the day's summary statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	stats := svc.Stats()

	fmt.Printf("%s 통계\n\n", util.FormatDateKorean(svc.Date()))
	fmt.Printf("  전체 세션:   %d\n", stats.TotalSessions)
	fmt.Printf("  액션 세션:   %d\n", stats.ActionSessions)
	fmt.Printf("  완료 세션:   %d\n", stats.CompletedSessions)
	fmt.Printf("  휴식 세션:   %d\n", stats.RestSessions)
	fmt.Printf("  총 시간:     %s\n", util.FormatMinutes(stats.TotalMinutes))
	fmt.Printf("  평균 시간:   %s\n", util.FormatMinutes(stats.AverageMinutes))
	fmt.Printf("  최장 세션:   %s\n", util.FormatMinutes(stats.LongestMinutes))
	fmt.Printf("  최단 세션:   %s\n", util.FormatMinutes(stats.ShortestMinutes))
	return nil
}
