package domain

// DayStats aggregates a single day's timeline. Durations are wall-clock
// minutes over sessions that have both endpoints.
type DayStats struct {
	TotalSessions     int
	TotalMinutes      int
	AverageMinutes    int
	CompletedSessions int
	RestSessions      int
	ActionSessions    int
	LongestMinutes    int
	ShortestMinutes   int
}

// ComputeDayStats summarizes the timeline for the stats view.
func ComputeDayStats(sessions []Session) DayStats {
	var stats DayStats
	stats.TotalSessions = len(sessions)

	var durations []int
	for _, s := range sessions {
		if s.EndTime != nil && s.StartTime != nil {
			durations = append(durations, s.DurationMinutes())
		}
		if s.Status == StatusCompleted || s.Status == StatusFinished {
			stats.CompletedSessions++
		}
		if s.IsRest {
			stats.RestSessions++
		}
		if !s.IsRest && s.Action != "" {
			stats.ActionSessions++
		}
	}

	for i, d := range durations {
		stats.TotalMinutes += d
		if d > stats.LongestMinutes {
			stats.LongestMinutes = d
		}
		if i == 0 || d < stats.ShortestMinutes {
			stats.ShortestMinutes = d
		}
	}
	if len(durations) > 0 {
		stats.AverageMinutes = stats.TotalMinutes / len(durations)
	}

	return stats
}
