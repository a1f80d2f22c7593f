package domain

import "testing"

func TestComputeDayStats(t *testing.T) {
	sessions := []Session{
		work("a", "스쿼트", StatusFinished, 0, 30),
		rest("r", StatusRestFinished, 30, 40),
		work("b", "독서", StatusCompleted, 40, 100),
		work("c", "명상", StatusStarted, 100, -1), // still running, no duration
	}

	stats := ComputeDayStats(sessions)

	if stats.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", stats.TotalSessions)
	}
	if stats.TotalMinutes != 100 {
		t.Errorf("TotalMinutes = %d, want 100", stats.TotalMinutes)
	}
	if stats.AverageMinutes != 33 {
		t.Errorf("AverageMinutes = %d, want 33", stats.AverageMinutes)
	}
	if stats.CompletedSessions != 2 {
		t.Errorf("CompletedSessions = %d, want 2", stats.CompletedSessions)
	}
	if stats.RestSessions != 1 {
		t.Errorf("RestSessions = %d, want 1", stats.RestSessions)
	}
	if stats.ActionSessions != 3 {
		t.Errorf("ActionSessions = %d, want 3", stats.ActionSessions)
	}
	if stats.LongestMinutes != 60 {
		t.Errorf("LongestMinutes = %d, want 60", stats.LongestMinutes)
	}
	if stats.ShortestMinutes != 10 {
		t.Errorf("ShortestMinutes = %d, want 10", stats.ShortestMinutes)
	}
}

func TestComputeDayStats_Empty(t *testing.T) {
	stats := ComputeDayStats(nil)
	if stats != (DayStats{}) {
		t.Errorf("empty timeline produced %+v", stats)
	}
}
