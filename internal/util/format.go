package util

import (
	"fmt"
	"time"
)

// FormatClock formats a timestamp as HH:MM in local time.
func FormatClock(t time.Time) string {
	return t.Local().Format("15:04")
}

// FormatMinutes formats a duration in minutes as Korean text.
// Examples: 45 -> "45분", 90 -> "1시간 30분", 120 -> "2시간"
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%d시간 %d분", hours, mins)
		}
		return fmt.Sprintf("%d시간", hours)
	}
	return fmt.Sprintf("%d분", mins)
}

// FormatDateKorean formats a YYYY-MM-DD date as "M월 D일".
// Returns the original string if parsing fails.
func FormatDateKorean(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
}

// Today returns today's date as YYYY-MM-DD in local time.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ValidDate reports whether the string is a YYYY-MM-DD date.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
