package util

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0분"},
		{45, "45분"},
		{60, "1시간"},
		{90, "1시간 30분"},
		{120, "2시간"},
		{135, "2시간 15분"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDateKorean(t *testing.T) {
	if got := FormatDateKorean("2026-03-01"); got != "3월 1일" {
		t.Errorf("FormatDateKorean = %q, want %q", got, "3월 1일")
	}
	if got := FormatDateKorean("not-a-date"); got != "not-a-date" {
		t.Errorf("unparseable date rewritten to %q", got)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-03-01") {
		t.Errorf("valid date rejected")
	}
	if ValidDate("2026-3-1") || ValidDate("tomorrow") {
		t.Errorf("invalid date accepted")
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ns := NullTime(&when)
	back := NullTimeToPtr(ns)
	if back == nil || !back.Equal(when) {
		t.Errorf("round trip = %v, want %v", back, when)
	}

	if NullTime(nil).Valid {
		t.Errorf("nil time produced a valid null string")
	}
	if NullTimeToPtr(NullString("")) != nil {
		t.Errorf("empty string parsed to a time")
	}
}
