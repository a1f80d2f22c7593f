package domain

import (
	"testing"
	"time"
)

func TestCurrentIndex(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		want     int
	}{
		{
			name:     "empty",
			sessions: nil,
			want:     -1,
		},
		{
			name: "first unfinished wins",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				work("b", "독서", StatusStarted, 12, -1),
				work("c", "명상", StatusReady, 20, -1),
			},
			want: 1,
		},
		{
			name: "all finished falls back to the last",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				work("b", "독서", StatusFinished, 12, 20),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentIndex(tt.sessions); got != tt.want {
				t.Errorf("CurrentIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionEligible(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{name: "ready placeholder", session: NewReadySession("p", nil), want: false},
		{name: "started without action", session: work("a", "", StatusStarted, 0, -1), want: false},
		{name: "started with action", session: work("a", "스쿼트", StatusStarted, 0, -1), want: true},
		{name: "ended without action", session: work("a", "", StatusCompleted, 0, 10), want: true},
		{name: "finished without anything else", session: work("a", "", StatusFinished, 0, -1), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Eligible(); got != tt.want {
				t.Errorf("Eligible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	if !NewReadySession("p", num(2)).IsPlaceholder() {
		t.Errorf("ready session without start is not a placeholder")
	}
	if work("a", "스쿼트", StatusStarted, 0, -1).IsPlaceholder() {
		t.Errorf("started session counted as placeholder")
	}

	named := Session{ID: "n", Action: "스쿼트"}
	if named.IsPlaceholder() {
		t.Errorf("session with action text counted as placeholder")
	}
}

func TestDurationMinutes(t *testing.T) {
	s := work("a", "스쿼트", StatusCompleted, 0, 30)
	if got := s.DurationMinutes(); got != 30 {
		t.Errorf("DurationMinutes = %d, want 30", got)
	}

	open := work("a", "스쿼트", StatusStarted, 0, -1)
	if got := open.DurationMinutes(); got != 0 {
		t.Errorf("open session duration = %d, want 0", got)
	}

	// sub-minute remainders round
	end := testBase.Add(10*time.Minute + 40*time.Second)
	s.EndTime = &end
	if got := s.DurationMinutes(); got != 11 {
		t.Errorf("rounded duration = %d, want 11", got)
	}
}

func TestStatusText(t *testing.T) {
	if got := StatusText(StatusResting); got != "휴식 중" {
		t.Errorf("StatusText(resting) = %q", got)
	}
	if got := StatusText(Status("weird")); got != "weird" {
		t.Errorf("unknown status fell back to %q", got)
	}
}
