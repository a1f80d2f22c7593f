package domain

import (
	"testing"
	"time"
)

func TestInsertActivity(t *testing.T) {
	reading := Activity{ID: "reading", Name: "독서"}
	now := testBase.Add(time.Hour)

	t.Run("refuses a non-positive duration", func(t *testing.T) {
		sessions := []Session{work("a", "스쿼트", StatusFinished, 0, 10)}
		out, ok := InsertActivity(sessions, reading, 0, 1, now, idSeq())
		if ok || len(out) != 1 {
			t.Errorf("zero-minute insert changed the timeline")
		}
	})

	t.Run("back-dates the synthetic session", func(t *testing.T) {
		out, ok := InsertActivity(nil, reading, 30, 0, now, idSeq())
		if !ok || len(out) != 1 {
			t.Fatalf("insert failed: %v", out)
		}
		s := out[0]
		if s.Status != StatusFinished || s.Action != "독서" {
			t.Errorf("inserted session = %+v", s)
		}
		if !s.EndTime.Equal(now) {
			t.Errorf("end = %v, want %v", s.EndTime, now)
		}
		if !s.StartTime.Equal(now.Add(-30 * time.Minute)) {
			t.Errorf("start = %v, want 30 minutes before end", s.StartTime)
		}
		if s.SetNumber == nil || *s.SetNumber != 1 {
			t.Errorf("set = %v, want 1", s.SetNumber)
		}
	})

	t.Run("splices at the target index", func(t *testing.T) {
		sessions := []Session{
			work("a", "스쿼트", StatusFinished, 0, 10),
			work("b", "팔굽혀펴기", StatusFinished, 12, 20),
		}
		out, _ := InsertActivity(sessions, reading, 15, 1, now, idSeq())
		if len(out) != 3 {
			t.Fatalf("got %d sessions, want 3", len(out))
		}
		if out[0].ID != "a" || out[1].Action != "독서" || out[2].ID != "b" {
			t.Errorf("splice order wrong: %v %v %v", out[0].ID, out[1].Action, out[2].ID)
		}
	})

	t.Run("takes the nearest explicit set number", func(t *testing.T) {
		sessions := []Session{
			work("a", "스쿼트", StatusFinished, 0, 10),
			func() Session {
				s := work("b", "스쿼트", StatusFinished, 12, 20)
				s.SetNumber = num(2)
				return s
			}(),
		}
		out, _ := InsertActivity(sessions, reading, 15, 2, now, idSeq())
		if out[2].SetNumber == nil || *out[2].SetNumber != 2 {
			t.Errorf("set = %v, want 2", out[2].SetNumber)
		}
	})

	t.Run("a plain work session pins it to set one", func(t *testing.T) {
		sessions := []Session{
			work("a", "스쿼트", StatusFinished, 0, 10),
		}
		out, _ := InsertActivity(sessions, reading, 15, 1, now, idSeq())
		if out[1].SetNumber == nil || *out[1].SetNumber != 1 {
			t.Errorf("set = %v, want 1", out[1].SetNumber)
		}
	})

	t.Run("clamps an out-of-range index to the end", func(t *testing.T) {
		sessions := []Session{work("a", "스쿼트", StatusFinished, 0, 10)}
		out, _ := InsertActivity(sessions, reading, 15, 99, now, idSeq())
		if out[len(out)-1].Action != "독서" {
			t.Errorf("insert did not land at the end: %+v", out)
		}
	})
}
