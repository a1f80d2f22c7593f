package domain

import (
	"fmt"
	"time"
)

var testBase = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func minuteAt(min int) *time.Time {
	t := testBase.Add(time.Duration(min) * time.Minute)
	return &t
}

func num(n int) *int {
	return &n
}

// work builds an eligible non-rest session. endMin < 0 leaves the end open.
func work(id, action string, status Status, startMin, endMin int) Session {
	s := Session{
		ID:        id,
		StartTime: minuteAt(startMin),
		Action:    action,
		Status:    status,
	}
	if endMin >= 0 {
		s.EndTime = minuteAt(endMin)
	}
	return s
}

func rest(id string, status Status, startMin, endMin int) Session {
	s := work(id, RestLabel, status, startMin, endMin)
	s.IsRest = true
	return s
}

// idSeq returns a deterministic id generator for transitions.
func idSeq() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// labelsOf extracts the emitted set-label numbers in display order.
func labelsOf(items []DisplayItem) []int {
	var labels []int
	for _, item := range items {
		if item.Kind == ItemSetLabel {
			labels = append(labels, item.SetNumber)
		}
	}
	return labels
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
