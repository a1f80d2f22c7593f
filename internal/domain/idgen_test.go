package domain

import (
	"strings"
	"testing"
	"time"
)

func TestIDGenerator_SameMillisecond(t *testing.T) {
	frozen := testBase
	gen := NewIDGeneratorAt(func() time.Time { return frozen }, 1)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("duplicate id %q within one millisecond", id)
		}
		seen[id] = true
	}
}

func TestIDGenerator_CounterResets(t *testing.T) {
	now := testBase
	gen := NewIDGeneratorAt(func() time.Time { return now }, 1)

	gen.Next()
	second := gen.Next()
	if !strings.Contains(second, "-1-") {
		t.Errorf("second id in the same millisecond = %q, want counter 1", second)
	}

	now = now.Add(time.Millisecond)
	third := gen.Next()
	if !strings.Contains(third, "-0-") {
		t.Errorf("first id of a new millisecond = %q, want counter 0", third)
	}
}

func TestIDGenerator_Format(t *testing.T) {
	gen := NewIDGeneratorAt(func() time.Time { return testBase }, 1)
	id := gen.Next()
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		t.Fatalf("id %q is not millis-counter-suffix", id)
	}
	if parts[0] != "1772355600000" {
		t.Errorf("millis part = %q", parts[0])
	}
}
