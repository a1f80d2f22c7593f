package domain

import "testing"

func TestResolveSetLabels(t *testing.T) {
	tests := []struct {
		name       string
		sessions   []Session
		wantLabels []int
	}{
		{
			name:       "empty timeline",
			sessions:   nil,
			wantLabels: nil,
		},
		{
			name: "placeholder is not rendered",
			sessions: []Session{
				NewReadySession("p", nil),
			},
			wantLabels: nil,
		},
		{
			name: "first work session opens set one",
			sessions: []Session{
				work("a", "스쿼트", StatusStarted, 0, -1),
			},
			wantLabels: []int{1},
		},
		{
			name: "finished predecessor opens a new set",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				work("b", "스쿼트", StatusStarted, 12, -1),
			},
			wantLabels: []int{1, 2},
		},
		{
			name: "in-progress predecessor continues the set",
			sessions: []Session{
				work("a", "스쿼트", StatusCompleted, 0, 10),
				work("b", "팔굽혀펴기", StatusStarted, 12, -1),
			},
			wantLabels: []int{1},
		},
		{
			name: "rest is transparent to the boundary scan",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				rest("r", StatusRestFinished, 10, 15),
				work("b", "스쿼트", StatusStarted, 15, -1),
			},
			wantLabels: []int{1, 2},
		},
		{
			name: "rest after an unfinished session keeps the set open",
			sessions: []Session{
				work("a", "스쿼트", StatusCompleted, 0, 10),
				rest("r", StatusRestFinished, 10, 15),
				work("b", "스쿼트", StatusStarted, 15, -1),
			},
			wantLabels: []int{1},
		},
		{
			name: "explicit set number is authoritative",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				func() Session {
					s := work("b", "스쿼트", StatusStarted, 12, -1)
					s.SetNumber = num(3)
					return s
				}(),
			},
			wantLabels: []int{1, 3},
		},
		{
			name: "repeated explicit number emits one label",
			sessions: []Session{
				func() Session {
					s := work("a", "스쿼트", StatusFinished, 0, 10)
					s.SetNumber = num(2)
					return s
				}(),
				func() Session {
					s := work("b", "팔굽혀펴기", StatusFinished, 12, 20)
					s.SetNumber = num(2)
					return s
				}(),
			},
			wantLabels: []int{2},
		},
		{
			name: "inference continues from the explicit baseline",
			sessions: []Session{
				func() Session {
					s := work("a", "스쿼트", StatusFinished, 0, 10)
					s.SetNumber = num(3)
					return s
				}(),
				work("b", "스쿼트", StatusStarted, 12, -1),
			},
			wantLabels: []int{3, 4},
		},
		{
			name: "new action never opens a set",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				func() Session {
					s := work("b", "독서", StatusStarted, 12, -1)
					s.IsNewAction = true
					return s
				}(),
			},
			wantLabels: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ResolveSetLabels(tt.sessions)
			got := labelsOf(items)
			if !equalInts(got, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", got, tt.wantLabels)
			}

			wantSessions := len(EligibleSessions(tt.sessions))
			gotSessions := 0
			for _, item := range items {
				if item.Kind == ItemSession {
					gotSessions++
				}
			}
			if gotSessions != wantSessions {
				t.Errorf("rendered %d sessions, want %d", gotSessions, wantSessions)
			}
		})
	}
}

func TestResolveSetLabels_NoConsecutiveDuplicates(t *testing.T) {
	sessions := []Session{
		func() Session {
			s := work("a", "스쿼트", StatusFinished, 0, 10)
			s.SetNumber = num(1)
			return s
		}(),
		rest("r", StatusRestFinished, 10, 15),
		func() Session {
			s := work("b", "스쿼트", StatusFinished, 15, 25)
			s.SetNumber = num(1)
			return s
		}(),
	}

	labels := labelsOf(ResolveSetLabels(sessions))
	for i := 1; i < len(labels); i++ {
		if labels[i] == labels[i-1] {
			t.Fatalf("duplicate consecutive label %d in %v", labels[i], labels)
		}
	}
	if !equalInts(labels, []int{1}) {
		t.Errorf("labels = %v, want [1]", labels)
	}
}

func TestEffectiveSetNumbers(t *testing.T) {
	sessions := []Session{
		work("a", "스쿼트", StatusFinished, 0, 10),
		rest("r1", StatusRestFinished, 10, 15),
		work("b", "스쿼트", StatusFinished, 15, 25),
		rest("r2", StatusResting, 25, -1),
	}
	// r2 has no end time but is eligible through its action text.
	got := EffectiveSetNumbers(sessions)
	want := []int{1, 1, 2, 2}
	if !equalInts(got, want) {
		t.Errorf("EffectiveSetNumbers = %v, want %v", got, want)
	}
}

func TestEffectiveSetNumbers_LeadingRest(t *testing.T) {
	sessions := []Session{
		rest("r", StatusRestFinished, 0, 5),
		work("a", "스쿼트", StatusStarted, 5, -1),
	}
	got := EffectiveSetNumbers(sessions)
	want := []int{0, 1}
	if !equalInts(got, want) {
		t.Errorf("EffectiveSetNumbers = %v, want %v", got, want)
	}
}

func TestMaxSetNumber(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		want     int
	}{
		{
			name:     "empty",
			sessions: nil,
			want:     0,
		},
		{
			name: "inferred sets only",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				work("b", "스쿼트", StatusFinished, 12, 20),
			},
			want: 2,
		},
		{
			name: "explicit number beyond inference wins",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				func() Session {
					s := work("b", "스쿼트", StatusFinished, 12, 20)
					s.SetNumber = num(5)
					return s
				}(),
			},
			want: 5,
		},
		{
			name: "explicit number on an ineligible session still counts",
			sessions: []Session{
				work("a", "스쿼트", StatusFinished, 0, 10),
				NewReadySession("p", num(4)),
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxSetNumber(tt.sessions); got != tt.want {
				t.Errorf("MaxSetNumber = %d, want %d", got, tt.want)
			}
		})
	}
}
