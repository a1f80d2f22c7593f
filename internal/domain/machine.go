package domain

import "time"

// TransitionAction is a user action driving the session state machine.
type TransitionAction string

const (
	ActionStart     TransitionAction = "start"
	ActionComplete  TransitionAction = "complete"
	ActionRest      TransitionAction = "rest"
	ActionRestEnd   TransitionAction = "rest_end"
	ActionFinish    TransitionAction = "finish"
	ActionContinue  TransitionAction = "continue"
	ActionNewAction TransitionAction = "new_action"
)

// RestLabel is the action text recorded on every rest session.
const RestLabel = "휴식"

// Prompt tells the caller which follow-up input the transition needs.
type Prompt string

const (
	PromptNone     Prompt = ""
	PromptComplete Prompt = "complete" // "what did you finish?"
	PromptContinue Prompt = "continue" // "what will you keep doing?"
)

// Effect describes the collaborator work a transition asks for: an action
// text prompt targeting a specific session. Dismissing the prompt is fine;
// the session's action simply stays unset.
type Effect struct {
	Prompt    Prompt
	SessionID string
}

// Apply runs one state-machine transition over the timeline and returns the
// rewritten list. The input is never mutated. A transition with no eligible
// current session is a no-op.
func Apply(sessions []Session, action TransitionAction, now time.Time, nextID func() string) ([]Session, Effect) {
	out := make([]Session, len(sessions))
	copy(out, sessions)

	cur := CurrentIndex(out)
	if cur < 0 {
		return out, Effect{}
	}

	switch action {
	case ActionStart:
		t := now
		out[cur].StartTime = &t
		out[cur].Status = StatusStarted

	case ActionComplete:
		t := now
		out[cur].EndTime = &t
		out[cur].Status = StatusCompleted
		if out[cur].Action == "" {
			return out, Effect{Prompt: PromptComplete, SessionID: out[cur].ID}
		}

	case ActionRest:
		t := now
		out[cur].Status = StatusFinished
		out = append(out, Session{
			ID:        nextID(),
			StartTime: &t,
			Status:    StatusResting,
			IsRest:    true,
			Action:    RestLabel,
		})

	case ActionRestEnd:
		if out[cur].Status != StatusResting {
			return out, Effect{}
		}
		t := now
		out[cur].EndTime = &t
		out[cur].Status = StatusRestFinished

	case ActionFinish:
		for i := range out {
			if out[i].Status == StatusFinished {
				continue
			}
			out[i].Status = StatusFinished
			if out[i].EndTime == nil {
				t := now
				out[i].EndTime = &t
			}
		}
		next := nextSetNumber(out)
		out = append(out, NewReadySession(nextID(), &next))

	case ActionContinue:
		if out[cur].Status != StatusRestFinished {
			return out, Effect{}
		}
		out[cur].Status = StatusFinished
		set := interruptedSetNumber(out, out[cur].ID)
		t := now
		started := Session{
			ID:        nextID(),
			StartTime: &t,
			Status:    StatusStarted,
			SetNumber: &set,
		}
		out = append(out, started)
		return out, Effect{Prompt: PromptContinue, SessionID: started.ID}

	case ActionNewAction:
		if out[cur].Status != StatusCompleted {
			return out, Effect{}
		}
		out[cur].Status = StatusFinished
		t := now
		started := Session{
			ID:          nextID(),
			StartTime:   &t,
			Status:      StatusStarted,
			IsNewAction: true,
		}
		out = append(out, started)
		return out, Effect{Prompt: PromptContinue, SessionID: started.ID}
	}

	return out, Effect{}
}

// nextSetNumber is one greater than the highest set number reachable in the
// (already finished) timeline. A day whose first finish happens on set 1
// therefore hands out set 2.
func nextSetNumber(sessions []Session) int {
	max := MaxSetNumber(sessions)
	if max < 1 {
		max = 1
	}
	return max + 1
}

// interruptedSetNumber recovers the set a rest session interrupted: the
// rest's own explicit number when present, otherwise the resolved set of
// the nearest prior non-rest session, defaulting to 1.
func interruptedSetNumber(sessions []Session, restID string) int {
	eligible := EligibleSessions(sessions)
	idx := -1
	for i, s := range eligible {
		if s.ID == restID {
			idx = i
			break
		}
	}
	if idx >= 0 && eligible[idx].SetNumber != nil {
		return *eligible[idx].SetNumber
	}

	sets := EffectiveSetNumbers(sessions)
	for j := idx - 1; j >= 0; j-- {
		if eligible[j].IsRest {
			continue
		}
		if sets[j] > 0 {
			return sets[j]
		}
		break
	}
	return 1
}

// SetAction records the action text of the identified session. Used by the
// prompt follow-up and by explicit edits. No-op when the id is unknown.
func SetAction(sessions []Session, id, action string) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	for i := range out {
		if out[i].ID == id {
			out[i].Action = action
		}
	}
	return out
}

// Remove deletes the identified session from the timeline.
func Remove(sessions []Session, id string) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
