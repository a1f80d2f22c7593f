package domain

import "time"

// InsertActivity converts a dropped activity plus a user-entered duration
// into a synthetic, already-finished session back-dated by that duration,
// spliced into the timeline at targetIndex (clamped to the list length).
//
// The inserted session gets an explicit set number from a backward scan at
// the insertion point: the nearest explicit number wins; hitting a genuine
// work session (neither rest nor new-action) pins it to set 1; so does an
// empty prefix. Display order and time order may diverge afterward; no
// other session is touched.
//
// A non-positive duration is refused: the timeline is returned unchanged.
func InsertActivity(sessions []Session, activity Activity, minutes int, targetIndex int, now time.Time, nextID func() string) ([]Session, bool) {
	if minutes <= 0 {
		return sessions, false
	}

	set := 1
	if targetIndex > 0 && targetIndex <= len(sessions) {
		for i := targetIndex - 1; i >= 0; i-- {
			prev := sessions[i]
			if prev.SetNumber != nil {
				set = *prev.SetNumber
				break
			}
			if !prev.IsRest && !prev.IsNewAction {
				set = 1
				break
			}
		}
	}

	start := now.Add(-time.Duration(minutes) * time.Minute)
	end := now
	inserted := Session{
		ID:        nextID(),
		StartTime: &start,
		EndTime:   &end,
		Action:    activity.Name,
		Status:    StatusFinished,
		SetNumber: &set,
	}

	at := targetIndex
	if at < 0 {
		at = 0
	}
	if at > len(sessions) {
		at = len(sessions)
	}

	out := make([]Session, 0, len(sessions)+1)
	out = append(out, sessions[:at]...)
	out = append(out, inserted)
	out = append(out, sessions[at:]...)
	return out, true
}
