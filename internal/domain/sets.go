package domain

// ItemKind distinguishes the two entry types of a resolved timeline.
type ItemKind string

const (
	ItemSession  ItemKind = "session"
	ItemSetLabel ItemKind = "setLabel"
)

// DisplayItem is one entry of the resolved display sequence: either a
// session or a derived set label announcing the start of a set.
type DisplayItem struct {
	Kind      ItemKind
	Session   Session // valid when Kind == ItemSession
	SetNumber int     // valid when Kind == ItemSetLabel
}

// ResolveSetLabels derives the display sequence for a timeline: sessions
// interleaved with set labels. Only eligible sessions are considered.
//
// An explicit set number on a non-rest session is authoritative: a label is
// emitted whenever it differs from the last emitted one, and it becomes the
// new baseline. Without explicit numbering, the first non-rest session opens
// set 1, and a later non-rest session opens a new set exactly when the
// nearest prior non-rest session is finished. Rest sessions are rendered in
// place and are transparent to all of this.
func ResolveSetLabels(sessions []Session) []DisplayItem {
	items, _ := resolveSets(EligibleSessions(sessions))
	return items
}

// EffectiveSetNumbers returns the resolved set number of every eligible
// session, in eligible order. Rest sessions report the set they fall
// inside of (0 before any set has opened).
func EffectiveSetNumbers(sessions []Session) []int {
	_, sets := resolveSets(EligibleSessions(sessions))
	return sets
}

func resolveSets(eligible []Session) ([]DisplayItem, []int) {
	items := make([]DisplayItem, 0, len(eligible))
	sets := make([]int, len(eligible))
	last := 0 // last emitted set label, 0 until the first one

	for i, s := range eligible {
		if s.IsRest {
			// transparent: no label, no renumbering
			sets[i] = last
			items = append(items, DisplayItem{Kind: ItemSession, Session: s})
			continue
		}

		switch {
		case s.SetNumber != nil:
			if *s.SetNumber != last {
				items = append(items, DisplayItem{Kind: ItemSetLabel, SetNumber: *s.SetNumber})
				last = *s.SetNumber
			}
		case last == 0:
			items = append(items, DisplayItem{Kind: ItemSetLabel, SetNumber: 1})
			last = 1
		case !s.IsNewAction:
			if startsNewSet(eligible, i) {
				last++
				items = append(items, DisplayItem{Kind: ItemSetLabel, SetNumber: last})
			}
		}

		sets[i] = last
		items = append(items, DisplayItem{Kind: ItemSession, Session: s})
	}

	return items, sets
}

// startsNewSet scans backward from i over the eligible list, skipping rest
// sessions. The session at i opens a new set exactly when the nearest prior
// non-rest session is finished; an in-progress prior session means i
// continues the same set.
func startsNewSet(eligible []Session, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if eligible[j].IsRest {
			continue
		}
		return eligible[j].Status == StatusFinished
	}
	return false
}

// MaxSetNumber returns the highest set number reachable in the timeline,
// considering both explicit numbers and resolver-inferred boundaries.
// Returns 0 for a timeline without any eligible non-rest session.
func MaxSetNumber(sessions []Session) int {
	max := 0
	for _, s := range sessions {
		if s.SetNumber != nil && *s.SetNumber > max {
			max = *s.SetNumber
		}
	}
	for _, n := range EffectiveSetNumbers(sessions) {
		if n > max {
			max = n
		}
	}
	return max
}
