package agent

import engine "github.com/jason-s-yu/rummy/engine"

// ActionKind selects which sub-decision of a turn is being made.
type ActionKind uint8

const (
	KindPick ActionKind = iota // take from pile (0) or deck (1)
	KindDrop                   // discard stash slot 0..3
)

func (k ActionKind) String() string {
	if k == KindPick {
		return "pick"
	}
	return "drop"
}

// Size returns the number of actions along this kind's axis.
func (k ActionKind) Size() int {
	if k == KindPick {
		return NumPickActions
	}
	return NumDropActions
}

const (
	NumRanks       = engine.NumRanks
	NumPickActions = engine.NumPickActions
	NumDropActions = 4
	StateSlots     = engine.StateSlots
)

// Learning parameters used by the reference trainer.
const (
	DefaultAlpha   = 0.1
	DefaultGamma   = 0.99
	DefaultEpsilon = 0.05
)

// State is the observed 4-tuple of rank values: the first three stash cards
// plus either the fourth stash card (drop decisions) or the pile top (pick
// decisions). A zero marks a missing card.
type State [StateSlots]int

// StateIndex is a State reduced to zero-based table coordinates.
type StateIndex [StateSlots]uint8

// StateToIndex subtracts 1 from each rank value and clamps the result to
// the trained alphabet, so missing cards (0) share index 0 with aces.
func StateToIndex(s State) StateIndex {
	var idx StateIndex
	for i, v := range s {
		switch {
		case v < 1:
			idx[i] = 0
		case v > NumRanks:
			idx[i] = NumRanks - 1
		default:
			idx[i] = uint8(v - 1)
		}
	}
	return idx
}

// IndexToState is the inverse of StateToIndex for in-range states.
func IndexToState(idx StateIndex) State {
	var s State
	for i, v := range idx {
		s[i] = int(v) + 1
	}
	return s
}

// EncodePickState builds the state for a pick decision from the first three
// stash cards and the pile top. Pass engine.EmptyCard when the pile is empty.
func EncodePickState(stash []engine.Card, pileTop engine.Card) State {
	var s State
	for i := 0; i < StateSlots-1 && i < len(stash); i++ {
		s[i] = stash[i].Value()
	}
	s[StateSlots-1] = pileTop.Value()
	return s
}

// EncodeDropState builds the state for a drop decision from the first four
// stash cards as they are now. Trainer does not call it: its drop state is
// PickResult.State, which records the stash before the meld attempt.
func EncodeDropState(stash []engine.Card) State {
	var s State
	for i := 0; i < StateSlots && i < len(stash); i++ {
		s[i] = stash[i].Value()
	}
	return s
}
