package engine

// EventType identifies an Event emitted by a Game.
type EventType string

const (
	EventRound     EventType = "round"     // a new round began
	EventPick      EventType = "pick"      // a player took a card
	EventDrop      EventType = "drop"      // a player discarded a card
	EventMeld      EventType = "meld"      // a rank group left a stash
	EventReshuffle EventType = "reshuffle" // the pile was recycled into the deck
	EventWin       EventType = "win"       // a player emptied their stash
)

// Event describes one state change. Reward is only set for PickCard and
// DropCard; bot moves report zero.
type Event struct {
	Type      EventType
	Player    string
	Card      Card
	Cards     []Card
	Source    PickAction
	Reward    int
	TurnsLeft int
}

// Meld is a group of three or more same-rank cards removed from play.
type Meld struct {
	Rank   uint8
	Cards  []Card
	Player string
}

func (g *Game) emit(ev Event) {
	if g.OnEvent != nil {
		g.OnEvent(ev)
	}
}
