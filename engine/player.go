package engine

// Player holds one seat's stash. Players are created by Game.Reset, which
// gives each its own stash and a reference back to the owning game.
type Player struct {
	Name   string
	Bot    bool
	Points int // stash score carried over from the previous episode

	stash []Card
	game  *Game // non-owning
}

// NewPlayer returns a seat template to pass to Game.Reset. It is not
// attached to any game and cannot play until Reset copies it into one.
func NewPlayer(name string, bot bool) *Player {
	return &Player{Name: name, Bot: bot}
}

// Game returns the game this player is seated in, or nil for a template.
func (p *Player) Game() *Game { return p.game }

// Stash returns a copy of the player's cards.
func (p *Player) Stash() []Card {
	out := make([]Card, len(p.stash))
	copy(out, p.stash)
	return out
}

// StashLen returns the number of cards held.
func (p *Player) StashLen() int { return len(p.stash) }

// DealCard appends a card to the stash. Exceeding MaxCardLength+1 is logged
// and tolerated.
func (p *Player) DealCard(c Card) {
	p.stash = append(p.stash, c)
	if p.game == nil {
		return
	}
	limit := p.game.Rules.MaxCardLength + 1
	if len(p.stash) > limit {
		p.game.log().
			WithField("player", p.Name).
			WithError(ErrCapacityExceeded).
			Warnf("stash holds %d cards, limit %d", len(p.stash), limit)
	}
}

// DropCard removes the first card equal to c and places it on the
// game's discard pile.
func (p *Player) DropCard(c Card) error {
	if p.game == nil {
		return ErrUnknownPlayer
	}
	for i, held := range p.stash {
		if held == c {
			p.stash = append(p.stash[:i], p.stash[i+1:]...)
			p.game.addPile(c)
			return nil
		}
	}
	return ErrCardNotFound
}

// Meld moves every rank held three or more times out of the stash and into
// the game's melds, one group per rank. It reports whether any group melded.
func (p *Player) Meld() bool {
	if p.game == nil {
		return false
	}
	var counts [NumRanks]int
	var order []uint8 // ranks in order of first appearance
	for _, c := range p.stash {
		r := c.Rank()
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	var groups []Meld
	for _, r := range order {
		if counts[r] < 3 {
			continue
		}
		group := make([]Card, 0, counts[r])
		for _, c := range p.stash {
			if c.Rank() == r {
				group = append(group, c)
			}
		}
		groups = append(groups, Meld{Rank: r, Cards: group, Player: p.Name})
	}
	if len(groups) == 0 {
		return false
	}

	kept := make([]Card, 0, len(p.stash))
	for _, c := range p.stash {
		if counts[c.Rank()] < 3 {
			kept = append(kept, c)
		}
	}
	p.stash = kept
	for _, m := range groups {
		p.game.melds = append(p.game.melds, m)
		p.game.emit(Event{Type: EventMeld, Player: p.Name, Cards: m.Cards})
	}
	return true
}

// StashScore is the sum of the values of the held cards.
func (p *Player) StashScore() int {
	score := 0
	for _, c := range p.stash {
		score += c.Value()
	}
	return score
}

// distinctValues counts the distinct rank values in the stash.
func (p *Player) distinctValues() int {
	var seen [NumRanks]bool
	n := 0
	for _, c := range p.stash {
		if r := c.Rank(); !seen[r] {
			seen[r] = true
			n++
		}
	}
	return n
}

// VisibleState returns what this player is allowed to observe.
func (p *Player) VisibleState() VisibleState {
	vs := VisibleState{
		StashScore: p.StashScore(),
		CardRanks:  make([]int, len(p.stash)),
		CardSuits:  make([]string, len(p.stash)),
	}
	for i, c := range p.stash {
		vs.CardRanks[i] = c.Value()
		vs.CardSuits[i] = string(c.SuitSymbol())
	}
	if p.game == nil {
		return vs
	}
	if top, ok := p.game.PileTop(); ok {
		vs.HasPile = true
		vs.PileRank = string(top.RankSymbol())
		vs.PileSuit = string(top.SuitSymbol())
		vs.PileValue = top.Value()
	}
	return vs
}
