// Package engine implements the Simple Rummy rules.
//
// A Game owns the deck, the discard pile, the melded groups, and every
// Player seated in it. All randomness is drawn from the *rand.Rand passed to
// NewGame, so an episode replays identically for a given seed.
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StateSlots is the number of card values reported in PickResult.State.
const StateSlots = 4

// TurnFunc plays one turn (a pick and usually a drop) for a non-bot player.
type TurnFunc func(g *Game, p *Player) error

// PickResult is returned by PickCard.
type PickResult struct {
	Reward int
	// State holds the first StateSlots stash values after the pick and
	// before the meld attempt. Missing slots are 0.
	State  [StateSlots]int
	Melded bool
	Card   Card
	Source PickAction // where the card actually came from
}

// DropResult is returned by DropCard.
type DropResult struct {
	Reward int
}

// Game holds the complete state of one Simple Rummy table.
type Game struct {
	ID     uuid.UUID
	Rules  Rules
	Logger logrus.FieldLogger
	// OnEvent, when set, receives every Event synchronously.
	OnEvent func(Event)

	rng       *rand.Rand
	deck      *Deck
	pile      []Card // top = last
	melds     []Meld
	players   []*Player
	turnsLeft int
}

// NewGame creates an empty table. Call Reset to seat players and deal.
// A nil rng is replaced by one seeded from the clock.
func NewGame(rules Rules, rng *rand.Rand) *Game {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	return &Game{
		ID:     uuid.New(),
		Rules:  rules,
		Logger: logrus.StandardLogger(),
		rng:    rng,
		deck:   NewDeck(rules.packs(), rng),
	}
}

func (g *Game) log() logrus.FieldLogger {
	return g.Logger.WithField("game_id", g.ID)
}

// ---------------------------------------------------------------------------
// Reset and Deal
// ---------------------------------------------------------------------------

// Reset rebuilds the deck, clears the pile and melds, and deals
// Rules.MaxCardLength cards to a fresh copy of each template player in
// order. Name, Bot, and Points carry over; stashes do not.
func (g *Game) Reset(players []*Player, maxTurns int) error {
	if len(players) == 0 {
		return ErrNoPlayers
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p.Name] {
			return fmt.Errorf("%q: %w", p.Name, ErrDuplicatePlayer)
		}
		seen[p.Name] = true
	}
	need := len(players)*g.Rules.MaxCardLength + 1
	if need > g.Rules.DeckSize() {
		return fmt.Errorf("need %d cards, deck has %d: %w", need, g.Rules.DeckSize(), ErrDeckTooSmall)
	}

	g.deck = NewDeck(g.Rules.packs(), g.rng)
	g.deck.Shuffle()
	g.pile = nil
	g.melds = nil
	g.turnsLeft = maxTurns

	g.players = make([]*Player, 0, len(players))
	for _, tmpl := range players {
		p := &Player{
			Name:   tmpl.Name,
			Bot:    tmpl.Bot,
			Points: tmpl.Points,
			stash:  make([]Card, 0, g.Rules.MaxCardLength+1),
			game:   g,
		}
		for i := 0; i < g.Rules.MaxCardLength; i++ {
			c, err := g.deck.Draw()
			if err != nil {
				return fmt.Errorf("deal to %s: %w", p.Name, err)
			}
			p.DealCard(c)
		}
		g.players = append(g.players, p)
	}

	c, err := g.deck.Draw()
	if err != nil {
		return fmt.Errorf("seed pile: %w", err)
	}
	g.pile = append(g.pile, c)
	return nil
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Players returns the seated players in turn order.
func (g *Game) Players() []*Player { return g.players }

// Player looks up a seated player by name.
func (g *Game) Player(name string) (*Player, bool) {
	for _, p := range g.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// PileTop returns the visible discard, if any.
func (g *Game) PileTop() (Card, bool) {
	if len(g.pile) == 0 {
		return EmptyCard, false
	}
	return g.pile[len(g.pile)-1], true
}

func (g *Game) PileLen() int   { return len(g.pile) }
func (g *Game) DeckLen() int   { return g.deck.Len() }
func (g *Game) TurnsLeft() int { return g.turnsLeft }

// Melds returns a copy of the melded groups in the order they were formed.
func (g *Game) Melds() []Meld {
	out := make([]Meld, len(g.melds))
	for i, m := range g.melds {
		m.Cards = append([]Card(nil), m.Cards...)
		out[i] = m
	}
	return out
}

// TotalCards counts every card in the deck, pile, stashes, and melds.
// It equals Rules.DeckSize() at all times after Reset.
func (g *Game) TotalCards() int {
	n := g.deck.Len() + len(g.pile)
	for _, p := range g.players {
		n += len(p.stash)
	}
	for _, m := range g.melds {
		n += len(m.Cards)
	}
	return n
}

// IsTerminal returns true when a stash is empty or the turn budget is spent.
func (g *Game) IsTerminal() bool {
	for _, p := range g.players {
		if len(p.stash) == 0 {
			return true
		}
	}
	return g.turnsLeft <= 0
}

// Winner returns the first player in turn order whose stash is empty.
func (g *Game) Winner() *Player {
	for _, p := range g.players {
		if len(p.stash) == 0 {
			return p
		}
	}
	return nil
}

// UpdateTurn spends one round of the turn budget.
func (g *Game) UpdateTurn() {
	g.turnsLeft--
	g.emit(Event{Type: EventRound, TurnsLeft: g.turnsLeft})
}

// ShufflePlayers randomises the seating order.
func (g *Game) ShufflePlayers() {
	g.rng.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})
}

// ---------------------------------------------------------------------------
// Deck and pile plumbing
// ---------------------------------------------------------------------------

// recyclePile shuffles the whole discard pile back into the deck.
func (g *Game) recyclePile() {
	g.deck.Refill(g.pile)
	g.pile = nil
}

// addPile places a discard on the pile, first recycling the pile into the
// deck if the deck has run out.
func (g *Game) addPile(c Card) {
	recycled := g.deck.Len() == 0
	if recycled {
		g.recyclePile()
	}
	g.pile = append(g.pile, c)
	if recycled {
		g.emit(Event{Type: EventReshuffle})
	}
}

// drawFromDeck draws blind, recycling the pile when the deck is empty.
func (g *Game) drawFromDeck() (Card, error) {
	if g.deck.Len() == 0 {
		g.recyclePile()
		g.emit(Event{Type: EventReshuffle})
	}
	c, err := g.deck.Draw()
	if err != nil {
		return EmptyCard, fmt.Errorf("draw from deck: %w", err)
	}
	return c, nil
}

// take moves a card into p's stash from the requested source. An empty pile
// falls back to the deck.
func (g *Game) take(p *Player, action PickAction) (Card, PickAction, error) {
	if action == PickFromPile && len(g.pile) > 0 {
		c := g.pile[len(g.pile)-1]
		g.pile = g.pile[:len(g.pile)-1]
		p.stash = append(p.stash, c)
		return c, PickFromPile, nil
	}
	c, err := g.drawFromDeck()
	if err != nil {
		return EmptyCard, PickFromDeck, err
	}
	p.stash = append(p.stash, c)
	return c, PickFromDeck, nil
}

func (g *Game) owns(p *Player) error {
	if p == nil || p.game != g {
		return ErrUnknownPlayer
	}
	return nil
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// PickCard takes the pile top (PickFromPile) or draws blind (any other
// action), then attempts a meld and scores the move under Rules.RewardPolicy.
func (g *Game) PickCard(p *Player, action PickAction) (PickResult, error) {
	if err := g.owns(p); err != nil {
		return PickResult{}, err
	}
	before := snapshot(p)
	c, src, err := g.take(p, action)
	if err != nil {
		return PickResult{}, err
	}
	after := snapshot(p)

	var res PickResult
	for i := 0; i < StateSlots && i < len(p.stash); i++ {
		res.State[i] = p.stash[i].Value()
	}
	res.Card = c
	res.Source = src
	res.Melded = p.Meld()
	res.Reward = g.Rules.RewardPolicy.pickReward(res.Melded, before, after)

	g.emit(Event{Type: EventPick, Player: p.Name, Card: c, Source: src, Reward: res.Reward})
	return res, nil
}

// DropCard discards c from p's stash and scores the move.
func (g *Game) DropCard(p *Player, c Card) (DropResult, error) {
	if err := g.owns(p); err != nil {
		return DropResult{}, err
	}
	before := snapshot(p)
	if err := p.DropCard(c); err != nil {
		return DropResult{}, fmt.Errorf("%s drops %s: %w", p.Name, c, err)
	}
	after := snapshot(p)

	reward := g.Rules.RewardPolicy.dropReward(before, after)
	g.emit(Event{Type: EventDrop, Player: p.Name, Card: c, Reward: reward})
	return DropResult{Reward: reward}, nil
}

// ComputerPlay is the random baseline: pick from a uniformly chosen source,
// try to meld, then drop a uniformly chosen card if any remain.
func (g *Game) ComputerPlay(p *Player) error {
	if err := g.owns(p); err != nil {
		return err
	}
	action := PickFromDeck
	if g.rng.IntN(2) == 1 {
		action = PickFromPile
	}
	c, src, err := g.take(p, action)
	if err != nil {
		return err
	}
	g.emit(Event{Type: EventPick, Player: p.Name, Card: c, Source: src})

	p.Meld()

	if len(p.stash) == 0 {
		return nil
	}
	drop := p.stash[g.rng.IntN(len(p.stash))]
	if err := p.DropCard(drop); err != nil {
		return err
	}
	g.emit(Event{Type: EventDrop, Player: p.Name, Card: drop})
	return nil
}

// PlayEpisode runs rounds until the game is terminal. Each round spends one
// turn of the budget; bots play ComputerPlay and everyone else plays turn.
// A nil turn makes every player a bot.
func (g *Game) PlayEpisode(turn TurnFunc) error {
	for !g.IsTerminal() {
		g.UpdateTurn()
		for _, p := range g.players {
			if g.IsTerminal() {
				continue
			}
			var err error
			if p.Bot || turn == nil {
				err = g.ComputerPlay(p)
			} else {
				err = turn(g, p)
			}
			if err != nil {
				return fmt.Errorf("turn for %s: %w", p.Name, err)
			}
		}
	}
	if w := g.Winner(); w != nil {
		g.log().WithField("player", w.Name).Debug("stash emptied")
		g.emit(Event{Type: EventWin, Player: w.Name, TurnsLeft: g.turnsLeft})
	}
	return nil
}
