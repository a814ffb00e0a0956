package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairSeeker picks from the pile when the top matches a held rank, then
// drops the highest card it holds.
func pairSeeker(g *Game, p *Player) error {
	action := PickFromDeck
	if top, ok := g.PileTop(); ok {
		for _, c := range p.Stash() {
			if c.Rank() == top.Rank() {
				action = PickFromPile
				break
			}
		}
	}
	if _, err := g.PickCard(p, action); err != nil {
		return err
	}
	stash := p.Stash()
	if len(stash) == 0 {
		return nil
	}
	worst := stash[0]
	for _, c := range stash[1:] {
		if c.Value() > worst.Value() {
			worst = c
		}
	}
	_, err := g.DropCard(p, worst)
	return err
}

type episodeTrace struct {
	events []Event
	rounds int
	winner string
}

func playTracedEpisode(t *testing.T, seed uint64) episodeTrace {
	t.Helper()
	rules := DefaultRules()
	rules.MaxCardLength = 3
	rules.MaxTurns = 20
	g := newTestGame(t, rules, seed, NewPlayer("seeker", false), NewPlayer("bot", true))

	var tr episodeTrace
	g.OnEvent = func(ev Event) {
		tr.events = append(tr.events, ev)
		if ev.Type == EventRound {
			tr.rounds++
		}
		assert.Equal(t, rules.DeckSize(), g.TotalCards(), "conservation after %s", ev.Type)
	}
	require.NoError(t, g.PlayEpisode(pairSeeker))
	require.True(t, g.IsTerminal())

	if w := g.Winner(); w != nil {
		tr.winner = w.Name
		assert.Zero(t, w.StashLen())
	} else {
		assert.Zero(t, g.TurnsLeft())
	}
	return tr
}

// TestEpisodeEndToEnd verifies a seeded two-player game ends within the
// turn budget and replays identically.
func TestEpisodeEndToEnd(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		first := playTracedEpisode(t, seed)
		assert.LessOrEqual(t, first.rounds, 20)
		assert.GreaterOrEqual(t, first.rounds, 1)

		again := playTracedEpisode(t, seed)
		assert.Equal(t, first.events, again.events, "seed %d", seed)
		assert.Equal(t, first.winner, again.winner)

		if first.winner != "" {
			last := first.events[len(first.events)-1]
			assert.Equal(t, EventWin, last.Type)
			assert.Equal(t, first.winner, last.Player)
		}
	}
}

// TestBotsOnlyConservation runs many all-bot episodes across table sizes and
// checks card conservation after every event.
func TestBotsOnlyConservation(t *testing.T) {
	for players := 1; players <= 4; players++ {
		for seed := uint64(0); seed < 25; seed++ {
			rules := DefaultRules()
			rules.MaxTurns = 60
			seats := make([]*Player, players)
			for i := range seats {
				seats[i] = NewPlayer(string(rune('a'+i)), true)
			}
			g := newTestGame(t, rules, seed, seats...)
			g.OnEvent = func(ev Event) {
				if g.TotalCards() != rules.DeckSize() {
					t.Fatalf("players=%d seed=%d: %d cards after %s, want %d",
						players, seed, g.TotalCards(), ev.Type, rules.DeckSize())
				}
			}
			require.NoError(t, g.PlayEpisode(nil))
			assert.True(t, g.IsTerminal())
		}
	}
}
