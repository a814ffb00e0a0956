package engine

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// quietLogger discards output so capacity warnings do not clutter test logs.
func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestGame seats the given players after a seeded Reset.
func newTestGame(t *testing.T, rules Rules, seed uint64, players ...*Player) *Game {
	t.Helper()
	g := NewGame(rules, NewRand(seed))
	g.Logger = quietLogger()
	require.NoError(t, g.Reset(players, rules.MaxTurns))
	return g
}

// mustCards parses two-character card codes such as "AH".
func mustCards(t *testing.T, codes ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		require.NoError(t, err, code)
		out = append(out, c)
	}
	return out
}

// setStash overwrites a player's stash. It breaks card conservation, so
// only use it in tests that do not check TotalCards.
func setStash(p *Player, cards ...Card) {
	p.stash = append([]Card(nil), cards...)
}

func values(cards []Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Value()
	}
	return out
}
