package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCardPacking verifies suit and rank survive the packed representation.
func TestNewCardPacking(t *testing.T) {
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			c, err := NewCard(suit, rank)
			require.NoError(t, err)
			assert.Equal(t, suit, c.Suit())
			assert.Equal(t, rank, c.Rank())
			assert.Equal(t, int(rank)+1, c.Value())
		}
	}
}

// TestNewCardInvalid verifies construction rejects values outside the alphabets.
func TestNewCardInvalid(t *testing.T) {
	_, err := NewCard(SuitHearts, NumRanks)
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = NewCard(NumSuits, RankAce)
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

// TestParseCard covers the string round trip and the error paths.
func TestParseCard(t *testing.T) {
	c, err := ParseCard("AH")
	require.NoError(t, err)
	assert.Equal(t, MustCard(SuitHearts, RankAce), c)
	assert.Equal(t, "AH", c.String())

	c, err = ParseCard("7C")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Value())

	_, err = ParseCard("8H")
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = ParseCard("AX")
	assert.ErrorIs(t, err, ErrInvalidSuit)
	_, err = ParseCard("A")
	assert.Error(t, err)
}

// TestCardEquality verifies equality is structural on (rank, suit).
func TestCardEquality(t *testing.T) {
	a := MustCard(SuitSpades, RankFive)
	b := MustCard(SuitSpades, RankFive)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, MustCard(SuitHearts, RankFive))
	assert.NotEqual(t, a, MustCard(SuitSpades, RankSix))
}

// TestEmptyCard verifies the sentinel has no value and renders as a placeholder.
func TestEmptyCard(t *testing.T) {
	assert.Equal(t, 0, EmptyCard.Value())
	assert.Equal(t, "--", EmptyCard.String())
}

func TestParseRewardPolicy(t *testing.T) {
	p, err := ParseRewardPolicy("Basic")
	require.NoError(t, err)
	assert.Equal(t, RewardBasic, p)

	p, err = ParseRewardPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RewardShaped, p)

	_, err = ParseRewardPolicy("sparse")
	assert.Error(t, err)
}
