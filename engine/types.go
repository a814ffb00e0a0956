package engine

import "fmt"

// Suit constants, packed into the upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitSpades   uint8 = 1
	SuitDiamonds uint8 = 2
	SuitClubs    uint8 = 3
)

// Rank constants, packed into the lower 4 bits of Card.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
)

const (
	NumSuits = 4
	NumRanks = 7
)

// suitSymbols and rankSymbols are indexed by the suit/rank constants.
const (
	suitSymbols = "HSDC"
	rankSymbols = "A234567"
)

// rankValues is the fixed rank → point value table.
var rankValues = [NumRanks]int{1, 2, 3, 4, 5, 6, 7}

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank, validating both against
// the fixed alphabets.
func NewCard(suit, rank uint8) (Card, error) {
	if suit >= NumSuits {
		return EmptyCard, fmt.Errorf("suit %d: %w", suit, ErrInvalidSuit)
	}
	if rank >= NumRanks {
		return EmptyCard, fmt.Errorf("rank %d: %w", rank, ErrInvalidRank)
	}
	return Card((suit << 4) | (rank & 0x0F)), nil
}

// MustCard is NewCard for constant inputs; it panics on an invalid suit or rank.
func MustCard(suit, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses the two-character form produced by String, e.g. "AH" or "7C".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return EmptyCard, fmt.Errorf("card %q: %w", s, ErrInvalidRank)
	}
	rank := indexOf(rankSymbols, s[0])
	if rank < 0 {
		return EmptyCard, fmt.Errorf("card %q: %w", s, ErrInvalidRank)
	}
	suit := indexOf(suitSymbols, s[1])
	if suit < 0 {
		return EmptyCard, fmt.Errorf("card %q: %w", s, ErrInvalidSuit)
	}
	return NewCard(uint8(suit), uint8(rank))
}

func indexOf(alphabet string, b byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == b {
			return i
		}
	}
	return -1
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Value returns the point value of the card. EmptyCard and malformed cards are worth 0.
func (c Card) Value() int {
	if c == EmptyCard || c.Rank() >= NumRanks {
		return 0
	}
	return rankValues[c.Rank()]
}

// RankSymbol returns the single-character rank, e.g. 'A'.
func (c Card) RankSymbol() byte {
	if c == EmptyCard || c.Rank() >= NumRanks {
		return '?'
	}
	return rankSymbols[c.Rank()]
}

// SuitSymbol returns the single-character suit, e.g. 'H'.
func (c Card) SuitSymbol() byte {
	if c == EmptyCard || c.Suit() >= NumSuits {
		return '?'
	}
	return suitSymbols[c.Suit()]
}

func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	return string([]byte{c.RankSymbol(), c.SuitSymbol()})
}

// PickAction selects the source of a pick.
type PickAction uint8

const (
	PickFromPile PickAction = 0
	PickFromDeck PickAction = 1

	NumPickActions = 2
)

func (a PickAction) String() string {
	if a == PickFromPile {
		return "pile"
	}
	return "deck"
}

// VisibleState is everything a player may observe about the game: their own
// stash and the top of the discard pile. Opponent stashes are never exposed.
type VisibleState struct {
	StashScore int
	CardRanks  []int    // per-card rank value
	CardSuits  []string // per-card suit symbol
	HasPile    bool
	PileRank   string
	PileSuit   string
	PileValue  int
}
