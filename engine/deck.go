package engine

import "math/rand/v2"

// Deck is an ordered draw source. Draw takes from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds packs × suits × ranks cards in a fixed order: pack, then
// suit (H, S, D, C), then rank (A..7). The deck is not shuffled.
func NewDeck(packs int, rng *rand.Rand) *Deck {
	if packs <= 0 {
		packs = 1
	}
	d := &Deck{
		cards: make([]Card, 0, packs*NumSuits*NumRanks),
		rng:   rng,
	}
	for p := 0; p < packs; p++ {
		for suit := uint8(0); suit < NumSuits; suit++ {
			for rank := uint8(0); rank < NumRanks; rank++ {
				d.cards = append(d.cards, MustCard(suit, rank))
			}
		}
	}
	return d
}

// Shuffle permutes the deck in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return EmptyCard, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Refill appends recycled cards to the deck and shuffles it.
func (d *Deck) Refill(cards []Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Len returns the number of cards left to draw.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
