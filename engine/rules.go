package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// RewardPolicy selects how PickCard and DropCard score an action.
type RewardPolicy uint8

const (
	// RewardShaped rewards melds, keeping pairs, and lowering the stash score.
	RewardShaped RewardPolicy = iota
	// RewardBasic only rewards melds; every other action costs a step penalty.
	RewardBasic
)

func (p RewardPolicy) String() string {
	switch p {
	case RewardShaped:
		return "shaped"
	case RewardBasic:
		return "basic"
	}
	return fmt.Sprintf("RewardPolicy(%d)", uint8(p))
}

// ParseRewardPolicy accepts "shaped" or "basic" (case-insensitive).
func ParseRewardPolicy(s string) (RewardPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shaped":
		return RewardShaped, nil
	case "basic":
		return RewardBasic, nil
	}
	return RewardShaped, fmt.Errorf("unknown reward policy %q", s)
}

// Rules holds configurable game settings.
type Rules struct {
	MaxCardLength int // cards dealt to each player
	MaxTurns      int // rounds before the episode ends
	Packs         int // decks shuffled together
	RewardPolicy  RewardPolicy
}

// DefaultRules returns the standard Simple Rummy settings.
func DefaultRules() Rules {
	return Rules{
		MaxCardLength: 5,
		MaxTurns:      20,
		Packs:         1,
		RewardPolicy:  RewardShaped,
	}
}

// packs returns the effective number of packs, treating 0 as 1.
func (r *Rules) packs() int {
	if r.Packs <= 0 {
		return 1
	}
	return r.Packs
}

// DeckSize is the number of cards in play under these rules.
func (r *Rules) DeckSize() int { return r.packs() * NumSuits * NumRanks }

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
