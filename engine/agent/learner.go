// Package agent implements the tabular action-value learner that plays
// Simple Rummy against the engine's random baseline.
package agent

import "math/rand/v2"

// Config holds the TD update parameters.
type Config struct {
	Alpha float64 // learning rate
	Gamma float64 // discount
}

// DefaultConfig returns α = 0.1, γ = 0.99.
func DefaultConfig() Config {
	return Config{Alpha: DefaultAlpha, Gamma: DefaultGamma}
}

// Learner owns a ValueTable and chooses pick/drop actions from it.
type Learner struct {
	Table *ValueTable
	Alpha float64
	Gamma float64

	rng *rand.Rand
}

// NewLearner creates a learner with a zeroed table. Exploration draws from rng.
func NewLearner(cfg Config, rng *rand.Rand) *Learner {
	return &Learner{
		Table: NewValueTable(),
		Alpha: cfg.Alpha,
		Gamma: cfg.Gamma,
		rng:   rng,
	}
}

// SelectAction is epsilon-greedy: with probability epsilon it picks
// uniformly along kind's axis, otherwise it returns Greedy.
func (l *Learner) SelectAction(s State, kind ActionKind, epsilon float64) int {
	if l.rng.Float64() < epsilon {
		return l.rng.IntN(kind.Size())
	}
	return l.Greedy(s, kind)
}

// Greedy returns the highest-valued action for s. Pick actions are compared
// on drop slot 0 and drop actions on pick slot 0; ties go to the lowest index.
func (l *Learner) Greedy(s State, kind ActionKind) int {
	cell := l.Table.Cell(StateToIndex(s))
	best := 0
	if kind == KindPick {
		for a := 1; a < NumPickActions; a++ {
			if cell[a][0] > cell[best][0] {
				best = a
			}
		}
		return best
	}
	for a := 1; a < NumDropActions; a++ {
		if cell[0][a] > cell[0][best] {
			best = a
		}
	}
	return best
}

// Update applies one TD step for action a taken in s with reward r, where
// a1 is the action already chosen for the other kind at s1.
//
// A pick update shifts the whole Q[s, a, :] row using Q[s1, 0, a1]; a drop
// update shifts the Q[s, :, a] column using Q[s1, a1, 0]. This chains the
// two halves of a turn into one multi-step estimate.
func (l *Learner) Update(kind ActionKind, s State, a int, r float64, s1 State, a1 int) {
	cell := l.Table.Cell(StateToIndex(s))
	next := l.Table.Cell(StateToIndex(s1))

	if kind == KindPick {
		delta := l.Alpha * (r + l.Gamma*next[0][a1] - cell[a][0])
		for d := range NumDropActions {
			cell[a][d] += delta
		}
		return
	}
	delta := l.Alpha * (r + l.Gamma*next[a1][0] - cell[0][a])
	for p := range NumPickActions {
		cell[p][a] += delta
	}
}
