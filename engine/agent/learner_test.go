package agent

import (
	"testing"

	engine "github.com/jason-s-yu/rummy/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLearner(seed uint64) *Learner {
	return NewLearner(DefaultConfig(), engine.NewRand(seed))
}

// TestGreedySelectsArgmax verifies epsilon=0 always returns the argmax.
func TestGreedySelectsArgmax(t *testing.T) {
	l := newTestLearner(1)
	s := State{2, 2, 5, 1}
	idx := StateToIndex(s)
	l.Table.Set(idx, 1, 0, 3)
	l.Table.Set(idx, 0, 2, 4)
	l.Table.Set(idx, 0, 3, 1)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, l.SelectAction(s, KindPick, 0))
		assert.Equal(t, 2, l.SelectAction(s, KindDrop, 0))
	}
}

// TestGreedyTiesPreferFirst verifies ties resolve to the lowest index.
func TestGreedyTiesPreferFirst(t *testing.T) {
	l := newTestLearner(1)
	s := State{1, 1, 1, 1}
	assert.Equal(t, 0, l.Greedy(s, KindPick))
	assert.Equal(t, 0, l.Greedy(s, KindDrop))

	idx := StateToIndex(s)
	l.Table.Set(idx, 0, 1, 5)
	l.Table.Set(idx, 0, 3, 5)
	assert.Equal(t, 1, l.Greedy(s, KindDrop))
}

// TestGreedyIgnoresOtherSlots verifies picks compare drop slot 0 only and
// drops compare pick slot 0 only.
func TestGreedyIgnoresOtherSlots(t *testing.T) {
	l := newTestLearner(1)
	s := State{4, 4, 4, 4}
	idx := StateToIndex(s)
	l.Table.Set(idx, 1, 2, 100)
	assert.Equal(t, 0, l.Greedy(s, KindPick))
	assert.Equal(t, 0, l.Greedy(s, KindDrop))
}

// chiSquare returns the Pearson statistic for counts against a uniform expectation.
func chiSquare(counts []int, trials int) float64 {
	expected := float64(trials) / float64(len(counts))
	var stat float64
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat
}

// TestExplorationIsUniform verifies epsilon=1 is uniform along each axis,
// even when the table strongly prefers one action.
func TestExplorationIsUniform(t *testing.T) {
	const trials = 40000
	// Critical values at p = 0.001 for 1 and 3 degrees of freedom.
	critical := map[ActionKind]float64{KindPick: 10.828, KindDrop: 16.266}

	l := newTestLearner(12345)
	s := State{1, 2, 3, 4}
	l.Table.Set(StateToIndex(s), 1, 0, 50)
	l.Table.Set(StateToIndex(s), 0, 3, 50)

	for _, kind := range []ActionKind{KindPick, KindDrop} {
		counts := make([]int, kind.Size())
		for i := 0; i < trials; i++ {
			a := l.SelectAction(s, kind, 1)
			require.GreaterOrEqual(t, a, 0)
			require.Less(t, a, kind.Size())
			counts[a]++
		}
		assert.Less(t, chiSquare(counts, trials), critical[kind], "%s counts %v", kind, counts)
	}
}

// TestSelectActionReproducible verifies a seeded learner explores identically.
func TestSelectActionReproducible(t *testing.T) {
	a, b := newTestLearner(77), newTestLearner(77)
	s := State{5, 5, 2, 7}
	for i := 0; i < 200; i++ {
		kind := ActionKind(i % 2)
		assert.Equal(t, a.SelectAction(s, kind, 0.3), b.SelectAction(s, kind, 0.3))
	}
}

// TestUpdatePick verifies the pick update shifts the whole Q[s, a, :] row.
func TestUpdatePick(t *testing.T) {
	l := newTestLearner(1)
	s, s1 := State{1, 2, 3, 4}, State{1, 2, 3, 5}
	l.Table.Set(StateToIndex(s1), 0, 2, 10)
	l.Table.Set(StateToIndex(s), 1, 0, 2)
	l.Table.Set(StateToIndex(s), 1, 3, 7)

	l.Update(KindPick, s, 1, 80, s1, 2)

	// 0.1 × (80 + 0.99×10 − 2) = 8.79
	delta := 0.1 * (80 + 0.99*10 - 2)
	cell := l.Table.Cell(StateToIndex(s))
	assert.InDelta(t, 2+delta, cell[1][0], 1e-9)
	assert.InDelta(t, delta, cell[1][1], 1e-9)
	assert.InDelta(t, delta, cell[1][2], 1e-9)
	assert.InDelta(t, 7+delta, cell[1][3], 1e-9)
	assert.Zero(t, cell[0][0])
}

// TestUpdateDrop verifies the drop update shifts the whole Q[s, :, a] column.
func TestUpdateDrop(t *testing.T) {
	l := newTestLearner(1)
	s, s1 := State{6, 6, 2, 2}, State{6, 6, 2, 1}
	l.Table.Set(StateToIndex(s1), 1, 0, -20)
	l.Table.Set(StateToIndex(s), 0, 2, 4)

	l.Update(KindDrop, s, 2, 9, s1, 1)

	delta := 0.1 * (9 + 0.99*-20 - 4)
	cell := l.Table.Cell(StateToIndex(s))
	assert.InDelta(t, 4+delta, cell[0][2], 1e-9)
	assert.InDelta(t, delta, cell[1][2], 1e-9)
	assert.Zero(t, cell[0][1])
	assert.Zero(t, cell[1][3])
}

// TestUpdateSameState verifies the target is read before the cell is mutated.
func TestUpdateSameState(t *testing.T) {
	l := newTestLearner(1)
	s := State{3, 3, 3, 3}
	l.Table.Set(StateToIndex(s), 0, 0, 10)

	l.Update(KindPick, s, 0, 0, s, 0)
	// 0.1 × (0 + 0.99×10 − 10) = −0.01
	assert.InDelta(t, 10-0.01, l.Table.Get(StateToIndex(s), 0, 0), 1e-9)
}
