package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValueTableShape verifies dimensions and zero initialisation.
func TestValueTableShape(t *testing.T) {
	tbl := NewValueTable()
	count := 0
	tbl.Each(func(e Entry) {
		count++
		assert.Zero(t, e.Value)
	})
	assert.Equal(t, NumRanks*NumRanks*NumRanks*NumRanks*NumPickActions*NumDropActions, count)
	assert.Zero(t, tbl.NonZero())
	assert.Empty(t, tbl.Positive())
}

// TestValueTableSetGet verifies coordinates address distinct cells.
func TestValueTableSetGet(t *testing.T) {
	tbl := NewValueTable()
	idx := StateToIndex(State{3, 1, 7, 2})
	tbl.Set(idx, 1, 3, 2.5)
	tbl.Set(idx, 0, 0, -1)

	assert.Equal(t, 2.5, tbl.Get(idx, 1, 3))
	assert.Equal(t, -1.0, tbl.Get(idx, 0, 0))
	assert.Zero(t, tbl.Get(idx, 1, 2))
	assert.Zero(t, tbl.Get(StateToIndex(State{3, 1, 7, 3}), 1, 3))
	assert.Equal(t, 2, tbl.NonZero())

	pos := tbl.Positive()
	assert.Len(t, pos, 1)
	assert.Equal(t, Entry{Index: idx, Pick: 1, Drop: 3, Value: 2.5}, pos[0])
}
