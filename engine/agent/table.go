package agent

// ValueTable holds one action-value estimate per (state, pick, drop).
// The zero value is an all-zero table.
type ValueTable [NumRanks][NumRanks][NumRanks][NumRanks][NumPickActions][NumDropActions]float64

// Cell is the block of action values for a single state.
type Cell = [NumPickActions][NumDropActions]float64

// NewValueTable allocates a zeroed table.
func NewValueTable() *ValueTable { return new(ValueTable) }

// Cell returns the action values for idx.
func (t *ValueTable) Cell(idx StateIndex) *Cell {
	return &t[idx[0]][idx[1]][idx[2]][idx[3]]
}

func (t *ValueTable) Get(idx StateIndex, pick, drop int) float64 {
	return t.Cell(idx)[pick][drop]
}

func (t *ValueTable) Set(idx StateIndex, pick, drop int, v float64) {
	t.Cell(idx)[pick][drop] = v
}

// Entry is one coordinate of the table with its value.
type Entry struct {
	Index StateIndex
	Pick  int
	Drop  int
	Value float64
}

// Each calls fn for every coordinate in index order.
func (t *ValueTable) Each(fn func(Entry)) {
	var idx StateIndex
	for i := range NumRanks {
		idx[0] = uint8(i)
		for j := range NumRanks {
			idx[1] = uint8(j)
			for k := range NumRanks {
				idx[2] = uint8(k)
				for l := range NumRanks {
					idx[3] = uint8(l)
					cell := t.Cell(idx)
					for p := range NumPickActions {
						for d := range NumDropActions {
							fn(Entry{Index: idx, Pick: p, Drop: d, Value: cell[p][d]})
						}
					}
				}
			}
		}
	}
}

// Positive lists every coordinate whose value is above zero.
func (t *ValueTable) Positive() []Entry {
	var out []Entry
	t.Each(func(e Entry) {
		if e.Value > 0 {
			out = append(out, e)
		}
	})
	return out
}

// NonZero counts coordinates that have been updated away from zero.
func (t *ValueTable) NonZero() int {
	n := 0
	t.Each(func(e Entry) {
		if e.Value != 0 {
			n++
		}
	})
	return n
}
