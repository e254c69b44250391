package bpe

// MergeTable records learned merges in training order. The position of a pair
// doubles as its priority: merge i was minted as id ByteVocabSize+i, and a
// lower id means an earlier, higher-priority merge. Priority is kept as an
// explicit index rather than an incidental property of map iteration.
type MergeTable struct {
	order []Pair
	ids   map[Pair]int
}

// NewMergeTable returns an empty merge table.
func NewMergeTable() *MergeTable {
	return &MergeTable{ids: make(map[Pair]int)}
}

// Add records p as the next learned merge and returns its minted id:
// ByteVocabSize plus the number of merges recorded before it.
func (t *MergeTable) Add(p Pair) int {
	id := ByteVocabSize + len(t.order)
	t.order = append(t.order, p)
	t.ids[p] = id
	return id
}

// ID returns the token id assigned to p, if p is a learned merge.
func (t *MergeTable) ID(p Pair) (int, bool) {
	id, ok := t.ids[p]
	return id, ok
}

// Len returns the number of learned merges.
func (t *MergeTable) Len() int {
	return len(t.order)
}

// Pairs returns the learned pairs in training order; pair i was minted as id
// ByteVocabSize+i. The returned slice is a copy.
func (t *MergeTable) Pairs() []Pair {
	out := make([]Pair, len(t.order))
	copy(out, t.order)
	return out
}
