package bpe

// ByteVocabSize is the number of reserved single-byte tokens. Ids below this
// value map one-to-one to raw byte values; ids minted by training start here.
const ByteVocabSize = 256

// Pair is an ordered pair of adjacent token ids.
type Pair struct {
	Left  int
	Right int
}

// less reports whether p orders before q, comparing Left then Right.
func (p Pair) less(q Pair) bool {
	if p.Left != q.Left {
		return p.Left < q.Left
	}
	return p.Right < q.Right
}

// CountPairs counts every adjacent id pair (ids[i], ids[i+1]) in ids.
// Pairs that do not occur are absent from the result, never zero-valued.
func CountPairs(ids []int) map[Pair]int {
	stats := make(map[Pair]int)
	for i := 0; i+1 < len(ids); i++ {
		stats[Pair{ids[i], ids[i+1]}]++
	}
	return stats
}

// MaxPair returns the most frequent pair in stats and its count. Ties are
// broken by the lexicographically smallest pair (Left compared first, then
// Right), so the result never depends on map iteration order.
//
// Panics if stats is empty; the trainer checks for saturation before
// selecting, so an empty argument is a programming error.
func MaxPair(stats map[Pair]int) (Pair, int) {
	if len(stats) == 0 {
		panic("bpe: MaxPair on empty statistics")
	}
	var best Pair
	bestCount := -1
	for p, c := range stats {
		if c > bestCount || (c == bestCount && p.less(best)) {
			best = p
			bestCount = c
		}
	}
	return best, bestCount
}

// Merge returns ids with every occurrence of p collapsed into newID, using a
// single left-to-right non-overlapping scan: both elements of a match are
// consumed, so pair (X,X) applied to [X,X,X] yields [newID, X].
func Merge(ids []int, p Pair, newID int) []int {
	out := make([]int, 0, len(ids))
	i := 0
	for i < len(ids) {
		if i+1 < len(ids) && ids[i] == p.Left && ids[i+1] == p.Right {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}

// byteIDs converts text to its UTF-8 byte sequence as token ids.
func byteIDs(text string) []int {
	ids := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		ids[i] = int(text[i])
	}
	return ids
}
