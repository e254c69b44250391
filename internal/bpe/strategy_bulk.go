package bpe

// bulkMerger works on the whole sequence at once: counting walks a flat pair
// view, and applying a merge first builds a boolean match mask and then
// compacts the sequence in place. Matched positions where the previous
// position already matched are cleared while building the mask, which keeps
// the greedy non-overlapping semantics of Merge: (X,X) over [X,X,X] still
// yields [newID, X].
type bulkMerger struct{}

func (bulkMerger) count(ids []int) map[Pair]int {
	if len(ids) < 2 {
		return map[Pair]int{}
	}
	stats := make(map[Pair]int)
	left, right := ids[:len(ids)-1], ids[1:]
	for i := range left {
		stats[Pair{left[i], right[i]}]++
	}
	return stats
}

func (bulkMerger) apply(ids []int, p Pair, newID int) []int {
	mask := matchMask(ids, p)
	clearOverlaps(mask, p)
	return compact(ids, mask, newID)
}

// matchMask marks every position i where (ids[i], ids[i+1]) equals p,
// including overlapping matches. The mask has one slot per position of ids;
// the last slot is always false since no pair starts there.
func matchMask(ids []int, p Pair) []bool {
	mask := make([]bool, len(ids))
	for i := 0; i+1 < len(ids); i++ {
		mask[i] = ids[i] == p.Left && ids[i+1] == p.Right
	}
	return mask
}

// clearOverlaps drops matches whose left element is consumed by the match one
// position earlier. Overlapping matches only arise for self-pairs (X,X): a
// match at i and one at i+1 both need ids[i+1] on both sides of the pair.
func clearOverlaps(mask []bool, p Pair) {
	if p.Left != p.Right {
		return
	}
	for i := 1; i < len(mask); i++ {
		if mask[i] && mask[i-1] {
			mask[i] = false
		}
	}
}

// compact rewrites ids in place: masked positions emit newID and swallow
// their right neighbor, everything else is kept.
func compact(ids []int, mask []bool, newID int) []int {
	out := ids[:0]
	for i := 0; i < len(ids); i++ {
		if mask[i] {
			out = append(out, newID)
			i++
		} else {
			out = append(out, ids[i])
		}
	}
	return out
}
