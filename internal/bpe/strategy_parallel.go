package bpe

import "github.com/born-ml/bytepair/internal/parallel"

// parallelMerger runs the bulk counting and mask building over worker
// goroutines. Each chunk owns a disjoint range of pair positions, so workers
// count into private maps and write disjoint mask slots without locking; the
// per-chunk counts are summed after the workers join. Overlap clearing and
// compaction stay sequential: both are O(n) passes whose result depends on
// left-to-right order.
type parallelMerger struct {
	cfg parallel.Config
}

func (m parallelMerger) count(ids []int) map[Pair]int {
	n := len(ids) - 1
	if n < 1 {
		return map[Pair]int{}
	}

	chunks := parallel.NumChunks(n, m.cfg)
	partial := make([]map[Pair]int, chunks)
	parallel.Ranges(n, func(chunk, start, end int) {
		stats := make(map[Pair]int)
		for i := start; i < end; i++ {
			stats[Pair{ids[i], ids[i+1]}]++
		}
		partial[chunk] = stats
	}, m.cfg)

	total := partial[0]
	for _, stats := range partial[1:] {
		for p, c := range stats {
			total[p] += c
		}
	}
	return total
}

func (m parallelMerger) apply(ids []int, p Pair, newID int) []int {
	mask := make([]bool, len(ids))
	parallel.Ranges(len(ids)-1, func(_, start, end int) {
		for i := start; i < end; i++ {
			mask[i] = ids[i] == p.Left && ids[i+1] == p.Right
		}
	}, m.cfg)
	clearOverlaps(mask, p)
	return compact(ids, mask, newID)
}
