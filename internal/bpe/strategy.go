package bpe

import "github.com/born-ml/bytepair/internal/parallel"

// Strategy selects how each training iteration counts pairs and applies the
// chosen merge. Every strategy implements the same contract: one greedy
// non-overlapping merge per iteration, with the same tie-break. All of them
// produce identical models for the same input; they differ only in
// throughput.
type Strategy int

const (
	// StrategyScan recounts pairs with a map and applies merges with a
	// left-to-right scan, one pass per iteration.
	StrategyScan Strategy = iota

	// StrategyBulk counts over a flat pair view of the sequence and applies
	// merges by building a match mask and compacting in place.
	StrategyBulk

	// StrategyParallel performs the bulk counting and mask building sharded
	// across worker goroutines. Merge iterations themselves stay strictly
	// sequential; only the work inside one iteration fans out.
	StrategyParallel
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyBulk:
		return "bulk"
	case StrategyParallel:
		return "parallel"
	default:
		return "scan"
	}
}

// pairMerger is the per-iteration capability a strategy provides: counting
// adjacent pairs and collapsing the selected one. The trainer's control loop
// is written once against this interface.
type pairMerger interface {
	count(ids []int) map[Pair]int
	apply(ids []int, p Pair, newID int) []int
}

func (s Strategy) merger(cfg parallel.Config) pairMerger {
	switch s {
	case StrategyBulk:
		return bulkMerger{}
	case StrategyParallel:
		return parallelMerger{cfg: cfg}
	default:
		return scanMerger{}
	}
}

// scanMerger is the straightforward strategy: CountPairs and Merge as-is.
type scanMerger struct{}

func (scanMerger) count(ids []int) map[Pair]int {
	return CountPairs(ids)
}

func (scanMerger) apply(ids []int, p Pair, newID int) []int {
	return Merge(ids, p, newID)
}
