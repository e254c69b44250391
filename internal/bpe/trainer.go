package bpe

import (
	"github.com/pkg/errors"

	"github.com/born-ml/bytepair/internal/parallel"
)

// TrainOption configures a training run.
type TrainOption func(*trainConfig)

type trainConfig struct {
	strategy Strategy
	workers  parallel.Config
	progress ProgressFunc
}

// WithStrategy selects the training strategy. The default is StrategyScan.
func WithStrategy(s Strategy) TrainOption {
	return func(cfg *trainConfig) {
		cfg.strategy = s
	}
}

// WithWorkers sets the number of worker goroutines used by StrategyParallel.
// It has no effect on the other strategies.
func WithWorkers(n int) TrainOption {
	return func(cfg *trainConfig) {
		cfg.workers.NumWorkers = n
		cfg.workers.Enabled = n > 1
	}
}

// WithProgress installs a hook invoked once after every completed merge. The
// hook observes the merge and may stop training early by returning false; it
// never affects which merges are learned.
func WithProgress(fn ProgressFunc) TrainOption {
	return func(cfg *trainConfig) {
		cfg.progress = fn
	}
}

// Train learns a byte-level BPE model from text. It performs up to
// vocabSize-256 merges, each collapsing the currently most frequent adjacent
// pair into a new token id, minted sequentially from 256. Training stops
// early when no adjacent pairs remain (the text is shorter than two tokens or
// fully merged); the partial model built so far is returned.
//
// vocabSize below 256 is an error: the byte tokens alone need that much room.
func Train(text string, vocabSize int, opts ...TrainOption) (*Model, error) {
	if vocabSize < ByteVocabSize {
		return nil, errors.Errorf("vocab size %d is below the %d reserved byte tokens", vocabSize, ByteVocabSize)
	}

	cfg := trainConfig{
		strategy: StrategyScan,
		workers:  parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	merger := cfg.strategy.merger(cfg.workers)
	numMerges := vocabSize - ByteVocabSize

	ids := byteIDs(text)
	merges := NewMergeTable()
	vocab := NewVocabulary()

	// Iterations are a sequential chain: each one consumes the sequence the
	// previous one produced. Only the counting and masking inside a single
	// iteration may fan out.
	for i := 0; i < numMerges; i++ {
		stats := merger.count(ids)
		if len(stats) == 0 {
			break // saturated: nothing adjacent left to merge
		}

		pair, count := MaxPair(stats)
		newID := merges.Add(pair)
		ids = merger.apply(ids, pair, newID)
		vocab.Grow(pair, newID)

		if cfg.progress != nil {
			event := ProgressEvent{
				Merge:       i,
				TotalMerges: numMerges,
				Pair:        pair,
				NewID:       newID,
				Token:       vocab[newID],
				Count:       count,
			}
			if !cfg.progress(event) {
				break
			}
		}
	}

	return &Model{merges: merges, vocab: vocab}, nil
}
