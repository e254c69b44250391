// Package tokenizer provides a trainable byte-level BPE tokenizer.
//
// This package wraps the internal implementation and provides a clean public
// API for training, encoding and decoding.
//
// Ids 0-255 map one-to-one to raw bytes; every learned merge mints the next
// sequential id. Encoding replays merges in learned order and decoding
// concatenates each id's bytes, so decode(encode(s)) == s for any string.
//
// Example usage:
//
//	import "github.com/born-ml/bytepair/tokenizer"
//
//	// Train on a corpus
//	tok, err := tokenizer.Train(corpus, 4096)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode text
//	ids := tok.Encode("Hello, world!")
//
//	// Decode tokens
//	text, err := tok.Decode(ids)
//	if err != nil {
//	    log.Fatal(err)
//	}
package tokenizer

import (
	"io"

	"github.com/born-ml/bytepair/internal/bpe"
)

// Pair is an ordered pair of adjacent token ids.
type Pair = bpe.Pair

// Strategy selects how training counts pairs and applies merges.
type Strategy = bpe.Strategy

// Training strategies. All produce identical models for the same input.
const (
	StrategyScan     = bpe.StrategyScan
	StrategyBulk     = bpe.StrategyBulk
	StrategyParallel = bpe.StrategyParallel
)

// TrainOption configures a training run.
type TrainOption = bpe.TrainOption

// ProgressEvent describes one completed merge iteration.
type ProgressEvent = bpe.ProgressEvent

// ProgressFunc observes training between merges; returning false stops early.
type ProgressFunc = bpe.ProgressFunc

// WithStrategy selects the training strategy. The default is StrategyScan.
func WithStrategy(s Strategy) TrainOption {
	return bpe.WithStrategy(s)
}

// WithWorkers sets the worker goroutine count for StrategyParallel.
func WithWorkers(n int) TrainOption {
	return bpe.WithWorkers(n)
}

// WithProgress installs a hook invoked once per completed merge.
func WithProgress(fn ProgressFunc) TrainOption {
	return bpe.WithProgress(fn)
}

// VerboseProgress returns a progress hook that writes a one-line report per
// merge to w, mirroring classic BPE training output.
func VerboseProgress(w io.Writer) ProgressFunc {
	return bpe.VerboseProgress(w)
}

// BPE is a byte-level BPE tokenizer trained on a corpus. It is immutable
// after training and safe for concurrent use.
type BPE struct {
	model *bpe.Model
}

// Train learns a BPE tokenizer from text, performing up to vocabSize-256
// merges. vocabSize must be at least 256; training on text with fewer pairs
// than requested merges stops early with the partial vocabulary.
func Train(text string, vocabSize int, opts ...TrainOption) (*BPE, error) {
	model, err := bpe.Train(text, vocabSize, opts...)
	if err != nil {
		return nil, err
	}
	return &BPE{model: model}, nil
}

// New rebuilds a tokenizer from learned merge pairs in training order, as
// returned by Merges. The vocabulary is reconstructed from the pairs, so a
// persisted merge list alone restores the tokenizer.
func New(merges []Pair) (*BPE, error) {
	model, err := bpe.NewModel(merges)
	if err != nil {
		return nil, err
	}
	return &BPE{model: model}, nil
}

// Encode converts text to token ids.
func (b *BPE) Encode(text string) []int {
	return b.model.Encode(text)
}

// Decode converts token ids back to text. Ids outside the vocabulary are an
// error; invalid UTF-8 byte runs decode to the replacement character.
func (b *BPE) Decode(ids []int) (string, error) {
	return b.model.Decode(ids)
}

// VocabSize returns the total vocabulary size.
func (b *BPE) VocabSize() int {
	return b.model.VocabSize()
}

// NumMerges returns the number of learned merge rules.
func (b *BPE) NumMerges() int {
	return b.model.NumMerges()
}

// Merges returns the learned pairs in training order; pair i was minted as
// token id 256+i. Together with TokenBytes this exposes the trained tables
// for callers that persist or inspect models.
func (b *BPE) Merges() []Pair {
	return b.model.Merges()
}

// TokenBytes returns the byte sequence a token id expands to. The returned
// slice must be treated as read-only.
func (b *BPE) TokenBytes(id int) ([]byte, bool) {
	return b.model.TokenBytes(id)
}
