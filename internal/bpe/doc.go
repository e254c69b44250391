// Package bpe implements a trainable byte-level Byte Pair Encoding tokenizer.
//
// Training starts from the 256 raw byte tokens and repeatedly merges the most
// frequent adjacent token pair into a new token, one id per merge, until the
// requested vocabulary size is reached or no pairs remain. The learned merge
// table is then replayed to encode new text, and the vocabulary maps ids back
// to bytes for decoding.
//
// Three training strategies are available behind a single contract:
//   - StrategyScan: plain map counting and a left-to-right merge scan
//   - StrategyBulk: flat-array counting and mask-based compaction
//   - StrategyParallel: the bulk work sharded across worker goroutines
//
// All strategies share one tie-break rule (lexicographically smallest pair
// among the most frequent) and produce identical models for the same input.
//
// Example usage:
//
//	model, err := bpe.Train(corpus, 4096)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids := model.Encode("Hello, world!")
//	text, err := model.Decode(ids)
//	if err != nil {
//	    log.Fatal(err)
//	}
package bpe
