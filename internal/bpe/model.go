package bpe

import "github.com/pkg/errors"

// Model is a trained byte-level BPE model: the ordered merge table plus the
// id-to-bytes vocabulary. A model is immutable once Train returns, so Encode
// and Decode may run concurrently without locking.
type Model struct {
	merges *MergeTable
	vocab  Vocabulary
}

// NewModel rebuilds a model from learned pairs in training order, as returned
// by Merges. Pair i mints id 256+i and its byte sequence is rebuilt from its
// constituents, so a persisted merge list alone restores the full model.
// A duplicate pair, or a pair referencing an id at or beyond the one it
// mints, is an error.
func NewModel(pairs []Pair) (*Model, error) {
	merges := NewMergeTable()
	vocab := NewVocabulary()
	for i, p := range pairs {
		limit := ByteVocabSize + i
		if p.Left < 0 || p.Left >= limit || p.Right < 0 || p.Right >= limit {
			return nil, errors.Errorf("merge %d references id outside [0, %d): (%d, %d)", i, limit, p.Left, p.Right)
		}
		if _, ok := merges.ID(p); ok {
			return nil, errors.Errorf("merge %d repeats pair (%d, %d)", i, p.Left, p.Right)
		}
		newID := merges.Add(p)
		vocab.Grow(p, newID)
	}
	return &Model{merges: merges, vocab: vocab}, nil
}

// VocabSize returns the total vocabulary size: the 256 byte tokens plus one
// token per learned merge.
func (m *Model) VocabSize() int {
	return len(m.vocab)
}

// NumMerges returns the number of learned merge rules.
func (m *Model) NumMerges() int {
	return m.merges.Len()
}

// Merges returns the learned pairs in training order; pair i was minted as
// token id 256+i.
func (m *Model) Merges() []Pair {
	return m.merges.Pairs()
}

// MergeID returns the token id assigned to p, if p is a learned merge.
func (m *Model) MergeID(p Pair) (int, bool) {
	return m.merges.ID(p)
}

// TokenBytes returns the raw byte sequence a token id expands to. The
// returned slice aliases model state and must be treated as read-only.
func (m *Model) TokenBytes(id int) ([]byte, bool) {
	b, ok := m.vocab[id]
	return b, ok
}
