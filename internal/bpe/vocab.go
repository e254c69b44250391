package bpe

// Vocabulary maps token ids to the byte sequences they expand to. Entries are
// append-only: the 256 byte tokens are seeded up front and every merge adds
// exactly one entry, which is never rewritten afterwards.
type Vocabulary map[int][]byte

// NewVocabulary seeds ids 0..255 with their single raw byte.
func NewVocabulary() Vocabulary {
	v := make(Vocabulary, 2*ByteVocabSize)
	for i := 0; i < ByteVocabSize; i++ {
		v[i] = []byte{byte(i)}
	}
	return v
}

// Grow adds the entry for newID as the concatenation of the byte sequences of
// the merged pair's two constituents.
func (v Vocabulary) Grow(p Pair, newID int) {
	left, right := v[p.Left], v[p.Right]
	merged := make([]byte, 0, len(left)+len(right))
	merged = append(merged, left...)
	merged = append(merged, right...)
	v[newID] = merged
}
