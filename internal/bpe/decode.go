package bpe

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Decode reconstructs text from token ids by concatenating each id's byte
// sequence. An id absent from the vocabulary is an error. Byte runs that do
// not decode as UTF-8 are not: each maximal ill-formed subpart becomes one
// replacement character, so decoding arbitrary id sequences always yields a
// valid string.
func (m *Model) Decode(ids []int) (string, error) {
	var buf bytes.Buffer
	for _, id := range ids {
		b, ok := m.vocab[id]
		if !ok {
			return "", errors.Errorf("token id %d not in vocabulary", id)
		}
		buf.Write(b)
	}
	return decodeReplacing(buf.Bytes()), nil
}

// decodeReplacing decodes b as UTF-8, substituting U+FFFD for every maximal
// subpart of an ill-formed sequence (Unicode substitution of maximal
// subparts): a truncated multi-byte sequence is one replacement, two adjacent
// dangling lead bytes are two.
func decodeReplacing(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			sb.Write(b[i : i+size])
			i += size
			continue
		}
		sb.WriteRune(utf8.RuneError)
		i += illFormedLen(b[i:])
	}
	return sb.String()
}

// illFormedLen returns the length of the maximal subpart at the start of b:
// the leading byte plus every trailing byte that is valid in its position.
// The full sequence is never consumed here, a complete well-formed sequence
// would have decoded.
func illFormedLen(b []byte) int {
	lead := b[0]
	var trail int
	lo, hi := byte(0x80), byte(0xBF) // valid range for the second byte
	switch {
	case lead < 0xC2:
		// Stray continuation byte or overlong lead (0xC0, 0xC1).
		return 1
	case lead < 0xE0:
		trail = 1
	case lead < 0xF0:
		trail = 2
		if lead == 0xE0 {
			lo = 0xA0
		} else if lead == 0xED {
			hi = 0x9F
		}
	case lead < 0xF5:
		trail = 3
		if lead == 0xF0 {
			lo = 0x90
		} else if lead == 0xF4 {
			hi = 0x8F
		}
	default:
		// 0xF5..0xFF never start a sequence.
		return 1
	}

	size := 1
	for j := 1; j <= trail && j < len(b); j++ {
		c := b[j]
		if j == 1 && (c < lo || c > hi) {
			break
		}
		if j > 1 && (c < 0x80 || c > 0xBF) {
			break
		}
		size++
	}
	return size
}
