package bpe

import (
	"fmt"
	"io"
	"strings"
)

// ProgressEvent describes one completed merge iteration.
type ProgressEvent struct {
	Merge       int    // zero-based iteration index
	TotalMerges int    // merges requested for the whole run
	Pair        Pair   // the pair that was merged
	NewID       int    // token id minted for the merge
	Token       []byte // byte sequence the new token expands to
	Count       int    // occurrences the pair had when selected
}

// ProgressFunc observes training between merge iterations, the safe
// interruption point: the model state at each call is a valid partial result.
// Returning false stops training early.
type ProgressFunc func(ProgressEvent) bool

// VerboseProgress returns a hook that writes a one-line report per merge to
// w, with control and non-ASCII bytes escaped so token contents stay on one
// line. Suitable for WithProgress in training scripts.
func VerboseProgress(w io.Writer) ProgressFunc {
	return func(e ProgressEvent) bool {
		fmt.Fprintf(w, "merge %d/%d: (%d, %d) -> %d (%s) had %d occurrences\n",
			e.Merge+1, e.TotalMerges, e.Pair.Left, e.Pair.Right, e.NewID,
			printable(e.Token), e.Count)
		return true
	}
}

// printable renders token bytes with control and non-ASCII bytes escaped.
func printable(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c >= 32 && c < 127:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	return sb.String()
}
