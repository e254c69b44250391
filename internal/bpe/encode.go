package bpe

// Encode converts text to token ids by replaying learned merges on its UTF-8
// bytes. Each round collapses the present pair with the smallest assigned id,
// which is the earliest-learned and therefore highest-priority merge; rounds
// repeat until no adjacent pair is in the merge table. Every round shortens
// the sequence, so the loop always terminates.
func (m *Model) Encode(text string) []int {
	ids := byteIDs(text)
	for len(ids) >= 2 {
		var best Pair
		bestID := -1
		for p := range CountPairs(ids) {
			id, ok := m.merges.ID(p)
			if !ok {
				continue
			}
			if bestID < 0 || id < bestID {
				best = p
				bestID = id
			}
		}
		if bestID < 0 {
			break // nothing mergeable remains
		}
		ids = Merge(ids, best, bestID)
	}
	return ids
}
