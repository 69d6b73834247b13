package version

// The compatibility relation is table-driven on purpose: deprecation
// quirks cannot be inferred from numeric ordering. excludedBy[w] is
// the mask of versions that may no longer be agreed on once w appears
// in either party's offer. A stack modern enough to offer V13 refuses
// to settle for Legacy10, even when both ends nominally enable both.
var excludedBy = [V13 + 1]uint8{
	V13: 1 << Legacy10,
}

// Choose arbitrates between two offered Sets. It returns the highest-
// security version acceptable to both parties under the exclusion
// table, or (None, false) when no common acceptable version exists.
// The result is deterministic for a given pair of Sets.
func Choose(local, peer Set) (Version, bool) {
	union := local.mask | peer.mask
	var banned uint8
	for _, w := range byPriority {
		if union&(1<<w) != 0 {
			banned |= excludedBy[w]
		}
	}
	for _, v := range byPriority {
		if !local.Has(v) || !peer.Has(v) {
			continue
		}
		if banned&(1<<v) != 0 {
			continue
		}
		return v, true
	}
	return None, false
}
