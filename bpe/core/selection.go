package core

// SelectBest returns the most frequent pair. Ties go to the lower left id,
// then the lower right id, so training is reproducible regardless of map
// iteration order.
func SelectBest(counts PairCounts) (Pair, int, bool) {
	var best Pair
	bestCount := 0
	for p, c := range counts {
		if c > bestCount || (c == bestCount && p.Less(best)) {
			best, bestCount = p, c
		}
	}
	return best, bestCount, bestCount > 0
}
