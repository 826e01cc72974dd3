package core

import (
	"github.com/sourcegraph/conc/pool"
)

// PairCounts maps an adjacent same-word pair to its number of occurrences.
type PairCounts map[Pair]int

// minChunk keeps the parallel scan from splitting small streams.
const minChunk = 4096

// CollectPairs counts every adjacent pair of tokens that share a word.
func CollectPairs(tokens []Token) PairCounts {
	counts := make(PairCounts)
	countRange(tokens, 0, len(tokens)-1, counts)
	return counts
}

// CollectPairsParallel returns the same counts as CollectPairs, scanning
// disjoint chunks of the stream on up to workers goroutines.
func CollectPairsParallel(tokens []Token, workers int) PairCounts {
	last := len(tokens) - 1 // pairs start at 0..last-1
	if workers <= 1 || last < 2*minChunk {
		return CollectPairs(tokens)
	}
	chunk := (last + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	p := pool.NewWithResults[PairCounts]().WithMaxGoroutines(workers)
	for lo := 0; lo < last; lo += chunk {
		lo, hi := lo, min(lo+chunk, last)
		p.Go(func() PairCounts {
			part := make(PairCounts)
			countRange(tokens, lo, hi, part)
			return part
		})
	}

	counts := make(PairCounts)
	for _, part := range p.Wait() {
		for pair, c := range part {
			counts[pair] += c
		}
	}
	return counts
}

// countRange counts the pairs starting at positions [lo, hi).
func countRange(tokens []Token, lo, hi int, into PairCounts) {
	for i := lo; i < hi; i++ {
		left, right := tokens[i], tokens[i+1]
		if left.WordID != right.WordID {
			continue
		}
		into[Pair{Left: left.TokenID, Right: right.TokenID}]++
	}
}
