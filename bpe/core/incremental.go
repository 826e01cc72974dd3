package core

import (
	"fmt"
	"math"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/indexing"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/vocab"
)

// arena is the token stream as parallel arrays indexed by rune position.
// A live token starts at position i and spans runes [i, end[i]); positions
// it has absorbed carry tok == absorbed. prev/next link live tokens in
// stream order, across word boundaries.
type arena struct {
	runes []rune
	end   []int32
	prev  []int32
	next  []int32
	tok   []int
	word  []int
}

const absorbed = -1

// maxArenaTokens is the longest stream the int32 arena links can address.
var maxArenaTokens = math.MaxInt32

// newArena lays out a freshly tokenized, one-rune-per-token stream.
func newArena(tokens []Token) *arena {
	n := len(tokens)
	a := &arena{
		runes: make([]rune, n),
		end:   make([]int32, n),
		prev:  make([]int32, n),
		next:  make([]int32, n),
		tok:   make([]int, n),
		word:  make([]int, n),
	}
	for i, t := range tokens {
		for _, r := range t.Slice {
			a.runes[i] = r
		}
		a.end[i] = int32(i + 1)
		a.prev[i] = int32(i - 1)
		a.next[i] = int32(i + 1)
		a.tok[i] = t.TokenID
		a.word[i] = t.WordID
	}
	if n > 0 {
		a.next[n-1] = -1
	}
	return a
}

// sameWord reports whether positions i and j hold live tokens of one word.
func (a *arena) sameWord(i, j int32) bool {
	return i >= 0 && j >= 0 && a.word[i] == a.word[j]
}

// tokens materialises the live stream.
func (a *arena) tokens() []Token {
	var out []Token
	if len(a.runes) == 0 {
		return out
	}
	for i := int32(0); i >= 0; i = a.next[i] {
		out = append(out, Token{
			Slice:   string(a.runes[i:a.end[i]]),
			TokenID: a.tok[i],
			WordID:  a.word[i],
		})
	}
	return out
}

// incrementalState couples the arena with its pair indexes.
type incrementalState struct {
	a       *arena
	ranking *indexing.Ranking
	occ     *indexing.Occurrences
}

func newIncrementalState(tokens []Token, workers int) *incrementalState {
	s := &incrementalState{
		a:       newArena(tokens),
		ranking: indexing.NewRankingFrom(CollectPairsParallel(tokens, workers)),
		occ:     indexing.NewOccurrences(),
	}
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].WordID == tokens[i+1].WordID {
			s.occ.Add(Pair{Left: tokens[i].TokenID, Right: tokens[i+1].TokenID}, indexing.Position(i))
		}
	}
	return s
}

// merge fuses every live occurrence of pair into fresh, left to right, and
// updates counts for the neighbouring pairs that change. It returns the
// number of fusions.
func (s *incrementalState) merge(pair Pair, fresh int) int {
	a := s.a
	fused := 0
	for _, pos := range s.occ.Take(pair) {
		i := int32(pos)
		if a.tok[i] != pair.Left {
			continue
		}
		j := a.next[i]
		if !a.sameWord(i, j) || a.tok[j] != pair.Right {
			continue
		}

		if h := a.prev[i]; a.sameWord(h, i) {
			s.ranking.Adjust(Pair{Left: a.tok[h], Right: pair.Left}, -1)
			s.ranking.Adjust(Pair{Left: a.tok[h], Right: fresh}, 1)
			s.occ.Add(Pair{Left: a.tok[h], Right: fresh}, indexing.Position(h))
		}
		k := a.next[j]
		if a.sameWord(j, k) {
			s.ranking.Adjust(Pair{Left: pair.Right, Right: a.tok[k]}, -1)
			s.ranking.Adjust(Pair{Left: fresh, Right: a.tok[k]}, 1)
			s.occ.Add(Pair{Left: fresh, Right: a.tok[k]}, indexing.Position(i))
		}
		s.ranking.Adjust(pair, -1)

		a.tok[i] = fresh
		a.end[i] = a.end[j]
		a.tok[j] = absorbed
		a.next[i] = k
		if k >= 0 {
			a.prev[k] = i
		}
		fused++
	}
	return fused
}

func (t *Trainer) trainIncremental(tokens []Token, v *vocab.Vocabulary, maxMerges int) (MergeTree, []Token, error) {
	if len(tokens) > maxArenaTokens {
		t.log.Warn().
			Int("tokens", len(tokens)).
			Int("limit", maxArenaTokens).
			Msg("Corpus too large for incremental training, recounting pairs after every merge")
		return t.trainNaive(tokens, v, maxMerges)
	}
	s := newIncrementalState(tokens, t.opts.Workers)
	tree := make(MergeTree, 0, min(maxMerges, len(tokens)))
	for len(tree) < maxMerges {
		best, count, ok := s.ranking.Best()
		if !ok {
			break
		}
		fresh := v.NextID()
		fused := s.merge(best, fresh)
		if fused == 0 || s.ranking.Count(best) != 0 {
			return nil, nil, fmt.Errorf("pair (%d, %d): %d occurrences left after %d fusions",
				best.Left, best.Right, s.ranking.Count(best), fused)
		}
		if err := t.record(v, &tree, best, fresh, count); err != nil {
			return nil, nil, err
		}
	}
	return tree, s.a.tokens(), nil
}
