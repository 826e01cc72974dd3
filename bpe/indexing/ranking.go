package indexing

import (
	"log/slog"

	"github.com/emirpasic/gods/trees/redblacktree"
)

type rankKey struct {
	count int
	pair  Pair
}

// compareRank orders by count descending, then by Pair.Less, so the tree's
// leftmost node is the pair to merge next.
func compareRank(a, b interface{}) int {
	ka, kb := a.(rankKey), b.(rankKey)
	switch {
	case ka.count != kb.count:
		if ka.count > kb.count {
			return -1
		}
		return 1
	case ka.pair == kb.pair:
		return 0
	case ka.pair.Less(kb.pair):
		return -1
	default:
		return 1
	}
}

// Ranking keeps pair counts in merge-priority order and supports changing a
// count in place.
type Ranking struct {
	tree   *redblacktree.Tree
	counts map[Pair]int
}

func NewRanking() *Ranking {
	return &Ranking{
		tree:   redblacktree.NewWith(compareRank),
		counts: make(map[Pair]int),
	}
}

// NewRankingFrom builds a ranking from a full count map.
func NewRankingFrom(counts map[Pair]int) *Ranking {
	r := NewRanking()
	for p, c := range counts {
		r.Adjust(p, c)
	}
	return r
}

// Adjust adds delta to the count of p. Pairs whose count drops to zero are
// removed. A count may never go negative.
func (r *Ranking) Adjust(p Pair, delta int) {
	if delta == 0 {
		return
	}
	old := r.counts[p]
	next := old + delta
	if next < 0 {
		slog.Error("Pair count would go negative", "left", p.Left, "right", p.Right, "count", old, "delta", delta)
		panic("indexing: negative pair count")
	}
	if old > 0 {
		r.tree.Remove(rankKey{count: old, pair: p})
	}
	if next == 0 {
		delete(r.counts, p)
		return
	}
	r.counts[p] = next
	r.tree.Put(rankKey{count: next, pair: p}, nil)
}

// Best returns the highest-ranked pair and its count.
func (r *Ranking) Best() (Pair, int, bool) {
	node := r.tree.Left()
	if node == nil {
		return Pair{}, 0, false
	}
	k := node.Key.(rankKey)
	return k.pair, k.count, true
}

// Count returns the current count of p.
func (r *Ranking) Count(p Pair) int { return r.counts[p] }

// Len returns the number of pairs with a positive count.
func (r *Ranking) Len() int { return len(r.counts) }

// Counts returns a copy of the current counts.
func (r *Ranking) Counts() map[Pair]int {
	out := make(map[Pair]int, len(r.counts))
	for p, c := range r.counts {
		out[p] = c
	}
	return out
}
