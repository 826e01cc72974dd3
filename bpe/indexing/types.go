// Package indexing holds the pair-keyed accelerators used by incremental
// merge learning: an occurrence index over arena positions and an ordered
// ranking of pair counts.
package indexing

// Pair is an ordered pair of adjacent token identifiers.
type Pair struct {
	Left, Right int
}

// Position is the arena index of the left token of a pair occurrence. It is
// the index of the token's first rune in the flat corpus buffer, so positions
// sort in stream order.
type Position = uint32

// Less reports whether p precedes o in tie-break order: lower left id first,
// then lower right id.
func (p Pair) Less(o Pair) bool {
	if p.Left != o.Left {
		return p.Left < o.Left
	}
	return p.Right < o.Right
}
