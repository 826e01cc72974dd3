package indexing

import (
	roaring "github.com/RoaringBitmap/roaring"
)

// Occurrences holds roaring bitmaps keyed by pair.
// Example: (h, a) -> bitmap of positions where "h" is followed by "a".
//
// Entries are hints: a position stays in a bitmap after the tokens there have
// changed, so callers re-check the stream before acting on one.
type Occurrences struct {
	byPair map[Pair]*roaring.Bitmap
}

func NewOccurrences() *Occurrences {
	return &Occurrences{byPair: make(map[Pair]*roaring.Bitmap)}
}

func (o *Occurrences) Add(p Pair, pos Position) {
	bm, ok := o.byPair[p]
	if !ok {
		bm = roaring.New()
		o.byPair[p] = bm
	}
	bm.Add(pos)
}

// Take removes the bitmap for p and returns its positions in ascending
// (stream) order.
func (o *Occurrences) Take(p Pair) []Position {
	bm, ok := o.byPair[p]
	if !ok {
		return nil
	}
	delete(o.byPair, p)
	return bm.ToArray()
}

// Count returns the number of recorded positions for p, stale ones included.
func (o *Occurrences) Count(p Pair) uint64 {
	bm, ok := o.byPair[p]
	if !ok {
		return 0
	}
	return bm.GetCardinality()
}

// Len returns the number of pairs with a bitmap.
func (o *Occurrences) Len() int { return len(o.byPair) }
