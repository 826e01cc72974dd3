// Package core implements byte-pair-encoding merge learning and the encode
// and decode passes that replay a learned merge tree.
//
// Tokens never fuse across word boundaries: two tokens are merge candidates
// only when they are adjacent in the stream and carry the same WordID.
package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/indexing"
)

// Token is one occurrence of a text fragment inside a word.
type Token struct {
	Slice   string // text this token currently spells
	TokenID int    // vocabulary id of Slice
	WordID  int    // index of the source word
}

// Pair is an ordered pair of adjacent token ids.
type Pair = indexing.Pair

// MergeRule fuses Pair into the token New.
type MergeRule struct {
	Pair Pair
	New  int
}

// MergeTree is the ordered list of learned rules. Encoding replays it in
// order.
type MergeTree []MergeRule

// Validate checks that every rule only references tokens that already exist:
// each New id must exceed both ids of its own pair and every id used by an
// earlier rule.
func (mt MergeTree) Validate() error {
	highest := -1
	for i, rule := range mt {
		highest = max(highest, rule.Pair.Left, rule.Pair.Right)
		if rule.Pair.Left < 0 || rule.Pair.Right < 0 {
			return fmt.Errorf("%w: rule %d references a negative id", ErrInvalidMergeTree, i)
		}
		if rule.New <= highest {
			return fmt.Errorf("%w: rule %d creates id %d, not above %d", ErrInvalidMergeTree, i, rule.New, highest)
		}
		highest = rule.New
	}
	return nil
}

// IDs projects a token stream onto its token ids.
func IDs(tokens []Token) []int {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.TokenID
	}
	return out
}
