package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/vocab"

	"github.com/google/uuid"
)

// Model is a learned vocabulary and merge tree. It lives in memory only.
type Model struct {
	ID         uuid.UUID
	Vocabulary *vocab.Vocabulary
	Merges     MergeTree
}

// Encode tokenizes words with the model.
func (m *Model) Encode(words []string) ([]Token, error) {
	return Encode(words, m.Vocabulary, m.Merges)
}

// Decode reassembles words from tokens.
func (m *Model) Decode(tokens []Token) []string {
	return Decode(tokens)
}

// Encode splits words into characters and replays every rule of tree in
// order. Every character must already be in v.
func Encode(words []string, v *vocab.Vocabulary, tree MergeTree) ([]Token, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	for i, rule := range tree {
		if err := checkRule(v, rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	tokens, err := Tokenize(words, v)
	if err != nil {
		return nil, err
	}
	for _, rule := range tree {
		tokens = ApplyMerge(tokens, rule.Pair, rule.New)
	}
	return tokens, nil
}

// checkRule verifies that rule.New spells its pair in v. A rule pointing at
// an initial character or at an unrelated merge fails here.
func checkRule(v *vocab.Vocabulary, rule MergeRule) error {
	var content [3]string
	for i, id := range []int{rule.Pair.Left, rule.Pair.Right, rule.New} {
		c, ok := v.ContentOf(id)
		if !ok {
			return &LookupError{TokenID: id, WordID: -1}
		}
		content[i] = c
	}
	if content[2] != content[0]+content[1] {
		return fmt.Errorf("%w: id %d spells %q, not %q", ErrInvalidMergeTree, rule.New, content[2], content[0]+content[1])
	}
	return nil
}

// Decode concatenates consecutive slices of the same word and returns one
// word per distinct WordID, in order of first appearance. No tokens yield no
// words.
func Decode(tokens []Token) []string {
	words := []string{}
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && tokens[i-1].WordID != tok.WordID {
			words = append(words, sb.String())
			sb.Reset()
		}
		sb.WriteString(tok.Slice)
	}
	if len(tokens) > 0 {
		words = append(words, sb.String())
	}
	return words
}
