package core

import (
	"github.com/ZanzyTHEbar/subword-bpe/bpe/vocab"
)

// Tokenize splits every word into one token per rune, tagged with the word's
// index. The result is the flat concatenation of all words' tokens.
func Tokenize(words []string, v *vocab.Vocabulary) ([]Token, error) {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	tokens := make([]Token, 0, n)
	for wordID, word := range words {
		for _, r := range word {
			ch := string(r)
			id, ok := v.IDOf(ch)
			if !ok {
				return nil, &LookupError{Content: ch, TokenID: -1, WordID: wordID}
			}
			tokens = append(tokens, Token{Slice: ch, TokenID: id, WordID: wordID})
		}
	}
	return tokens, nil
}
