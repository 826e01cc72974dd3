package core

// ApplyMerge rewrites tokens, fusing every adjacent same-word occurrence of
// pair into one token with id fresh. Matching is left to right and does not
// overlap: a token produced by a fusion is never the left half of another
// fusion in the same pass. The input slice is not modified.
func ApplyMerge(tokens []Token, pair Pair, fresh int) []Token {
	out := make([]Token, 0, len(tokens))
	i := 0
	for i < len(tokens)-1 {
		left, right := tokens[i], tokens[i+1]
		if left.WordID == right.WordID && left.TokenID == pair.Left && right.TokenID == pair.Right {
			out = append(out, Token{
				Slice:   left.Slice + right.Slice,
				TokenID: fresh,
				WordID:  left.WordID,
			})
			i += 2
			continue
		}
		out = append(out, left)
		i++
	}
	if i == len(tokens)-1 {
		out = append(out, tokens[i])
	}
	return out
}
