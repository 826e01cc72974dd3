// Package report summarises trained models and encoded corpora.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/core"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/vocab"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// Summary describes how well a token stream compresses its words.
type Summary struct {
	Words            int
	Characters       int
	Tokens           int
	Compression      float64 // characters per token
	TokensPerWord    float64
	TokensPerWordStd float64
}

// Summarize measures tokens against the words they encode. Tokens are
// grouped by WordID; words without tokens count as zero-token words.
func Summarize(words []string, tokens []core.Token) Summary {
	s := Summary{Words: len(words), Tokens: len(tokens)}
	for _, w := range words {
		s.Characters += len([]rune(w))
	}
	if s.Tokens > 0 {
		s.Compression = float64(s.Characters) / float64(s.Tokens)
	}
	if s.Words == 0 {
		return s
	}

	perWord := make([]float64, s.Words)
	for _, t := range tokens {
		if t.WordID >= 0 && t.WordID < len(perWord) {
			perWord[t.WordID]++
		}
	}
	s.TokensPerWord, s.TokensPerWordStd = stat.MeanStdDev(perWord, nil)
	if s.Words == 1 {
		s.TokensPerWordStd = 0
	}
	return s
}

// Render writes the summary as a two-column table.
func (s Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"words", strconv.Itoa(s.Words)},
		{"characters", strconv.Itoa(s.Characters)},
		{"tokens", strconv.Itoa(s.Tokens)},
		{"chars/token", fmt.Sprintf("%.2f", s.Compression)},
		{"tokens/word", fmt.Sprintf("%.2f ± %.2f", s.TokensPerWord, s.TokensPerWordStd)},
	})
	table.Render()
}

// RenderMerges writes the first limit rules of tree (all when limit <= 0)
// with their spelled-out content.
func RenderMerges(w io.Writer, v *vocab.Vocabulary, tree core.MergeTree, limit int) {
	if limit <= 0 || limit > len(tree) {
		limit = len(tree)
	}
	spell := func(id int) string {
		if s, ok := v.ContentOf(id); ok {
			return s
		}
		return "<" + strconv.Itoa(id) + ">"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Left", "Right", "Merged", "ID"})
	for i, rule := range tree[:limit] {
		table.Append([]string{
			strconv.Itoa(i + 1),
			spell(rule.Pair.Left),
			spell(rule.Pair.Right),
			spell(rule.New),
			strconv.Itoa(rule.New),
		})
	}
	table.Render()
}

// RenderPrefix writes the vocabulary entries whose content starts with
// prefix, in lexical order.
func RenderPrefix(w io.Writer, v *vocab.Vocabulary, prefix string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Content", "ID"})
	for _, e := range v.WithPrefix(prefix) {
		table.Append([]string{e.Content, strconv.Itoa(e.ID)})
	}
	table.Render()
}
