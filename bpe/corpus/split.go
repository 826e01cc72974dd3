package corpus

import (
	"fmt"

	"github.com/dlclark/regexp2"
	tk "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/normalizer"
	"github.com/sugarme/tokenizer/pretokenizer"
)

// Splitter cuts normalised text into words. Words are never empty.
type Splitter interface {
	Split(text string) ([]string, error)
}

// RegexSplitter splits on every match of a separator pattern.
type RegexSplitter struct {
	sep *regexp2.Regexp
}

func NewRegexSplitter(pattern string) (*RegexSplitter, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid split pattern %q: %w", pattern, err)
	}
	return &RegexSplitter{sep: re}, nil
}

func (s *RegexSplitter) Split(text string) ([]string, error) {
	r := []rune(text)
	var words []string
	var offset int
	m, err := s.sep.FindRunesMatch(r)
	for ; m != nil && err == nil; m, err = s.sep.FindNextMatch(m) {
		if m.Index > offset {
			words = append(words, string(r[offset:m.Index]))
		}
		offset = max(offset, m.Index+m.Length)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}
	if offset < len(r) {
		words = append(words, string(r[offset:]))
	}
	return words, nil
}

// BertSplitter splits on whitespace and isolates punctuation, as the BERT
// pre-tokeniser does.
type BertSplitter struct {
	pre *pretokenizer.BertPreTokenizer
}

func NewBertSplitter() *BertSplitter {
	return &BertSplitter{pre: pretokenizer.NewBertPreTokenizer()}
}

func (s *BertSplitter) Split(text string) ([]string, error) {
	pretokenized, err := s.pre.PreTokenize(tk.NewPreTokenizedString(text))
	if err != nil {
		return nil, fmt.Errorf("failed to pre-tokenize text: %w", err)
	}
	var words []string
	for _, split := range pretokenized.GetSplits(normalizer.OriginalTarget, tk.Byte) {
		if split.Value != "" {
			words = append(words, split.Value)
		}
	}
	return words, nil
}
