package corpus

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/config"
)

// Producer turns raw text into words: normalise, then split.
type Producer struct {
	normalizer Normalizer
	splitter   Splitter
}

func NewProducer(n Normalizer, s Splitter) *Producer {
	return &Producer{normalizer: n, splitter: s}
}

// NewProducerFromConfig builds the producer named by cfg.PreTokenizer.
func NewProducerFromConfig(cfg config.CorpusConfig) (*Producer, error) {
	switch strings.ToLower(cfg.PreTokenizer) {
	case "", "regex":
		s, err := NewRegexSplitter(cfg.SplitPattern)
		if err != nil {
			return nil, err
		}
		return NewProducer(NewTextNormalizer(cfg.Lowercase), s), nil
	case "bert":
		return NewProducer(NewBertNormalizer(), NewBertSplitter()), nil
	default:
		return nil, fmt.Errorf("unknown pre-tokenizer %q", cfg.PreTokenizer)
	}
}

// Words normalises and splits text.
func (p *Producer) Words(text string) ([]string, error) {
	normalized, err := p.normalizer.Normalize(text)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize text: %w", err)
	}
	return p.splitter.Split(normalized)
}

// WordsFromLines concatenates the words of every line, in order.
func (p *Producer) WordsFromLines(lines []string) ([]string, error) {
	var words []string
	for i, line := range lines {
		w, err := p.Words(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		words = append(words, w...)
	}
	return words, nil
}
