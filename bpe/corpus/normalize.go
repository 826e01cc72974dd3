// Package corpus turns raw text into the ordered, normalised word list that
// merge training consumes.
package corpus

import (
	"github.com/sugarme/tokenizer/normalizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer rewrites text before it is split into words.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// TextNormalizer composes text to NFC and optionally lowercases it.
type TextNormalizer struct {
	lowercase bool
	lower     cases.Caser
}

func NewTextNormalizer(lowercase bool) *TextNormalizer {
	return &TextNormalizer{lowercase: lowercase, lower: cases.Lower(language.Und)}
}

func (n *TextNormalizer) Normalize(text string) (string, error) {
	text = norm.NFC.String(text)
	if n.lowercase {
		text = n.lower.String(text)
	}
	return text, nil
}

// BertNormalizer applies the BERT normaliser: control characters removed,
// CJK characters spaced out, accents stripped and text lowercased.
type BertNormalizer struct {
	n *normalizer.BertNormalizer
}

func NewBertNormalizer() *BertNormalizer {
	return &BertNormalizer{n: normalizer.NewBertNormalizer(true, true, true, true)}
}

func (b *BertNormalizer) Normalize(text string) (string, error) {
	out, err := b.n.Normalize(normalizer.NewNormalizedFrom(text))
	if err != nil {
		return "", err
	}
	return out.GetNormalized(), nil
}
