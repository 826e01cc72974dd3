// Package vocab holds the bidirectional mapping between token identifiers and
// the text they spell.
package vocab

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/armon/go-radix"
)

// ErrNonDenseID is returned when an entry is added under an identifier other
// than the next unused one.
var ErrNonDenseID = errors.New("token id is not the next unused id")

// Entry is one vocabulary row.
type Entry struct {
	ID      int
	Content string
}

// Vocabulary maps token content to identifiers and back. Identifiers are
// dense, start at 0 and are never reused. Content normally maps to exactly one
// identifier; when two merges spell the same string, lookups by content
// resolve to the most recently added identifier.
type Vocabulary struct {
	content *radix.Tree // content -> id
	byID    []string    // id -> content
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{content: radix.New()}
}

// FromWords builds the initial character vocabulary: one entry per distinct
// rune, numbered in first-encounter order across words.
func FromWords(words []string) *Vocabulary {
	v := New()
	for _, word := range words {
		for _, r := range word {
			v.Insert(string(r))
		}
	}
	return v
}

// Len returns the number of identifiers assigned so far.
func (v *Vocabulary) Len() int { return len(v.byID) }

// NextID returns the identifier the next insertion will receive.
func (v *Vocabulary) NextID() int { return len(v.byID) }

// IDOf looks up the identifier for content.
func (v *Vocabulary) IDOf(content string) (int, bool) {
	id, ok := v.content.Get(content)
	if !ok {
		return 0, false
	}
	return id.(int), true
}

// ContentOf looks up the content for id.
func (v *Vocabulary) ContentOf(id int) (string, bool) {
	if id < 0 || id >= len(v.byID) {
		return "", false
	}
	return v.byID[id], true
}

// Insert assigns the next identifier to content unless it is already known,
// in which case the existing identifier is returned.
func (v *Vocabulary) Insert(content string) int {
	if id, ok := v.IDOf(content); ok {
		return id
	}
	id := len(v.byID)
	v.byID = append(v.byID, content)
	v.content.Insert(content, id)
	return id
}

// Add records content under a caller-allocated identifier, which must be
// NextID().
func (v *Vocabulary) Add(id int, content string) error {
	if id != len(v.byID) {
		return fmt.Errorf("%w: got %d, want %d", ErrNonDenseID, id, len(v.byID))
	}
	if prev, updated := v.content.Insert(content, id); updated {
		slog.Debug("Vocabulary content re-spelled by a later merge",
			"content", content,
			"previous_id", prev,
			"id", id)
	}
	v.byID = append(v.byID, content)
	return nil
}

// Entries returns every entry in identifier order.
func (v *Vocabulary) Entries() []Entry {
	out := make([]Entry, len(v.byID))
	for id, content := range v.byID {
		out[id] = Entry{ID: id, Content: content}
	}
	return out
}

// WithPrefix returns the entries whose content starts with prefix, in
// lexical content order.
func (v *Vocabulary) WithPrefix(prefix string) []Entry {
	var out []Entry
	v.content.WalkPrefix(prefix, func(content string, id interface{}) bool {
		out = append(out, Entry{ID: id.(int), Content: content})
		return false
	})
	return out
}
