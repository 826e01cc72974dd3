package core

import (
	"errors"
	"fmt"
)

var (
	// ErrLookup marks a character or token id missing from the vocabulary.
	ErrLookup = errors.New("vocabulary lookup failed")
	// ErrInvalidBudget is returned for a negative merge budget.
	ErrInvalidBudget = errors.New("merge budget must not be negative")
	// ErrInvalidMergeTree is returned for a merge tree whose rules reference
	// ids that do not exist yet.
	ErrInvalidMergeTree = errors.New("invalid merge tree")
	// ErrUnknownStrategy is returned for a trainer strategy name that is not
	// recognised.
	ErrUnknownStrategy = errors.New("unknown training strategy")
)

// LookupError reports the missing content or id. It unwraps to ErrLookup.
type LookupError struct {
	Content string // missing character, empty when TokenID is set
	TokenID int    // missing token id, -1 when Content is set
	WordID  int    // word being processed, -1 when not applicable
}

func (e *LookupError) Error() string {
	if e.Content != "" {
		return fmt.Sprintf("%v: character %q of word %d", ErrLookup, e.Content, e.WordID)
	}
	return fmt.Sprintf("%v: token id %d", ErrLookup, e.TokenID)
}

func (e *LookupError) Unwrap() error { return ErrLookup }
