package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/vocab"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Strategy selects how pair statistics are maintained between merges.
type Strategy string

const (
	// StrategyNaive recounts every pair after every merge and rebuilds the
	// token stream.
	StrategyNaive Strategy = "naive"
	// StrategyIncremental keeps counts and occurrence positions up to date
	// as merges are applied. It learns the same merge tree as StrategyNaive.
	StrategyIncremental Strategy = "incremental"
)

// ParseStrategy maps a configuration value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategyNaive, StrategyIncremental:
		return s, nil
	case "":
		return StrategyIncremental, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// TrainerOptions configures a Trainer. The zero value trains naively on one
// goroutine without logging.
type TrainerOptions struct {
	Strategy Strategy
	// Workers bounds the goroutines used to count pairs. Values below 2 scan
	// sequentially.
	Workers int
	// Logger receives one event per merge (Debug, or Info when Verbose) and a
	// progress event every ProgressEvery merges. Nil disables logging.
	Logger        *zerolog.Logger
	Verbose       bool
	ProgressEvery int
}

// Trainer learns a vocabulary and merge tree from a word list.
type Trainer struct {
	opts TrainerOptions
	log  zerolog.Logger
}

// NewTrainer returns a Trainer for opts.
func NewTrainer(opts TrainerOptions) *Trainer {
	if opts.Strategy == "" {
		opts.Strategy = StrategyNaive
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "trainer").Str("strategy", string(opts.Strategy)).Logger()
	}
	return &Trainer{opts: opts, log: log}
}

// Train runs at most maxMerges merges over words and returns the resulting
// model. It stops early when no two tokens of the same word are adjacent.
func (t *Trainer) Train(words []string, maxMerges int) (*Model, error) {
	if maxMerges < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBudget, maxMerges)
	}

	v := vocab.FromWords(words)
	tokens, err := Tokenize(words, v)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize corpus: %w", err)
	}
	t.log.Info().
		Int("words", len(words)).
		Int("tokens", len(tokens)).
		Int("initial_vocab", v.Len()).
		Int("max_merges", maxMerges).
		Msg("Starting merge training")

	var tree MergeTree
	var final []Token
	switch t.opts.Strategy {
	case StrategyNaive:
		tree, final, err = t.trainNaive(tokens, v, maxMerges)
	case StrategyIncremental:
		tree, final, err = t.trainIncremental(tokens, v, maxMerges)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownStrategy, t.opts.Strategy)
	}
	if err != nil {
		return nil, err
	}

	t.log.Info().
		Int("merges", len(tree)).
		Int("vocab", v.Len()).
		Int("tokens", len(final)).
		Bool("exhausted", len(tree) < maxMerges).
		Msg("Merge training finished")

	return &Model{ID: uuid.New(), Vocabulary: v, Merges: tree}, nil
}

func (t *Trainer) trainNaive(tokens []Token, v *vocab.Vocabulary, maxMerges int) (MergeTree, []Token, error) {
	tree := make(MergeTree, 0, min(maxMerges, len(tokens)))
	for len(tree) < maxMerges {
		best, count, ok := SelectBest(CollectPairsParallel(tokens, t.opts.Workers))
		if !ok {
			break
		}
		fresh := v.NextID()
		tokens = ApplyMerge(tokens, best, fresh)
		if err := t.record(v, &tree, best, fresh, count); err != nil {
			return nil, nil, err
		}
	}
	return tree, tokens, nil
}

// record appends the rule for best to tree and adds the fused content to v.
func (t *Trainer) record(v *vocab.Vocabulary, tree *MergeTree, best Pair, fresh, count int) error {
	left, ok := v.ContentOf(best.Left)
	if !ok {
		return &LookupError{TokenID: best.Left, WordID: -1}
	}
	right, ok := v.ContentOf(best.Right)
	if !ok {
		return &LookupError{TokenID: best.Right, WordID: -1}
	}
	merged := left + right
	if err := v.Add(fresh, merged); err != nil {
		return fmt.Errorf("failed to record merge %d: %w", len(*tree), err)
	}
	*tree = append(*tree, MergeRule{Pair: best, New: fresh})

	ev := t.log.Debug()
	if t.opts.Verbose {
		ev = t.log.Info()
	}
	ev.Str("left", left).
		Str("right", right).
		Str("merged", merged).
		Int("count", count).
		Int("fresh", fresh).
		Msg("Merging pair")

	if every := t.opts.ProgressEvery; every > 0 && len(*tree)%every == 0 {
		t.log.Info().Int("merges", len(*tree)).Msg("Finalized merges")
	}
	return nil
}

// Train learns a vocabulary and merge tree with default options.
func Train(words []string, maxMerges int) (*vocab.Vocabulary, MergeTree, error) {
	m, err := NewTrainer(TrainerOptions{}).Train(words, maxMerges)
	if err != nil {
		return nil, nil, err
	}
	return m.Vocabulary, m.Merges, nil
}
