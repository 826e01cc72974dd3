// Package cmd wires the bpe command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	internal "github.com/ZanzyTHEbar/subword-bpe/bpe"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/config"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/core"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/corpus"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           internal.DefaultAppName,
		Short:         "Learn and apply byte-pair-encoding merges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = internal.GetLeveledLogger(cfg.Log.Level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: search ./config.yaml and "+internal.DefaultGlobalConfigFile+")")

	root.AddCommand(newTrainCmd(opts), newEncodeCmd(opts))
	return root
}

// trainFlags are shared by every command that trains a model.
type trainFlags struct {
	merges   int
	column   int
	strategy string
	workers  int
	verbose  bool
}

func (f *trainFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.merges, "merges", "n", -1, "merge budget (default from config)")
	cmd.Flags().IntVar(&f.column, "column", -1, "tab-separated column to read (default from config)")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "naive or incremental (default from config)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "goroutines for pair counting (default from config)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log every merge")
}

// apply overlays flags that were set on top of the loaded config.
func (f *trainFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("merges") {
		cfg.Trainer.MaxMerges = f.merges
	}
	if cmd.Flags().Changed("column") {
		cfg.Corpus.Column = f.column
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Trainer.Strategy = f.strategy
	}
	if cmd.Flags().Changed("workers") {
		cfg.Trainer.Workers = f.workers
	}
	if f.verbose {
		cfg.Trainer.Verbose = true
	}
}

// loadWords reads words from files and directories named in paths.
func loadWords(ctx context.Context, cfg *config.Config, p *corpus.Producer, paths []string) ([]string, error) {
	var words []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access corpus %s: %w", path, err)
		}
		var w []string
		if info.IsDir() {
			w, err = corpus.LoadDir(ctx, path, cfg.Corpus.IgnoreFile, cfg.Corpus.Column, p)
		} else {
			w, err = corpus.LoadFiles(ctx, []string{path}, cfg.Corpus.Column, p)
		}
		if err != nil {
			return nil, err
		}
		words = append(words, w...)
	}
	return words, nil
}

// trainModel loads the corpus and trains a model per cfg.
func trainModel(ctx context.Context, opts *rootOptions, paths []string) (*core.Model, []string, *corpus.Producer, error) {
	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	strategy, err := core.ParseStrategy(cfg.Trainer.Strategy)
	if err != nil {
		return nil, nil, nil, err
	}
	producer, err := corpus.NewProducerFromConfig(cfg.Corpus)
	if err != nil {
		return nil, nil, nil, err
	}

	words, err := loadWords(ctx, cfg, producer, paths)
	if err != nil {
		return nil, nil, nil, err
	}
	opts.log.Info().Int("words", len(words)).Strs("corpus", paths).Msg("Loaded corpus")

	trainer := core.NewTrainer(core.TrainerOptions{
		Strategy:      strategy,
		Workers:       cfg.Trainer.Workers,
		Logger:        &opts.log,
		Verbose:       cfg.Trainer.Verbose,
		ProgressEvery: cfg.Trainer.ProgressEvery,
	})
	model, err := trainer.Train(words, cfg.Trainer.MaxMerges)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("training failed: %w", err)
	}
	return model, words, producer, nil
}
