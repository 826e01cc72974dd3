package cmd

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/core"
	"github.com/ZanzyTHEbar/subword-bpe/bpe/report"

	"github.com/spf13/cobra"
)

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var flags trainFlags
	var corpusPaths []string

	cmd := &cobra.Command{
		Use:   "encode --train CORPUS [flags] TEXT...",
		Short: "Train on a corpus, then encode and decode text with the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, opts.cfg)

			model, _, producer, err := trainModel(cmd.Context(), opts, corpusPaths)
			if err != nil {
				return err
			}
			words, err := producer.Words(strings.Join(args, " "))
			if err != nil {
				return err
			}
			tokens, err := model.Encode(words)
			if err != nil {
				return fmt.Errorf("failed to encode: %w", err)
			}

			out := cmd.OutOrStdout()
			pieces := make([]string, len(tokens))
			for i, t := range tokens {
				pieces[i] = t.Slice
			}
			fmt.Fprintf(out, "ids:     %v\n", core.IDs(tokens))
			fmt.Fprintf(out, "pieces:  %s\n", strings.Join(pieces, " | "))
			fmt.Fprintf(out, "decoded: %s\n", strings.Join(model.Decode(tokens), " "))
			report.Summarize(words, tokens).Render(out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&corpusPaths, "train", nil, "corpus files or directories to train on")
	_ = cmd.MarkFlagRequired("train")
	return cmd
}
