package cmd

import (
	"fmt"

	"github.com/ZanzyTHEbar/subword-bpe/bpe/report"

	"github.com/spf13/cobra"
)

func newTrainCmd(opts *rootOptions) *cobra.Command {
	var flags trainFlags
	var show int
	var prefix string

	cmd := &cobra.Command{
		Use:   "train [flags] CORPUS...",
		Short: "Learn merges from corpus files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, opts.cfg)

			model, words, _, err := trainModel(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			tokens, err := model.Encode(words)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "model %s: %d merges, vocabulary %d\n", model.ID, len(model.Merges), model.Vocabulary.Len())
			report.Summarize(words, tokens).Render(out)
			if show != 0 {
				report.RenderMerges(out, model.Vocabulary, model.Merges, show)
			}
			if cmd.Flags().Changed("prefix") {
				report.RenderPrefix(out, model.Vocabulary, prefix)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&show, "show", 20, "merges to list (-1 for all, 0 for none)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "list vocabulary entries starting with this text")
	return cmd
}
