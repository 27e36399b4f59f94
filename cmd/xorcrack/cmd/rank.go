package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newRankCmd(a *app) *cobra.Command {
	var minLen, maxLen, top int
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank likely key lengths by normalized Hamming distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.readCiphertext(cmd, input.Base64)
			if err != nil {
				return err
			}
			opts := a.options(cmd, minLen, maxLen)
			ranked, err := xorcrack.EstimateKeyLength(ct, opts.MinKeyLength, opts.MaxKeyLength)
			if err != nil {
				return err
			}
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "LENGTH  DISTANCE")
			for _, c := range ranked {
				fmt.Fprintf(w, "%6d  %.4f\n", c.Length, c.Distance)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min", 0, "Smallest key length to try (default from config)")
	cmd.Flags().IntVar(&maxLen, "max", 0, "Largest key length to try (default from config)")
	cmd.Flags().IntVar(&top, "top", 10, "How many lengths to print, 0 for all")
	return cmd
}

// options merges the analysis config with any --min/--max given.
func (a *app) options(cmd *cobra.Command, minLen, maxLen int) xorcrack.Options {
	opts := a.cfg.Options()
	if cmd.Flags().Changed("min") {
		opts.MinKeyLength = minLen
	}
	if cmd.Flags().Changed("max") {
		opts.MaxKeyLength = maxLen
	}
	return opts.WithDefaults()
}
