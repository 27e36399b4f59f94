package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newCrackCmd(a *app) *cobra.Command {
	var length, minLen, maxLen, candidates int
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover the key and plaintext of repeating-key XOR ciphertext",
		Long: `Crack ranks key lengths, recovers a key for each of the best candidates
and prints the plaintext of the most likely one. With --length the
ranking is skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.readCiphertext(cmd, input.Base64)
			if err != nil {
				return err
			}
			opts := a.options(cmd, minLen, maxLen)
			if cmd.Flags().Changed("candidates") {
				opts.Candidates = candidates
				opts = opts.WithDefaults()
			}
			w := cmd.OutOrStdout()

			if length > 0 {
				key, err := xorcrack.RecoverKeyConcurrent(cmd.Context(), ct, length, opts.Workers)
				if err != nil {
					return err
				}
				pt, err := xorcrack.Xor(ct, key)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "key %q (hex %s) score %d\n\n", key.String(), key.Hex(), xorcrack.Score(pt))
				fmt.Fprintln(w, printable(pt))
				return nil
			}

			results, err := xorcrack.Break(cmd.Context(), ct, opts)
			if err != nil {
				return err
			}
			for _, r := range results {
				a.log.Debug("candidate", "length", r.KeyLength, "distance", r.Distance, "score", r.Score)
				fmt.Fprintf(w, "length %d distance %.4f score %d key %q\n",
					r.KeyLength, r.Distance, r.Score, r.Key.String())
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, printable(results[0].Plaintext))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Known key length; skips ranking")
	cmd.Flags().IntVar(&minLen, "min", 0, "Smallest key length to try (default from config)")
	cmd.Flags().IntVar(&maxLen, "max", 0, "Largest key length to try (default from config)")
	cmd.Flags().IntVar(&candidates, "candidates", 0, "How many ranked lengths to try (default from config)")
	return cmd
}
