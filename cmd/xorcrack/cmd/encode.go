package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newEncodeCmd(a *app) *cobra.Command {
	var key, out string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encrypt the input with a repeating XOR key",
		Long: `Encrypt reads the input as plaintext (or in --encoding, if given) and
prints the ciphertext as hex or base64.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outEnc, err := input.ParseEncoding(out)
			if err != nil || outEnc == input.Text {
				return errors.Wrapf(xorcrack.ErrInvalidEncoding, "output encoding %q", out)
			}
			pt, err := a.readCiphertext(cmd, input.Text)
			if err != nil {
				return err
			}
			ct, err := xorcrack.Xor(pt, xorcrack.Bytes(key))
			if err != nil {
				return err
			}
			if outEnc == input.Hex {
				fmt.Fprintln(cmd.OutOrStdout(), ct.Hex())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ct.Base64())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "Repeating XOR key")
	cmd.Flags().StringVarP(&out, "out", "o", "base64", "Output encoding: hex or base64")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
