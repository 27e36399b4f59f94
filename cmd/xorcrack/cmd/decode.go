package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newDecodeCmd(a *app) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decrypt the input with a known repeating XOR key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.readCiphertext(cmd, input.Base64)
			if err != nil {
				return err
			}
			pt, err := xorcrack.Xor(ct, xorcrack.Bytes(key))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), printable(pt))
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "Repeating XOR key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
