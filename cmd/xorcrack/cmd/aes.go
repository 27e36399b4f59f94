package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/ecb"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newAESCmd(a *app) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "aes",
		Short: "Decrypt AES-128-ECB ciphertext with a known key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.readCiphertext(cmd, input.Base64)
			if err != nil {
				return err
			}
			pt, err := ecb.Decrypt(ct, []byte(key))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), printable(xorcrack.Bytes(pt)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "16-byte AES key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
