package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/input"
)

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Find the line encrypted with single-byte XOR",
		Long: `Detect reads one ciphertext per line (hex unless --encoding says
otherwise) and prints the line most likely to be single-byte XOR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.inputEncoding(input.Hex)
			if err != nil {
				return err
			}
			text, err := a.readText(cmd)
			if err != nil {
				return err
			}
			lines, err := input.DecodeLines(text, enc)
			if err != nil {
				return err
			}
			d, err := xorcrack.DetectSingleByteXor(lines)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "line %d key 0x%02x score %d\n%s\n",
				d.Index+1, d.Key, d.Score, printable(d.Plaintext))
			return nil
		},
	}
}
