package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/aldocassola/xorcrack"
	"github.com/aldocassola/xorcrack/internal/config"
	"github.com/aldocassola/xorcrack/internal/input"
	"github.com/aldocassola/xorcrack/internal/logging"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	configPath string
	logLevel   string
	inputPath  string
	encoding   string

	cfg *config.Config
	log hclog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "xorcrack",
		Short: "Break repeating-key XOR",
		Long: `xorcrack recovers plaintext encrypted with repeating-key XOR without
knowing the key: it ranks likely key lengths by normalized Hamming
distance, brute-forces each key byte, and scores the results as English.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&a.inputPath, "input", "i", "-", "Input file or http(s) URL, - for stdin")
	rootCmd.PersistentFlags().StringVarP(&a.encoding, "encoding", "e", "", "Input encoding: base64, hex or text (default depends on the command)")

	rootCmd.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newRankCmd(a),
		newCrackCmd(a),
		newDetectCmd(a),
		newAESCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.DefaultConfig()
	if a.configPath != "" {
		cfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.log = logging.NewLogger("xorcrack", logging.Level(a.logLevel, a.cfg.Logging.Level), cmd.ErrOrStderr())
	a.log.Debug("configured", "config", a.configPath, "input", a.inputPath)
	return nil
}

// readText reads the whole input named by --input.
func (a *app) readText(cmd *cobra.Command) (string, error) {
	src := input.Source{Stdin: cmd.InOrStdin()}
	text, err := src.Read(cmd.Context(), a.inputPath)
	if err != nil {
		return "", err
	}
	a.log.Debug("read input", "source", a.inputPath, "chars", len(text))
	return text, nil
}

func (a *app) inputEncoding(fallback input.Encoding) (input.Encoding, error) {
	if a.encoding == "" {
		return fallback, nil
	}
	return input.ParseEncoding(a.encoding)
}

// readCiphertext reads and decodes the input as a single buffer.
func (a *app) readCiphertext(cmd *cobra.Command, fallback input.Encoding) (xorcrack.Bytes, error) {
	enc, err := a.inputEncoding(fallback)
	if err != nil {
		return nil, err
	}
	text, err := a.readText(cmd)
	if err != nil {
		return nil, err
	}
	ct, err := input.Decode(text, enc)
	if err != nil {
		return nil, err
	}
	a.log.Debug("decoded ciphertext", "encoding", enc, "bytes", len(ct))
	return ct, nil
}

// printable escapes bytes that would garble a terminal, keeping newlines.
func printable(b xorcrack.Bytes) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '\n' && c != '\t' && (c < 0x20 || c > 0x7e) {
			out = append(out, fmt.Sprintf("\\x%02x", c)...)
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
