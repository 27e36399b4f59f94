// Package input reads ciphertext for the command line and decodes it.
package input

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/aldocassola/xorcrack"
)

type Encoding string

const (
	Base64 Encoding = "base64"
	Hex    Encoding = "hex"
	Text   Encoding = "text"
)

// ParseEncoding accepts base64, hex or text in any case.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case Base64, Hex, Text:
		return e, nil
	}
	return "", errors.Wrapf(xorcrack.ErrInvalidArgument, "unknown encoding %q", s)
}

// Source reads from standard input, a file or an http(s) URL.
type Source struct {
	Stdin  io.Reader
	Client *http.Client
}

// Read returns the text named by name: "" or "-" for Stdin, a URL, or a
// file path.
func (s Source) Read(ctx context.Context, name string) (string, error) {
	switch {
	case name == "" || name == "-":
		stdin := s.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(data), nil
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		return s.fetch(ctx, name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", name)
	}
	return string(data), nil
}

func (s Source) fetch(ctx context.Context, url string) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, "fetch %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "fetch %s", url)
	}
	return string(data), nil
}

// Decode turns text into bytes. Whitespace, including the line breaks of
// wrapped files, is dropped from hex and base64 input; text is taken as is.
func Decode(text string, enc Encoding) (xorcrack.Bytes, error) {
	switch enc {
	case Hex:
		return xorcrack.DecodeHex(strings.Join(strings.Fields(text), ""))
	case Base64:
		return xorcrack.DecodeBase64(strings.Join(strings.Fields(text), ""))
	case Text:
		return xorcrack.DecodeText(text), nil
	}
	return nil, errors.Wrapf(xorcrack.ErrInvalidArgument, "unknown encoding %q", enc)
}

// Lines returns the non-blank lines of text, trimmed.
func Lines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// DecodeLines decodes each non-blank line of text on its own.
func DecodeLines(text string, enc Encoding) ([]xorcrack.Bytes, error) {
	lines := Lines(text)
	out := make([]xorcrack.Bytes, 0, len(lines))
	for i, l := range lines {
		b, err := Decode(l, enc)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		out = append(out, b)
	}
	return out, nil
}
