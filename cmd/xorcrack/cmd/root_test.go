package cmd

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldocassola/xorcrack/internal/ecb"
)

const (
	iceHex = "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"
	icePT  = "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, iceHex, "decode", "-e", "hex", "--key", "ICE")
	require.NoError(t, err)
	assert.Equal(t, icePT+"\n", out)
}

func TestDecodeRequiresKey(t *testing.T) {
	_, err := run(t, iceHex, "decode", "-e", "hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key")
}

func TestEncode(t *testing.T) {
	out, err := run(t, icePT, "encode", "--key", "ICE", "--out", "hex")
	require.NoError(t, err)
	assert.Equal(t, iceHex+"\n", out)

	_, err = run(t, icePT, "encode", "--key", "ICE", "--out", "text")
	assert.Error(t, err)
}

func TestEncodeDecodeBase64(t *testing.T) {
	ct, err := run(t, "attack at dawn", "encode", "-k", "YELLOW SUBMARINE")
	require.NoError(t, err)

	pt, err := run(t, ct, "decode", "-k", "YELLOW SUBMARINE")
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn\n", pt)
}

func TestRank(t *testing.T) {
	out, err := run(t, iceHex, "rank", "-e", "hex", "--top", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LENGTH  DISTANCE", lines[0])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "3 "), lines[1])
}

func TestCrack(t *testing.T) {
	out, err := run(t, iceHex, "crack", "-e", "hex")
	require.NoError(t, err)

	first := strings.SplitN(out, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(first, "length 3 "), first)
	assert.Contains(t, first, `key "ICE"`)
	assert.True(t, strings.HasSuffix(out, "\n\n"+icePT+"\n"))
}

func TestCrackKnownLength(t *testing.T) {
	out, err := run(t, iceHex, "crack", "-e", "hex", "--length", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `key "ICE" (hex 494345)`), out)
	assert.True(t, strings.HasSuffix(out, icePT+"\n"))
}

func TestCrackTooShort(t *testing.T) {
	_, err := run(t, "0b36", "crack", "-e", "hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestCrackWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xorcrack.yaml")
	cfg := "analysis:\n  min_key_length: 5\n  max_key_length: 5\n  candidates: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, err := run(t, iceHex, "crack", "-e", "hex", "-c", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "length 5 "), out)

	out, err = run(t, iceHex, "crack", "-e", "hex", "-c", path, "--min", "3", "--max", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "length 3 "), out)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xorcrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  workers: 0\n"), 0o644))

	_, err := run(t, iceHex, "rank", "-e", "hex", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestDetect(t *testing.T) {
	lines := "0b3637272a2b2e63622c2e69692a23693a2a3c63\n" +
		"7b5a4215415d544115415d5015455447414c155c46155f4058455c5b52\n"
	out, err := run(t, lines, "detect")
	require.NoError(t, err)
	assert.Equal(t, "line 2 key 0x35 score 29\nNow that the party is jumping\n", out)
}

func TestAES(t *testing.T) {
	key := "YELLOW SUBMARINE"
	ct, err := ecb.Encrypt([]byte("I'm back and I'm ringin' the bell"), []byte(key))
	require.NoError(t, err)

	out, err := run(t, base64.StdEncoding.EncodeToString(ct), "aes", "--key", key)
	require.NoError(t, err)
	assert.Equal(t, "I'm back and I'm ringin' the bell\n", out)

	_, err = run(t, base64.StdEncoding.EncodeToString(ct), "aes", "--key", "short")
	assert.Error(t, err)
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ct.hex")
	require.NoError(t, os.WriteFile(path, []byte(iceHex[:40]+"\n"+iceHex[40:]+"\n"), 0o644))

	out, err := run(t, "", "decode", "-i", path, "-e", "hex", "-k", "ICE")
	require.NoError(t, err)
	assert.Equal(t, icePT+"\n", out)
}

func TestUnknownEncoding(t *testing.T) {
	_, err := run(t, iceHex, "rank", "-e", "rot13")
	assert.Error(t, err)
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, "a\\x00b\n\\xff", printable([]byte("a\x00b\n\xff")))
}
