package xorcrack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSingleByteXor(t *testing.T) {
	var noise1, noise2 Bytes
	for i := 0; i < 256; i += 7 {
		noise1 = append(noise1, byte(i))
	}
	for i := 3; i < 200; i += 11 {
		noise2 = append(noise2, byte(i))
	}
	lines := []Bytes{
		noise1,
		noise2,
		mustHex("0b3637272a2b2e63622c2e69692a23693a2a3c63"),
		mustHex("7b5a4215415d544115415d5015455447414c155c46155f4058455c5b52"),
	}

	d, err := DetectSingleByteXor(lines)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Index)
	assert.Equal(t, byte(0x35), d.Key)
	assert.Equal(t, 29, d.Score)
	assert.Equal(t, "Now that the party is jumping", d.Plaintext.String())
}

func TestDetectSingleByteXorEmpty(t *testing.T) {
	_, err := DetectSingleByteXor(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
