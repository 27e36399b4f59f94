// Package ecb decrypts AES-ECB ciphertext under a known key. It has nothing
// to do with breaking XOR; it is here for inputs whose key is already known.
package ecb

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

var (
	ErrBlockSize = errors.New("ecb: input is not a whole number of blocks")
	ErrPadding   = errors.New("ecb: bad pkcs7 padding")
)

// Pad appends PKCS#7 padding up to the next multiple of bs. A whole block of
// padding is added when in is already aligned.
func Pad(in []byte, bs int) []byte {
	out := make([]byte, len(in), bs*(len(in)/bs+1))
	copy(out, in)
	remain := bs - len(in)%bs
	out = append(out, bytes.Repeat([]byte{byte(remain)}, remain)...)
	return out
}

// Unpad strips PKCS#7 padding.
func Unpad(in []byte, bs int) ([]byte, error) {
	if len(in) == 0 || len(in)%bs != 0 {
		return nil, errors.Wrapf(ErrPadding, "length %d", len(in))
	}
	n := int(in[len(in)-1])
	if n == 0 || n > bs {
		return nil, errors.Wrapf(ErrPadding, "pad byte %#x", n)
	}
	if !bytes.Equal(in[len(in)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, errors.Wrapf(ErrPadding, "inconsistent pad of %d", n)
	}
	return in[:len(in)-n], nil
}

func processBlocks(in []byte, ciph cipher.Block, isDecryption bool) ([]byte, error) {
	bs := ciph.BlockSize()
	if len(in)%bs != 0 {
		return nil, errors.Wrapf(ErrBlockSize, "%d bytes, block size %d", len(in), bs)
	}
	out := make([]byte, len(in))
	for i := 0; i < len(in); i += bs {
		if isDecryption {
			ciph.Decrypt(out[i:i+bs], in[i:i+bs])
		} else {
			ciph.Encrypt(out[i:i+bs], in[i:i+bs])
		}
	}
	return out, nil
}

func makeAES(key []byte) (cipher.Block, error) {
	ciph, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "ecb: aes key")
	}
	return ciph, nil
}

// Encrypt pads pt and encrypts it with AES in ECB mode.
func Encrypt(pt, key []byte) ([]byte, error) {
	ciph, err := makeAES(key)
	if err != nil {
		return nil, err
	}
	return processBlocks(Pad(pt, ciph.BlockSize()), ciph, false)
}

// Decrypt decrypts AES-ECB ciphertext and strips its padding.
func Decrypt(ct, key []byte) ([]byte, error) {
	ciph, err := makeAES(key)
	if err != nil {
		return nil, err
	}
	pt, err := processBlocks(ct, ciph, true)
	if err != nil {
		return nil, err
	}
	return Unpad(pt, ciph.BlockSize())
}
