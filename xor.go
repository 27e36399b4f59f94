package xorcrack

import (
	"crypto/cipher"

	"github.com/pkg/errors"
)

// repeatingXOR is a cipher.Stream that cycles a key over its input. The key
// offset carries across calls, so a long input may be fed in pieces.
type repeatingXOR struct {
	key Bytes
	off int
}

// NewCipher returns a repeating-key XOR stream. Encryption and decryption
// are the same operation.
func NewCipher(key []byte) (cipher.Stream, error) {
	if len(key) == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "empty key")
	}
	return &repeatingXOR{key: Bytes(key).clone()}, nil
}

func (x *repeatingXOR) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("xorcrack: output smaller than input")
	}
	for i, c := range src {
		dst[i] = c ^ x.key[x.off]
		x.off++
		if x.off == len(x.key) {
			x.off = 0
		}
	}
}

// Xor returns b with key applied cyclically: out[i] = b[i] ^ key[i%len(key)].
func Xor(b, key Bytes) (Bytes, error) {
	s, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make(Bytes, len(b))
	s.XORKeyStream(out, b)
	return out, nil
}

func xorByte(b Bytes, k byte) Bytes {
	out := make(Bytes, len(b))
	for i := range b {
		out[i] = b[i] ^ k
	}
	return out
}
