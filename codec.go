package xorcrack

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func sextet(c byte) (byte, bool) {
	switch {
	case 'A' <= c && c <= 'Z':
		return c - 'A', true
	case 'a' <= c && c <= 'z':
		return c - 'a' + 26, true
	case '0' <= c && c <= '9':
		return c - '0' + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	}
	return 0, false
}

// DecodeHex packs hex digits into bytes, high nibble first. An odd trailing
// digit becomes the high nibble of a last byte, so "a" decodes to 0xa0.
func DecodeHex(s string) (Bytes, error) {
	out := make(Bytes, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		v, ok := nibble(s[i])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidEncoding, "hex: unexpected %q at offset %d", s[i], i)
		}
		if i%2 == 0 {
			out = append(out, v<<4)
		} else {
			out[len(out)-1] |= v
		}
	}
	return out, nil
}

// DecodeBase64 decodes standard base64. Padded input yields the usual byte
// count. An unpadded trailing group keeps its partial byte: "+" decodes to
// the single byte 62<<2.
func DecodeBase64(s string) (Bytes, error) {
	out := make(Bytes, 0, len(s)*3/4+1)
	pad := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			pad++
			continue
		}
		if pad > 0 {
			return nil, errors.Wrapf(ErrInvalidEncoding, "base64: data after padding at offset %d", i)
		}
		v, ok := sextet(c)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidEncoding, "base64: unexpected %q at offset %d", c, i)
		}
		n := len(out)
		switch i % 4 {
		case 0:
			out = append(out, v<<2)
		case 1:
			out[n-1] |= v >> 4
			out = append(out, v<<4)
		case 2:
			out[n-1] |= v >> 2
			out = append(out, v<<6)
		case 3:
			out[n-1] |= v
		}
	}
	if pad > 0 {
		if pad > 2 || len(s)%4 != 0 {
			return nil, errors.Wrapf(ErrInvalidEncoding, "base64: bad padding in %d characters", len(s))
		}
		// the last data sextet only started a byte that the padding cancels
		out = out[:len(out)-1]
	}
	return out, nil
}

// Hex renders b as lowercase hex.
func (b Bytes) Hex() string {
	return hex.EncodeToString(b)
}

// Base64 renders b as padded standard base64.
func (b Bytes) Base64() string {
	return base64.StdEncoding.EncodeToString(b)
}
