package xorcrack

import "bytes"

// Bytes is a byte buffer. Functions in this package never modify a Bytes
// they are given; every result is a fresh allocation.
type Bytes []byte

// DecodeText returns the bytes of s.
func DecodeText(s string) Bytes {
	return Bytes(s)
}

// Equal reports whether b and o hold the same bytes.
func (b Bytes) Equal(o Bytes) bool {
	return bytes.Equal(b, o)
}

// String renders b as raw text.
func (b Bytes) String() string {
	return string(b)
}

func (b Bytes) clone() Bytes {
	out := make(Bytes, len(b))
	copy(out, b)
	return out
}
