package xorcrack

import "math/bits"

// HammingDistance counts the differing bits of a and b over the length of
// the shorter one.
func HammingDistance(a, b Bytes) int {
	if len(a) > len(b) {
		a = a[:len(b)]
	}
	var d int
	for i := range a {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}
