package xorcrack

import "unicode"

func scoreByte(c byte) int {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == ' ':
		return 1
	case c == '\t', c == '\n', c == '\r':
		return 0
	case unicode.IsControl(rune(c)):
		// C0, DEL and the C1 range 0x80-0x9f
		return -1
	}
	return 0
}

// Score estimates how much b looks like English text: +1 per ASCII letter
// or space, -1 per control character other than tab, newline and carriage
// return. Higher is better.
func Score(b Bytes) int {
	var n int
	for _, c := range b {
		n += scoreByte(c)
	}
	return n
}
