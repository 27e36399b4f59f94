package xorcrack

// BreakSingleByte tries every one-byte key against b and returns the one
// whose output scores best, with that score. The lowest key wins ties. An
// empty buffer yields key 0.
func BreakSingleByte(b Bytes) (byte, int) {
	var (
		best    int
		bestKey byte
	)
	// int loop variable so that 0xff is tried without overflowing
	for k := 0; k <= 0xff; k++ {
		var n int
		for _, c := range b {
			n += scoreByte(c ^ byte(k))
		}
		if k == 0 || n > best {
			best = n
			bestKey = byte(k)
		}
	}
	return bestKey, best
}

// RecoverSingleByteKey returns the most plausible one-byte XOR key for b.
func RecoverSingleByteKey(b Bytes) byte {
	k, _ := BreakSingleByte(b)
	return k
}
