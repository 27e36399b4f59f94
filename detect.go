package xorcrack

import "github.com/pkg/errors"

// Detection is the line DetectSingleByteXor picked out.
type Detection struct {
	Index     int
	Key       byte
	Score     int
	Plaintext Bytes
}

// DetectSingleByteXor breaks every line as single-byte XOR and returns the
// one whose best decryption scores highest. The earliest line wins ties.
func DetectSingleByteXor(lines []Bytes) (Detection, error) {
	if len(lines) == 0 {
		return Detection{}, errors.Wrap(ErrInvalidArgument, "detect: no lines")
	}
	var best Detection
	for i, line := range lines {
		k, n := BreakSingleByte(line)
		if i == 0 || n > best.Score {
			best = Detection{Index: i, Key: k, Score: n}
		}
	}
	best.Plaintext = xorByte(lines[best.Index], best.Key)
	return best, nil
}
