package xorcrack

import (
	"container/heap"

	"github.com/pkg/errors"
)

const (
	// MinBlocks is how many whole key-length blocks the ciphertext must hold
	// for a length to be ranked.
	MinBlocks   = 4
	bitsPerByte = 8
)

// KeyLengthCandidate is a key length and its normalized Hamming distance.
// Lower distances are more likely.
type KeyLengthCandidate struct {
	Length   int
	Distance float64
}

type candidateHeap []KeyLengthCandidate

func (ch candidateHeap) Len() int { return len(ch) }
func (ch candidateHeap) Less(i, j int) bool {
	if ch[i].Distance != ch[j].Distance {
		return ch[i].Distance < ch[j].Distance
	}
	return ch[i].Length < ch[j].Length
}
func (ch candidateHeap) Swap(i, j int) { ch[i], ch[j] = ch[j], ch[i] }

func (ch *candidateHeap) Push(x interface{}) {
	*ch = append(*ch, x.(KeyLengthCandidate))
}

func (ch *candidateHeap) Pop() interface{} {
	old := *ch
	n := len(old)
	res := old[n-1]
	*ch = old[0 : n-1]
	return res
}

// blockDistance deals b into l blocks and measures how far apart successive
// bytes of each block are, per bit compared. Under the right key length the
// bytes of a block share a key byte, which cancels out of their XOR and
// leaves the small distance between plaintext characters.
func blockDistance(b Bytes, l int) (float64, error) {
	blocks, err := Transpose(b, l)
	if err != nil {
		return 0, err
	}
	var total, compared int
	for _, blk := range blocks {
		if len(blk) < 2 {
			continue
		}
		total += HammingDistance(blk[:len(blk)-1], blk[1:])
		compared += len(blk) - 1
	}
	if compared == 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "key length %d: no blocks to compare", l)
	}
	return float64(total) / float64(compared*bitsPerByte), nil
}

// EstimateKeyLength ranks the key lengths in [minLen, maxLen], most likely
// first. Lengths for which b holds fewer than MinBlocks whole blocks are
// skipped.
func EstimateKeyLength(b Bytes, minLen, maxLen int) ([]KeyLengthCandidate, error) {
	if minLen < 1 || maxLen < minLen {
		return nil, errors.Wrapf(ErrInvalidArgument, "key length range [%d, %d]", minLen, maxLen)
	}
	h := &candidateHeap{}
	for l := minLen; l <= maxLen && l*MinBlocks <= len(b); l++ {
		d, err := blockDistance(b, l)
		if err != nil {
			return nil, err
		}
		heap.Push(h, KeyLengthCandidate{Length: l, Distance: d})
	}
	if h.Len() == 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"%d bytes is too short for key lengths from %d", len(b), minLen)
	}
	ranked := make([]KeyLengthCandidate, 0, h.Len())
	for h.Len() > 0 {
		ranked = append(ranked, heap.Pop(h).(KeyLengthCandidate))
	}
	return ranked, nil
}
