package xorcrack

import "github.com/pkg/errors"

// Transpose deals b into width blocks: byte i goes to block i%width. With
// width equal to a repeating key's length, each block was XORed with a
// single key byte.
func Transpose(b Bytes, width int) ([]Bytes, error) {
	if width < 1 || width > len(b) {
		return nil, errors.Wrapf(ErrInvalidArgument, "transpose: width %d for %d bytes", width, len(b))
	}
	blocks := make([]Bytes, width)
	for n := range blocks {
		blocks[n] = make(Bytes, 0, (len(b)-n+width-1)/width)
	}
	for i, c := range b {
		blocks[i%width] = append(blocks[i%width], c)
	}
	return blocks, nil
}
