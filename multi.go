package xorcrack

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// RecoverKey recovers a keyLength-byte repeating XOR key from b, one key
// byte per transposed block.
func RecoverKey(b Bytes, keyLength int) (Bytes, error) {
	blocks, err := Transpose(b, keyLength)
	if err != nil {
		return nil, err
	}
	key := make(Bytes, keyLength)
	for i, blk := range blocks {
		key[i] = RecoverSingleByteKey(blk)
	}
	return key, nil
}

// RecoverKeyConcurrent is RecoverKey with the blocks spread over a pool of
// workers. The result is the same as RecoverKey's.
func RecoverKeyConcurrent(ctx context.Context, b Bytes, keyLength, workers int) (Bytes, error) {
	blocks, err := Transpose(b, keyLength)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > keyLength {
		workers = keyLength
	}

	key := make(Bytes, keyLength)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// each index is handed out once, so writes never overlap
			for i := range jobs {
				key[i] = RecoverSingleByteKey(blocks[i])
			}
		}()
	}

	var cancelled error
feed:
	for i := range blocks {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, errors.Wrapf(cancelled, "recover key of length %d", keyLength)
	}
	return key, nil
}
