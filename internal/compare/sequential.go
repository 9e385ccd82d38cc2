package compare

import (
	"fmt"
	"os"

	"SeqCompare/internal/chunk"
)

// Sequential compares both files chunk by chunk on the calling goroutine,
// short-circuiting on the first differing pair. Files that differ in size
// are reported unequal without reading any content.
func Sequential(aPath, bPath string, opts Options) (Result, error) {
	sizeA, sizeB, err := statSizes(aPath, bPath)
	if err != nil {
		return Result{}, err
	}

	res := Result{SizeA: sizeA, SizeB: sizeB}
	if sizeA != sizeB {
		opts.countSizeMismatch()
		res.Reason = ReasonSizeMismatch
		return res, nil
	}

	chunkSize := opts.chunkSize()
	specs, err := chunk.Plan(sizeA, chunkSize)
	if err != nil {
		return Result{}, err
	}
	opts.countChunksPlanned(len(specs))

	fa, err := os.Open(aPath) // #nosec G304
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", aPath, err)
	}
	defer func() {
		_ = fa.Close()
	}()

	fb, err := os.Open(bPath) // #nosec G304
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", bPath, err)
	}
	defer func() {
		_ = fb.Close()
	}()

	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)

	for _, sp := range specs {
		ok, err := verifyChunk(fa, fb, sp, bufA, bufB)
		if err != nil {
			opts.countReadFailure(err)
			return Result{}, err
		}
		opts.countChunkVerified()
		opts.countBytes(sp.Length)
		if !ok {
			opts.countChunkMismatch()
			res.Reason = ReasonContentMismatch
			return res, nil
		}
	}

	res.Equal = true
	return res, nil
}
