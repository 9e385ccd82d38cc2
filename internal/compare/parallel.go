package compare

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"SeqCompare/internal/chunk"
)

// errChunkMismatch cancels the worker group once inequality is known. It
// never escapes Parallel.
var errChunkMismatch = errors.New("chunk mismatch")

// Parallel fans chunk verifications out across a bounded worker pool and
// AND-reduces the per-chunk outcomes. AND is commutative and associative,
// so the verdict is independent of completion order; cancelling outstanding
// work after the first mismatch is an optimization only. Each worker opens
// its own file handles, so no seek position is shared across tasks.
func Parallel(ctx context.Context, aPath, bPath string, opts Options) (Result, error) {
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

	// Vacuous AND: two empty files are equal.
	if len(specs) == 0 {
		res.Equal = true
		return res, nil
	}

	workers := opts.workers()
	if workers > len(specs) {
		workers = len(specs)
	}

	var unequal atomic.Bool

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan chunk.Spec)

	g.Go(func() error {
		defer close(jobs)
		for _, sp := range specs {
			select {
			case jobs <- sp:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			fa, err := os.Open(aPath) // #nosec G304
			if err != nil {
				return fmt.Errorf("open %s: %w", aPath, err)
			}
			defer func() {
				_ = fa.Close()
			}()

			fb, err := os.Open(bPath) // #nosec G304
			if err != nil {
				return fmt.Errorf("open %s: %w", bPath, err)
			}
			defer func() {
				_ = fb.Close()
			}()

			bufA := make([]byte, chunkSize)
			bufB := make([]byte, chunkSize)

			for sp := range jobs {
				ok, err := verifyChunk(fa, fb, sp, bufA, bufB)
				if err != nil {
					opts.countReadFailure(err)
					return err
				}
				opts.countChunkVerified()
				opts.countBytes(sp.Length)
				if !ok {
					opts.countChunkMismatch()
					unequal.Store(true)
					return errChunkMismatch
				}
			}
			return nil
		})
	}

	err = g.Wait()
	if unequal.Load() {
		// A known mismatch already determines the AND; worker errors
		// raced behind it are discarded along with their chunks.
		res.Reason = ReasonContentMismatch
		return res, nil
	}
	if err != nil {
		return Result{}, err
	}

	res.Equal = true
	return res, nil
}
