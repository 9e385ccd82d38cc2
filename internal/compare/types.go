package compare

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"SeqCompare/internal/metrics"
)

// DefaultChunkSize matches the upstream tools' 8 MB default.
const DefaultChunkSize = 8 << 20

// Reason explains a not-equal verdict.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonSizeMismatch    Reason = "size mismatch"
	ReasonContentMismatch Reason = "content mismatch"
	ReasonDigestMismatch  Reason = "digest mismatch"
)

// Result is the outcome of one comparison run. Immutable once produced.
type Result struct {
	Equal  bool
	Reason Reason

	SizeA int64
	SizeB int64

	// DigestA/DigestB are set by the digest comparator only (uppercase hex).
	DigestA string
	DigestB string
}

type Options struct {
	ChunkSize int64  // bytes per read; DefaultChunkSize when <= 0
	Workers   int    // parallel pool size; runtime.NumCPU() when <= 0
	Algorithm string // digest algorithm; SHA256 when empty

	Stats   *metrics.Stats // optional run counters
	OnBytes func(n int64)  // optional progress callback; must be safe for concurrent use
}

func (o Options) chunkSize() int64 {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return DefaultChunkSize
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) countBytes(n int64) {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.BytesCompared, n)
	}
	if o.OnBytes != nil {
		o.OnBytes(n)
	}
}

func (o Options) countHashed(n int64) {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.BytesHashed, n)
	}
	if o.OnBytes != nil {
		o.OnBytes(n)
	}
}

func (o Options) countChunksPlanned(n int) {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.ChunksPlanned, int64(n))
	}
}

func (o Options) countChunkVerified() {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.ChunksVerified, 1)
	}
}

func (o Options) countChunkMismatch() {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.ChunkMismatches, 1)
	}
}

func (o Options) countSizeMismatch() {
	if o.Stats != nil {
		atomic.AddInt64(&o.Stats.SizeMismatches, 1)
	}
}

func (o Options) countReadFailure(err error) {
	if o.Stats == nil {
		return
	}
	var short *ShortReadError
	if errors.As(err, &short) {
		atomic.AddInt64(&o.Stats.ShortReads, 1)
		return
	}
	atomic.AddInt64(&o.Stats.ReadErrors, 1)
}

// statSizes resolves both file sizes up front so every comparator can take
// the size-mismatch fast path without opening a content-read cursor.
func statSizes(aPath, bPath string) (int64, int64, error) {
	ia, err := os.Stat(aPath)
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", aPath, err)
	}
	ib, err := os.Stat(bPath)
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", bPath, err)
	}
	return ia.Size(), ib.Size(), nil
}
