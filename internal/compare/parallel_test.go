package compare

import (
	"context"
	"sync/atomic"
	"testing"

	"SeqCompare/internal/metrics"
)

// The AND reduction is order-independent: the verdict must not change with
// the worker count, which permutes chunk completion order.
func TestParallel_WorkerCountInvariance(t *testing.T) {
	dir := t.TempDir()
	data := makeTestData(t, 500*1024)

	pairs := []struct {
		name      string
		dataB     []byte
		wantEqual bool
	}{
		{"identical", data, true},
		{"one byte flipped", flipByte(data, 123456), false},
	}

	for _, pair := range pairs {
		pair := pair
		t.Run(pair.name, func(t *testing.T) {
			a := writeFile(t, dir, pair.name+"-a.bin", data)
			b := writeFile(t, dir, pair.name+"-b.bin", pair.dataB)

			for _, workers := range []int{1, 2, 4, 8, 16} {
				res, err := Parallel(context.Background(), a, b, Options{
					ChunkSize: 32 * 1024,
					Workers:   workers,
				})
				if err != nil {
					t.Fatalf("Parallel workers=%d: %v", workers, err)
				}
				if res.Equal != pair.wantEqual {
					t.Fatalf("Parallel workers=%d: got equal=%v want %v",
						workers, res.Equal, pair.wantEqual)
				}
			}
		})
	}
}

func TestParallel_SizeFastPath(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bin", makeTestData(t, 100))
	b := writeFile(t, dir, "b.bin", makeTestData(t, 200))

	stats := &metrics.Stats{}
	res, err := Parallel(context.Background(), a, b, Options{Stats: stats})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if res.Equal || res.Reason != ReasonSizeMismatch {
		t.Fatalf("got equal=%v reason=%q, want size mismatch", res.Equal, res.Reason)
	}
	if got := atomic.LoadInt64(&stats.BytesCompared); got != 0 {
		t.Fatalf("read %d bytes on size fast path, want 0", got)
	}
}

func TestParallel_EmptyFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bin", nil)
	b := writeFile(t, dir, "b.bin", nil)

	res, err := Parallel(context.Background(), a, b, Options{Workers: 4})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !res.Equal {
		t.Fatalf("empty files must compare equal (vacuous AND)")
	}
}

func TestParallel_CountsAllChunksWhenEqual(t *testing.T) {
	dir := t.TempDir()
	const chunkSize = 16 * 1024
	data := makeTestData(t, 10*chunkSize+5)

	a := writeFile(t, dir, "a.bin", data)
	b := writeFile(t, dir, "b.bin", data)

	stats := &metrics.Stats{}
	res, err := Parallel(context.Background(), a, b, Options{
		ChunkSize: chunkSize,
		Workers:   4,
		Stats:     stats,
	})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if !res.Equal {
		t.Fatalf("expected equal")
	}

	if got := atomic.LoadInt64(&stats.ChunksPlanned); got != 11 {
		t.Fatalf("planned %d chunks, want 11", got)
	}
	if got := atomic.LoadInt64(&stats.ChunksVerified); got != 11 {
		t.Fatalf("verified %d chunks, want 11", got)
	}
	if got := atomic.LoadInt64(&stats.BytesCompared); got != int64(len(data)) {
		t.Fatalf("compared %d bytes, want %d", got, len(data))
	}
}
