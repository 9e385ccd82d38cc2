package metrics

import (
	"fmt"
	"sync/atomic"
)

type Snapshot struct {
	DurationMs      int64
	ChunksPlanned   int64
	ChunksVerified  int64
	ChunkMismatches int64
	SizeMismatches  int64
	ShortReads      int64
	ReadErrors      int64
	BytesCompared   int64
	BytesHashed     int64
	TotalBytes      int64
}

func (s *Stats) Snapshot() Snapshot {
	dur := s.Duration()

	return Snapshot{
		DurationMs:      dur.Milliseconds(),
		ChunksPlanned:   atomic.LoadInt64(&s.ChunksPlanned),
		ChunksVerified:  atomic.LoadInt64(&s.ChunksVerified),
		ChunkMismatches: atomic.LoadInt64(&s.ChunkMismatches),
		SizeMismatches:  atomic.LoadInt64(&s.SizeMismatches),
		ShortReads:      atomic.LoadInt64(&s.ShortReads),
		ReadErrors:      atomic.LoadInt64(&s.ReadErrors),
		BytesCompared:   atomic.LoadInt64(&s.BytesCompared),
		BytesHashed:     atomic.LoadInt64(&s.BytesHashed),
		TotalBytes:      atomic.LoadInt64(&s.TotalBytes),
	}
}

func Print(s *Stats) {
	snap := s.Snapshot()

	fmt.Println("--- stats ---")
	fmt.Println("duration_ms:", snap.DurationMs)
	fmt.Println("chunks_planned:", snap.ChunksPlanned)
	fmt.Println("chunks_verified:", snap.ChunksVerified)
	fmt.Println("chunk_mismatches:", snap.ChunkMismatches)
	fmt.Println("size_mismatches:", snap.SizeMismatches)
	fmt.Println("short_reads:", snap.ShortReads)
	fmt.Println("read_errors:", snap.ReadErrors)
	fmt.Println("bytes_compared:", snap.BytesCompared)
	fmt.Println("bytes_hashed:", snap.BytesHashed)
	fmt.Println("total_bytes:", snap.TotalBytes)

	if snap.DurationMs > 0 {
		secs := float64(snap.DurationMs) / 1000.0
		processed := snap.BytesCompared
		if snap.BytesHashed > processed {
			processed = snap.BytesHashed
		}
		bps := float64(processed) / secs
		fmt.Println("throughput_bytes_per_sec:", bps)
		fmt.Println("throughput_mb_per_sec:", bps/1_000_000.0)
	}
}
