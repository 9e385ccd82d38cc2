package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"SeqCompare/internal/compare"
	"SeqCompare/internal/metrics"
	"SeqCompare/internal/progress"
	"SeqCompare/internal/report"
)

func main() {
	var (
		quiet     bool
		showStats bool
	)
	flag.BoolVar(&quiet, "quiet", false, "suppress the progress bar")
	flag.BoolVar(&showStats, "stats", false, "print run counters after the report")
	flag.Parse()

	fileA, fileB, chunkMB, err := report.ParseFileArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [-quiet] [-stats] <file1> <file2> [chunk_size_mb]\n", os.Args[0])
		os.Exit(1)
	}

	stats := &metrics.Stats{}
	stats.Start()

	opts := compare.Options{
		ChunkSize: chunkMB * 1024 * 1024,
		Stats:     stats,
	}

	var bar *progress.Bar
	if !quiet {
		if info, err := os.Stat(fileA); err == nil && info.Size() > 0 {
			atomic.StoreInt64(&stats.TotalBytes, info.Size())
			bar = progress.New(info.Size(), func() (chunksDone, chunksTotal, bytesDone int64) {
				return atomic.LoadInt64(&stats.ChunksVerified),
					atomic.LoadInt64(&stats.ChunksPlanned),
					atomic.LoadInt64(&stats.BytesCompared)
			})
			opts.OnBytes = bar.AddBytes
		}
	}

	start := time.Now()
	res, err := compare.Sequential(fileA, fileB, opts)
	elapsed := time.Since(start)
	if bar != nil {
		bar.Close()
	}
	stats.Stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "compare failed:", err)
		os.Exit(1)
	}

	report.Comparison{
		FileA:   fileA,
		FileB:   fileB,
		ChunkMB: chunkMB,
		Result:  res,
		Elapsed: elapsed,
	}.Print(os.Stdout)

	if showStats {
		metrics.Print(stats)
	}

	os.Exit(report.ExitCode(res))
}
