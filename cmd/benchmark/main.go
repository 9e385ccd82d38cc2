package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"SeqCompare/internal/bench"
	"SeqCompare/internal/compare"
	"SeqCompare/internal/report"
)

func methodLabel(algorithm string) string {
	a := strings.ToUpper(strings.TrimSpace(algorithm))
	if a == "" || a == "SHA256" {
		return "SHA-256"
	}
	return a
}

func main() {
	var (
		trials    int
		workers   int
		algorithm string
		chartPath string
	)
	flag.IntVar(&trials, "trials", 3, "timed trials per method")
	flag.IntVar(&workers, "workers", 0, "parallel workers (0 = all cores)")
	flag.StringVar(&algorithm, "alg", compare.DefaultAlgorithm, "digest algorithm")
	flag.StringVar(&chartPath, "out", "benchmark_results.png", "bar chart output path")
	flag.Parse()

	fileA, fileB, chunkMB, err := report.ParseFileArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [-trials n] [-workers n] [-alg SHA256] [-out chart.png] <file1> <file2> [chunk_size_mb]\n", os.Args[0])
		os.Exit(1)
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	infoA, err := os.Stat(fileA)
	if err != nil {
		logger.Fatal("stat input", zap.String("file", fileA), zap.Error(err))
	}
	infoB, err := os.Stat(fileB)
	if err != nil {
		logger.Fatal("stat input", zap.String("file", fileB), zap.Error(err))
	}
	if infoA.Size() != infoB.Size() {
		fmt.Println("Files differ in size. Benchmark aborted.")
		os.Exit(2)
	}

	opts := compare.Options{
		ChunkSize: chunkMB * 1024 * 1024,
		Workers:   workers,
		Algorithm: algorithm,
	}

	fmt.Println(report.Banner)
	fmt.Println("DNA Sequence Comparator")
	fmt.Println("Benchmark Report")
	fmt.Println(report.Rule)
	fmt.Printf("File Size: %.2f MB\n", float64(infoA.Size())/(1024*1024))
	fmt.Printf("Chunk Size: %d MB\n", chunkMB)
	fmt.Printf("Trials per Method: %d\n", trials)
	fmt.Println(report.Banner)
	fmt.Println()

	methods := []struct {
		name string
		fn   func() (compare.Result, error)
	}{
		{"Sequential", func() (compare.Result, error) {
			return compare.Sequential(fileA, fileB, opts)
		}},
		{"Parallel", func() (compare.Result, error) {
			return compare.Parallel(context.Background(), fileA, fileB, opts)
		}},
		{methodLabel(algorithm), func() (compare.Result, error) {
			return compare.Digest(fileA, fileB, opts)
		}},
	}

	summaries := make([]bench.Summary, 0, len(methods))
	for _, m := range methods {
		s, err := bench.Run(m.name, trials, m.fn)
		if err != nil {
			logger.Fatal("benchmark failed", zap.String("method", m.name), zap.Error(err))
		}
		logger.Info("method complete",
			zap.String("method", m.name),
			zap.Duration("mean", s.Mean),
			zap.Duration("stddev", s.StdDev),
			zap.Bool("equal", s.Result.Equal))
		summaries = append(summaries, s)
	}

	// The harness does not check this itself: every method must reach the
	// same verdict on the same pair of files.
	verdict := summaries[0].Result.Equal
	for _, s := range summaries[1:] {
		if s.Result.Equal != verdict {
			logger.Fatal("comparators disagree on verdict",
				zap.String("method", s.Method),
				zap.Bool("got", s.Result.Equal),
				zap.Bool("want", verdict))
		}
	}

	for _, s := range summaries {
		fmt.Printf("%s:\n", s.Method)
		fmt.Printf("  Mean Time : %.6f sec\n", s.Mean.Seconds())
		fmt.Printf("  Std Dev   : %.6f sec\n", s.StdDev.Seconds())
		fmt.Println()
	}

	if err := bench.RenderChart(summaries, chartPath); err != nil {
		logger.Fatal("render chart", zap.Error(err))
	}

	fmt.Println("Benchmark graph saved as:", chartPath)
	fmt.Println("Result:", report.Verdict(verdict))
	fmt.Println(report.Banner)

	if !verdict {
		os.Exit(2)
	}
}
