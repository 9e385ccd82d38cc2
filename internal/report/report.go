package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"SeqCompare/internal/compare"
)

const (
	Banner = "========================================"
	Rule   = "----------------------------------------"

	// DefaultChunkMB matches the upstream tools' 8 MB default.
	DefaultChunkMB = 8
)

// ParseFileArgs handles the positional <file1> <file2> [chunk_size_mb] tail
// shared by every binary.
func ParseFileArgs(args []string) (fileA, fileB string, chunkMB int64, err error) {
	if len(args) < 2 {
		return "", "", 0, fmt.Errorf("two file arguments required")
	}
	if len(args) > 3 {
		return "", "", 0, fmt.Errorf("unexpected argument %q", args[3])
	}

	fileA, fileB = args[0], args[1]
	chunkMB = DefaultChunkMB
	if len(args) == 3 {
		chunkMB, err = strconv.ParseInt(args[2], 10, 64)
		if err != nil || chunkMB <= 0 {
			return "", "", 0, fmt.Errorf("invalid chunk size %q", args[2])
		}
	}
	return fileA, fileB, chunkMB, nil
}

func Verdict(equal bool) string {
	if equal {
		return "EQUAL"
	}
	return "NOT EQUAL"
}

// ExitCode maps a verdict to the process exit code: 0 equal, 2 not equal.
func ExitCode(res compare.Result) int {
	if res.Equal {
		return 0
	}
	return 2
}

// Comparison is the single-method report the standalone binaries print.
type Comparison struct {
	FileA     string
	FileB     string
	ChunkMB   int64
	Workers   int    // 0 omits the line
	Algorithm string // labels the digest lines when digests are present
	Result    compare.Result
	Elapsed   time.Duration
}

func (c Comparison) Print(w io.Writer) {
	fmt.Fprintln(w, Banner)
	fmt.Fprintln(w, "DNA Sequence Comparator")
	fmt.Fprintln(w, Rule)
	fmt.Fprintln(w, "File 1:", c.FileA)
	fmt.Fprintln(w, "File 2:", c.FileB)
	fmt.Fprintf(w, "Chunk Size: %d MB\n", c.ChunkMB)
	if c.Workers > 0 {
		fmt.Fprintln(w, "CPU Cores Used:", c.Workers)
	}

	if c.Result.DigestA != "" || c.Result.DigestB != "" {
		fmt.Fprintln(w, Rule)
		fmt.Fprintf(w, "%s File 1: %s\n", c.Algorithm, c.Result.DigestA)
		fmt.Fprintf(w, "%s File 2: %s\n", c.Algorithm, c.Result.DigestB)
	}

	fmt.Fprintln(w, Rule)
	if c.Result.Reason == compare.ReasonSizeMismatch {
		fmt.Fprintf(w, "Result: %s (file sizes differ)\n", Verdict(c.Result.Equal))
	} else {
		fmt.Fprintln(w, "Result:", Verdict(c.Result.Equal))
	}
	fmt.Fprintf(w, "Time Elapsed: %.6f seconds\n", c.Elapsed.Seconds())
	fmt.Fprintln(w, Banner)
}
