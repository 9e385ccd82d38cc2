package compare

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"SeqCompare/internal/chunk"
)

// verifyChunk reads the spec's byte range from both files and reports
// whether the ranges are identical. ReadAt keeps each call independent of
// any shared seek position, so concurrent verifications on the same handles
// are safe as long as each caller brings its own buffers.
func verifyChunk(a, b *os.File, sp chunk.Spec, bufA, bufB []byte) (bool, error) {
	if err := readRange(a, bufA[:sp.Length], sp.Offset); err != nil {
		return false, err
	}
	if err := readRange(b, bufB[:sp.Length], sp.Offset); err != nil {
		return false, err
	}
	return bytes.Equal(bufA[:sp.Length], bufB[:sp.Length]), nil
}

// readRange fills buf from the file at off. Running out of file before buf
// is full means the file shrank after it was planned; that surfaces as a
// ShortReadError rather than a verdict.
func readRange(f *os.File, buf []byte, off int64) error {
	n, err := f.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || err == io.EOF {
		return &ShortReadError{
			Path:   f.Name(),
			Offset: off,
			Want:   int64(len(buf)),
			Got:    int64(n),
		}
	}
	return fmt.Errorf("read %s at offset %d: %w", f.Name(), off, err)
}
