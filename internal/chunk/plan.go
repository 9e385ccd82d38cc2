package chunk

import "fmt"

// Spec identifies one contiguous byte range of a file. It is the unit of
// work handed to chunk verifiers.
type Spec struct {
	Index  int
	Offset int64
	Length int64
}

// End returns the first offset past the range.
func (s Spec) End() int64 { return s.Offset + s.Length }

// Plan slices a file of fileSize bytes into chunkSize-sized specs covering
// [0, fileSize) exactly once, in ascending contiguous order. The final spec
// carries the remainder when chunkSize does not divide fileSize. A zero-size
// file yields no specs.
func Plan(fileSize, chunkSize int64) ([]Spec, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk: chunk size must be positive, got %d", chunkSize)
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("chunk: negative file size %d", fileSize)
	}

	n := fileSize / chunkSize
	if fileSize%chunkSize != 0 {
		n++
	}

	specs := make([]Spec, 0, n)
	for off := int64(0); off < fileSize; off += chunkSize {
		length := chunkSize
		if remain := fileSize - off; remain < length {
			length = remain
		}
		specs = append(specs, Spec{Index: len(specs), Offset: off, Length: length})
	}
	return specs, nil
}
