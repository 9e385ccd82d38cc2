package compare

import "fmt"

// ShortReadError reports a chunk read that returned fewer bytes than its
// spec demands: the file was truncated or modified mid-comparison. It is
// never folded into an equal/not-equal verdict.
type ShortReadError struct {
	Path   string
	Offset int64
	Want   int64
	Got    int64
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read on %s at offset %d: want %d bytes, got %d",
		e.Path, e.Offset, e.Want, e.Got)
}
