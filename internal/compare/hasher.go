package compare

import (
	"crypto/md5"  // #nosec G501 -- used for file equality checks only
	"crypto/sha1" // #nosec G505 -- used for file equality checks only
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// DefaultAlgorithm is the 256-bit secure hash the digest comparator uses
// unless told otherwise.
const DefaultAlgorithm = "SHA256"

func newHasher(algorithm string) (hash.Hash, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "", "SHA256":
		return sha256.New(), nil
	case "SHA1":
		return sha1.New(), nil // #nosec G401 -- used for file equality checks only
	case "SHA512":
		return sha512.New(), nil
	case "SHA384":
		return sha512.New384(), nil
	case "MD5":
		return md5.New(), nil // #nosec G401 -- used for file equality checks only
	case "BLAKE3":
		return blake3.New(), nil
	case "XXH64":
		// Not cryptographic; offered as a fast option when the caller
		// controls both inputs.
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %q", algorithm)
	}
}

// HashFile streams the file through an incremental hash accumulator in
// chunkSize-sized reads and returns the uppercase hex digest. The digest is
// independent of chunkSize. onProgress, when non-nil, is called with the
// byte count of each read.
func HashFile(path, algorithm string, chunkSize int64, onProgress func(n int64)) (string, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	h, err := newHasher(algorithm)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, chunkSize)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return "", werr
			}
			if onProgress != nil {
				onProgress(int64(n))
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("read %s: %w", path, rerr)
		}
	}

	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}
