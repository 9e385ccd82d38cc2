package compare

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"
)

func expectedHexUpper(t *testing.T, algorithm string, content []byte) string {
	t.Helper()
	switch strings.ToUpper(algorithm) {
	case "SHA256":
		h := sha256.Sum256(content)
		return strings.ToUpper(hex.EncodeToString(h[:]))
	case "SHA512":
		h := sha512.Sum512(content)
		return strings.ToUpper(hex.EncodeToString(h[:]))
	default:
		t.Fatalf("no reference implementation for %s", algorithm)
		return ""
	}
}

func TestHashFile_TableDriven(t *testing.T) {
	dir := t.TempDir()

	contentSmall := []byte("hello world")
	contentLarge := bytes.Repeat([]byte("A"), 2<<20) // 2 MiB

	tests := []struct {
		name      string
		algorithm string
		content   []byte
		missing   bool
		wantLen   int // hex characters; 0 skips the length check
		wantErr   bool
	}{
		{"sha256 small", "SHA256", contentSmall, false, 64, false},
		{"sha256 large", "SHA256", contentLarge, false, 64, false},
		{"sha256 empty", "SHA256", nil, false, 64, false},
		{"default algorithm", "", contentSmall, false, 64, false},
		{"sha512", "SHA512", contentSmall, false, 128, false},
		{"sha384", "SHA384", contentSmall, false, 96, false},
		{"sha1", "SHA1", contentSmall, false, 40, false},
		{"md5", "MD5", contentSmall, false, 32, false},
		{"blake3", "BLAKE3", contentSmall, false, 64, false},
		{"xxh64", "XXH64", contentSmall, false, 16, false},
		{"unsupported algorithm", "CRC32", contentSmall, false, 0, true},
		{"file missing", "SHA256", contentSmall, true, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.missing {
				path = filepath.Join(dir, "does-not-exist.bin")
			} else {
				path = writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".bin", tt.content)
			}

			var progressed int64
			digest, err := HashFile(path, tt.algorithm, 4096, func(n int64) {
				progressed += n
			})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantLen > 0 && len(digest) != tt.wantLen {
				t.Fatalf("digest length mismatch: got %d want %d", len(digest), tt.wantLen)
			}
			if digest != strings.ToUpper(digest) {
				t.Fatalf("digest not uppercase: %s", digest)
			}
			if progressed != int64(len(tt.content)) {
				t.Fatalf("progress mismatch: got %d want %d", progressed, len(tt.content))
			}
		})
	}
}

// The digest must not depend on the read granularity.
func TestHashFile_ChunkSizeIndependence(t *testing.T) {
	dir := t.TempDir()
	content := makeTestData(t, 10000)
	path := writeFile(t, dir, "fixture.bin", content)

	want := expectedHexUpper(t, "SHA256", content)

	for _, cs := range []int64{1, 4096, int64(len(content)), 1 << 20} {
		got, err := HashFile(path, "SHA256", cs, nil)
		if err != nil {
			t.Fatalf("HashFile chunkSize=%d: %v", cs, err)
		}
		if got != want {
			t.Fatalf("digest mismatch at chunkSize=%d:\n got: %s\nwant: %s", cs, got, want)
		}
	}
}

func TestHashFile_KnownVector(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.bin", []byte("hello world"))

	const want = "B94D27B9934D3E08A52E52D7DA7DABFAC484EFE37A5380EE9088F7ACE2EFCDE9"
	got, err := HashFile(path, "SHA256", 4096, nil)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if got != want {
		t.Fatalf("sha256 mismatch:\n got: %s\nwant: %s", got, want)
	}
}
