// Package hasher computes content digests for duplicate detection.
//
// Files are streamed through SHA-256 in fixed-size chunks, so memory usage
// is constant regardless of file size. Two files with equal digests are
// considered duplicates regardless of name, path, or timestamp.
//
// Example usage:
//
//	digest, err := hasher.FromFile("/downloads/photo.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(digest) // 64 hex characters
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// chunkSize is the read buffer size for streaming hashes.
const chunkSize = 64 * 1024

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// String returns the digest as lower-case hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest is the zero value.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// FromFile computes the SHA-256 digest of a file's full contents.
//
// Parameters:
//   - path: Path to a readable regular file.
//
// Returns:
//   - Complete content digest
//   - Error naming the path if the file cannot be opened or a read
//     fails partway
//
// A digest is only returned for a complete, error-free read; a failure
// partway through never yields a partial digest.
func FromFile(path string) (Digest, error) {
	f, err := os.Open(path) // #nosec G304: paths come from the scanned tree
	if err != nil {
		return Digest{}, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	defer f.Close() // nolint:errcheck // Read-only handle.

	return FromReader(f, path)
}

// FromReader computes the SHA-256 digest of everything readable from r.
//
// Parameters:
//   - r: Source of the bytes to hash
//   - name: Identifier used in error messages (usually the file path)
//
// Returns the digest, or an error naming the source if a read fails.
func FromReader(r io.Reader, name string) (Digest, error) {
	h := sha256.New()
	buf := make([]byte, chunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			h.Write(buf[:n]) // nolint:errcheck
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Digest{}, fmt.Errorf("%w %s: %v", ErrRead, name, err)
		}
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
