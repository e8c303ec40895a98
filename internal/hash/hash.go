package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/mmap"
)

// FingerprintLen is the length of a hex-encoded object fingerprint.
const FingerprintLen = 40

// Digest returns the 40-char hex fingerprint of data. This is the identity
// of blobs and commits: equal fingerprints mean equal contents.
func Digest(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Valid reports whether s looks like a fingerprint.
func Valid(s string) bool {
	if len(s) != FingerprintLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Quick returns a fast non-identity content hash (xxh3-128, 32 hex chars).
// Used to validate cached fingerprints, never to name objects.
func Quick(data []byte) string {
	sum := xxh3.Hash128(data).Bytes()
	return fmt.Sprintf("%x", sum)
}

// DigestFile hashes a file's contents via a memory-mapped reader, so large
// working files are fingerprinted without slurping them onto the heap.
// It returns the fingerprint, the quick hash, and the file size.
func DigestFile(path string) (fp string, quick string, size int64, err error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", "", 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer r.Close()

	h := sha1.New()
	q := xxh3.New()
	buf := make([]byte, 1<<20)
	var off int64
	for {
		n, rerr := r.ReadAt(buf, off)
		if n > 0 {
			h.Write(buf[:n])
			q.Write(buf[:n])
			off += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", "", 0, fmt.Errorf("read %q: %w", path, rerr)
		}
		if n == 0 {
			break
		}
	}

	quickSum := q.Sum128().Bytes()
	return hex.EncodeToString(h.Sum(nil)), fmt.Sprintf("%x", quickSum), off, nil
}
