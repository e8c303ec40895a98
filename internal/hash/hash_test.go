package hash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/gitlet/internal/hash"
)

func TestDigest_StableAndWellFormed(t *testing.T) {
	data := []byte("some contents")

	a := hash.Digest(data)
	b := hash.Digest(data)
	if a != b {
		t.Fatalf("digest not deterministic: %s vs %s", a, b)
	}
	if len(a) != hash.FingerprintLen {
		t.Fatalf("expected %d hex chars, got %d", hash.FingerprintLen, len(a))
	}
	if !hash.Valid(a) {
		t.Fatalf("digest %q not valid", a)
	}

	if hash.Digest([]byte("other contents")) == a {
		t.Fatal("different contents produced the same digest")
	}
}

func TestValid(t *testing.T) {
	if hash.Valid("abc") {
		t.Fatal("short string accepted")
	}
	if hash.Valid("zz" + hash.Digest(nil)[2:]) {
		t.Fatal("non-hex string accepted")
	}
	if !hash.Valid(hash.Digest([]byte("x"))) {
		t.Fatal("real digest rejected")
	}
}

func TestQuick_DiffersFromDigest(t *testing.T) {
	data := []byte("payload")
	q := hash.Quick(data)
	if q == "" || q == hash.Digest(data) {
		t.Fatalf("unexpected quick hash %q", q)
	}
	if hash.Quick(data) != q {
		t.Fatal("quick hash not deterministic")
	}
}

func TestDigestFile_MatchesInMemoryDigest(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "f.bin")
	data := make([]byte, 3<<20)
	for i := range data {
		data[i] = byte(i % 251)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fp, quick, size, err := hash.DigestFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fp != hash.Digest(data) {
		t.Fatalf("file digest %s != in-memory digest %s", fp, hash.Digest(data))
	}
	if quick != hash.Quick(data) {
		t.Fatalf("file quick hash %s != in-memory quick hash %s", quick, hash.Quick(data))
	}
	if size != int64(len(data)) {
		t.Fatalf("expected size %d, got %d", len(data), size)
	}
}

func TestDigestFile_EmptyFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	fp, _, size, err := hash.DigestFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != 0 {
		t.Fatalf("expected size 0, got %d", size)
	}
	if fp != hash.Digest(nil) {
		t.Fatalf("empty-file digest mismatch: %s", fp)
	}
}
