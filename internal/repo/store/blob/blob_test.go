package blob_test

import (
	"bytes"
	"testing"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
	"github.com/keshon/gitlet/internal/repo/store/blob"
)

func newTestStore(t *testing.T) *blob.Store {
	t.Helper()
	cfg := config.NewRepoConfig(t.TempDir())
	fsys := fs.NewOSFS()
	if err := fsys.MkdirAll(cfg.BlobsPath(), 0o755); err != nil {
		t.Fatal(err)
	}
	return blob.NewStore(cfg, fsys)
}

func TestPutGet(t *testing.T) {
	s := newTestStore(t)

	data := []byte("file contents\n")
	fp, err := s.Put(data)
	if err != nil {
		t.Fatal(err)
	}
	if fp != hash.Digest(data) {
		t.Fatalf("fingerprint %s is not the digest of the contents", fp)
	}
	if !s.Exists(fp) {
		t.Fatal("blob missing after put")
	}

	got, err := s.Get(fp)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("expected %q, got %q", data, got)
	}
}

func TestPutIdempotent(t *testing.T) {
	s := newTestStore(t)

	data := []byte("same bytes")
	fp1, err := s.Put(data)
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := s.Put(data)
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Fatalf("idempotent put changed fingerprint: %s vs %s", fp1, fp2)
	}

	fps, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(fps) != 1 {
		t.Fatalf("expected one stored blob, got %d", len(fps))
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("0123456789012345678901234567890123456789"); err == nil {
		t.Fatal("expected error for missing blob")
	}
	if s.Exists("") {
		t.Fatal("empty fingerprint should not exist")
	}
}
