package fs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/gitlet/internal/fs"
)

func TestOSFS_WriteReadFile(t *testing.T) {
	tmp := t.TempDir()
	fsys := fs.NewOSFS()

	path := filepath.Join(tmp, "f.txt")
	content := []byte("hello")
	if err := fsys.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	read, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, content) {
		t.Fatalf("expected %q, got %q", content, read)
	}
}

func TestOSFS_MkdirAllAndReadDir(t *testing.T) {
	tmp := t.TempDir()
	fsys := fs.NewOSFS()

	if err := fsys.MkdirAll(filepath.Join(tmp, "a/b"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := fsys.WriteFile(filepath.Join(tmp, "f"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := fsys.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}
	if !names["a"] || names["f"] {
		t.Fatalf("unexpected entries: %v", names)
	}
}

func TestOSFS_RemoveAndExists(t *testing.T) {
	tmp := t.TempDir()
	fsys := fs.NewOSFS()

	path := filepath.Join(tmp, "f")
	os.WriteFile(path, []byte("1"), 0o644)

	if !fsys.Exists(path) {
		t.Fatal("expected file to exist")
	}
	if err := fsys.Remove(path); err != nil {
		t.Fatal(err)
	}
	if fsys.Exists(path) {
		t.Fatal("expected file to be gone")
	}

	_, err := fsys.ReadFile(path)
	if !fsys.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOSFS_CreateTempFileAndRename(t *testing.T) {
	tmp := t.TempDir()
	fsys := fs.NewOSFS()

	wc, tmpPath, err := fsys.CreateTempFile(tmp, "tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wc.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := wc.Close(); err != nil {
		t.Fatal(err)
	}

	final := filepath.Join(tmp, "final")
	if err := fsys.Rename(tmpPath, final); err != nil {
		t.Fatal(err)
	}

	read, err := fsys.ReadFile(final)
	if err != nil {
		t.Fatal(err)
	}
	if string(read) != "payload" {
		t.Fatalf("unexpected contents %q", read)
	}
}

func TestOSFS_IsDir(t *testing.T) {
	tmp := t.TempDir()
	fsys := fs.NewOSFS()

	if !fsys.IsDir(tmp) {
		t.Fatalf("expected %s to be a dir", tmp)
	}
	file := filepath.Join(tmp, "f")
	os.WriteFile(file, []byte("1"), 0o644)
	if fsys.IsDir(file) {
		t.Fatal("file reported as dir")
	}
}
