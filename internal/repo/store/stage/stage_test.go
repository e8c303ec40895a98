package stage_test

import (
	"testing"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/stage"
)

func newTestStage(t *testing.T) *stage.Stage {
	t.Helper()
	cfg := config.NewRepoConfig(t.TempDir())
	fsys := fs.NewOSFS()
	if err := fsys.MkdirAll(cfg.StagingPath(), 0o755); err != nil {
		t.Fatal(err)
	}
	s := stage.NewStage(cfg, fsys)
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFreshStageIsEmpty(t *testing.T) {
	s := newTestStage(t)

	addition, err := s.ReadAddition()
	if err != nil {
		t.Fatal(err)
	}
	if len(addition) != 0 {
		t.Fatalf("expected empty addition, got %v", addition)
	}

	removal, err := s.ReadRemoval()
	if err != nil {
		t.Fatal(err)
	}
	if len(removal) != 0 {
		t.Fatalf("expected empty removal, got %v", removal)
	}

	empty, err := s.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("expected empty stage: %v %v", empty, err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStage(t)

	if err := s.WriteAddition(map[string]string{"a.txt": "fp-a", "b.txt": "fp-b"}); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteRemoval(map[string]struct{}{"c.txt": {}}); err != nil {
		t.Fatal(err)
	}

	addition, err := s.ReadAddition()
	if err != nil {
		t.Fatal(err)
	}
	if addition["a.txt"] != "fp-a" || addition["b.txt"] != "fp-b" || len(addition) != 2 {
		t.Fatalf("unexpected addition %v", addition)
	}

	removal, err := s.ReadRemoval()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := removal["c.txt"]; !ok || len(removal) != 1 {
		t.Fatalf("unexpected removal %v", removal)
	}

	empty, err := s.IsEmpty()
	if err != nil || empty {
		t.Fatal("stage should not be empty")
	}
}

func TestClear(t *testing.T) {
	s := newTestStage(t)

	s.WriteAddition(map[string]string{"x": "1"})
	s.WriteRemoval(map[string]struct{}{"y": {}})

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}

	empty, err := s.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("expected empty after clear: %v %v", empty, err)
	}
}
