package repotools

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
	"github.com/keshon/gitlet/internal/progress"
	"github.com/keshon/gitlet/internal/util"
)

// Report summarizes an integrity scan over the object stores.
type Report struct {
	BlobsChecked   int
	CommitsChecked int
	Corrupt        []string
}

// OK reports whether every object hashed back to its file name.
func (r *Report) OK() bool {
	return len(r.Corrupt) == 0
}

func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("checked %d blobs, %d commits: all objects match their fingerprints",
			r.BlobsChecked, r.CommitsChecked)
	}
	out := fmt.Sprintf("checked %d blobs, %d commits: %d corrupt object(s)",
		r.BlobsChecked, r.CommitsChecked, len(r.Corrupt))
	for _, name := range r.Corrupt {
		out += "\n  " + name
	}
	return out
}

// VerifyObjects re-hashes every blob and commit record and compares the
// digest to the file name the object is stored under.
func VerifyObjects(cfg *config.RepoConfig, fsys fs.FS, showProgress bool) (*Report, error) {
	type object struct {
		kind string
		name string
		path string
	}

	var objects []object
	for _, dir := range []struct {
		kind string
		path string
	}{
		{"blob", cfg.BlobsPath()},
		{"commit", cfg.CommitsPath()},
	} {
		entries, err := fsys.ReadDir(dir.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s store: %w", dir.kind, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			objects = append(objects, object{
				kind: dir.kind,
				name: e.Name(),
				path: filepath.Join(dir.path, e.Name()),
			})
		}
	}

	var tracker *progress.Tracker
	if showProgress {
		tracker = progress.New(len(objects), "verifying objects")
	}

	report := &Report{}
	var mu sync.Mutex

	err := util.Parallel(objects, util.WorkerCount(), func(obj object) error {
		data, err := fsys.ReadFile(obj.path)
		if err != nil {
			return fmt.Errorf("failed to read %s %q: %w", obj.kind, obj.name, err)
		}
		ok := hash.Digest(data) == obj.name

		mu.Lock()
		switch obj.kind {
		case "blob":
			report.BlobsChecked++
		case "commit":
			report.CommitsChecked++
		}
		if !ok {
			report.Corrupt = append(report.Corrupt, obj.kind+" "+obj.name)
		}
		mu.Unlock()

		if tracker != nil {
			tracker.Increment()
		}
		return nil
	})

	if tracker != nil {
		tracker.Finish()
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(report.Corrupt)
	return report, nil
}
