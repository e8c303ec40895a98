package fs

import (
	"io"
	"os"
)

// Hooks used by OSFS, overridable in tests.
var (
	readFile  = os.ReadFile
	writeFile = os.WriteFile
	mkdirAll  = os.MkdirAll
	remove    = os.Remove
	rename    = os.Rename
	stat      = os.Stat
	readDir   = os.ReadDir

	createTemp = func(dir, pattern string) (io.WriteCloser, string, error) {
		f, err := os.CreateTemp(dir, pattern)
		if err != nil {
			return nil, "", err
		}
		return f, f.Name(), nil
	}

	isNotExist = os.IsNotExist
)
