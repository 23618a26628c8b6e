package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/pathlib"
)

func TestExpandHandlesTildeSegment(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	home, err := os.UserHomeDir()
	must.Nil(err)
	wont.Equal("", home)

	expanded, err := pathlib.Expand("~/test-dir")
	must.Nil(err)
	must.Equal(filepath.Join(home, "test-dir"), expanded)

	expanded, err = pathlib.Expand("~")
	must.Nil(err)
	must.Equal(home, expanded)

	expanded, err = pathlib.Expand("/absolute/path")
	must.Nil(err)
	must.Equal("/absolute/path", expanded)

	// an embedded tilde is not a home reference
	expanded, err = pathlib.Expand("some/~thing")
	must.Nil(err)
	must.Equal("some/~thing", expanded)
}

func TestEnsureDirectory(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	target := filepath.Join(t.TempDir(), "deep", "nested", "dir")
	must.True(!pathlib.Exists(target))

	created, err := pathlib.EnsureDirectory(target)
	must.Nil(err)
	must.Equal(target, created)
	must.True(pathlib.IsDir(target))

	// second call over an existing directory is a no-op
	_, err = pathlib.EnsureDirectory(target)
	must.Nil(err)
}

func TestExistenceProbes(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	base := t.TempDir()
	file := filepath.Join(base, "probe.txt")
	must.Nil(os.WriteFile(file, []byte("content"), 0o644))

	must.True(pathlib.Exists(file))
	must.True(pathlib.IsFile(file))
	must.True(!pathlib.IsDir(file))
	must.True(pathlib.IsDir(base))
	must.True(!pathlib.Exists(filepath.Join(base, "missing")))
}
