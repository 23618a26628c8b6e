package launcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/launcher"
	"github.com/gemdeck/gemdeck/storage"
)

func TestPrepareEnvironmentInjectsProfileId(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	profile := &storage.Profile{
		Id:                   "p-42",
		EnvironmentVariables: map[string]string{"TEST_VAR": "v"},
	}
	env := launcher.PrepareEnvironment(profile)
	must_be.Equal("v", env["TEST_VAR"])
	must_be.Equal("p-42", env[launcher.ProfileVariable])
	must_be.Equal(2, len(env))
}

func TestPrepareEnvironmentInjectedValueWins(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	profile := &storage.Profile{
		Id: "p-43",
		EnvironmentVariables: map[string]string{
			launcher.ProfileVariable: "spoofed",
		},
	}
	env := launcher.PrepareEnvironment(profile)
	must_be.Equal("p-43", env[launcher.ProfileVariable])
}

func TestWorkingDirectoryTildeExpansion(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	home, err := os.UserHomeDir()
	must_be.Nil(err)

	resolved, err := launcher.ResolveWorkingDirectory(&storage.Profile{WorkingDirectory: "~/test-dir"})
	must_be.Nil(err)
	must_be.Equal(filepath.Join(home, "test-dir"), resolved)

	resolved, err = launcher.ResolveWorkingDirectory(&storage.Profile{WorkingDirectory: "~"})
	must_be.Nil(err)
	must_be.Equal(home, resolved)
}

func TestWorkingDirectoryVerbatimWithoutTilde(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	literal := filepath.Join(string(os.PathSeparator), "var", "tmp", "elsewhere")
	resolved, err := launcher.ResolveWorkingDirectory(&storage.Profile{WorkingDirectory: literal})
	must_be.Nil(err)
	must_be.Equal(literal, resolved)
}

func TestWorkingDirectoryDefaultsToCwd(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	cwd, err := os.Getwd()
	must_be.Nil(err)
	resolved, err := launcher.ResolveWorkingDirectory(&storage.Profile{})
	must_be.Nil(err)
	must_be.Equal(cwd, resolved)
}
