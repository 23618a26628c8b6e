package launcher

import (
	"fmt"
	"os"
	"sort"

	"github.com/gemdeck/gemdeck/pathlib"
	"github.com/gemdeck/gemdeck/storage"
)

const (
	// ProfileVariable names the injected environment entry identifying
	// the active profile. It always overrides a same-named user entry.
	ProfileVariable = "GEMDECK_ACTIVE_PROFILE"

	// ExtensionRootVariable hands the workspace extension subtree to the
	// launched tool.
	ExtensionRootVariable = "GEMINI_EXTENSION_ROOT"
)

// PrepareEnvironment assembles the declared variables of a profile plus
// the injected profile identifier.
func PrepareEnvironment(profile *storage.Profile) map[string]string {
	result := make(map[string]string, len(profile.EnvironmentVariables)+1)
	for key, value := range profile.EnvironmentVariables {
		result[key] = value
	}
	result[ProfileVariable] = profile.Id
	return result
}

// ResolveWorkingDirectory picks the directory the tool starts in: the
// profile's declared directory with the `~` segment expanded, or the
// current working directory when the profile declares none.
func ResolveWorkingDirectory(profile *storage.Profile) (string, error) {
	if len(profile.WorkingDirectory) == 0 {
		return os.Getwd()
	}
	resolved, err := pathlib.Expand(profile.WorkingDirectory)
	if err != nil {
		return "", fmt.Errorf("working directory %q: %w", profile.WorkingDirectory, err)
	}
	return resolved, nil
}

// mergedEnviron overlays the prepared variables on the parent process
// environment, sorted for deterministic child startup.
func mergedEnviron(prepared map[string]string) []string {
	overlay := make(map[string]bool, len(prepared))
	result := make([]string, 0, len(os.Environ())+len(prepared))
	for key := range prepared {
		overlay[key] = true
	}
	for _, entry := range os.Environ() {
		key := entry
		for at, char := range entry {
			if char == '=' {
				key = entry[:at]
				break
			}
		}
		if overlay[key] {
			continue
		}
		result = append(result, entry)
	}
	for key, value := range prepared {
		result = append(result, key+"="+value)
	}
	sort.Strings(result)
	return result
}
