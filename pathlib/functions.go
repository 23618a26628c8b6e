package pathlib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading tilde segment against the user's home
// directory. The whole `~` segment is dropped, so both a bare "~" and
// "~/nested/path" expand correctly. Paths without a leading tilde are
// returned verbatim.
func Expand(entry string) (string, error) {
	if entry != "~" && !strings.HasPrefix(entry, "~"+string(os.PathSeparator)) && !strings.HasPrefix(entry, "~/") {
		return entry, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	remainder := strings.TrimPrefix(entry, "~")
	remainder = strings.TrimLeft(remainder, "/"+string(os.PathSeparator))
	if len(remainder) == 0 {
		return home, nil
	}
	return filepath.Join(home, remainder), nil
}

// EnsureDirectory creates the directory (and parents) when missing and
// verifies the result is actually a directory.
func EnsureDirectory(directory string) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", err
	}
	stats, err := os.Stat(directory)
	if err != nil {
		return "", err
	}
	if !stats.IsDir() {
		return "", fmt.Errorf("path %q exists but is not a directory", directory)
	}
	return directory, nil
}

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsDir(pathname string) bool {
	stats, err := os.Stat(pathname)
	return err == nil && stats.IsDir()
}

func IsFile(pathname string) bool {
	stats, err := os.Stat(pathname)
	return err == nil && !stats.IsDir()
}
