package common

import (
	"os"
	"path/filepath"
)

type (
	// ProductStrategy resolves where gemdeck keeps its catalog, settings
	// and workspaces. Tests use ForceHome to point it at a throwaway
	// directory.
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		ExtensionsDir() string
		ProfilesDir() string
		WorkspacesDir() string
		SettingsYamlFile() string
		StateFile() string
	}

	gemdeckStrategy struct {
		forcedHome string
	}
)

func GemdeckMode() ProductStrategy {
	return &gemdeckStrategy{}
}

func (it *gemdeckStrategy) Name() string {
	return GEMDECK_NAME
}

func (it *gemdeckStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *gemdeckStrategy) HomeVariable() string {
	return GEMDECK_HOME_VARIABLE
}

func (it *gemdeckStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(GEMDECK_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *gemdeckStrategy) ExtensionsDir() string {
	return filepath.Join(it.Home(), "extensions")
}

func (it *gemdeckStrategy) ProfilesDir() string {
	return filepath.Join(it.Home(), "profiles")
}

func (it *gemdeckStrategy) WorkspacesDir() string {
	return filepath.Join(it.Home(), "workspaces")
}

func (it *gemdeckStrategy) SettingsYamlFile() string {
	return filepath.Join(it.Home(), "settings.yaml")
}

func (it *gemdeckStrategy) StateFile() string {
	return filepath.Join(it.Home(), "gemdeck.yaml")
}
