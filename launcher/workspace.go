package launcher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dchest/siphash"
	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pathlib"
	"github.com/gemdeck/gemdeck/storage"
)

const (
	configDirName     = ".gemini"
	extensionsDirName = "extensions"
	markerFileName    = ".gemdeck"
	manifestFileName  = "gemini-extension.json"
	contextFileName   = "GEMINI.md"
)

// Fixed siphash keys for workspace ownership fingerprints. Changing these
// invalidates every existing marker.
const (
	markerKey0 = 0x67656d6465636b00
	markerKey1 = 0x776f726b73706163
)

// InstallFailure records one extension that could not be installed. It
// never aborts installation of the remaining extensions.
type InstallFailure struct {
	ExtensionId string
	Err         error
}

func (it InstallFailure) Error() string {
	return fmt.Sprintf("extension %q: %v", it.ExtensionId, it.Err)
}

func workspaceFingerprint(profileId string) string {
	return fmt.Sprintf("%016x", siphash.Hash(markerKey0, markerKey1, []byte(profileId)))
}

// WorkspacePath is the deterministic workspace location for a profile.
func (it *Launcher) WorkspacePath(profile *storage.Profile) string {
	return filepath.Join(it.config.WorkspaceRoot(), profile.Id)
}

// ExtensionRoot is the subtree the external tool treats as its extension
// root inside a workspace.
func ExtensionRoot(workspace string) string {
	return filepath.Join(workspace, configDirName, extensionsDirName)
}

// SetupWorkspace creates the workspace root and the fixed config subtree.
// It is idempotent over an existing workspace and never deletes content,
// but refuses a directory whose ownership marker belongs to a different
// profile.
func (it *Launcher) SetupWorkspace(profile *storage.Profile) (string, error) {
	workspace := it.WorkspacePath(profile)
	if _, err := pathlib.EnsureDirectory(ExtensionRoot(workspace)); err != nil {
		return "", fmt.Errorf("cannot create workspace %q: %w", workspace, err)
	}
	if err := claimWorkspace(workspace, profile.Id); err != nil {
		return "", err
	}
	common.Debug("workspace ready at %q", workspace)
	return workspace, nil
}

func claimWorkspace(workspace, profileId string) error {
	marker := filepath.Join(workspace, markerFileName)
	expected := workspaceFingerprint(profileId)
	content, err := os.ReadFile(marker)
	if err == nil {
		if string(content) != expected {
			return fmt.Errorf("directory %q is a workspace of another profile", workspace)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot inspect workspace marker: %w", err)
	}
	return os.WriteFile(marker, []byte(expected), 0o644)
}

func ownedWorkspace(workspace, profileId string) bool {
	content, err := os.ReadFile(filepath.Join(workspace, markerFileName))
	return err == nil && string(content) == workspaceFingerprint(profileId)
}

// DiscardWorkspace removes a profile's workspace entirely. Used for clean
// launches; a directory without a matching marker is left alone.
func (it *Launcher) DiscardWorkspace(profile *storage.Profile) error {
	workspace := it.WorkspacePath(profile)
	if !pathlib.Exists(workspace) {
		return nil
	}
	if !ownedWorkspace(workspace, profile.Id) {
		return fmt.Errorf("refusing to discard %q: not a workspace of profile %q", workspace, profile.Id)
	}
	return os.RemoveAll(workspace)
}

// extensionManifest is the record the Gemini CLI reads from an installed
// extension directory.
type extensionManifest struct {
	Name            string                       `json:"name"`
	Version         string                       `json:"version"`
	Description     string                       `json:"description,omitempty"`
	McpServers      map[string]storage.McpServer `json:"mcpServers,omitempty"`
	ContextFileName string                       `json:"contextFileName,omitempty"`
}

func installExtension(extension *storage.Extension, extensionRoot string) error {
	target, err := pathlib.EnsureDirectory(filepath.Join(extensionRoot, extension.Id))
	if err != nil {
		return err
	}
	manifest := extensionManifest{
		Name:        extension.Name,
		Version:     extension.Version,
		Description: extension.Description,
		McpServers:  extension.McpServers,
	}
	if len(extension.Context) > 0 {
		manifest.ContextFileName = contextFileName
		if err := os.WriteFile(filepath.Join(target, contextFileName), []byte(extension.Context), 0o644); err != nil {
			return err
		}
	}
	content, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(target, manifestFileName), content, 0o644)
}

// InstallExtensions materializes the profile's extensions in declared
// order. Missing or broken extensions become per-item failures; the call
// errors only when every requested extension failed.
func (it *Launcher) InstallExtensions(profile *storage.Profile, workspace string) ([]string, []InstallFailure, error) {
	extensionRoot := ExtensionRoot(workspace)
	installed := []string{}
	failures := []InstallFailure{}
	for _, id := range profile.ExtensionIds {
		extension, err := it.store.LoadExtension(id)
		if err != nil {
			common.Log("Warning: extension %q skipped: %v", id, err)
			failures = append(failures, InstallFailure{ExtensionId: id, Err: err})
			continue
		}
		if err := installExtension(extension, extensionRoot); err != nil {
			common.Log("Warning: extension %q not installed: %v", id, err)
			failures = append(failures, InstallFailure{ExtensionId: id, Err: err})
			continue
		}
		installed = append(installed, id)
	}
	if len(profile.ExtensionIds) > 0 && len(installed) == 0 {
		return installed, failures, fmt.Errorf("none of the %d requested extensions could be installed", len(profile.ExtensionIds))
	}
	return installed, failures, nil
}

// cleanupWorkspace disposes a workspace after the tool exited. Preserved
// extensions keep their installed copies; everything else goes.
func cleanupWorkspace(profile *storage.Profile, workspace string) error {
	if !pathlib.Exists(workspace) {
		return nil
	}
	if !ownedWorkspace(workspace, profile.Id) {
		return fmt.Errorf("refusing to clean %q: not a workspace of profile %q", workspace, profile.Id)
	}
	if len(profile.LaunchConfig.PreserveExtensions) == 0 {
		return os.RemoveAll(workspace)
	}
	extensionRoot := ExtensionRoot(workspace)
	entries, err := os.ReadDir(extensionRoot)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range entries {
		if profile.LaunchConfig.Preserved(entry.Name()) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(extensionRoot, entry.Name())); err != nil {
			return err
		}
	}
	// Drop everything in the workspace root except the config subtree
	// and the ownership marker that still guard the preserved copies.
	level, err := os.ReadDir(workspace)
	if err != nil {
		return err
	}
	for _, entry := range level {
		if entry.Name() == configDirName || entry.Name() == markerFileName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(workspace, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
