package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/settings"
	"github.com/gemdeck/gemdeck/storage"
)

func testLauncher(t *testing.T) (*Launcher, *storage.Store) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}
	config := settings.Defaults()
	config.Workspaces.Root = t.TempDir()
	return New(store, config), store
}

func storedExtension(t *testing.T, store *storage.Store, id, name string) {
	t.Helper()
	err := store.SaveExtension(&storage.Extension{
		Id:      id,
		Name:    name,
		Version: "0.1.0",
		McpServers: map[string]storage.McpServer{
			"main": {Command: "server", Args: []string{"--stdio"}},
		},
	})
	if err != nil {
		t.Fatalf("cannot store extension %q: %v", id, err)
	}
}

func TestWorkspaceScenarioSetupInstallPrepare(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, store := testLauncher(t)
	storedExtension(t, store, "e1", "First")
	storedExtension(t, store, "e2", "Second")

	profile := &storage.Profile{
		Id:                   "scenario",
		Name:                 "scenario profile",
		ExtensionIds:         []string{"e1", "e2"},
		EnvironmentVariables: map[string]string{"TEST_VAR": "v"},
		WorkingDirectory:     "~/scenario-dir",
		LaunchConfig:         storage.DefaultLaunchConfig(),
	}
	must_be.Nil(store.SaveProfile(profile))

	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	installed, failures, err := sut.InstallExtensions(profile, workspace)
	must_be.Nil(err)
	must_be.Equal(0, len(failures))
	must_be.Equal([]string{"e1", "e2"}, installed)

	for _, id := range installed {
		manifest := filepath.Join(ExtensionRoot(workspace), id, manifestFileName)
		stats, err := os.Stat(manifest)
		must_be.Nil(err)
		wont_be.True(stats.IsDir())
	}

	env := PrepareEnvironment(profile)
	must_be.Equal("v", env["TEST_VAR"])
	must_be.Equal("scenario", env[ProfileVariable])
}

func TestSetupWorkspaceIsIdempotentAndNonDestructive(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, _ := testLauncher(t)
	profile := &storage.Profile{Id: "twice", LaunchConfig: storage.DefaultLaunchConfig()}

	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	unrelated := filepath.Join(workspace, "notes.txt")
	must_be.Nil(os.WriteFile(unrelated, []byte("keep me"), 0o644))

	again, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)
	must_be.Equal(workspace, again)

	content, err := os.ReadFile(unrelated)
	must_be.Nil(err)
	must_be.Equal("keep me", string(content))
}

func TestSetupWorkspaceRefusesForeignMarker(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, _ := testLauncher(t)
	first := &storage.Profile{Id: "owner", LaunchConfig: storage.DefaultLaunchConfig()}
	workspace, err := sut.SetupWorkspace(first)
	must_be.Nil(err)

	// Same directory, different profile identity.
	impostor := &storage.Profile{Id: "impostor", LaunchConfig: storage.DefaultLaunchConfig()}
	err = claimWorkspace(workspace, impostor.Id)
	wont_be.Nil(err)
}

func TestInstallExtensionsMissingIsPerItemFailure(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, store := testLauncher(t)
	storedExtension(t, store, "present", "Present")

	profile := &storage.Profile{
		Id:           "partial",
		ExtensionIds: []string{"ghost", "present"},
		LaunchConfig: storage.DefaultLaunchConfig(),
	}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	installed, failures, err := sut.InstallExtensions(profile, workspace)
	must_be.Nil(err)
	must_be.Equal([]string{"present"}, installed)
	must_be.Equal(1, len(failures))
	must_be.Equal("ghost", failures[0].ExtensionId)
	must_be.True(storage.IsNotFound(failures[0].Err))
}

func TestInstallExtensionsFailsWhenNothingInstallable(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, _ := testLauncher(t)
	profile := &storage.Profile{
		Id:           "hopeless",
		ExtensionIds: []string{"ghost-1", "ghost-2"},
		LaunchConfig: storage.DefaultLaunchConfig(),
	}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	installed, failures, err := sut.InstallExtensions(profile, workspace)
	wont_be.Nil(err)
	must_be.Equal(0, len(installed))
	must_be.Equal(2, len(failures))
}

func TestInstallExtensionsNoneRequestedIsFine(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, _ := testLauncher(t)
	profile := &storage.Profile{Id: "empty", LaunchConfig: storage.DefaultLaunchConfig()}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	installed, failures, err := sut.InstallExtensions(profile, workspace)
	must_be.Nil(err)
	must_be.Equal(0, len(installed))
	must_be.Equal(0, len(failures))
}

func TestDiscardWorkspaceHonorsOwnership(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, _ := testLauncher(t)
	profile := &storage.Profile{Id: "mine", LaunchConfig: storage.DefaultLaunchConfig()}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)

	must_be.Nil(sut.DiscardWorkspace(profile))
	must_be.True(!pathExists(workspace))

	// A directory without our marker stays untouched.
	foreign := sut.WorkspacePath(profile)
	must_be.Nil(os.MkdirAll(foreign, 0o755))
	err = sut.DiscardWorkspace(profile)
	wont_be.Nil(err)
	must_be.True(pathExists(foreign))
}

func TestCleanupWorkspaceRetainsPreservedExtensions(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, store := testLauncher(t)
	storedExtension(t, store, "keep", "Kept")
	storedExtension(t, store, "drop", "Dropped")

	profile := &storage.Profile{
		Id:           "cleanup",
		ExtensionIds: []string{"keep", "drop"},
		LaunchConfig: storage.LaunchConfig{
			CleanupOnExit:      true,
			PreserveExtensions: []string{"keep"},
		},
	}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)
	_, _, err = sut.InstallExtensions(profile, workspace)
	must_be.Nil(err)

	must_be.Nil(cleanupWorkspace(profile, workspace))
	must_be.True(pathExists(filepath.Join(ExtensionRoot(workspace), "keep", manifestFileName)))
	must_be.True(!pathExists(filepath.Join(ExtensionRoot(workspace), "drop")))
}

func TestCleanupWorkspaceRemovesEverythingWithoutPreserveList(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, store := testLauncher(t)
	storedExtension(t, store, "gone", "Gone")

	profile := &storage.Profile{
		Id:           "vanish",
		ExtensionIds: []string{"gone"},
		LaunchConfig: storage.DefaultLaunchConfig(),
	}
	workspace, err := sut.SetupWorkspace(profile)
	must_be.Nil(err)
	_, _, err = sut.InstallExtensions(profile, workspace)
	must_be.Nil(err)

	must_be.Nil(cleanupWorkspace(profile, workspace))
	must_be.True(!pathExists(workspace))
}

func pathExists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}
