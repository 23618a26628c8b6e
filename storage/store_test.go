package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/storage"
)

func freshStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("cannot create store: %v", err)
	}
	return store
}

func someExtension(id string) *storage.Extension {
	return &storage.Extension{
		Id:          id,
		Name:        "Weather Tools",
		Version:     "1.2.0",
		Description: "Forecast lookups over MCP",
		McpServers: map[string]storage.McpServer{
			"weather": {
				Command: "weather-mcp",
				Args:    []string{"--json"},
				Env:     map[string]string{"UNITS": "metric"},
			},
		},
	}
}

func someProfile(id string) *storage.Profile {
	return &storage.Profile{
		Id:                   id,
		Name:                 "daily driver",
		Description:          "default working setup",
		ExtensionIds:         []string{"ext-1", "ext-2"},
		EnvironmentVariables: map[string]string{"TEST_VAR": "v"},
		WorkingDirectory:     "~/work",
		LaunchConfig:         storage.DefaultLaunchConfig(),
	}
}

func TestExtensionRoundTrip(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	original := someExtension("ext-roundtrip")
	must_be.Nil(store.SaveExtension(original))

	loaded, err := store.LoadExtension("ext-roundtrip")
	must_be.Nil(err)
	must_be.Equal(original, loaded)
}

func TestProfileRoundTripRefreshesUpdatedAt(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	store := freshStore(t)
	original := someProfile("profile-roundtrip")
	before := time.Now().UTC()
	must_be.Nil(store.SaveProfile(original))

	wont_be.True(original.Metadata.CreatedAt.IsZero())
	must_be.True(!original.Metadata.UpdatedAt.Before(before))

	loaded, err := store.LoadProfile("profile-roundtrip")
	must_be.Nil(err)
	must_be.Equal(original.ExtensionIds, loaded.ExtensionIds)
	must_be.Equal(original.EnvironmentVariables, loaded.EnvironmentVariables)
	must_be.Equal(original.LaunchConfig, loaded.LaunchConfig)
	must_be.True(loaded.Metadata.UpdatedAt.Equal(original.Metadata.UpdatedAt))

	created := loaded.Metadata.CreatedAt
	must_be.Nil(store.SaveProfile(loaded))
	must_be.True(loaded.Metadata.CreatedAt.Equal(created))
	must_be.True(!loaded.Metadata.UpdatedAt.Before(created))
}

func TestLegacyProfileWithoutLaunchConfigLoadsDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	legacy := `{
  "id": "legacy",
  "name": "old timer",
  "extension_ids": ["ext-1"],
  "environment_variables": {"A": "1"},
  "metadata": {"created_at": "2023-01-02T03:04:05Z", "updated_at": "2023-01-02T03:04:05Z", "tags": [], "is_default": false}
}`
	target := filepath.Join(store.Root(), storage.KindProfile, "legacy.json")
	must_be.Nil(os.WriteFile(target, []byte(legacy), 0o644))

	profile, err := store.LoadProfile("legacy")
	must_be.Nil(err)
	must_be.Equal(false, profile.LaunchConfig.CleanLaunch)
	must_be.Equal(true, profile.LaunchConfig.CleanupOnExit)
	must_be.Equal([]string{}, profile.LaunchConfig.PreserveExtensions)
}

func TestLoadMissingRecordIsNotFound(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	_, err := store.LoadProfile("nothing-here")
	must_be.True(storage.IsNotFound(err))
	_, err = store.LoadExtension("nothing-here")
	must_be.True(storage.IsNotFound(err))
}

func TestLoadBrokenRecordIsParseError(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	target := filepath.Join(store.Root(), storage.KindExtension, "broken.json")
	must_be.Nil(os.WriteFile(target, []byte("{ not json"), 0o644))

	_, err := store.LoadExtension("broken")
	must_be.True(storage.IsParseError(err))
}

func TestListSkipsMalformedRecords(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	must_be.Nil(store.SaveExtension(someExtension("ext-a")))
	must_be.Nil(store.SaveExtension(someExtension("ext-b")))

	target := filepath.Join(store.Root(), storage.KindExtension, "ext-c.json")
	must_be.Nil(os.WriteFile(target, []byte("]]]"), 0o644))

	extensions, failures, err := store.ListExtensions()
	must_be.Nil(err)
	must_be.Equal(2, len(extensions))
	must_be.Equal(1, len(failures))
	must_be.Equal("ext-c", failures[0].Id)
	must_be.True(storage.IsParseError(failures[0].Err))
}

func TestSaveLeavesNoPartFilesBehind(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	must_be.Nil(store.SaveProfile(someProfile("tidy")))

	entries, err := os.ReadDir(filepath.Join(store.Root(), storage.KindProfile))
	must_be.Nil(err)
	must_be.Equal(1, len(entries))
	must_be.Equal("tidy.json", entries[0].Name())
}

func TestDeleteRemovesRecord(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	must_be.Nil(store.SaveExtension(someExtension("doomed")))
	must_be.Nil(store.DeleteExtension("doomed"))
	_, err := store.LoadExtension("doomed")
	must_be.True(storage.IsNotFound(err))
	must_be.True(storage.IsNotFound(store.DeleteExtension("doomed")))
}

func TestFilenameStemWinsOverEmbeddedId(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	store := freshStore(t)
	content := `{"id": "other", "name": "x", "version": "0.1.0"}`
	target := filepath.Join(store.Root(), storage.KindExtension, "stem.json")
	must_be.Nil(os.WriteFile(target, []byte(content), 0o644))

	extension, err := store.LoadExtension("stem")
	must_be.Nil(err)
	must_be.Equal("stem", extension.Id)
}

func TestDefaultProfileLookup(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	store := freshStore(t)
	plain := someProfile("plain")
	must_be.Nil(store.SaveProfile(plain))

	found, err := store.DefaultProfile()
	must_be.Nil(err)
	must_be.Nil(found)

	favorite := someProfile("favorite")
	favorite.Metadata.IsDefault = true
	must_be.Nil(store.SaveProfile(favorite))

	found, err = store.DefaultProfile()
	must_be.Nil(err)
	wont_be.Nil(found)
	must_be.Equal("favorite", found.Id)
}
