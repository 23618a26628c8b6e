package storage

import (
	"encoding/json"
	"testing"

	"github.com/gemdeck/gemdeck/hamlet"
)

func TestDefaultLaunchConfig(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := DefaultLaunchConfig()
	must_be.Equal(false, sut.CleanLaunch)
	must_be.Equal(true, sut.CleanupOnExit)
	must_be.Equal([]string{}, sut.PreserveExtensions)
}

func TestLaunchConfigPreserved(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := LaunchConfig{PreserveExtensions: []string{"keep-me"}}
	must_be.True(sut.Preserved("keep-me"))
	wont_be.True(sut.Preserved("drop-me"))
	wont_be.True(DefaultLaunchConfig().Preserved("anything"))
}

func TestDecodeProfileAppliesDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	profile, err := decodeProfile("p1", []byte(`{"name": "bare"}`))
	must_be.Nil(err)
	must_be.Equal("p1", profile.Id)
	must_be.Equal([]string{}, profile.ExtensionIds)
	must_be.Equal(map[string]string{}, profile.EnvironmentVariables)
	must_be.Equal(DefaultLaunchConfig(), profile.LaunchConfig)
	must_be.Equal([]string{}, profile.Metadata.Tags)
}

func TestDecodeProfileKeepsStoredLaunchConfig(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	content := []byte(`{"name": "strict", "launch_config": {"clean_launch": true, "cleanup_on_exit": false, "preserve_extensions": ["e1"]}}`)
	profile, err := decodeProfile("p2", content)
	must_be.Nil(err)
	must_be.Equal(true, profile.LaunchConfig.CleanLaunch)
	must_be.Equal(false, profile.LaunchConfig.CleanupOnExit)
	must_be.Equal([]string{"e1"}, profile.LaunchConfig.PreserveExtensions)
}

func TestProfileSerializesLaunchConfigAlways(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	profile := &Profile{Id: "p", Name: "n", LaunchConfig: DefaultLaunchConfig()}
	profile.normalize()
	content, err := json.Marshal(profile)
	must_be.Nil(err)

	raw := map[string]json.RawMessage{}
	must_be.Nil(json.Unmarshal(content, &raw))
	_, present := raw["launch_config"]
	must_be.True(present)
}
