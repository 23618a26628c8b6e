package settings_test

import (
	"testing"
	"time"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/settings"
)

func TestSettingsDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := settings.Defaults()
	must_be.Equal("gemini", sut.Tool.Command)
	must_be.Equal(time.Second, sut.TickInterval())
	must_be.Equal(250*time.Millisecond, sut.FrameInterval())
}

func TestSettingsPartialYamlKeepsDefaults(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	content := []byte("tool:\n  command: \"gemini --sandbox\"\nui:\n  tick-interval-ms: 2000\n")
	sut, err := settings.FromBytes(content)
	must_be.Nil(err)
	wont_be.Nil(sut)

	must_be.Equal("gemini --sandbox", sut.Tool.Command)
	must_be.Equal(2*time.Second, sut.TickInterval())
	must_be.Equal(250*time.Millisecond, sut.FrameInterval())
}

func TestSettingsRejectBrokenYaml(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := settings.FromBytes([]byte(":\n\t- not yaml"))
	must_be.True(err != nil)
}

func TestSettingsWorkspaceRootFallback(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	home := t.TempDir()
	common.Product.ForceHome(home)
	defer common.Product.ForceHome("")

	sut := settings.Defaults()
	must_be.Equal(common.Product.WorkspacesDir(), sut.WorkspaceRoot())
}

func TestSettingsLoadMissingFileYieldsDefaults(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	sut, err := settings.Load()
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal("gemini", sut.Tool.Command)
}
