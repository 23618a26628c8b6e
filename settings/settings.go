package settings

import (
	"os"
	"time"

	"github.com/gemdeck/gemdeck/common"
	"gopkg.in/yaml.v2"
)

const (
	defaultToolCommand   = "gemini"
	defaultTickInterval  = 1000
	defaultFrameInterval = 250
)

// Settings is the explicit configuration value handed to the TUI and the
// launcher at startup. It is loaded once from settings.yaml under the data
// directory; a missing file yields defaults.
type Settings struct {
	Tool       Tool       `yaml:"tool"`
	UI         UI         `yaml:"ui"`
	Workspaces Workspaces `yaml:"workspaces"`
}

type Tool struct {
	// Command is the external tool invocation, shell-style. It is split
	// with shlex at launch time, so quoted arguments survive.
	Command string `yaml:"command"`
}

type UI struct {
	TickIntervalMs  int `yaml:"tick-interval-ms"`
	FrameIntervalMs int `yaml:"frame-interval-ms"`
}

type Workspaces struct {
	// Root overrides where per-profile workspaces are materialized.
	Root string `yaml:"root"`
}

func Defaults() *Settings {
	return &Settings{
		Tool: Tool{Command: defaultToolCommand},
		UI: UI{
			TickIntervalMs:  defaultTickInterval,
			FrameIntervalMs: defaultFrameInterval,
		},
	}
}

// FromBytes parses raw YAML over the default settings, so partial files
// only override what they mention.
func FromBytes(content []byte) (*Settings, error) {
	result := Defaults()
	err := yaml.Unmarshal(content, result)
	if err != nil {
		return nil, err
	}
	result.normalize()
	return result, nil
}

// Load reads settings from the product settings file. A missing file is
// not an error; defaults apply.
func Load() (*Settings, error) {
	content, err := os.ReadFile(common.Product.SettingsYamlFile())
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, err
	}
	return FromBytes(content)
}

func (it *Settings) normalize() {
	if len(it.Tool.Command) == 0 {
		it.Tool.Command = defaultToolCommand
	}
	if it.UI.TickIntervalMs <= 0 {
		it.UI.TickIntervalMs = defaultTickInterval
	}
	if it.UI.FrameIntervalMs <= 0 {
		it.UI.FrameIntervalMs = defaultFrameInterval
	}
}

func (it *Settings) TickInterval() time.Duration {
	return time.Duration(it.UI.TickIntervalMs) * time.Millisecond
}

func (it *Settings) FrameInterval() time.Duration {
	return time.Duration(it.UI.FrameIntervalMs) * time.Millisecond
}

// WorkspaceRoot resolves where workspaces live, preferring the settings
// override over the product default.
func (it *Settings) WorkspaceRoot() string {
	if len(it.Workspaces.Root) > 0 {
		return common.ExpandPath(it.Workspaces.Root)
	}
	return common.Product.WorkspacesDir()
}
