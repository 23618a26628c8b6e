package storage

import (
	"strings"
	"time"
)

const (
	KindExtension = "extensions"
	KindProfile   = "profiles"
)

// McpServer mirrors the server block the Gemini CLI expects inside an
// extension manifest. The exact shape is the external tool's contract;
// gemdeck only carries it through.
type McpServer struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	Cwd     string            `json:"cwd,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// Extension is a reusable plugin descriptor. Id doubles as the storage
// filename stem and as the install directory name inside a workspace.
type Extension struct {
	Id          string               `json:"id"`
	Name        string               `json:"name"`
	Version     string               `json:"version"`
	Description string               `json:"description,omitempty"`
	McpServers  map[string]McpServer `json:"mcp_servers,omitempty"`
	Context     string               `json:"context,omitempty"`
}

// LaunchConfig is the per-profile workspace policy. Records written before
// this block existed load with DefaultLaunchConfig values; that defaulting
// is a permanent compatibility contract, not a migration.
type LaunchConfig struct {
	CleanLaunch        bool     `json:"clean_launch"`
	CleanupOnExit      bool     `json:"cleanup_on_exit"`
	PreserveExtensions []string `json:"preserve_extensions"`
}

func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		CleanLaunch:        false,
		CleanupOnExit:      true,
		PreserveExtensions: []string{},
	}
}

type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []string  `json:"tags"`
	IsDefault bool      `json:"is_default"`
	Icon      string    `json:"icon,omitempty"`
}

// Profile is a named launch configuration. ExtensionIds keeps install
// order and may reference extensions that no longer exist; the launcher
// treats those as per-item failures.
type Profile struct {
	Id                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description,omitempty"`
	ExtensionIds         []string          `json:"extension_ids"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
	WorkingDirectory     string            `json:"working_directory,omitempty"`
	LaunchConfig         LaunchConfig      `json:"launch_config"`
	Metadata             Metadata          `json:"metadata"`
}

func (it *Extension) normalize() {
	it.Id = strings.TrimSpace(it.Id)
	if it.McpServers == nil {
		it.McpServers = map[string]McpServer{}
	}
}

func (it *Profile) normalize() {
	it.Id = strings.TrimSpace(it.Id)
	if it.ExtensionIds == nil {
		it.ExtensionIds = []string{}
	}
	if it.EnvironmentVariables == nil {
		it.EnvironmentVariables = map[string]string{}
	}
	if it.LaunchConfig.PreserveExtensions == nil {
		it.LaunchConfig.PreserveExtensions = []string{}
	}
	if it.Metadata.Tags == nil {
		it.Metadata.Tags = []string{}
	}
}

// Preserved tells whether an installed extension survives workspace
// cleanup after the tool exits.
func (it LaunchConfig) Preserved(extensionId string) bool {
	for _, candidate := range it.PreserveExtensions {
		if candidate == extensionId {
			return true
		}
	}
	return false
}
