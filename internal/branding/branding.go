// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; edit it and rebuild
// to point the generator at a fork of the extension.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigName  string `yaml:"config_name"`
	GitHubRepo  string `yaml:"github_repo"`
	ImageRoot   string `yaml:"image_root"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "readmegen",
			DisplayName: "QSkinny ReadMe Generator",
			Description: "Generate the QSkinny VS Code extension ReadMe from its manifest",
			EnvPrefix:   "READMEGEN",
			ConfigName:  ".readmegen",
			GitHubRepo:  "vrcomputing/qskinny_vs_code_plugin",
			ImageRoot:   "https://github.com/vrcomputing/qskinny_vs_code_plugin/raw/main/qskinny/doc",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "readmegen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "READMEGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the settings file name without extension, looked up in
// the generation root (e.g., ".readmegen" for .readmegen.yaml).
func ConfigName() string { load(); return defaults.ConfigName }

// GitHubRepo returns the "owner/repo" string of the documented extension.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ImageRoot returns the default hosted root for the GIFs linked from the ReadMe.
func ImageRoot() string { load(); return defaults.ImageRoot }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "READMEGEN_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
