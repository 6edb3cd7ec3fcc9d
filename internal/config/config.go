package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vrcomputing/readmegen/internal/branding"
	generr "github.com/vrcomputing/readmegen/internal/errors"
)

const fileType = "yaml"

// Setting keys. Flags bound to viper use the same names.
const (
	KeyRoot      = "root"
	KeyManifest  = "manifest"
	KeyDocs      = "docs"
	KeyOutput    = "output"
	KeyImageRoot = "image_root"
)

// Default relative locations, matching the extension repository layout.
const (
	DefaultManifest = "qskinny/package.json"
	DefaultDocs     = "qskinny/doc"
	DefaultOutput   = "qskinny/ReadMe.md"
)

// Settings are the resolved inputs of a generation pass. Paths other than
// Root may be relative to Root.
type Settings struct {
	Root      string `mapstructure:"root" yaml:"root"`
	Manifest  string `mapstructure:"manifest" yaml:"manifest"`
	Docs      string `mapstructure:"docs" yaml:"docs"`
	Output    string `mapstructure:"output" yaml:"output"`
	ImageRoot string `mapstructure:"image_root" yaml:"image_root"`

	// ConfigFile is the settings file that was read, if any.
	ConfigFile string `mapstructure:"-" yaml:"config_file,omitempty"`
}

// FilePath returns the settings file path inside root (root/.readmegen.yaml).
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigName()+"."+fileType)
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRoot, "")
	v.SetDefault(KeyManifest, DefaultManifest)
	v.SetDefault(KeyDocs, DefaultDocs)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyImageRoot, branding.ImageRoot())
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return v
}

// Load resolves the settings held by v. An empty root means the working
// directory. The settings file in the root is optional; a malformed one, or
// one that sets root itself, is a KindConfig error.
func Load(v *viper.Viper) (*Settings, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, generr.Errorf(generr.KindConfig, "resolving working directory: %w", err)
		}
		root = wd
	}

	file := FilePath(root)
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, generr.Errorf(generr.KindConfig, "reading settings file %s: %w", file, err)
		}
		if v.InConfig(KeyRoot) {
			return nil, generr.Errorf(generr.KindConfig,
				"%s: %s cannot be set in the settings file; use --%s or %s",
				file, KeyRoot, KeyRoot, branding.EnvVar(KeyRoot))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, generr.Errorf(generr.KindConfig, "checking settings file %s: %w", file, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, generr.Errorf(generr.KindConfig, "decoding settings: %w", err)
	}
	s.Root = root
	s.ConfigFile = v.ConfigFileUsed()
	return &s, nil
}
