package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extreg-labs/extreg/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRegistry  = "registry"
	KeyRoot      = "root"
	KeyID        = "id"
	KeyVersion   = "version"
	KeyManifest  = "manifest"
	KeyTimestamp = "timestamp"
	KeyPinned    = "pinned"
	KeySource    = "source"
	KeyPolicy    = "policy"
	KeyMetadata  = "metadata"
	KeyIndent    = "indent"
)

// Settings is the decoded configuration for one run.
type Settings struct {
	Registry  string `mapstructure:"registry" yaml:"registry"`
	Root      string `mapstructure:"root" yaml:"root"`
	ID        string `mapstructure:"id" yaml:"id"`
	Version   string `mapstructure:"version" yaml:"version"`
	Manifest  string `mapstructure:"manifest" yaml:"manifest"`
	Timestamp int64  `mapstructure:"timestamp" yaml:"timestamp"`
	Pinned    bool   `mapstructure:"pinned" yaml:"pinned"`
	Source    string `mapstructure:"source" yaml:"source"`
	Policy    string `mapstructure:"policy" yaml:"policy"`
	Metadata  string `mapstructure:"metadata" yaml:"metadata"`
	Indent    string `mapstructure:"indent" yaml:"indent"`
}

// RootDir returns the extensions directory: Root when set, otherwise the
// directory holding the registry file.
func (s *Settings) RootDir() string {
	if s.Root != "" {
		return s.Root
	}
	return filepath.Dir(s.Registry)
}

// Dir returns the path to the config directory (~/.extreg/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults() {
	viper.SetDefault(KeyRegistry, "")
	viper.SetDefault(KeyRoot, "")
	viper.SetDefault(KeyID, "")
	viper.SetDefault(KeyVersion, "")
	viper.SetDefault(KeyManifest, "")
	viper.SetDefault(KeyTimestamp, 0)
	viper.SetDefault(KeyPinned, true)
	viper.SetDefault(KeySource, "manual")
	viper.SetDefault(KeyPolicy, "replace")
	viper.SetDefault(KeyMetadata, "")
	viper.SetDefault(KeyIndent, "")
}

// Load initializes Viper from the config file and environment. An empty
// path means the default file, which may be absent; an explicit path must
// exist.
func Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	setDefaults()
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !explicit && errors.As(err, &pathErr) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Current decodes the loaded configuration.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}
	if dir := filepath.Dir(configFile); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}

	viper.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
