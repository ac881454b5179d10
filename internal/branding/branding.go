// Package branding provides compile-time identity values for the CLI,
// read from the embedded branding.yaml.
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
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	RegistryFile string `yaml:"registry_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "extreg",
			DisplayName:  "ExtReg",
			Description:  "Register an extension in a host application's extensions.json",
			HomeDir:      ".extreg",
			EnvPrefix:    "EXTREG",
			RegistryFile: "extensions.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "extreg").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".extreg").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "EXTREG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// RegistryFile returns the host's registry file name.
func RegistryFile() string { load(); return defaults.RegistryFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "EXTREG_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
