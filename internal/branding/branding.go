// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; edit it and rebuild to rename
// the tool or point generated targets at a different engine module.
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
	EngineModule string `yaml:"engine_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "addtarget",
			DisplayName:  "AddTarget",
			Description:  "Scaffold a new Cedi search engine crawler target",
			HomeDir:      ".addtarget",
			EnvPrefix:    "ADDTARGET",
			EngineModule: "github.com/Cedi-Search/Cedi-Search-Engine",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "addtarget").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".addtarget").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ADDTARGET").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EngineModule returns the module path of the search engine that generated
// targets import their database package from.
func EngineModule() string { load(); return defaults.EngineModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "ADDTARGET_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
