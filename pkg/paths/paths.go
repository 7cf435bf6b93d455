// Package paths provides centralized path handling for sarlac.
// Its main job is resolving which configuration file a run should use,
// following a fixed precedence chain.
package paths

import (
	"os"
	"path/filepath"

	"github.com/netserf/sarlac/pkg/logging"
)

// Environment variable names
const (
	// EnvConfigFile overrides the configuration file location
	EnvConfigFile = "SARLAC_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default configuration locations
const (
	// HomeConfigName is the per-user configuration file name, probed
	// inside the home directory
	HomeConfigName = ".sarlac.yaml"

	// SystemConfigPath is the compiled-in system-wide fallback
	SystemConfigPath = "/usr/local/etc/sarlac.yaml"
)

// ConfigFilePath resolves the configuration file to use. Precedence, lowest
// to highest:
//
//  1. SystemConfigPath
//  2. <homeDir>/.sarlac.yaml, only if that file exists
//  3. override, when non-empty (no existence check; a bad override is
//     surfaced later at load time)
//
// The only I/O is a single stat on the home candidate. ConfigFilePath never
// fails; whether the chosen path is readable is the loader's concern.
func ConfigFilePath(override, homeDir string) string {
	logger := logging.GetLogger("paths")

	configFile := SystemConfigPath

	homeFile := filepath.Join(homeDir, HomeConfigName)
	if info, err := os.Stat(homeFile); err == nil && !info.IsDir() {
		configFile = homeFile
	}

	if override != "" {
		configFile = override
	}

	logger.Debug().Str("path", configFile).Msg("Resolved config file")
	return configFile
}

// DefaultConfigFilePath resolves the configuration file using the process
// environment: SARLAC_CONFIG as the override and the current user's home
// directory for the per-user probe.
func DefaultConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory means no per-user candidate; the chain
		// still resolves via override or system path.
		home = ""
	}
	return ConfigFilePath(os.Getenv(EnvConfigFile), home)
}
