// ABOUTME: Standard filesystem paths for rio-go configuration
// ABOUTME: Resolves ~/.rio-go/ for global and .rio-go/ for project-local config files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".rio-go"
	projectDirName = ".rio-go"
)

// configNames are tried in order inside a config directory.
var configNames = []string{"config.toml", "config.yaml", "config.yml"}

// GlobalDir returns the user-global config directory (~/.rio-go/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.rio-go/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// LogFile returns the default log file path used by the interactive UI.
func LogFile() string {
	return filepath.Join(GlobalDir(), "rio-go.log")
}

// findConfig returns the first existing config file in dir, or "".
func findConfig(dir string) string {
	for _, name := range configNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
