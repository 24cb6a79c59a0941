// Package config provides moodlog's configuration directory and settings file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigHome overrides the configuration directory.
const EnvConfigHome = "MOODLOG_CONFIG_HOME"

// Dir returns the moodlog configuration directory.
//
// Resolution:
//   - $MOODLOG_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/moodlog if set (on any platform)
//   - %AppData%/moodlog on Windows
//   - ~/.config/moodlog on macOS and Linux
//
// Returns "" if no home directory can be determined.
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moodlog")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "moodlog")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "moodlog")
}

// DefaultPath returns the settings file path inside Dir, or "" if Dir is unknown.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// EnvFilePath returns the global env file path inside Dir, or "" if Dir is unknown.
func EnvFilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "env")
}
