package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}
	if runtime.GOOS != "windows" && filepath.Base(dir) != "moodlog" {
		t.Errorf("Dir() = %q, want path ending in 'moodlog'", dir)
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "moodlog") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "moodlog"))
	}
}

func TestDefaultPathAndEnvFilePath(t *testing.T) {
	t.Setenv(EnvConfigHome, "/cfg")
	if got := DefaultPath(); got != filepath.Join("/cfg", "config.yaml") {
		t.Errorf("DefaultPath() = %q", got)
	}
	if got := EnvFilePath(); got != filepath.Join("/cfg", "env") {
		t.Errorf("EnvFilePath() = %q", got)
	}
}
