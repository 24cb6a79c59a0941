package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/output"
)

// isolateEnv points config at an empty directory and clears overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigHome, dir)
	t.Setenv(config.EnvDayOneBin, "")
	t.Setenv(config.EnvPattern, "")
	t.Setenv(config.EnvJournal, "")
	_ = os.Unsetenv(config.EnvJournal) //nolint:errcheck
	return dir
}

// runRoot executes the root command with args and returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func noteContent(mood, body string) string {
	return fmt.Sprintf("# ML 1970-01-01 00:01\n\nDate (human): 1970-01-01 01:01\nMood: %s\nDate: 1970/01/01 01:01 (GMT+1)\n\n%s", mood, body)
}

// writeNotes creates note files in a new temp directory.
func writeNotes(t *testing.T, notes map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range notes {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	out, _, err := runRoot(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "moodlog") {
		t.Errorf("--version output should contain 'moodlog': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := runRoot(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"moodlog", "Usage:", "--json", "--color", "import", "doctor"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q: %q", expected, out)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	out, _, err := runRoot(t, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should have 'error' field: %v", result)
	}
}

func TestRootCommand_ColorFlag(t *testing.T) {
	tests := []struct {
		mode     string
		wantCode int
	}{
		{"auto", output.ExitSuccess},
		{"always", output.ExitSuccess},
		{"never", output.ExitSuccess},
		{"sometimes", output.ExitUserError},
		{"", output.ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			isolateEnv(t)
			dir := writeNotes(t, map[string]string{"ML a.md": noteContent("1", "x")})

			out, _, err := runRoot(t, "--color", tt.mode, "import", "--dry-run", dir)
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (err %v)", code, tt.wantCode, err)
			}
			if tt.wantCode == output.ExitUserError {
				if !strings.Contains(err.Error(), "--color") {
					t.Errorf("error should name --color: %v", err)
				}
				if out != "" {
					t.Errorf("rejected --color should stop before the command runs:\n%s", out)
				}
				return
			}
			if tt.mode == "never" && strings.Contains(out, "\x1b[") {
				t.Errorf("--color never output has ANSI codes: %q", out)
			}
		})
	}
}

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	version, commit, date = "1.0.0", "none", "unknown"
	if got := buildVersion(); got != "1.0.0" {
		t.Errorf("buildVersion() = %q, want 1.0.0", got)
	}

	commit, date = "abcdef1234567", "2024-01-01"
	if got := buildVersion(); got != "1.0.0 (abcdef1, 2024-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}
