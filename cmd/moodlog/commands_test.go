package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/export"
	"github.com/gorewood/moodlog/internal/output"
)

// --- parse ---

func TestParse_Human(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{
		"ML a.md": noteContent("4", "Sunny.\n![Untitled](ML%20a/Untitled.png)"),
	})

	out, _, err := runRoot(t, "parse", filepath.Join(dir, "ML a.md"))
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	for _, want := range []string{
		"Date: 1970-01-01 00:01 UTC",
		"Mood: 4",
		"Tags: mood/4, from-notion",
		"Attachments: 1",
		"1. ML a/Untitled.png",
		"Sunny.\n[{attachment}]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParse_JSON(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{"ML a.md": noteContent("-1", "quiet")})

	out, _, err := runRoot(t, "parse", "--json", filepath.Join(dir, "ML a.md"))
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	var record export.Record
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not a record: %v\n%s", err, out)
	}
	if record.Mood != "-1" || record.Body != "quiet" {
		t.Errorf("record = %+v", record)
	}
}

func TestParse_Errors(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{"bad.md": noteContent("6", "x")})

	_, _, err := runRoot(t, "parse", filepath.Join(dir, "bad.md"))
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}

	_, _, err = runRoot(t, "parse", filepath.Join(dir, "missing.md"))
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("missing file exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}

	if _, _, err := runRoot(t, "parse"); err == nil {
		t.Error("expected error without a file argument")
	}
}

// --- export ---

func TestExport_JSONStdout(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{
		"ML a.md": noteContent("1", "a"),
		"ML b.md": noteContent("2", "b"),
	})

	out, _, err := runRoot(t, "export", dir)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	var records []export.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(records) != 2 || records[1].Mood != "2" {
		t.Errorf("records = %+v", records)
	}
}

func TestExport_MarkdownFiles(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{"ML a.md": noteContent("3", "body text")})
	outDir := filepath.Join(t.TempDir(), "preview")

	out, _, err := runRoot(t, "export", "--out", outDir, dir)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "Exported 1 notes") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "1970-01-01T00-01-00Z.md"))
	if err != nil {
		t.Fatalf("markdown file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "---\nschema: "+export.Schema) || !strings.Contains(string(data), "body text") {
		t.Errorf("markdown = %s", data)
	}
}

func TestExport_HTMLStdout(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{"ML a.md": noteContent("3", "*hi*")})

	out, _, err := runRoot(t, "export", "--format", "html", dir)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "<em>hi</em>") {
		t.Errorf("output = %s", out)
	}
}

func TestExport_BadFormat(t *testing.T) {
	isolateEnv(t)
	_, _, err := runRoot(t, "export", "--format", "pdf", t.TempDir())
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

// --- doctor ---

func TestDoctor_JSON(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvDayOneBin, filepath.Join(t.TempDir(), "missing-dayone2"))
	dir := writeNotes(t, map[string]string{"ML a.md": noteContent("1", "x")})

	out, _, err := runRoot(t, "doctor", "--json", dir)
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}

	var result doctorResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	statuses := make(map[string]checkStatus)
	for _, check := range result.Checks {
		statuses[check.Name] = check.Status
	}
	want := map[string]checkStatus{
		"config":  checkPass,
		"dayone2": checkFail,
		"journal": checkPass,
		"inputs":  checkPass,
	}
	for name, status := range want {
		if statuses[name] != status {
			t.Errorf("check %s = %q, want %q", name, statuses[name], status)
		}
	}
	if result.Summary.Failed != 1 {
		t.Errorf("Summary.Failed = %d, want 1", result.Summary.Failed)
	}
}

func TestDoctor_HumanWarnings(t *testing.T) {
	configDir := isolateEnv(t)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("journal: \"\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runRoot(t, "doctor", "--quiet", t.TempDir())
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	for _, want := range []string{"journal", "no notes matching", "warnings"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ok  config") {
		t.Errorf("--quiet should hide passing checks:\n%s", out)
	}
}

func TestDoctor_BadConfig(t *testing.T) {
	configDir := isolateEnv(t)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("pattern: \"[\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runRoot(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	var result doctorResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	if result.Checks[0].Name != "config" || result.Checks[0].Status != checkFail {
		t.Errorf("config check = %+v", result.Checks[0])
	}
}

func TestDoctor_UnconvertibleNote(t *testing.T) {
	isolateEnv(t)
	dir := writeNotes(t, map[string]string{
		"ML good.md": noteContent("1", "x"),
		"ML bad.md":  noteContent("9", "x"),
	})

	out, _, err := runRoot(t, "doctor", "--json", dir)
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	var result doctorResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	for _, check := range result.Checks {
		if check.Name != "inputs" {
			continue
		}
		if check.Status != checkWarn || !strings.Contains(check.Message, "1 of 2") {
			t.Errorf("inputs check = %+v", check)
		}
		return
	}
	t.Error("inputs check missing")
}

// --- init ---

func TestInit_WritesConfig(t *testing.T) {
	configDir := isolateEnv(t)

	out, _, err := runRoot(t, "init", "--journal", "Mood")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	path := filepath.Join(configDir, "config.yaml")
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s: %q", path, out)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Journal != "Mood" || cfg.Path != path {
		t.Errorf("config = %+v", cfg)
	}

	_, _, err = runRoot(t, "init")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("second init exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}

	if _, _, err := runRoot(t, "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestInit_ExplicitPath(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "moodlog.yaml")

	if _, _, err := runRoot(t, "--config", path, "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
