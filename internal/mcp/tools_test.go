package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/dayone"
	"github.com/gorewood/moodlog/internal/importer"
)

// --- Fake submitter ---

type fakeSubmitter struct {
	entries []dayone.Entry
	err     error
}

func (f *fakeSubmitter) Submit(_ context.Context, entry dayone.Entry) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.entries = append(f.entries, entry)
	return "Created new entry", nil
}

// --- Test helpers ---

func noteText(mood, body string) string {
	return fmt.Sprintf("# ML 1970-01-01 00:01\n\nDate (human): 1970-01-01 01:01\nMood: %s\nDate: 1970/01/01 01:01 (GMT+1)\n\n%s", mood, body)
}

func writeNotes(t *testing.T, notes map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range notes {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing note: %v", err)
		}
	}
	return dir
}

func testBackend(sub dayone.Submitter) Backend {
	cfg := config.Default()
	cfg.Tags = []string{"imported"}
	return Backend{Config: cfg, Submitter: sub}
}

// --- Parse handler tests ---

func TestHandleParseNote(t *testing.T) {
	handler := handleParseNote(testBackend(nil))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ParseNoteInput{
		Content: noteText("4", "Good day.\n![pic](ML%20x/pic.png)"),
		File:    "ML x.md",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := out.Record
	if rec.Mood != "4" || rec.File != "ML x.md" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Body != "Good day.\n[{attachment}]" {
		t.Errorf("Body = %q", rec.Body)
	}
	if len(rec.Attachments) != 1 || rec.Attachments[0] != "ML x/pic.png" {
		t.Errorf("Attachments = %q", rec.Attachments)
	}
	if strings.Join(rec.Tags, ",") != "mood/4,from-notion,imported" {
		t.Errorf("Tags = %q", rec.Tags)
	}
}

func TestHandleParseNote_Errors(t *testing.T) {
	handler := handleParseNote(testBackend(nil))

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ParseNoteInput{}); err == nil {
		t.Error("expected error for empty content")
	}

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ParseNoteInput{Content: noteText("7", "x")})
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error = %v, want line 4 value error", err)
	}
}

// --- Scan handler tests ---

func TestHandleScanNotes(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"ML a.md":   noteText("1", "fine"),
		"ML b.md":   noteText("x", "bad mood"),
		"other.txt": "ignored",
	})
	handler := handleScanNotes(testBackend(nil))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ScanNotesInput{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 || out.Failed != 1 {
		t.Fatalf("Count = %d, Failed = %d, want 2, 1", out.Count, out.Failed)
	}
	if out.Notes[0].Record == nil || out.Notes[0].Record.Body != "fine" {
		t.Errorf("first note = %+v", out.Notes[0])
	}
	if out.Notes[1].Error == "" || out.Notes[1].Record != nil {
		t.Errorf("second note should carry only an error: %+v", out.Notes[1])
	}
}

func TestHandleScanNotes_CustomPattern(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"ML a.md":   noteText("1", "a"),
		"mood b.md": noteText("2", "b"),
	})
	handler := handleScanNotes(testBackend(nil))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ScanNotesInput{Dir: dir, Pattern: "mood *.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Notes[0].Record.Mood != "2" {
		t.Errorf("out = %+v", out)
	}
}

func TestHandleScanNotes_MissingDir(t *testing.T) {
	handler := handleScanNotes(testBackend(nil))
	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ScanNotesInput{}); err == nil {
		t.Error("expected error when dir is empty")
	}
}

// --- Import handler tests ---

func TestHandleImportNotes(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"ML a.md": noteText("1", "first"),
		"ML b.md": noteText("5", "second"),
	})
	sub := &fakeSubmitter{}
	handler := handleImportNotes(testBackend(sub))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ImportNotesInput{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Errorf("Error = %q", out.Error)
	}
	if out.Report.Imported != 2 || len(sub.entries) != 2 {
		t.Errorf("imported %d, submitted %d", out.Report.Imported, len(sub.entries))
	}
	if sub.entries[0].Journal != config.DefaultJournal {
		t.Errorf("Journal = %q", sub.entries[0].Journal)
	}
}

func TestHandleImportNotes_DryRunWithoutSubmitter(t *testing.T) {
	dir := writeNotes(t, map[string]string{"ML a.md": noteText("1", "first")})
	handler := handleImportNotes(testBackend(nil))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ImportNotesInput{Dir: dir, DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Report.Planned != 1 || !out.Report.DryRun {
		t.Errorf("report = %+v", out.Report)
	}

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ImportNotesInput{Dir: dir}); err == nil {
		t.Error("expected error for a real import without a submitter")
	}
}

func TestHandleImportNotes_KeepGoing(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"ML a.md": noteText("1", "first"),
		"ML b.md": noteText("nope", "second"),
		"ML c.md": noteText("2", "third"),
	})
	sub := &fakeSubmitter{}
	handler := handleImportNotes(testBackend(sub))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ImportNotesInput{Dir: dir, KeepGoing: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Report.Imported != 2 || out.Report.Failed != 1 {
		t.Errorf("report = %+v", out.Report)
	}
	if !strings.Contains(out.Error, importer.ErrPartialFailure.Error()) {
		t.Errorf("Error = %q, want partial failure", out.Error)
	}
}

func TestHandleImportNotes_SubmitFailureStops(t *testing.T) {
	dir := writeNotes(t, map[string]string{
		"ML a.md": noteText("1", "first"),
		"ML b.md": noteText("2", "second"),
	})
	sub := &fakeSubmitter{err: errors.New("dayone2 failed: journal missing")}
	handler := handleImportNotes(testBackend(sub))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ImportNotesInput{Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Report.Failed != 1 || out.Report.Skipped != 1 {
		t.Errorf("report = %+v", out.Report)
	}
	if !strings.Contains(out.Error, "journal missing") {
		t.Errorf("Error = %q", out.Error)
	}
}

// --- Server registration test ---

func TestNewServer_RegistersTools(t *testing.T) {
	// Should not panic
	server := NewServer("test-version", Backend{})
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
