package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/moodlog/internal/export"
	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/notion"
)

// --- Parse tool ---

// ParseNoteInput is the input for the parse_note tool.
type ParseNoteInput struct {
	Content string `json:"content"        jsonschema:"full text of the exported markdown note (required)"`
	File    string `json:"file,omitempty" jsonschema:"file name to echo back in the record"`
}

// ParseNoteOutput is the output for the parse_note tool.
type ParseNoteOutput struct {
	Record *export.Record `json:"record" jsonschema:"the parsed note"`
}

func handleParseNote(backend Backend) mcp.ToolHandlerFor[ParseNoteInput, ParseNoteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ParseNoteInput) (*mcp.CallToolResult, ParseNoteOutput, error) {
		if input.Content == "" {
			return nil, ParseNoteOutput{}, errors.New("content is required")
		}

		rec, err := notion.Parse(input.Content)
		if err != nil {
			return nil, ParseNoteOutput{}, fmt.Errorf("parsing note: %w", err)
		}

		tags := importer.TagsFor(rec.Mood, backend.Config.MarkerTag, backend.Config.Tags)
		return nil, ParseNoteOutput{Record: export.NewRecord(input.File, rec, tags, rec.Attachments)}, nil
	}
}

// --- Scan tool ---

// ScanNotesInput is the input for the scan_notes tool.
type ScanNotesInput struct {
	Dir     string `json:"dir"               jsonschema:"directory holding the Notion export (required)"`
	Pattern string `json:"pattern,omitempty" jsonschema:"glob for note files (default from config, usually 'ML *.md')"`
}

// ScanItem is the outcome for one note file.
type ScanItem struct {
	File   string         `json:"file"             jsonschema:"note file path"`
	Record *export.Record `json:"record,omitempty" jsonschema:"parsed note, absent on error"`
	Error  string         `json:"error,omitempty"  jsonschema:"why the note cannot be imported"`
}

// ScanNotesOutput is the output for the scan_notes tool.
type ScanNotesOutput struct {
	Count  int        `json:"count"  jsonschema:"number of note files found"`
	Failed int        `json:"failed" jsonschema:"number of notes that failed to parse or resolve"`
	Notes  []ScanItem `json:"notes"  jsonschema:"per-file results in import order"`
}

func handleScanNotes(backend Backend) mcp.ToolHandlerFor[ScanNotesInput, ScanNotesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScanNotesInput) (*mcp.CallToolResult, ScanNotesOutput, error) {
		files, err := expandDir(backend, input.Dir, input.Pattern)
		if err != nil {
			return nil, ScanNotesOutput{}, err
		}

		imp, err := importer.New(nil, importOptions(backend, true, false), nil)
		if err != nil {
			return nil, ScanNotesOutput{}, err
		}

		out := ScanNotesOutput{Count: len(files), Notes: make([]ScanItem, 0, len(files))}
		for _, file := range files {
			item := ScanItem{File: file}
			conv, err := imp.ConvertFile(file)
			if err != nil {
				item.Error = err.Error()
				out.Failed++
			} else {
				item.Record = export.NewRecord(file, conv.Record, conv.Entry.Tags, conv.Entry.Attachments)
			}
			out.Notes = append(out.Notes, item)
		}
		return nil, out, nil
	}
}

// expandDir lists the note files in dir, falling back to the configured pattern.
func expandDir(backend Backend, dir, pattern string) ([]string, error) {
	if dir == "" {
		return nil, errors.New("dir is required")
	}
	if pattern == "" {
		pattern = backend.Config.Pattern
	}
	return importer.ExpandInputs([]string{dir}, pattern)
}

func importOptions(backend Backend, dryRun, keepGoing bool) importer.Options {
	cfg := backend.Config
	return importer.Options{
		Journal:   cfg.Journal,
		MarkerTag: cfg.MarkerTag,
		ExtraTags: cfg.Tags,
		Starred:   cfg.Starred,
		DryRun:    dryRun,
		KeepGoing: keepGoing,
	}
}
