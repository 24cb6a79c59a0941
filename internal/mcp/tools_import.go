package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/moodlog/internal/importer"
)

// ImportNotesInput is the input for the import_notes tool.
type ImportNotesInput struct {
	Dir       string `json:"dir"                  jsonschema:"directory holding the Notion export (required)"`
	Pattern   string `json:"pattern,omitempty"    jsonschema:"glob for note files (default from config)"`
	DryRun    bool   `json:"dry_run,omitempty"    jsonschema:"convert notes but do not create entries"`
	KeepGoing bool   `json:"keep_going,omitempty" jsonschema:"continue past failed notes instead of stopping"`
}

// ImportNotesOutput is the output for the import_notes tool.
type ImportNotesOutput struct {
	Report *importer.Report `json:"report"          jsonschema:"per-note results and counters"`
	Error  string           `json:"error,omitempty" jsonschema:"why the run stopped or partially failed"`
}

func handleImportNotes(backend Backend) mcp.ToolHandlerFor[ImportNotesInput, ImportNotesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ImportNotesInput) (*mcp.CallToolResult, ImportNotesOutput, error) {
		if !input.DryRun && backend.Submitter == nil {
			return nil, ImportNotesOutput{}, errors.New("importing is disabled on this server; use dry_run")
		}

		files, err := expandDir(backend, input.Dir, input.Pattern)
		if err != nil {
			return nil, ImportNotesOutput{}, err
		}

		imp, err := importer.New(backend.Submitter, importOptions(backend, input.DryRun, input.KeepGoing), backend.Logger)
		if err != nil {
			return nil, ImportNotesOutput{}, err
		}

		report, err := imp.Run(ctx, files)
		out := ImportNotesOutput{Report: report}
		if err != nil {
			out.Error = err.Error()
		}
		return nil, out, nil
	}
}
