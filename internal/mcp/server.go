// Package mcp provides a Model Context Protocol server for moodlog.
// It exposes note parsing and importing as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/dayone"
)

// Backend is what the tools need to do their work.
type Backend struct {
	Config *config.Config

	// Submitter creates entries for import_notes. Nil restricts import_notes
	// to dry runs.
	Submitter dayone.Submitter

	// Logger receives import progress. Nil discards it.
	Logger *log.Logger
}

// NewServer creates an MCP server with all moodlog tools registered.
func NewServer(version string, backend Backend) *mcp.Server {
	if backend.Config == nil {
		backend.Config = config.Default()
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodlog",
		Version: version,
	}, nil)
	registerTools(server, backend)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that create Day One entries.
// Importing the same note twice creates two entries.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  false,
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all moodlog tools to the server.
func registerTools(server *mcp.Server, backend Backend) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_note",
		Description: "Parse the text of one Notion mood-log export. Returns the timestamp, mood, tags, rewritten body with [{attachment}] placeholders, and attachment paths.",
		Annotations: readOnlyAnnotations(),
	}, handleParseNote(backend))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_notes",
		Description: "Parse every mood-log export in a directory without importing. Reports each note's record or the error that would stop its import.",
		Annotations: readOnlyAnnotations(),
	}, handleScanNotes(backend))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_notes",
		Description: "Import the mood-log exports in a directory into Day One via dayone2. Set dry_run to preview; keep_going continues past failed notes.",
		Annotations: writeAnnotations(),
	}, handleImportNotes(backend))
}
