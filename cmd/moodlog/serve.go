package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/dayone"
	moodlogmcp "github.com/gorewood/moodlog/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run moodlog as a Model Context Protocol (MCP) server over stdio.

This exposes note parsing and importing as MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "moodlog": {
        "command": "moodlog",
        "args": ["serve"]
      }
    }
  }

Available tools: parse_note, scan_notes, import_notes
With --read-only, import_notes only accepts dry runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			backend := moodlogmcp.Backend{Config: cfg, Logger: newLogger(cmd)}
			if !readOnly {
				backend.Submitter = dayone.NewClient(cfg.DayOneBin)
			}
			server := moodlogmcp.NewServer(buildVersion(), backend)
			return server.Run(commandContext(cmd), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Never create Day One entries")

	return cmd
}
