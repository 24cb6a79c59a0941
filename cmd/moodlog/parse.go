package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/export"
	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/notion"
	"github.com/gorewood/moodlog/internal/output"
)

// newParseCmd creates the parse command.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Show how a single note will be imported",
		Long: `Parse a single mood-log note and print the entry it becomes.

Attachment paths are shown as written in the note, relative to its directory;
they are not checked. Use "moodlog import --dry-run" to also resolve them.

Examples:
  moodlog parse "ML 2024-03-01 08 15.md"
  moodlog parse note.md --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
}

// runParse executes the parse command.
func runParse(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-named note
	if err != nil {
		return fail(printer, err)
	}
	rec, err := notion.Parse(string(data))
	if err != nil {
		return fail(printer, err)
	}

	tags := importer.TagsFor(rec.Mood, cfg.MarkerTag, cfg.Tags)
	record := export.NewRecord(path, rec, tags, rec.Attachments)

	if printer.IsJSON() {
		return printer.WriteJSON(record)
	}
	printRecord(printer, record)
	return nil
}

// printRecord prints a record's fields followed by its body.
func printRecord(printer *output.Printer, record *export.Record) {
	printer.KeyValue("File", record.File)
	printer.KeyValue("Date", record.Timestamp.Format("2006-01-02 15:04 MST"))
	printer.KeyValue("Mood", record.Mood)
	printer.KeyValue("Tags", strings.Join(record.Tags, ", "))
	printer.KeyValue("Attachments", strconv.Itoa(len(record.Attachments)))
	for i, path := range record.Attachments {
		printer.Print("  %d. %s\n", i+1, path)
	}

	printer.Section("Body")
	if record.Body != "" {
		printer.Println(record.Body)
	}
}
