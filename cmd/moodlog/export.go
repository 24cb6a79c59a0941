package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/export"
	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var formatFlag string
	var outFlag string
	var patternFlag string

	cmd := &cobra.Command{
		Use:   "export [paths...]",
		Short: "Export notes to JSON, markdown, or HTML for preview",
		Long: `Export parsed notes without touching Day One.

Paths are expanded as for import. Attachments must exist; paths are resolved
relative to each note's directory.

Examples:
  moodlog export . --format json                  # JSON array to stdout
  moodlog export . --format md --out ./preview/   # One markdown file per note
  moodlog export . --format html --out ./site/    # One HTML fragment per note`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, formatFlag, outFlag, patternFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: json, md, or html (default: json for stdout, md for --out)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (if omitted, writes to stdout)")
	cmd.Flags().StringVar(&patternFlag, "pattern", "", "Note file glob for directory inputs")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string, formatFlag, outFlag, patternFlag string) error {
	printer := newPrinter(cmd)

	format, err := determineFormat(formatFlag, outFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	pattern := cfg.Pattern
	if patternFlag != "" {
		pattern = patternFlag
	}

	files, err := expandArgs(args, pattern)
	if err != nil {
		return fail(printer, err)
	}
	if len(files) == 0 && !printer.IsJSON() {
		printer.Warn("no notes matching %q", pattern)
	}

	imp, err := importer.New(nil, importer.Options{
		MarkerTag: cfg.MarkerTag,
		ExtraTags: cfg.Tags,
		DryRun:    true,
	}, newLogger(cmd))
	if err != nil {
		return fail(printer, err)
	}

	records := make([]*export.Record, 0, len(files))
	for _, file := range files {
		conv, err := imp.ConvertFile(file)
		if err != nil {
			return fail(printer, err)
		}
		records = append(records, export.NewRecord(file, conv.Record, conv.Entry.Tags, conv.Entry.Attachments))
	}

	if outFlag != "" {
		return writeExportFiles(printer, records, outFlag, format)
	}
	return writeExportStdout(printer, records, format)
}

// determineFormat returns the format to use based on flags.
func determineFormat(formatFlag, outFlag string) (export.Format, error) {
	if formatFlag == "" {
		if outFlag == "" {
			return export.JSON, nil
		}
		return export.Markdown, nil
	}
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		names := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			names[i] = "'" + string(f) + "'"
		}
		return "", output.NewUserError("--format must be one of " + strings.Join(names, ", "))
	}
	return format, nil
}

func writeExportFiles(printer *output.Printer, records []*export.Record, dir string, format export.Format) error {
	paths, err := export.WriteFiles(records, dir, format)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"written": paths, "count": len(paths)})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %d notes to %s", len(paths), dir),
	})
}

func writeExportStdout(printer *output.Printer, records []*export.Record, format export.Format) error {
	if format == export.JSON {
		return export.FormatJSON(printer, records)
	}

	parts := make([]string, 0, len(records))
	for _, record := range records {
		content, err := export.Render(record, format)
		if err != nil {
			return fail(printer, err)
		}
		parts = append(parts, string(content))
	}
	printer.Print("%s", strings.Join(parts, "\n"))
	return nil
}
