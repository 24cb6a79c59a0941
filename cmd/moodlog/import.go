package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/dayone"
	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/output"
)

// importFlags holds the command-line flags for the import command.
type importFlags struct {
	journal   string
	tags      []string
	markerTag string
	starred   bool
	dryRun    bool
	keepGoing bool
	pattern   string
	dayoneBin string
}

// newImportCmd creates the import command.
func newImportCmd() *cobra.Command {
	return newImportCmdInternal(nil)
}

// newImportCmdInternal creates the import command with an optional submitter.
// If submitter is nil, a dayone2 client is built from config when the command runs.
func newImportCmdInternal(submitter dayone.Submitter) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import [paths...]",
		Short: "Import mood-log notes into Day One",
		Long: `Import Notion mood-log exports into Day One.

Each path may be a note file, a glob, or a directory. Directories are searched
for files matching --pattern (default "ML *.md"). Notes are imported one at a
time in sorted order; the first failure stops the run unless --keep-going is set.

Exit codes:
  0  all notes imported
  1  bad arguments or a malformed note
  2  dayone2 missing or failing, or an I/O error
  3  --keep-going run where some notes failed

Examples:
  moodlog import ~/Downloads/Mood                 # Import every note in a directory
  moodlog import --dry-run .                      # Show what would be imported
  moodlog import --journal Mood --tag notion .    # Pick journal, add a tag
  moodlog import --keep-going --json . > r.json   # Record per-note results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags, submitter, args)
		},
	}

	cmd.Flags().StringVar(&flags.journal, "journal", "", "Day One journal (default from config: "+config.DefaultJournal+")")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "Extra tag for every entry (repeatable)")
	cmd.Flags().StringVar(&flags.markerTag, "marker-tag", "", "Tag marking imported entries (default from config: "+config.DefaultMarkerTag+")")
	cmd.Flags().BoolVar(&flags.starred, "starred", false, "Star every entry")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Parse and resolve notes without creating entries")
	cmd.Flags().BoolVar(&flags.keepGoing, "keep-going", false, "Continue past failed notes")
	cmd.Flags().StringVar(&flags.pattern, "pattern", "", "Note file glob for directory inputs")
	cmd.Flags().StringVar(&flags.dayoneBin, "dayone-bin", "", "Path to the dayone2 binary")

	return cmd
}

// runImport executes the import command.
func runImport(cmd *cobra.Command, flags *importFlags, submitter dayone.Submitter, args []string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	opts, pattern, bin := importSettings(cmd, flags, cfg)

	files, err := expandArgs(args, pattern)
	if err != nil {
		return fail(printer, err)
	}
	if len(files) == 0 {
		err := output.NewUserError(fmt.Sprintf("no notes matching %q found", pattern))
		printer.Error(err)
		return err
	}

	if submitter == nil && !opts.DryRun {
		client := dayone.NewClient(bin)
		if _, err := client.Available(); err != nil {
			printer.Error(err)
			return err
		}
		submitter = client
	}

	imp, err := importer.New(submitter, opts, newLogger(cmd))
	if err != nil {
		err := output.NewUserErrorWithCause("invalid import options", err)
		printer.Error(err)
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	report, runErr := imp.Run(ctx, files)
	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
		return classifyOrNil(runErr)
	}

	printImportReport(printer, report)
	if runErr != nil {
		return fail(printer, runErr)
	}
	return nil
}

// importSettings merges config with flags the user set explicitly.
func importSettings(cmd *cobra.Command, flags *importFlags, cfg *config.Config) (importer.Options, string, string) {
	opts := importer.Options{
		Journal:   cfg.Journal,
		MarkerTag: cfg.MarkerTag,
		ExtraTags: append(append([]string{}, cfg.Tags...), flags.tags...),
		Starred:   cfg.Starred || flags.starred,
		DryRun:    flags.dryRun,
		KeepGoing: flags.keepGoing,
	}
	if cmd.Flags().Changed("journal") {
		opts.Journal = flags.journal
	}
	if cmd.Flags().Changed("marker-tag") {
		opts.MarkerTag = flags.markerTag
	}

	pattern := cfg.Pattern
	if cmd.Flags().Changed("pattern") {
		pattern = flags.pattern
	}
	bin := cfg.DayOneBin
	if cmd.Flags().Changed("dayone-bin") {
		bin = flags.dayoneBin
	}
	return opts, pattern, bin
}

// expandArgs expands command-line inputs, defaulting to the current directory.
func expandArgs(args []string, pattern string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := importer.ExpandInputs(args, pattern)
	if err != nil {
		return nil, output.NewUserErrorWithCause("invalid input", err)
	}
	return files, nil
}

// printImportReport prints one line per note and a summary.
func printImportReport(printer *output.Printer, report *importer.Report) {
	if report.DryRun {
		printPlanTable(printer, report)
	}
	for _, result := range report.Results {
		if report.DryRun && result.Status != importer.StatusFailed {
			continue
		}
		printer.Status(result.Status != importer.StatusFailed, string(result.Status), result.File)
		if result.Status == importer.StatusFailed {
			printer.Hint("%s", result.Error)
		}
	}

	printer.Println()
	summary := fmt.Sprintf("%d imported, %d failed", report.Imported, report.Failed)
	if report.DryRun {
		summary = fmt.Sprintf("%d would be imported, %d failed (dry run)", report.Planned, report.Failed)
	}
	if report.Skipped > 0 {
		summary += fmt.Sprintf(", %d not attempted", report.Skipped)
	}
	printer.Print("%s\n", summary)
}

// printPlanTable lists the entries a dry run would create.
func printPlanTable(printer *output.Printer, report *importer.Report) {
	var rows [][]string
	for _, result := range report.Results {
		if result.Status != importer.StatusDryRun {
			continue
		}
		date := ""
		if result.Timestamp != nil {
			date = dayone.FormatDate(*result.Timestamp)
		}
		rows = append(rows, []string{
			filepath.Base(result.File),
			date,
			result.Mood,
			strconv.Itoa(len(result.Attachments)),
		})
	}
	if len(rows) > 0 {
		printer.Table([]string{"FILE", "DATE", "MOOD", "ATTACHMENTS"}, rows)
	}
}

func classifyOrNil(err error) error {
	if err == nil {
		return nil
	}
	return classifyError(err)
}

// commandContext returns the command's context, or Background when run
// outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
