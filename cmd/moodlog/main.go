// Package main provides the entry point for the moodlog CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/envfile"
	"github.com/gorewood/moodlog/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return boolFlag(cmd, "json")
}

// isVerbose reads the --verbose persistent flag from the command hierarchy.
func isVerbose(cmd *cobra.Command) bool {
	return boolFlag(cmd, "verbose")
}

func boolFlag(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color against the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns a printer for cmd honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// newLogger returns the diagnostic logger. It writes to stderr at warn level,
// or debug with --verbose.
func newLogger(cmd *cobra.Command) *log.Logger {
	return newLoggerTo(cmd.ErrOrStderr(), isVerbose(cmd))
}

func newLoggerTo(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "moodlog",
	})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the file named by --config, or the default config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := ""
	if flag := cmd.Root().PersistentFlags().Lookup("config"); flag != nil {
		path = flag.Value.String()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, output.NewUserErrorWithCause("invalid configuration", err)
	}
	return cfg, nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the moodlog CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: "Import Notion mood-log exports into Day One",
		Long: `moodlog - Import Notion mood-log exports into Day One.

Each exported note becomes one Day One entry:
  - The "Date (human)" header becomes the entry date (UTC)
  - The mood code becomes a mood/<code> tag, plus the from-notion marker
  - Image lines become attachments, replaced by [{attachment}] placeholders

Entries are created with the dayone2 command-line tool.
All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'moodlog --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over env file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
			if err := output.ValidateColorMode(flag.Value.String()); err != nil {
				return err
			}
		}
		loadEnvFiles(newLogger(cmd))
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug detail to stderr")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, or never")
	cmd.PersistentFlags().String("config", "", "Config file (default: "+config.DefaultPath()+")")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; variables already in the environment are never replaced.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles(logger *log.Logger) {
	keys, err := envfile.Load(".env.local", ".env", config.EnvFilePath())
	if err != nil {
		logger.Warn("ignoring env file", "err", err)
		return
	}
	if len(keys) > 0 {
		logger.Debug("loaded env files", "keys", keys)
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newImportCmd(), "core")
	addGroupedCommand(cmd, newParseCmd(), "core")
	addGroupedCommand(cmd, newExportCmd(), "core")

	addGroupedCommand(cmd, newServeCmd(), "agent")

	addGroupedCommand(cmd, newInitCmd(), "admin")
	addGroupedCommand(cmd, newDoctorCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
