package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/dayone"
	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string         `json:"version"`
	Checks  []checkResult  `json:"checks"`
	Summary *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor [paths...]",
		Short: "Check configuration, dayone2, and inputs",
		Long: `Check that an import can run.

Checks:
  config   - the config file parses and validates
  dayone2  - the Day One CLI is installed and on PATH
  journal  - a target journal is configured
  inputs   - the given paths (default ".") contain notes

Examples:
  moodlog doctor                    # Check the current directory
  moodlog doctor ~/Downloads/Mood   # Check an export directory
  moodlog doctor --json             # Output results as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, args, quiet)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, args []string, quiet bool) error {
	printer := newPrinter(cmd)
	result := gatherDoctorChecks(cmd, args)

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	outputDoctorHuman(printer, result, quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(cmd *cobra.Command, args []string) *doctorResult {
	cfg, configCheck := checkConfig(cmd)
	checks := []checkResult{
		configCheck,
		checkDayOne(cfg),
		checkJournal(cfg),
		checkInputs(cfg, args),
	}

	result := &doctorResult{Version: version, Checks: checks, Summary: &doctorSummary{}}
	for _, check := range checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// checkConfig loads the config; on failure the remaining checks use defaults.
func checkConfig(cmd *cobra.Command) (*config.Config, checkResult) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		msg := err.Error()
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) && exitErr.Cause != nil {
			msg = exitErr.Cause.Error()
		}
		return config.Default(), checkResult{
			Name:    "config",
			Status:  checkFail,
			Message: msg,
			Hint:    "fix the file or run 'moodlog init --force' to rewrite it",
		}
	}
	if cfg.Path == "" {
		return cfg, checkResult{Name: "config", Status: checkPass, Message: "no config file, using defaults"}
	}
	return cfg, checkResult{Name: "config", Status: checkPass, Message: cfg.Path}
}

func checkDayOne(cfg *config.Config) checkResult {
	path, err := dayone.NewClient(cfg.DayOneBin).Available()
	if err != nil {
		return checkResult{
			Name:    "dayone2",
			Status:  checkFail,
			Message: cfg.DayOneBin + " not found",
			Hint:    "install the Day One CLI (Day One > Settings > Advanced) or set dayone_bin",
		}
	}
	return checkResult{Name: "dayone2", Status: checkPass, Message: path}
}

func checkJournal(cfg *config.Config) checkResult {
	if cfg.Journal == "" {
		return checkResult{
			Name:    "journal",
			Status:  checkWarn,
			Message: "not set, entries go to Day One's default journal",
			Hint:    "set journal in " + config.DefaultPath(),
		}
	}
	return checkResult{Name: "journal", Status: checkPass, Message: cfg.Journal}
}

func checkInputs(cfg *config.Config, args []string) checkResult {
	files, err := expandArgs(args, cfg.Pattern)
	if err != nil {
		return checkResult{Name: "inputs", Status: checkFail, Message: err.Error()}
	}

	// Literal paths that matched nothing are kept by expansion; don't count them.
	var existing []string
	for _, file := range files {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return checkResult{
			Name:    "inputs",
			Status:  checkWarn,
			Message: fmt.Sprintf("no notes matching %q", cfg.Pattern),
			Hint:    "pass the export directory, or set --pattern/pattern",
		}
	}

	imp, err := importer.New(nil, importer.Options{
		Journal:   cfg.Journal,
		MarkerTag: cfg.MarkerTag,
		ExtraTags: cfg.Tags,
		DryRun:    true,
	}, nil)
	if err != nil {
		return checkResult{Name: "inputs", Status: checkFail, Message: err.Error()}
	}

	var broken int
	var firstErr error
	for _, file := range existing {
		if _, err := imp.ConvertFile(file); err != nil {
			broken++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if broken > 0 {
		return checkResult{
			Name:    "inputs",
			Status:  checkWarn,
			Message: fmt.Sprintf("%d of %d notes cannot be converted (first: %v)", broken, len(existing), firstErr),
			Hint:    "run 'moodlog parse <file>' on a failing note for details",
		}
	}
	return checkResult{Name: "inputs", Status: checkPass, Message: fmt.Sprintf("%d notes found", len(existing))}
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("moodlog doctor %s\n", result.Version)
	printer.Println()

	for _, check := range result.Checks {
		if quiet && check.Status == checkPass {
			continue
		}
		printer.Print("  %s  %-8s %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     %s %s\n", hintPrefix(), check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}

// hintPrefix returns the prefix for hint lines.
func hintPrefix() string {
	return "->"
}
