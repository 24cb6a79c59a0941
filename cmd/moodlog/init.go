package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodlog/internal/config"
	"github.com/gorewood/moodlog/internal/output"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool
	var journal string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file with the built-in defaults.

The file goes to --config if given, otherwise to the default location
(` + "$MOODLOG_CONFIG_HOME, $XDG_CONFIG_HOME/moodlog, or ~/.config/moodlog" + `).
An existing file is left alone unless --force is set.

Examples:
  moodlog init                     # Write defaults
  moodlog init --journal "Mood"    # Write defaults with a journal
  moodlog init --force             # Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force, journal)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&journal, "journal", config.DefaultJournal, "Journal to write into the config")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, force bool, journal string) error {
	printer := newPrinter(cmd)

	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		err := output.NewSystemError("cannot determine config directory; set " + config.EnvConfigHome)
		printer.Error(err)
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		err := output.NewUserError(fmt.Sprintf("%s already exists (use --force to overwrite)", path))
		printer.Error(err)
		return err
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fail(printer, err)
	}

	cfg := config.Default()
	cfg.Journal = journal
	if err := cfg.Validate(); err != nil {
		err := output.NewUserErrorWithCause("invalid config", err)
		printer.Error(err)
		return err
	}
	if err := cfg.Save(path); err != nil {
		err := output.NewSystemErrorWithCause("writing config", err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"status": "ok", "path": path})
	}
	return printer.Success(map[string]any{"message": "Wrote " + path})
}
