package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gorewood/moodlog/internal/dayone"
	"github.com/gorewood/moodlog/internal/notion"
)

// Conversion is a parsed note and the entry built from it.
type Conversion struct {
	File   string
	Record *notion.MoodRecord
	Entry  dayone.Entry
}

// Importer converts note files and submits them to Day One.
type Importer struct {
	submitter dayone.Submitter
	opts      Options
	logger    *log.Logger
}

// New returns an Importer. submitter may be nil only for a dry run; a nil
// logger discards log output.
func New(submitter dayone.Submitter, opts Options, logger *log.Logger) (*Importer, error) {
	opts.normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid import options: %w", err)
	}
	if submitter == nil && !opts.DryRun {
		return nil, errors.New("a submitter is required unless dry-run is set")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Importer{submitter: submitter, opts: opts, logger: logger}, nil
}

// Options returns the normalized options.
func (i *Importer) Options() Options {
	return i.opts
}

// ConvertFile reads and parses the note at path and builds its entry.
// Attachment paths are resolved relative to the note's directory.
// Parse failures wrap a *notion.ParseError.
func (i *Importer) ConvertFile(path string) (*Conversion, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input paths come from the user
	if err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}

	record, err := notion.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	attachments, err := dayone.ResolveAttachments(filepath.Dir(path), record.Attachments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	date := record.Timestamp
	return &Conversion{
		File:   path,
		Record: record,
		Entry: dayone.Entry{
			Content:     record.Body,
			Attachments: attachments,
			Tags:        TagsFor(record.Mood, i.opts.MarkerTag, i.opts.ExtraTags),
			Journal:     i.opts.Journal,
			Date:        &date,
			Starred:     i.opts.Starred,
		},
	}, nil
}

// Run imports files in order. The report is returned even on error and
// covers every document attempted.
//
// Without KeepGoing the first failure ends the run and is returned. With
// KeepGoing failures are recorded and Run returns an error wrapping
// ErrPartialFailure if any occurred. Cancellation is checked between
// documents; a document already handed to dayone2 is allowed to finish.
func (i *Importer) Run(ctx context.Context, files []string) (*Report, error) {
	report := newReport(i.opts.DryRun)
	logger := i.logger.With("run", report.RunID)
	logger.Debug("starting import", "files", len(files), "dry_run", i.opts.DryRun)

	for idx, file := range files {
		if err := ctx.Err(); err != nil {
			report.finish(len(files) - idx)
			return report, fmt.Errorf("import interrupted: %w", err)
		}

		result := i.importFile(ctx, file)
		report.add(result)

		if result.Status == StatusFailed {
			logger.Error("failed", "file", file, "err", result.Err)
			if !i.opts.KeepGoing {
				report.finish(len(files) - idx - 1)
				return report, result.Err
			}
			continue
		}
		logger.Info(string(result.Status), "file", file, "mood", result.Mood, "attachments", len(result.Attachments))
	}

	report.finish(0)
	logger.Debug("import finished", "imported", report.Imported, "planned", report.Planned, "failed", report.Failed)

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPartialFailure, report.Failed, report.Total())
	}
	return report, nil
}

func (i *Importer) importFile(ctx context.Context, file string) Result {
	result := Result{File: file}

	conv, err := i.ConvertFile(file)
	if err != nil {
		return failed(result, err)
	}

	result.Mood = conv.Record.Mood.Code()
	result.Timestamp = conv.Entry.Date
	result.Tags = conv.Entry.Tags
	result.Attachments = conv.Entry.Attachments

	if i.opts.DryRun {
		result.Status = StatusDryRun
		return result
	}

	out, err := i.submitter.Submit(ctx, conv.Entry)
	if err != nil {
		return failed(result, fmt.Errorf("%s: %w", file, err))
	}
	result.Status = StatusImported
	result.Output = out
	return result
}

func failed(result Result, err error) Result {
	result.Status = StatusFailed
	result.Err = err
	result.Error = err.Error()
	return result
}
