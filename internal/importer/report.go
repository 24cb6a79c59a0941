package importer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrPartialFailure is returned by Run when KeepGoing is set and at least one
// document failed.
var ErrPartialFailure = errors.New("some documents failed to import")

// Status is the outcome of one document.
type Status string

// Document outcomes.
const (
	StatusImported Status = "imported"
	StatusDryRun   Status = "dry-run"
	StatusFailed   Status = "failed"
)

// Result describes one document of a run.
type Result struct {
	File        string     `json:"file"`
	Status      Status     `json:"status"`
	Mood        string     `json:"mood,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`

	// Output is what dayone2 printed, usually the new entry's UUID line.
	Output string `json:"output,omitempty"`

	Error string `json:"error,omitempty"`
	Err   error  `json:"-"`
}

// Report summarises a run. Results are in processing order.
type Report struct {
	RunID      string    `json:"run_id"`
	DryRun     bool      `json:"dry_run"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Results    []Result  `json:"results"`

	Imported int `json:"imported"`
	Planned  int `json:"planned"`
	Failed   int `json:"failed"`

	// Skipped counts documents never attempted because the run stopped early.
	Skipped int `json:"skipped"`
}

func newReport(dryRun bool) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		DryRun:    dryRun,
		StartedAt: time.Now().UTC(),
		Results:   []Result{},
	}
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case StatusImported:
		r.Imported++
	case StatusDryRun:
		r.Planned++
	case StatusFailed:
		r.Failed++
	}
}

func (r *Report) finish(skipped int) {
	r.Skipped = skipped
	r.FinishedAt = time.Now().UTC()
}

// Total returns the number of documents in the run, attempted or not.
func (r *Report) Total() int {
	return len(r.Results) + r.Skipped
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			failed = append(failed, result)
		}
	}
	return failed
}
