// Package dayone submits entries to Day One through its dayone2 CLI.
package dayone

import "time"

// DefaultBinary is the Day One command-line tool.
const DefaultBinary = "dayone2"

// dateLayout is the --isoDate format dayone2 accepts.
const dateLayout = "2006-01-02T15:04:05Z"

// Entry is one Day One entry to create.
type Entry struct {
	Content string `json:"content"`

	// Attachments are absolute file paths, in the order their placeholders
	// appear in Content.
	Attachments []string `json:"attachments,omitempty"`

	Tags []string `json:"tags,omitempty"`

	// Journal is the target journal; empty means Day One's default.
	Journal string `json:"journal,omitempty"`

	// Date is the entry time; nil means "now" as decided by Day One.
	Date *time.Time `json:"date,omitempty"`

	Starred bool `json:"starred"`
}

// FormatDate renders t in UTC as dayone2 expects it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Args builds the dayone2 argument list for entry:
//
//	[--attachments A...] [--tags T...] [--journal J] [--isoDate D] [--starred] [--] new CONTENT
//
// The "--" separator is only emitted when at least one option precedes it,
// so the variadic --attachments and --tags lists end before "new".
func Args(entry Entry) []string {
	var args []string
	if len(entry.Attachments) > 0 {
		args = append(args, "--attachments")
		args = append(args, entry.Attachments...)
	}
	if len(entry.Tags) > 0 {
		args = append(args, "--tags")
		args = append(args, entry.Tags...)
	}
	if entry.Journal != "" {
		args = append(args, "--journal", entry.Journal)
	}
	if entry.Date != nil {
		args = append(args, "--isoDate", FormatDate(*entry.Date))
	}
	if entry.Starred {
		args = append(args, "--starred")
	}
	if len(args) > 0 {
		args = append(args, "--")
	}
	return append(args, "new", entry.Content)
}
