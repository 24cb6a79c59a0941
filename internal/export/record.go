package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gorewood/moodlog/internal/notion"
)

// Schema identifies the export layout in markdown frontmatter.
const Schema = "moodlog.export/v1"

// Record is the exported view of one note.
type Record struct {
	File        string    `json:"file,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Mood        string    `json:"mood"`
	Tags        []string  `json:"tags"`
	Body        string    `json:"body"`
	Attachments []string  `json:"attachments"`
}

// NewRecord builds the view of a parsed note. attachments should be the
// resolved paths when available, otherwise the note's relative ones.
func NewRecord(file string, rec *notion.MoodRecord, tags, attachments []string) *Record {
	if tags == nil {
		tags = []string{}
	}
	if attachments == nil {
		attachments = []string{}
	}
	return &Record{
		File:        file,
		Timestamp:   rec.Timestamp.UTC(),
		Mood:        rec.Mood.Code(),
		Tags:        tags,
		Body:        rec.Body,
		Attachments: attachments,
	}
}

// Format is an export format.
type Format string

// Supported formats; the values double as file extensions.
const (
	JSON     Format = "json"
	Markdown Format = "md"
	HTML     Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, Markdown, HTML}

// ParseFormat accepts a format name. "markdown" is an alias for "md".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return JSON, nil
	case "md", "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, md, or html)", name)
}

// Render formats a single record.
func Render(record *Record, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return marshalRecord(record)
	case Markdown:
		md, err := FormatMarkdown(record)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case HTML:
		html, err := FormatHTML(record)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// fileBase names a record's file after its timestamp.
func fileBase(record *Record) string {
	return record.Timestamp.UTC().Format("2006-01-02T15-04-05Z")
}

// attachmentName is the label used for an attachment link.
func attachmentName(path string) string {
	return filepath.Base(filepath.FromSlash(path))
}
