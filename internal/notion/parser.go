package notion

import (
	"fmt"
	"strings"
	"time"
)

// headerLines is the number of fixed lines before the body.
const headerLines = 6

// MoodRecord is one parsed mood-log note.
type MoodRecord struct {
	// Timestamp is the note's time in UTC.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	Mood Mood `json:"mood" yaml:"mood"`

	// Body is the note text with attachment lines replaced by Placeholder.
	Body string `json:"body" yaml:"body"`

	// Attachments are the decoded relative paths, one per Placeholder in Body.
	Attachments []string `json:"attachments" yaml:"attachments"`
}

// Parse parses a complete exported note.
// It returns a *ParseError and no record if the document is malformed.
func Parse(document string) (*MoodRecord, error) {
	lines := splitLines(document)
	if len(lines) < headerLines {
		return nil, &ParseError{
			Kind:  KindFormat,
			Field: "header",
			Err:   fmt.Errorf("document has %d line(s), need at least %d", len(lines), headerLines),
		}
	}

	// Line 1 is the title, line 2 is blank.
	timestamp, err := ParseHumanDate(lines[2])
	if err != nil {
		return nil, atLine(err, 3)
	}

	mood, err := parseMoodLine(lines[3])
	if err != nil {
		return nil, atLine(err, 4)
	}

	// Line 5 repeats the date with an offset annotation, line 6 is blank.
	body, attachments, err := rewriteBody(lines[headerLines:], headerLines+1)
	if err != nil {
		return nil, err
	}

	return &MoodRecord{
		Timestamp:   timestamp,
		Mood:        mood,
		Body:        body,
		Attachments: attachments,
	}, nil
}

// rewriteBody swaps attachment lines for Placeholder and collects their paths.
// firstLine is the document line number of lines[0].
func rewriteBody(lines []string, firstLine int) (string, []string, error) {
	var builder strings.Builder
	attachments := []string{}

	for i, line := range lines {
		if IsAttachmentLine(line) {
			path, err := ParseAttachment(strings.TrimSpace(line))
			if err != nil {
				return "", nil, atLine(err, firstLine+i)
			}
			attachments = append(attachments, path)
			builder.WriteString(Placeholder)
		} else {
			builder.WriteString(line)
		}
		builder.WriteByte('\n')
	}

	return strings.TrimSuffix(builder.String(), "\n"), attachments, nil
}

// splitLines splits on "\n", drops a trailing "\r" from each line, and does
// not yield an empty final line for a terminating newline.
func splitLines(document string) []string {
	if document == "" {
		return nil
	}
	document = strings.TrimSuffix(document, "\n")
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
