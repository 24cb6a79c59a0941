// Package notion parses mood-log notes exported from Notion.
//
// An export is a Markdown file with a fixed six-line header followed by a
// free-form body:
//
//	# ML 1970-01-01 00:01
//
//	Date (human): 1970-01-01 01:01
//	Mood: 2
//	Date: 1970/01/01 01:01 (GMT+1)
//
//	Hello, world! This is my image:
//	![Untitled](ML%201970-01-01%2000%2000%2001.../Untitled.png)
//
// Parse turns one such document into a MoodRecord. Image references in the
// body are lifted out into MoodRecord.Attachments and replaced by the
// Placeholder token that Day One substitutes with the attached files.
//
// # Time zone
//
// The human date line carries no offset. It is read in a fixed UTC+01:00 zone
// (SourceOffset) and normalised to UTC. The secondary "Date:" line includes
// an offset annotation, but it is not consulted.
//
// # Errors
//
// Parsing is all-or-nothing. Every failure is a *ParseError whose Kind is one
// of KindFormat, KindValue or KindReference; use errors.Is with ErrFormat,
// ErrValue or ErrReference to branch on the kind.
package notion
