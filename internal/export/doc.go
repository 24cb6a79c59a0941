// Package export renders parsed mood notes for preview outside Day One.
//
// # Formats
//
//   - JSON: the [Record] view, one array or one file per note
//   - Markdown: YAML frontmatter followed by the entry body
//   - HTML: an <article> fragment with the body rendered by goldmark (GFM)
//
// Example markdown output:
//
//	---
//	schema: moodlog.export/v1
//	date: "1970-01-01T00:01:00Z"
//	mood: "3"
//	tags:
//	    - mood/3
//	    - from-notion
//	---
//
//	Hello, world!
//	[{attachment}]
//
//	## Attachments
//
//	1. [Untitled.png](</abs/path/Untitled.png>)
//
// # File Naming
//
// [WriteFiles] names each file by the note's UTC timestamp,
// 2006-01-02T15-04-05Z.<ext>. Notes sharing a minute get a -2, -3, ...
// suffix in input order.
package export
