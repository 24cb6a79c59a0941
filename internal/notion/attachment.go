package notion

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// AttachmentMarker starts an image reference line.
const AttachmentMarker = "!["

// Placeholder replaces each attachment line in the body. Day One swaps it for
// the attached files in order.
const Placeholder = "[{attachment}]"

// IsAttachmentLine reports whether a body line is an image reference.
// Leading and trailing whitespace is ignored.
func IsAttachmentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), AttachmentMarker)
}

// ParseAttachment extracts the decoded path from a reference such as
// "![Untitled](ML%201970-01-01%2000%2000%2001.../Untitled.png)".
// The path is the text between the first "(" and the first ")".
func ParseAttachment(line string) (string, error) {
	start := strings.IndexByte(line, '(')
	end := strings.IndexByte(line, ')')
	if start < 0 || end < 0 || end < start {
		return "", &ParseError{
			Kind:  KindReference,
			Field: "attachment",
			Err:   fmt.Errorf("no (...) path in %q", line),
		}
	}

	raw := line[start+1 : end]
	if raw == "" {
		return "", &ParseError{
			Kind:  KindReference,
			Field: "attachment",
			Err:   errors.New("empty path"),
		}
	}

	path, err := url.PathUnescape(raw)
	if err != nil {
		return "", &ParseError{
			Kind:  KindReference,
			Field: "attachment",
			Err:   fmt.Errorf("decoding %q: %w", raw, err),
		}
	}
	if !utf8.ValidString(path) {
		return "", &ParseError{
			Kind:  KindReference,
			Field: "attachment",
			Err:   fmt.Errorf("decoded path of %q is not valid UTF-8", raw),
		}
	}
	return path, nil
}
