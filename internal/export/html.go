package export

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders bodies. Raw HTML in notes is not passed through.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// FormatHTML renders a record as an HTML fragment.
func FormatHTML(record *Record) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(record.Body), &body); err != nil {
		return "", fmt.Errorf("rendering %s: %w", record.File, err)
	}

	var buf bytes.Buffer
	stamp := record.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00")
	fmt.Fprintf(&buf, "<article class=\"mood-entry\" data-mood=\"%s\">\n", html.EscapeString(record.Mood))
	fmt.Fprintf(&buf, "<header><time datetime=\"%s\">%s</time>", stamp, record.Timestamp.UTC().Format("2006-01-02 15:04 MST"))
	for _, tag := range record.Tags {
		fmt.Fprintf(&buf, " <span class=\"tag\">%s</span>", html.EscapeString(tag))
	}
	buf.WriteString("</header>\n")
	buf.Write(body.Bytes())

	if len(record.Attachments) > 0 {
		buf.WriteString("<ol class=\"attachments\">\n")
		for _, path := range record.Attachments {
			fmt.Fprintf(&buf, "<li><a href=\"%s\">%s</a></li>\n",
				html.EscapeString(fileURL(path)), html.EscapeString(attachmentName(path)))
		}
		buf.WriteString("</ol>\n")
	}
	buf.WriteString("</article>\n")
	return buf.String(), nil
}

// fileURL links absolute paths with file://; relative paths stay relative.
func fileURL(path string) string {
	u := url.URL{Path: filepath.ToSlash(path)}
	if filepath.IsAbs(path) {
		u.Scheme = "file"
	}
	return u.String()
}
