package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/moodlog/internal/output"
)

type frontmatter struct {
	Schema      string   `yaml:"schema"`
	Date        string   `yaml:"date"`
	Mood        string   `yaml:"mood"`
	Tags        []string `yaml:"tags,omitempty"`
	Attachments []string `yaml:"attachments,omitempty"`
	Source      string   `yaml:"source,omitempty"`
}

// FormatMarkdown formats a record as a markdown document with YAML
// frontmatter. The body is kept verbatim, placeholders included; attachments
// are listed after it in placeholder order.
func FormatMarkdown(record *Record) (string, error) {
	var builder strings.Builder

	if err := writeFrontmatter(&builder, record); err != nil {
		return "", err
	}
	builder.WriteString(record.Body)
	if record.Body != "" && !strings.HasSuffix(record.Body, "\n") {
		builder.WriteString("\n")
	}
	writeAttachments(&builder, record)

	return builder.String(), nil
}

func writeFrontmatter(builder *strings.Builder, record *Record) error {
	meta := frontmatter{
		Schema:      Schema,
		Date:        record.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Mood:        record.Mood,
		Tags:        record.Tags,
		Attachments: record.Attachments,
		Source:      record.File,
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to marshal frontmatter for %s: %v", record.File, err))
	}

	builder.WriteString("---\n")
	builder.Write(data)
	builder.WriteString("---\n\n")
	return nil
}

func writeAttachments(builder *strings.Builder, record *Record) {
	if len(record.Attachments) == 0 {
		return
	}
	builder.WriteString("\n## Attachments\n\n")
	for i, path := range record.Attachments {
		fmt.Fprintf(builder, "%d. [%s](<%s>)\n", i+1, attachmentName(path), path)
	}
}
