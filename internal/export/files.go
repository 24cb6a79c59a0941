package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/moodlog/internal/output"
)

// WriteFiles writes each record to its own file in dir, creating dir if
// needed, and returns the written paths in record order.
func WriteFiles(records []*Record, dir string, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, output.NewSystemError(fmt.Sprintf("failed to create %s: %v", dir, err))
	}

	used := make(map[string]int)
	paths := make([]string, 0, len(records))
	for _, record := range records {
		content, err := Render(record, format)
		if err != nil {
			return paths, err
		}

		base := fileBase(record)
		used[base]++
		if n := used[base]; n > 1 {
			base = fmt.Sprintf("%s-%d", base, n)
		}

		filename := filepath.Join(dir, base+"."+string(format))
		if err := os.WriteFile(filename, content, 0o600); err != nil {
			return paths, output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", filename, err))
		}
		paths = append(paths, filename)
	}
	return paths, nil
}
