package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// DefaultPattern matches the file names Notion gives mood-log exports.
const DefaultPattern = "ML *.md"

// ExpandInputs turns inputs into a sorted, de-duplicated list of note files.
// A directory input is searched (non-recursively) with pattern; any other
// input is treated as a glob. Inputs that match nothing are kept as literal
// paths so the caller reports a read error for them.
func ExpandInputs(inputs []string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, input := range inputs {
		if info, err := os.Stat(input); err == nil && info.IsDir() {
			// Escape so directory names containing glob metacharacters are literal.
			matches, err := filepath.Glob(filepath.Join(escapeGlob(input), pattern))
			if err != nil {
				return nil, fmt.Errorf("searching %s: %w", input, err)
			}
			for _, match := range matches {
				if info, err := os.Stat(match); err == nil && !info.IsDir() {
					add(match)
				}
			}
			continue
		}

		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", input, err)
		}
		if len(matches) == 0 {
			add(input)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(result)
	return result, nil
}

// escapeGlob quotes glob metacharacters in path. Windows has no escape
// character in filepath.Match, so paths are returned unchanged there.
func escapeGlob(path string) string {
	if runtime.GOOS == "windows" {
		return path
	}
	var escaped []rune
	for _, r := range path {
		switch r {
		case '*', '?', '[', ']', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(escaped)
}
