// Package envfile loads MOODLOG_* settings from .env files.
// Variables already present in the environment are never overwritten.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load applies each file in order and returns the keys it set.
// Missing files are skipped. Earlier files win over later ones because a key
// set by one file is already present when the next is read.
func Load(paths ...string) ([]string, error) {
	var applied []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		keys, err := loadFile(path)
		if err != nil {
			return applied, err
		}
		applied = append(applied, keys...)
	}
	return applied, nil
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- env file locations are fixed by the caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	var applied []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
		applied = append(applied, key)
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return applied, nil
}

// parseEnvLine parses KEY=VALUE with an optional "export " prefix and
// optional matching quotes around the value. Blank lines and # comments
// yield ok=false.
func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
