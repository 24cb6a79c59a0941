package dayone

import (
	"fmt"
	"path/filepath"
)

// ResolveAttachments turns note-relative attachment paths into canonical
// absolute paths. Relative paths are joined onto baseDir; symlinks are
// resolved, so every file must exist.
func ResolveAttachments(baseDir string, paths []string) ([]string, error) {
	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		full := path
		if !filepath.IsAbs(full) {
			full = filepath.Join(baseDir, path)
		}

		abs, err := filepath.Abs(full)
		if err != nil {
			return nil, fmt.Errorf("resolving attachment %q: %w", path, err)
		}
		canonical, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("resolving attachment %q: %w", path, err)
		}
		resolved = append(resolved, canonical)
	}
	return resolved, nil
}
