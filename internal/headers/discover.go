package headers

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the .txt files directly inside the input directory.
const DefaultPattern = "*.txt"

// Discover returns the regular files under dir matching the doublestar
// pattern, sorted by path. Use "**/*.txt" to descend into subdirectories.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat input dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	fsys := os.DirFS(dir)

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string

	for _, match := range matches {
		st, err := fs.Stat(fsys, match)
		if err != nil || !st.Mode().IsRegular() {
			continue // Skip directories and paths that can't be stat'd
		}

		files = append(files, filepath.Join(dir, filepath.FromSlash(match)))
	}

	slices.Sort(files)

	return files, nil
}
