package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks root and collects every file whose slash-relative path
// matches pattern (doublestar syntax, compared case-insensitively so
// ICON.PNG is found next to icon.png). Paths are returned sorted
// lexicographically for deterministic processing order.
func Discover(root, pattern string) ([]string, error) {
	pattern = strings.ToLower(pattern)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(pattern, strings.ToLower(filepath.ToSlash(rel)))
		if err != nil {
			return err
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
