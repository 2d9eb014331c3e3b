package driver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"checkattr/internal/hir/hirdoc"
)

// CollectDocuments expands paths into the list of crate documents to check.
// Directories are walked recursively for files with a document extension,
// sorted for a deterministic order. Plain files are kept as given, even
// when missing, so the load step can report them. Duplicates are dropped.
func CollectDocuments(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			add(root)
			continue
		}
		var found []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if hirdoc.IsDocumentPath(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoDocuments
	}
	return out, nil
}

// ErrNoDocuments is returned when the given paths hold no crate document.
var ErrNoDocuments = errors.New("no crate documents found")
