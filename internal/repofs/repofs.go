// Package repofs lists repository files for required-file matching.
package repofs

import (
	"io/fs"
	"path/filepath"
)

// ignoredRootDirs are top-level directories excluded from matching: VCS
// metadata and build output.
var ignoredRootDirs = map[string]struct{}{
	".git":   {},
	"target": {},
}

// Lister implements core.FileLister over the local filesystem.
type Lister struct{}

// ListFiles walks the root and returns every file as a root-relative,
// forward-slash path. Ignored top-level directories are skipped entirely.
func (Lister) ListFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, matching a plain listing.
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		relative, relErr := filepath.Rel(root, path)
		if relErr != nil || relative == "." {
			return nil
		}
		normalized := filepath.ToSlash(relative)
		if entry.IsDir() {
			if _, ok := ignoredRootDirs[normalized]; ok {
				return filepath.SkipDir
			}
			return nil
		}
		paths = append(paths, normalized)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
