// Package fs provides file system adapters for walking and hashing source trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/gowheel/internal/core/domain"
)

// Walker provides file walking functionality over a source module.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping version
// control directories and gowheel's own metadata/output directories so a
// finished build does not invalidate its own cache. Additional absolute
// directory paths to leave out, such as a custom output directory inside the
// tree, are given via skipDirs.
func (w *Walker) WalkFiles(root string, skipDirs ...string) iter.Seq[string] {
	skip := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skip[filepath.Clean(dir)] = true
	}

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if skip[filepath.Clean(path)] && path != root {
					return filepath.SkipDir
				}
				switch d.Name() {
				case ".git", ".jj", domain.GowheelDirName, domain.DefaultOutputDir:
					if path != root {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
