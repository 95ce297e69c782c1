// Package fs provides file system adapters for walking, resolving and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/rodata/internal/core/domain"
)

// alwaysSkipped are directories never descended into.
var alwaysSkipped = map[string]bool{
	".git":               true,
	".jj":                true,
	domain.RodataDirName: true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root, skipping VCS and metadata directories and
// anything matched by the gitignore-style ignore patterns. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return w.walk(root, ignores, false)
}

// WalkDirs yields every directory below root, root included, with the same skip rules as WalkFiles.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq[string] {
	return w.walk(root, ignores, true)
}

func (w *Walker) walk(root string, ignores []string, dirs bool) iter.Seq[string] {
	matcher := ignore.CompileIgnoreLines(ignores...)
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped rather than aborting the walk.
				return nil //nolint:nilerr // intentional
			}

			if path != root && w.skip(root, path, d, matcher) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() != dirs {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skip(root, path string, d fs.DirEntry, matcher *ignore.GitIgnore) bool {
	if d.IsDir() && alwaysSkipped[d.Name()] {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if d.IsDir() {
		rel += "/"
	}
	return matcher.MatchesPath(rel)
}
