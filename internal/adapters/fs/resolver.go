package fs

import (
	"os"
	"path/filepath"
	"slices"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceResolver = (*Resolver)(nil)

// Resolver implements the ResourceResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveResources resolves the given patterns to a sorted, de-duplicated list of files.
// Directories matched by a pattern are skipped. A pattern that matches nothing is not an error.
func (r *Resolver) ResolveResources(root string, patterns, exclude []string) ([]string, error) {
	excluded := ignore.CompileIgnoreLines(exclude...)
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", match)
			}
			if info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", pattern)
			}
			rel = filepath.ToSlash(rel)
			if excluded.MatchesPath(rel) {
				continue
			}
			unique[rel] = struct{}{}
		}
	}

	result := make([]string, 0, len(unique))
	for rel := range unique {
		result = append(result, rel)
	}
	slices.Sort(result)
	return result, nil
}
